package entities

import "time"

// Patient is the root entity of a generated dataset; every clinical
// record references exactly one patient.
type Patient struct {
	PatientID           string    `json:"patient_id" db:"patient_id"`
	MedicalRecordNumber string    `json:"medical_record_number" db:"medical_record_number"`
	DateOfBirth         time.Time `json:"date_of_birth" db:"date_of_birth"`
	Gender              string    `json:"gender" db:"gender"`
	Race                string    `json:"race" db:"race"`
	Ethnicity           string    `json:"ethnicity" db:"ethnicity"`
	PrimaryLanguage     string    `json:"primary_language" db:"primary_language"`
	InsuranceType       string    `json:"insurance_type" db:"insurance_type"`
	ZipCode             string    `json:"zip_code" db:"zip_code"`
}
