package entities

import "time"

// LabResult is a single laboratory test result tied to an encounter.
type LabResult struct {
	LabResultID    string    `json:"lab_result_id" db:"lab_result_id"`
	PatientID      string    `json:"patient_id" db:"patient_id"`
	EncounterID    string    `json:"encounter_id" db:"encounter_id"`
	TestCode       string    `json:"test_code" db:"test_code"`
	TestName       string    `json:"test_name" db:"test_name"`
	ResultValue    float64   `json:"result_value" db:"result_value"`
	ReferenceRange string    `json:"reference_range" db:"reference_range"`
	ResultDate     time.Time `json:"result_date" db:"result_date"`
	LabFacility    string    `json:"lab_facility" db:"lab_facility"`
}
