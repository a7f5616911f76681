package entities

import "time"

// Encounter types used across the generated dataset.
const (
	EncounterTypeEmergency   = "EM"
	EncounterTypeInpatient   = "IP"
	EncounterTypeOutpatient  = "OP"
	EncounterTypeObservation = "OB"
	EncounterTypeAmbulatory  = "AMB"
)

// EncounterTypes lists every valid encounter type.
var EncounterTypes = []string{
	EncounterTypeEmergency,
	EncounterTypeInpatient,
	EncounterTypeOutpatient,
	EncounterTypeObservation,
	EncounterTypeAmbulatory,
}

// VitalSigns is the point-in-time vitals block captured for an encounter.
type VitalSigns struct {
	BloodPressureSystolic  int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic"`
	HeartRate              int     `json:"heart_rate"`
	Temperature            float64 `json:"temperature"`
	OxygenSaturation       int     `json:"oxygen_saturation"`
}

// ClinicalDetail is the structured clinical payload attached to an
// encounter. It stays typed in memory and is serialized to JSON only at
// the sink boundary.
type ClinicalDetail struct {
	DiagnosisCodes    []string   `json:"diagnosis_codes"`
	ProcedureCodes    []string   `json:"procedure_codes"`
	LengthOfStayHours float64    `json:"length_of_stay_hours"`
	TotalCost         float64    `json:"total_cost"`
	VitalSigns        VitalSigns `json:"vital_signs"`
	Complications     []string   `json:"complications"`
}

// Encounter is one discrete clinical interaction between a patient and
// the care network.
type Encounter struct {
	EncounterID          string         `json:"encounter_id" db:"encounter_id"`
	PatientID            string         `json:"patient_id" db:"patient_id"`
	EncounterDate        time.Time      `json:"encounter_date" db:"encounter_date"`
	EncounterType        string         `json:"encounter_type" db:"encounter_type"`
	FacilityID           string         `json:"facility_id" db:"facility_id"`
	ProviderID           string         `json:"provider_id" db:"provider_id"`
	AdmissionSource      string         `json:"admission_source" db:"admission_source"`
	DischargeDisposition string         `json:"discharge_disposition" db:"discharge_disposition"`
	Detail               ClinicalDetail `json:"detail" db:"-"`
}
