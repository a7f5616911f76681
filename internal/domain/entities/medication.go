package entities

import "time"

// Medication is a prescription written during an encounter. The
// prescriber is always the encounter's provider.
type Medication struct {
	MedicationID   string    `json:"medication_id" db:"medication_id"`
	PatientID      string    `json:"patient_id" db:"patient_id"`
	EncounterID    string    `json:"encounter_id" db:"encounter_id"`
	MedicationName string    `json:"medication_name" db:"medication_name"`
	Dosage         string    `json:"dosage" db:"dosage"`
	Frequency      string    `json:"frequency" db:"frequency"`
	StartDate      time.Time `json:"start_date" db:"start_date"`
	EndDate        time.Time `json:"end_date" db:"end_date"`
	PrescriberID   string    `json:"prescriber_id" db:"prescriber_id"`
}
