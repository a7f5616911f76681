package entities

import "time"

// ImagingStudy is a single imaging study attached to an encounter.
type ImagingStudy struct {
	StudyID          string    `json:"study_id" db:"study_id"`
	PatientID        string    `json:"patient_id" db:"patient_id"`
	EncounterID      string    `json:"encounter_id" db:"encounter_id"`
	Modality         string    `json:"modality" db:"modality"`
	StudyDescription string    `json:"study_description" db:"study_description"`
	StudyDate        time.Time `json:"study_date" db:"study_date"`
	RadiologistID    string    `json:"radiologist_id" db:"radiologist_id"`
	Findings         string    `json:"findings" db:"findings"`
}
