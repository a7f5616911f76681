package entities

import "time"

// Table names as they appear in sinks. Fact tables land in the bronze
// tier, reference/dimension tables in silver.
const (
	TablePatients       = "patients"
	TableEncounters     = "patient_encounters"
	TableLabResults     = "lab_results"
	TableImagingStudies = "imaging_studies"
	TableMedications    = "medications"
	TableFacilities     = "facilities"
	TableProviders      = "providers"
)

// FactTables lists the generated fact tables in dependency order.
var FactTables = []string{
	TableEncounters,
	TableLabResults,
	TableImagingStudies,
	TableMedications,
}

// DimensionTables lists the curated reference tables.
var DimensionTables = []string{
	TablePatients,
	TableFacilities,
	TableProviders,
}

// Dataset is the full in-memory table collection produced by one
// generation run. Tables are treated as immutable once produced; sinks
// may be retried against the same dataset without regeneration.
type Dataset struct {
	Patients       []Patient
	Encounters     []Encounter
	LabResults     []LabResult
	ImagingStudies []ImagingStudy
	Medications    []Medication
	Facilities     []Facility
	Providers      []Provider
}

// Summary holds the per-run observability counts.
type Summary struct {
	RowCounts          map[string]int `json:"row_counts"`
	EncounterDateStart time.Time      `json:"encounter_date_start"`
	EncounterDateEnd   time.Time      `json:"encounter_date_end"`
}

// Summarize computes row counts per table and the overall encounter
// date range.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		RowCounts: map[string]int{
			TablePatients:       len(d.Patients),
			TableEncounters:     len(d.Encounters),
			TableLabResults:     len(d.LabResults),
			TableImagingStudies: len(d.ImagingStudies),
			TableMedications:    len(d.Medications),
			TableFacilities:     len(d.Facilities),
			TableProviders:      len(d.Providers),
		},
	}

	for _, enc := range d.Encounters {
		if s.EncounterDateStart.IsZero() || enc.EncounterDate.Before(s.EncounterDateStart) {
			s.EncounterDateStart = enc.EncounterDate
		}
		if enc.EncounterDate.After(s.EncounterDateEnd) {
			s.EncounterDateEnd = enc.EncounterDate
		}
	}

	return s
}

// RunEvent announces a completed generation run to downstream
// consumers (e.g. the ETL pipeline watching the warehouse).
type RunEvent struct {
	RunID       string    `json:"run_id"`
	Seed        int64     `json:"seed"`
	Summary     Summary   `json:"summary"`
	CompletedAt time.Time `json:"completed_at"`
}
