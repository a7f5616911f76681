package entities

// Facility is a reference (dimension) entity describing a care site.
// QualityRating, AddressLine1, ZipCode and Specialties are enrichment
// attributes generated per run; the remaining fields come from the
// compiled-in catalog.
type Facility struct {
	FacilityID    string   `json:"facility_id" db:"facility_id"`
	FacilityName  string   `json:"facility_name" db:"facility_name"`
	FacilityType  string   `json:"facility_type" db:"facility_type"`
	City          string   `json:"city" db:"city"`
	Region        string   `json:"region" db:"region"`
	BedCount      int      `json:"bed_count" db:"bed_count"`
	QualityRating float64  `json:"quality_rating" db:"quality_rating"`
	AddressLine1  string   `json:"address_line1" db:"address_line1"`
	ZipCode       string   `json:"zip_code" db:"zip_code"`
	Specialties   []string `json:"specialties" db:"specialties"`
}

// Provider is a reference (dimension) entity describing a clinician
// attached to a facility. LicenseNumber, PatientVolumeAvg and
// QualityRating are enrichment attributes generated per run.
type Provider struct {
	ProviderID       string  `json:"provider_id" db:"provider_id"`
	ProviderName     string  `json:"provider_name" db:"provider_name"`
	Specialty        string  `json:"specialty" db:"specialty"`
	FacilityID       string  `json:"facility_id" db:"facility_id"`
	YearsExperience  int     `json:"years_experience" db:"years_experience"`
	LicenseNumber    string  `json:"license_number" db:"license_number"`
	PatientVolumeAvg int     `json:"patient_volume_avg" db:"patient_volume_avg"`
	QualityRating    float64 `json:"quality_rating" db:"quality_rating"`
}

// LabTest defines a laboratory test and its clinically normal range.
// Generated result values always carry a reference range consistent
// with these bounds.
type LabTest struct {
	Code       string
	Name       string
	Unit       string
	NormalLow  float64
	NormalHigh float64
}

// ImagingModality pairs a modality code with its display name.
type ImagingModality struct {
	Code string
	Name string
}
