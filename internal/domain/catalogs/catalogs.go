// Package catalogs holds the compiled-in reference data every
// generator samples from: facilities, providers, clinical
// vocabularies, lab test definitions and imaging templates. Catalogs
// are immutable for the duration of a run and shared read-only across
// generators.
package catalogs

import "github.com/careloop/synthgen/internal/domain/entities"

// Facilities is the fixed facility dimension.
var Facilities = []entities.Facility{
	{FacilityID: "FAC001", FacilityName: "General Hospital", FacilityType: "hospital", City: "Mumbai", Region: "Maharashtra", BedCount: 500},
	{FacilityID: "FAC002", FacilityName: "Cardiac Care Center", FacilityType: "specialty_hospital", City: "Pune", Region: "Maharashtra", BedCount: 150},
	{FacilityID: "FAC003", FacilityName: "Community Clinic", FacilityType: "clinic", City: "Bangalore", Region: "Karnataka", BedCount: 25},
	{FacilityID: "FAC004", FacilityName: "Emergency Medical Center", FacilityType: "emergency_hospital", City: "Chennai", Region: "Tamil Nadu", BedCount: 200},
	{FacilityID: "FAC005", FacilityName: "Wellness Clinic", FacilityType: "outpatient_clinic", City: "Hyderabad", Region: "Telangana", BedCount: 50},
}

// Providers is the fixed provider dimension.
var Providers = []entities.Provider{
	{ProviderID: "PROV001", ProviderName: "Dr. Sharma", Specialty: "Cardiology", FacilityID: "FAC002", YearsExperience: 15},
	{ProviderID: "PROV002", ProviderName: "Dr. Patel", Specialty: "Emergency Medicine", FacilityID: "FAC001", YearsExperience: 8},
	{ProviderID: "PROV003", ProviderName: "Dr. Kumar", Specialty: "Internal Medicine", FacilityID: "FAC001", YearsExperience: 12},
	{ProviderID: "PROV004", ProviderName: "Dr. Singh", Specialty: "Pulmonology", FacilityID: "FAC001", YearsExperience: 10},
	{ProviderID: "PROV005", ProviderName: "Dr. Gupta", Specialty: "Endocrinology", FacilityID: "FAC003", YearsExperience: 18},
	{ProviderID: "PROV006", ProviderName: "Dr. Reddy", Specialty: "Nephrology", FacilityID: "FAC004", YearsExperience: 14},
	{ProviderID: "PROV007", ProviderName: "Dr. Joshi", Specialty: "Psychiatry", FacilityID: "FAC005", YearsExperience: 20},
}

// FacilitySpecialties is the pool of service lines a facility can
// advertise in the silver dimension.
var FacilitySpecialties = []string{"Cardiology", "Emergency", "Surgery", "ICU", "Pediatrics"}

// DiagnosisCodes are ICD-10 codes sampled for encounter diagnoses.
var DiagnosisCodes = []string{
	"I50.9", "J44.1", "N18.9", "E11.9", "I25.9", "F32.9", "M79.3",
	"K59.00", "R06.02", "Z51.11", "I10", "E78.5", "F41.9", "M25.50",
}

// DiagnosisDescriptions are display names parallel to DiagnosisCodes.
var DiagnosisDescriptions = []string{
	"Heart failure, unspecified",
	"Chronic obstructive pulmonary disease with acute exacerbation",
	"Chronic kidney disease, unspecified",
	"Type 2 diabetes mellitus without complications",
	"Chronic ischemic heart disease",
	"Major depressive disorder, single episode",
	"Fibromyalgia",
	"Constipation, unspecified",
	"Shortness of breath",
	"Encounter for antineoplastic chemotherapy",
	"Essential hypertension",
	"Hyperlipidemia, unspecified",
	"Anxiety disorder, unspecified",
	"Joint pain, unspecified",
}

// ProcedureCodes are CPT codes sampled for encounter procedures.
var ProcedureCodes = []string{
	"99213", "99214", "99232", "99233", "36415", "85025", "80053",
	"93000", "71020", "74177", "45378", "43239", "64483", "20610",
}

// MedicationNames is the drug name pool.
var MedicationNames = []string{
	"Lisinopril", "Metformin", "Atorvastatin", "Amlodipine", "Omeprazole",
	"Levothyroxine", "Azithromycin", "Amoxicillin", "Hydrochlorothiazide",
	"Gabapentin", "Sertraline", "Ibuprofen", "Acetaminophen", "Aspirin",
}

// Dosages and Frequencies are sampled independently of the drug name.
var (
	Dosages     = []string{"5mg", "10mg", "25mg", "50mg", "100mg", "250mg", "500mg"}
	Frequencies = []string{"Once daily", "Twice daily", "Three times daily", "As needed", "Every 8 hours"}
)

// LabTests defines each orderable test and its normal range.
var LabTests = []entities.LabTest{
	{Code: "CBC", Name: "Complete Blood Count", Unit: "count", NormalLow: 4.5, NormalHigh: 11.0},
	{Code: "BMP", Name: "Basic Metabolic Panel", Unit: "mg/dL", NormalLow: 70, NormalHigh: 100},
	{Code: "HbA1c", Name: "Hemoglobin A1C", Unit: "%", NormalLow: 4.0, NormalHigh: 5.6},
	{Code: "TSH", Name: "Thyroid Stimulating Hormone", Unit: "mIU/L", NormalLow: 0.4, NormalHigh: 4.0},
	{Code: "CRP", Name: "C-Reactive Protein", Unit: "mg/L", NormalLow: 0.0, NormalHigh: 3.0},
	{Code: "BUN", Name: "Blood Urea Nitrogen", Unit: "mg/dL", NormalLow: 7, NormalHigh: 20},
	{Code: "Creatinine", Name: "Serum Creatinine", Unit: "mg/dL", NormalLow: 0.6, NormalHigh: 1.2},
}

// PerformingLabs is the pool of labs that can report a result.
var PerformingLabs = []string{"Central Lab", "Point of Care", "Reference Lab"}

// ImagingModalities are the orderable imaging modalities.
var ImagingModalities = []entities.ImagingModality{
	{Code: "CT", Name: "Computed Tomography"},
	{Code: "MRI", Name: "Magnetic Resonance Imaging"},
	{Code: "XR", Name: "X-Ray"},
	{Code: "US", Name: "Ultrasound"},
	{Code: "NM", Name: "Nuclear Medicine"},
}

// StudyDescriptions are templates for imaging study descriptions.
var StudyDescriptions = []string{
	"CT Chest without contrast",
	"MRI Brain with and without contrast",
	"Chest X-ray, 2 views",
	"Abdominal ultrasound",
	"Bone scan, whole body",
	"CT Abdomen and Pelvis with contrast",
	"MRI Lumbar spine without contrast",
}

// FindingsTemplates are canned radiology findings.
var FindingsTemplates = []string{
	"No acute abnormalities detected",
	"Mild degenerative changes noted",
	"Small pleural effusion identified",
	"Chronic changes consistent with patient age",
	"Follow-up recommended in 6 months",
	"Stable appearance compared to prior study",
	"Acute findings requiring immediate attention",
}

// Encounter attribute pools.
var (
	AdmissionSources      = []string{"Emergency", "Physician Referral", "Transfer", "Direct"}
	DischargeDispositions = []string{"Home", "Transfer", "Skilled Nursing", "Rehab"}
)

// ComplicationOptions are mutually exclusive; exactly one option is
// drawn per encounter and most encounters draw none.
var ComplicationOptions = [][]string{
	{},
	{"Infection"},
	{"Bleeding"},
	{"Drug Reaction"},
}

// Patient demographic pools.
var (
	Genders          = []string{"M", "F"}
	Races            = []string{"Asian", "White", "Black", "Hispanic", "Other"}
	Ethnicities      = []string{"Hispanic", "Non-Hispanic"}
	PrimaryLanguages = []string{"English", "Hindi", "Tamil", "Telugu", "Bengali"}
	InsuranceTypes   = []string{"Private", "Government", "Self-Pay", "Medicare"}
)
