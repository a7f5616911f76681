// Package csvfile writes a generated dataset as one delimited file
// per table in a designated output directory.
package csvfile

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/careloop/synthgen/internal/domain/entities"
	"github.com/careloop/synthgen/internal/domain/providers"
	apperrors "github.com/careloop/synthgen/pkg/errors"
)

const (
	timestampLayout = time.RFC3339
	dateLayout      = "2006-01-02"
)

// Adapter is the flat-file dataset sink.
type Adapter struct {
	dir string
}

// NewAdapter creates a CSV sink rooted at dir. The directory is
// created on first emission.
func NewAdapter(dir string) providers.DatasetSink {
	return &Adapter{dir: dir}
}

// Emit writes every table, headers included, even when a table has
// zero rows.
func (a *Adapter) Emit(ctx context.Context, dataset *entities.Dataset) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return apperrors.NewInternalError("failed to create output directory", err)
	}

	encounterTable, err := encounterRows(dataset.Encounters)
	if err != nil {
		return err
	}
	facilityTable, err := facilityRows(dataset.Facilities)
	if err != nil {
		return err
	}

	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{entities.TablePatients, patientHeader, patientRows(dataset.Patients)},
		{entities.TableEncounters, encounterHeader, encounterTable},
		{entities.TableLabResults, labResultHeader, labResultRows(dataset.LabResults)},
		{entities.TableImagingStudies, imagingStudyHeader, imagingStudyRows(dataset.ImagingStudies)},
		{entities.TableMedications, medicationHeader, medicationRows(dataset.Medications)},
		{entities.TableFacilities, facilityHeader, facilityTable},
		{entities.TableProviders, providerHeader, providerRows(dataset.Providers)},
	}

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.writeTable(table.name, table.header, table.rows); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) writeTable(name string, header []string, rows [][]string) error {
	path := filepath.Join(a.dir, name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to write header of %s", name), err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to write row of %s", name), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to flush %s", name), err)
	}
	return file.Close()
}

var patientHeader = []string{
	"patient_id", "medical_record_number", "date_of_birth", "gender",
	"race", "ethnicity", "primary_language", "insurance_type", "zip_code",
}

func patientRows(patients []entities.Patient) [][]string {
	rows := make([][]string, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, []string{
			p.PatientID, p.MedicalRecordNumber, p.DateOfBirth.Format(dateLayout),
			p.Gender, p.Race, p.Ethnicity, p.PrimaryLanguage, p.InsuranceType, p.ZipCode,
		})
	}
	return rows
}

var encounterHeader = []string{
	"encounter_id", "patient_id", "encounter_date", "encounter_type",
	"facility_id", "provider_id", "admission_source", "discharge_disposition",
	"clinical_detail",
}

func encounterRows(encounters []entities.Encounter) ([][]string, error) {
	rows := make([][]string, 0, len(encounters))
	for _, e := range encounters {
		detail, err := json.Marshal(e.Detail)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode clinical detail of %s", e.EncounterID), err)
		}
		rows = append(rows, []string{
			e.EncounterID, e.PatientID, e.EncounterDate.Format(timestampLayout),
			e.EncounterType, e.FacilityID, e.ProviderID,
			e.AdmissionSource, e.DischargeDisposition, string(detail),
		})
	}
	return rows, nil
}

var labResultHeader = []string{
	"lab_result_id", "patient_id", "encounter_id", "test_code", "test_name",
	"result_value", "reference_range", "result_date", "lab_facility",
}

func labResultRows(results []entities.LabResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.LabResultID, r.PatientID, r.EncounterID, r.TestCode, r.TestName,
			strconv.FormatFloat(r.ResultValue, 'f', -1, 64),
			r.ReferenceRange, r.ResultDate.Format(timestampLayout), r.LabFacility,
		})
	}
	return rows
}

var imagingStudyHeader = []string{
	"study_id", "patient_id", "encounter_id", "modality",
	"study_description", "study_date", "radiologist_id", "findings",
}

func imagingStudyRows(studies []entities.ImagingStudy) [][]string {
	rows := make([][]string, 0, len(studies))
	for _, s := range studies {
		rows = append(rows, []string{
			s.StudyID, s.PatientID, s.EncounterID, s.Modality,
			s.StudyDescription, s.StudyDate.Format(timestampLayout),
			s.RadiologistID, s.Findings,
		})
	}
	return rows
}

var medicationHeader = []string{
	"medication_id", "patient_id", "encounter_id", "medication_name",
	"dosage", "frequency", "start_date", "end_date", "prescriber_id",
}

func medicationRows(meds []entities.Medication) [][]string {
	rows := make([][]string, 0, len(meds))
	for _, m := range meds {
		rows = append(rows, []string{
			m.MedicationID, m.PatientID, m.EncounterID, m.MedicationName,
			m.Dosage, m.Frequency, m.StartDate.Format(dateLayout),
			m.EndDate.Format(dateLayout), m.PrescriberID,
		})
	}
	return rows
}

var facilityHeader = []string{
	"facility_id", "facility_name", "facility_type", "city", "region", "bed_count",
	"quality_rating", "address_line1", "zip_code", "specialties",
}

func facilityRows(facilities []entities.Facility) ([][]string, error) {
	rows := make([][]string, 0, len(facilities))
	for _, f := range facilities {
		specialties, err := json.Marshal(f.Specialties)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode specialties of %s", f.FacilityID), err)
		}
		rows = append(rows, []string{
			f.FacilityID, f.FacilityName, f.FacilityType, f.City, f.Region,
			strconv.Itoa(f.BedCount),
			strconv.FormatFloat(f.QualityRating, 'f', 1, 64),
			f.AddressLine1, f.ZipCode, string(specialties),
		})
	}
	return rows, nil
}

var providerHeader = []string{
	"provider_id", "provider_name", "specialty", "facility_id", "years_experience",
	"license_number", "patient_volume_avg", "quality_rating",
}

func providerRows(clinicians []entities.Provider) [][]string {
	rows := make([][]string, 0, len(clinicians))
	for _, p := range clinicians {
		rows = append(rows, []string{
			p.ProviderID, p.ProviderName, p.Specialty, p.FacilityID,
			strconv.Itoa(p.YearsExperience),
			p.LicenseNumber,
			strconv.Itoa(p.PatientVolumeAvg),
			strconv.FormatFloat(p.QualityRating, 'f', 1, 64),
		})
	}
	return rows
}
