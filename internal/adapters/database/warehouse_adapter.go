package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/careloop/synthgen/internal/domain/entities"
	"github.com/careloop/synthgen/internal/domain/providers"
	"github.com/careloop/synthgen/internal/infrastructure/clients/postgres"
	apperrors "github.com/careloop/synthgen/pkg/errors"
)

// Warehouse tiering: generated fact tables land in bronze, curated
// reference/dimension tables in silver.
const (
	bronzeSchema = "bronze"
	silverSchema = "silver"

	insertChunkSize = 1000
)

// WarehouseAdapter writes a generated dataset into the tiered
// PostgreSQL warehouse. It never mutates the dataset, so a failed
// emission can be retried against the same tables.
type WarehouseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewWarehouseAdapter creates a new warehouse sink.
func NewWarehouseAdapter(client *postgres.Client) providers.DatasetSink {
	return &WarehouseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Emit replaces every table of the dataset in the warehouse.
func (a *WarehouseAdapter) Emit(ctx context.Context, dataset *entities.Dataset) error {
	for _, ddl := range schemaDDL {
		if _, err := a.client.DB().ExecContext(ctx, ddl); err != nil {
			return apperrors.NewInternalError("failed to prepare warehouse schema", err)
		}
	}

	facilityRecs, err := facilityRecords(dataset.Facilities)
	if err != nil {
		return err
	}
	encounterRecs, err := encounterRecords(dataset.Encounters)
	if err != nil {
		return err
	}

	tables := []struct {
		name    exp.IdentifierExpression
		ddl     string
		records []goqu.Record
	}{
		{silverTable(entities.TablePatients), patientsDDL, patientRecords(dataset.Patients)},
		{silverTable(entities.TableFacilities), facilitiesDDL, facilityRecs},
		{silverTable(entities.TableProviders), providersDDL, providerRecords(dataset.Providers)},
		{bronzeTable(entities.TableEncounters), encountersDDL, encounterRecs},
		{bronzeTable(entities.TableLabResults), labResultsDDL, labResultRecords(dataset.LabResults)},
		{bronzeTable(entities.TableImagingStudies), imagingStudiesDDL, imagingStudyRecords(dataset.ImagingStudies)},
		{bronzeTable(entities.TableMedications), medicationsDDL, medicationRecords(dataset.Medications)},
	}

	for _, table := range tables {
		if _, err := a.client.DB().ExecContext(ctx, table.ddl); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to create table %s", table.name.GetTable()), err)
		}
		if err := a.insertRows(ctx, table.name, table.records); err != nil {
			return err
		}
	}

	return nil
}

// insertRows writes records in chunks so large populations do not
// exceed statement limits.
func (a *WarehouseAdapter) insertRows(ctx context.Context, table exp.IdentifierExpression, records []goqu.Record) error {
	for start := 0; start < len(records); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(records) {
			end = len(records)
		}

		rows := make([]interface{}, 0, end-start)
		for _, record := range records[start:end] {
			rows = append(rows, record)
		}

		query, args, err := a.db.Insert(table).Rows(rows...).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build insert query", err)
		}
		if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError(fmt.Sprintf("failed to insert into %s", table.GetTable()), err)
		}
	}
	return nil
}

func bronzeTable(name string) exp.IdentifierExpression {
	return goqu.S(bronzeSchema).Table(name)
}

func silverTable(name string) exp.IdentifierExpression {
	return goqu.S(silverSchema).Table(name)
}

func patientRecords(patients []entities.Patient) []goqu.Record {
	records := make([]goqu.Record, 0, len(patients))
	for _, p := range patients {
		records = append(records, goqu.Record{
			"patient_id":            p.PatientID,
			"medical_record_number": p.MedicalRecordNumber,
			"date_of_birth":         p.DateOfBirth,
			"gender":                p.Gender,
			"race":                  p.Race,
			"ethnicity":             p.Ethnicity,
			"primary_language":      p.PrimaryLanguage,
			"insurance_type":        p.InsuranceType,
			"zip_code":              p.ZipCode,
		})
	}
	return records
}

func facilityRecords(facilities []entities.Facility) ([]goqu.Record, error) {
	records := make([]goqu.Record, 0, len(facilities))
	for _, f := range facilities {
		specialties, err := json.Marshal(f.Specialties)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode specialties of %s", f.FacilityID), err)
		}
		records = append(records, goqu.Record{
			"facility_id":    f.FacilityID,
			"facility_name":  f.FacilityName,
			"facility_type":  f.FacilityType,
			"city":           f.City,
			"region":         f.Region,
			"bed_count":      f.BedCount,
			"quality_rating": f.QualityRating,
			"address_line1":  f.AddressLine1,
			"zip_code":       f.ZipCode,
			"specialties":    string(specialties),
		})
	}
	return records, nil
}

func providerRecords(providerRows []entities.Provider) []goqu.Record {
	records := make([]goqu.Record, 0, len(providerRows))
	for _, p := range providerRows {
		records = append(records, goqu.Record{
			"provider_id":        p.ProviderID,
			"provider_name":      p.ProviderName,
			"specialty":          p.Specialty,
			"facility_id":        p.FacilityID,
			"years_experience":   p.YearsExperience,
			"license_number":     p.LicenseNumber,
			"patient_volume_avg": p.PatientVolumeAvg,
			"quality_rating":     p.QualityRating,
		})
	}
	return records
}

// encounterRecords serializes the structured clinical payload to JSON
// at this boundary only.
func encounterRecords(encounters []entities.Encounter) ([]goqu.Record, error) {
	records := make([]goqu.Record, 0, len(encounters))
	for _, e := range encounters {
		detail, err := json.Marshal(e.Detail)
		if err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to encode clinical detail of %s", e.EncounterID), err)
		}
		records = append(records, goqu.Record{
			"encounter_id":          e.EncounterID,
			"patient_id":            e.PatientID,
			"encounter_date":        e.EncounterDate,
			"encounter_type":        e.EncounterType,
			"facility_id":           e.FacilityID,
			"provider_id":           e.ProviderID,
			"admission_source":      e.AdmissionSource,
			"discharge_disposition": e.DischargeDisposition,
			"clinical_detail":       string(detail),
		})
	}
	return records, nil
}

func labResultRecords(results []entities.LabResult) []goqu.Record {
	records := make([]goqu.Record, 0, len(results))
	for _, r := range results {
		records = append(records, goqu.Record{
			"lab_result_id":   r.LabResultID,
			"patient_id":      r.PatientID,
			"encounter_id":    r.EncounterID,
			"test_code":       r.TestCode,
			"test_name":       r.TestName,
			"result_value":    r.ResultValue,
			"reference_range": r.ReferenceRange,
			"result_date":     r.ResultDate,
			"lab_facility":    r.LabFacility,
		})
	}
	return records
}

func imagingStudyRecords(studies []entities.ImagingStudy) []goqu.Record {
	records := make([]goqu.Record, 0, len(studies))
	for _, s := range studies {
		records = append(records, goqu.Record{
			"study_id":          s.StudyID,
			"patient_id":        s.PatientID,
			"encounter_id":      s.EncounterID,
			"modality":          s.Modality,
			"study_description": s.StudyDescription,
			"study_date":        s.StudyDate,
			"radiologist_id":    s.RadiologistID,
			"findings":          s.Findings,
		})
	}
	return records
}

func medicationRecords(meds []entities.Medication) []goqu.Record {
	records := make([]goqu.Record, 0, len(meds))
	for _, m := range meds {
		records = append(records, goqu.Record{
			"medication_id":   m.MedicationID,
			"patient_id":      m.PatientID,
			"encounter_id":    m.EncounterID,
			"medication_name": m.MedicationName,
			"dosage":          m.Dosage,
			"frequency":       m.Frequency,
			"start_date":      m.StartDate,
			"end_date":        m.EndDate,
			"prescriber_id":   m.PrescriberID,
		})
	}
	return records
}
