package generators_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/synthgen/internal/application/generators"
	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
	apperrors "github.com/careloop/synthgen/pkg/errors"
)

func newTestEngine(t *testing.T, cfg generators.Config) *generators.Engine {
	t.Helper()
	engine, err := generators.New(cfg)
	require.NoError(t, err)
	return engine
}

func TestEngine_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  generators.Config
	}{
		{"zero population", generators.Config{PopulationSize: 0, MeanEncountersPerPatient: 3, ImagingFraction: 0.4}},
		{"negative population", generators.Config{PopulationSize: -5, MeanEncountersPerPatient: 3, ImagingFraction: 0.4}},
		{"zero mean encounters", generators.Config{PopulationSize: 10, MeanEncountersPerPatient: 0, ImagingFraction: 0.4}},
		{"negative imaging fraction", generators.Config{PopulationSize: 10, MeanEncountersPerPatient: 3, ImagingFraction: -0.1}},
		{"imaging fraction above one", generators.Config{PopulationSize: 10, MeanEncountersPerPatient: 3, ImagingFraction: 1.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generators.New(tc.cfg)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestEngine_GenerateProducesConsistentDataset(t *testing.T) {
	engine := newTestEngine(t, generators.Config{
		PopulationSize:           200,
		MeanEncountersPerPatient: 3,
		Seed:                     42,
		ImagingFraction:          0.4,
		Now:                      fixedNow,
	})

	dataset, err := engine.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, dataset.Patients, 200)
	require.NotEmpty(t, dataset.Encounters)
	require.NotEmpty(t, dataset.LabResults)
	require.NotEmpty(t, dataset.ImagingStudies)
	require.NotEmpty(t, dataset.Medications)
	assert.Len(t, dataset.Facilities, len(catalogs.Facilities))
	assert.Len(t, dataset.Providers, len(catalogs.Providers))

	for _, f := range dataset.Facilities {
		assert.Positive(t, f.QualityRating, "facility %s missing enrichment", f.FacilityID)
		assert.NotEmpty(t, f.Specialties, "facility %s missing specialties", f.FacilityID)
	}
	for _, p := range dataset.Providers {
		assert.NotEmpty(t, p.LicenseNumber, "provider %s missing enrichment", p.ProviderID)
	}

	patientIDs := make(map[string]bool, len(dataset.Patients))
	for _, p := range dataset.Patients {
		patientIDs[p.PatientID] = true
	}
	encounterIDs := make(map[string]bool, len(dataset.Encounters))
	for _, enc := range dataset.Encounters {
		assert.True(t, patientIDs[enc.PatientID], "encounter %s references unknown patient", enc.EncounterID)
		encounterIDs[enc.EncounterID] = true
	}
	for _, r := range dataset.LabResults {
		assert.True(t, encounterIDs[r.EncounterID], "lab result %s references unknown encounter", r.LabResultID)
		assert.True(t, patientIDs[r.PatientID], "lab result %s references unknown patient", r.LabResultID)
	}
	for _, s := range dataset.ImagingStudies {
		assert.True(t, encounterIDs[s.EncounterID], "imaging study %s references unknown encounter", s.StudyID)
		assert.True(t, patientIDs[s.PatientID], "imaging study %s references unknown patient", s.StudyID)
	}
	for _, m := range dataset.Medications {
		assert.True(t, encounterIDs[m.EncounterID], "medication %s references unknown encounter", m.MedicationID)
		assert.True(t, patientIDs[m.PatientID], "medication %s references unknown patient", m.MedicationID)
	}
}

func TestEngine_SinglePatientRun(t *testing.T) {
	engine := newTestEngine(t, generators.Config{
		PopulationSize:           1,
		MeanEncountersPerPatient: 1,
		Seed:                     42,
		ImagingFraction:          0.4,
		Now:                      fixedNow,
	})

	dataset, err := engine.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, dataset.Patients, 1)
	assert.Equal(t, "PAT000001", dataset.Patients[0].PatientID)

	require.NotEmpty(t, dataset.Encounters)
	for _, enc := range dataset.Encounters {
		assert.Equal(t, "PAT000001", enc.PatientID)
		assert.Contains(t, entities.EncounterTypes, enc.EncounterType)
		assert.Positive(t, enc.Detail.TotalCost)
	}

	require.NotEmpty(t, dataset.LabResults)
	for _, r := range dataset.LabResults {
		assert.Contains(t, r.ReferenceRange, "-")
	}
	require.NotEmpty(t, dataset.Medications)
}

func TestEngine_GenerateIsReproducible(t *testing.T) {
	cfg := generators.Config{
		PopulationSize:           150,
		MeanEncountersPerPatient: 3,
		Seed:                     42,
		ImagingFraction:          0.4,
		Now:                      fixedNow,
	}

	first, err := newTestEngine(t, cfg).Generate(context.Background())
	require.NoError(t, err)
	second, err := newTestEngine(t, cfg).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_GenerateHonorsContextCancellation(t *testing.T) {
	engine := newTestEngine(t, generators.Config{
		PopulationSize:           10,
		MeanEncountersPerPatient: 3,
		Seed:                     42,
		ImagingFraction:          0.4,
		Now:                      fixedNow,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataset_Summarize(t *testing.T) {
	engine := newTestEngine(t, generators.Config{
		PopulationSize:           50,
		MeanEncountersPerPatient: 3,
		Seed:                     42,
		ImagingFraction:          0.4,
		Now:                      fixedNow,
	})

	dataset, err := engine.Generate(context.Background())
	require.NoError(t, err)

	summary := dataset.Summarize()

	assert.Equal(t, len(dataset.Patients), summary.RowCounts[entities.TablePatients])
	assert.Equal(t, len(dataset.Encounters), summary.RowCounts[entities.TableEncounters])
	assert.Equal(t, len(dataset.LabResults), summary.RowCounts[entities.TableLabResults])
	assert.Equal(t, len(dataset.ImagingStudies), summary.RowCounts[entities.TableImagingStudies])
	assert.Equal(t, len(dataset.Medications), summary.RowCounts[entities.TableMedications])
	assert.Equal(t, len(dataset.Facilities), summary.RowCounts[entities.TableFacilities])
	assert.Equal(t, len(dataset.Providers), summary.RowCounts[entities.TableProviders])

	assert.False(t, summary.EncounterDateStart.IsZero())
	assert.False(t, summary.EncounterDateEnd.Before(summary.EncounterDateStart))
	for _, enc := range dataset.Encounters {
		assert.False(t, enc.EncounterDate.Before(summary.EncounterDateStart))
		assert.False(t, enc.EncounterDate.After(summary.EncounterDateEnd))
	}
}
