package generators_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/synthgen/internal/application/generators"
	"github.com/careloop/synthgen/internal/domain/catalogs"
)

func TestDimensionGenerator_FacilityEnrichment(t *testing.T) {
	facilities := generators.NewDimensionGenerator(42).Facilities()
	require.Len(t, facilities, len(catalogs.Facilities))

	for i, f := range facilities {
		assert.Equal(t, catalogs.Facilities[i].FacilityID, f.FacilityID)
		assert.Equal(t, catalogs.Facilities[i].BedCount, f.BedCount)

		assert.GreaterOrEqual(t, f.QualityRating, 3.5)
		assert.LessOrEqual(t, f.QualityRating, 5.0)
		assert.Equal(t, math.Round(f.QualityRating*10)/10, f.QualityRating,
			"rating %f not rounded to one decimal", f.QualityRating)

		assert.NotEmpty(t, f.AddressLine1)
		assert.NotEmpty(t, f.ZipCode)

		assert.GreaterOrEqual(t, len(f.Specialties), 2)
		assert.LessOrEqual(t, len(f.Specialties), 4)
		seen := make(map[string]bool)
		for _, s := range f.Specialties {
			assert.Contains(t, catalogs.FacilitySpecialties, s)
			assert.False(t, seen[s], "duplicate specialty %s at %s", s, f.FacilityID)
			seen[s] = true
		}
	}
}

func TestDimensionGenerator_ProviderEnrichment(t *testing.T) {
	clinicians := generators.NewDimensionGenerator(42).Providers()
	require.Len(t, clinicians, len(catalogs.Providers))

	for i, p := range clinicians {
		assert.Equal(t, catalogs.Providers[i].ProviderID, p.ProviderID)
		assert.Equal(t, catalogs.Providers[i].Specialty, p.Specialty)

		assert.Regexp(t, `^LIC[1-9]\d{5}$`, p.LicenseNumber)
		assert.GreaterOrEqual(t, p.PatientVolumeAvg, 0)
		assert.GreaterOrEqual(t, p.QualityRating, 3.8)
		assert.LessOrEqual(t, p.QualityRating, 5.0)
		assert.Equal(t, math.Round(p.QualityRating*10)/10, p.QualityRating)
	}
}

func TestDimensionGenerator_LeavesCatalogsUntouched(t *testing.T) {
	_ = generators.NewDimensionGenerator(42).Facilities()
	_ = generators.NewDimensionGenerator(42).Providers()

	for _, f := range catalogs.Facilities {
		assert.Zero(t, f.QualityRating)
		assert.Empty(t, f.Specialties)
	}
	for _, p := range catalogs.Providers {
		assert.Empty(t, p.LicenseNumber)
	}
}

func TestDimensionGenerator_Deterministic(t *testing.T) {
	first := generators.NewDimensionGenerator(42)
	second := generators.NewDimensionGenerator(42)

	assert.Equal(t, first.Facilities(), second.Facilities())
	assert.Equal(t, first.Providers(), second.Providers())
}
