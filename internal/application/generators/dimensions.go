package generators

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Fixed parameters of the dimension enrichment model.
const (
	facilityRatingMin = 3.5
	facilityRatingMax = 5.0
	providerRatingMin = 3.8
	providerRatingMax = 5.0

	meanPatientVolume = 50.0

	minFacilitySpecialties = 2
	maxFacilitySpecialties = 4

	licenseNumberMin = 100000
	licenseNumberMax = 999999
)

// DimensionGenerator enriches the compiled-in facility and provider
// catalogs with the attributes only the silver dimension carries:
// quality ratings, addresses, service lines, licenses and patient
// volumes. Catalogs themselves stay untouched; enrichment applies to
// per-run copies.
type DimensionGenerator struct {
	r      *rand.Rand
	faker  *gofakeit.Faker
	volume distuv.Poisson
}

// NewDimensionGenerator derives the dimension random stream from the
// master seed.
func NewDimensionGenerator(seed int64) *DimensionGenerator {
	r, faker := newStream(seed, streamDimensions)
	src := rand.NewPCG(streamSeed(seed, streamDimensions), uint64(seed)+1)
	return &DimensionGenerator{
		r:      r,
		faker:  faker,
		volume: distuv.Poisson{Lambda: meanPatientVolume, Src: src},
	}
}

// Facilities returns the facility dimension with enrichment applied.
func (g *DimensionGenerator) Facilities() []entities.Facility {
	facilities := append([]entities.Facility(nil), catalogs.Facilities...)
	for i := range facilities {
		facilities[i].QualityRating = g.rating(facilityRatingMin, facilityRatingMax)
		facilities[i].AddressLine1 = g.faker.Street()
		facilities[i].ZipCode = g.faker.Zip()
		count := minFacilitySpecialties + g.r.IntN(maxFacilitySpecialties-minFacilitySpecialties+1)
		facilities[i].Specialties = sampleWithoutReplacement(g.r, catalogs.FacilitySpecialties, count)
	}
	return facilities
}

// Providers returns the provider dimension with enrichment applied.
func (g *DimensionGenerator) Providers() []entities.Provider {
	clinicians := append([]entities.Provider(nil), catalogs.Providers...)
	for i := range clinicians {
		clinicians[i].LicenseNumber = fmt.Sprintf("LIC%06d", licenseNumberMin+g.r.IntN(licenseNumberMax-licenseNumberMin+1))
		clinicians[i].PatientVolumeAvg = int(g.volume.Rand())
		clinicians[i].QualityRating = g.rating(providerRatingMin, providerRatingMax)
	}
	return clinicians
}

func (g *DimensionGenerator) rating(min, max float64) float64 {
	return math.Round((min+g.r.Float64()*(max-min))*10) / 10
}
