package generators

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Fixed parameters of the medication model.
const (
	meanMedsPerEncounter = 2.0
	minDurationDays      = 7
	maxDurationDays      = 90
)

// MedicationGenerator fans each encounter out into one or more
// prescriptions written by the encounter's provider.
type MedicationGenerator struct {
	r        *rand.Rand
	medCount distuv.Poisson
}

// NewMedicationGenerator derives the medication random stream from the
// master seed.
func NewMedicationGenerator(seed int64) *MedicationGenerator {
	r, _ := newStream(seed, streamMedications)
	src := rand.NewPCG(streamSeed(seed, streamMedications), uint64(seed)+1)
	return &MedicationGenerator{
		r:        r,
		medCount: distuv.Poisson{Lambda: meanMedsPerEncounter, Src: src},
	}
}

// Generate produces the medication table. Start dates carry the date
// portion of the encounter; end dates are always strictly after them.
func (g *MedicationGenerator) Generate(encounters []entities.Encounter) []entities.Medication {
	meds := make([]entities.Medication, 0, len(encounters))
	for _, enc := range encounters {
		count := int(g.medCount.Rand()) + 1
		for i := 0; i < count; i++ {
			start := dateOnly(enc.EncounterDate)
			durationDays := minDurationDays + g.r.IntN(maxDurationDays-minDurationDays+1)
			meds = append(meds, entities.Medication{
				MedicationID:   fmt.Sprintf("MED%08d", len(meds)+1),
				PatientID:      enc.PatientID,
				EncounterID:    enc.EncounterID,
				MedicationName: pick(g.r, catalogs.MedicationNames),
				Dosage:         pick(g.r, catalogs.Dosages),
				Frequency:      pick(g.r, catalogs.Frequencies),
				StartDate:      start,
				EndDate:        start.AddDate(0, 0, durationDays),
				PrescriberID:   enc.ProviderID,
			})
		}
	}
	return meds
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
