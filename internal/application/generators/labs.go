package generators

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Fixed parameters of the lab result model: mostly normal results,
// occasionally abnormal high or low, never absurd.
const (
	meanLabsPerEncounter = 2.0
	normalResultProb     = 0.8
	belowRangeSpan       = 0.5 // lower bound of an abnormal-low draw, as a fraction of NormalLow
	aboveRangeSpan       = 1.5 // upper bound of an abnormal-high draw, as a multiple of NormalHigh

	labResultMinDelayHours = 1
	labResultMaxDelayHours = 24
)

// LabResultGenerator fans each encounter out into one or more lab
// results with distribution-driven values.
type LabResultGenerator struct {
	r         *rand.Rand
	testCount distuv.Poisson
}

// NewLabResultGenerator derives the lab random stream from the master
// seed.
func NewLabResultGenerator(seed int64) *LabResultGenerator {
	r, _ := newStream(seed, streamLabResults)
	src := rand.NewPCG(streamSeed(seed, streamLabResults), uint64(seed)+1)
	return &LabResultGenerator{
		r:         r,
		testCount: distuv.Poisson{Lambda: meanLabsPerEncounter, Src: src},
	}
}

// Generate produces the lab result table. Each encounter receives
// Poisson(mean)+1 results, so the count is never zero.
func (g *LabResultGenerator) Generate(encounters []entities.Encounter) []entities.LabResult {
	results := make([]entities.LabResult, 0, len(encounters))
	for _, enc := range encounters {
		count := int(g.testCount.Rand()) + 1
		for i := 0; i < count; i++ {
			test := pick(g.r, catalogs.LabTests)
			delay := time.Duration(labResultMinDelayHours+g.r.IntN(labResultMaxDelayHours)) * time.Hour
			results = append(results, entities.LabResult{
				LabResultID:    fmt.Sprintf("LAB%08d", len(results)+1),
				PatientID:      enc.PatientID,
				EncounterID:    enc.EncounterID,
				TestCode:       test.Code,
				TestName:       test.Name,
				ResultValue:    g.resultValue(test),
				ReferenceRange: ReferenceRangeLabel(test),
				ResultDate:     enc.EncounterDate.Add(delay),
				LabFacility:    pick(g.r, catalogs.PerformingLabs),
			})
		}
	}
	return results
}

// resultValue draws within the normal range with probability 0.8, and
// otherwise equally below it (down to half the lower bound) or above
// it (up to 1.5x the upper bound).
func (g *LabResultGenerator) resultValue(test entities.LabTest) float64 {
	var low, high float64
	switch {
	case g.r.Float64() < normalResultProb:
		low, high = test.NormalLow, test.NormalHigh
	case g.r.Float64() < 0.5:
		low, high = test.NormalLow*belowRangeSpan, test.NormalLow
	default:
		low, high = test.NormalHigh, test.NormalHigh*aboveRangeSpan
	}
	return math.Round((low+g.r.Float64()*(high-low))*100) / 100
}

// ReferenceRangeLabel renders the test's normal bounds the way they
// are reported alongside each result.
func ReferenceRangeLabel(test entities.LabTest) string {
	return fmt.Sprintf("%s-%s %s",
		strconv.FormatFloat(test.NormalLow, 'f', -1, 64),
		strconv.FormatFloat(test.NormalHigh, 'f', -1, 64),
		test.Unit,
	)
}
