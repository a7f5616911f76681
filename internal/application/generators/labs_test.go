package generators_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/synthgen/internal/application/generators"
	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

func generateEncounters(t *testing.T, patientCount int) []entities.Encounter {
	t.Helper()
	patients := generators.NewPatientGenerator(42, fixedNow).Generate(patientCount)
	encounters := generators.NewEncounterGenerator(42, 3, fixedNow).Generate(patients)
	require.NotEmpty(t, encounters)
	return encounters
}

func labTestByCode(t *testing.T, code string) entities.LabTest {
	t.Helper()
	for _, def := range catalogs.LabTests {
		if def.Code == code {
			return def
		}
	}
	t.Fatalf("unknown lab test code %s", code)
	return entities.LabTest{}
}

func TestLabResultGenerator_AtLeastOneResultPerEncounter(t *testing.T) {
	encounters := generateEncounters(t, 100)
	results := generators.NewLabResultGenerator(42).Generate(encounters)

	perEncounter := make(map[string]int)
	for _, r := range results {
		perEncounter[r.EncounterID]++
	}
	for _, enc := range encounters {
		assert.GreaterOrEqual(t, perEncounter[enc.EncounterID], 1,
			"encounter %s has no lab results", enc.EncounterID)
	}
}

func TestLabResultGenerator_ValuesWithinAbsoluteBounds(t *testing.T) {
	encounters := generateEncounters(t, 200)
	results := generators.NewLabResultGenerator(42).Generate(encounters)

	for _, r := range results {
		def := labTestByCode(t, r.TestCode)
		assert.GreaterOrEqual(t, r.ResultValue, def.NormalLow*0.5-1e-9,
			"result %s below half the lower bound", r.LabResultID)
		assert.LessOrEqual(t, r.ResultValue, def.NormalHigh*1.5+1e-9,
			"result %s above 1.5x the upper bound", r.LabResultID)
	}
}

func TestLabResultGenerator_MostResultsAreNormal(t *testing.T) {
	encounters := generateEncounters(t, 500)
	results := generators.NewLabResultGenerator(42).Generate(encounters)
	require.Greater(t, len(results), 1000)

	normal := 0
	for _, r := range results {
		def := labTestByCode(t, r.TestCode)
		if r.ResultValue >= def.NormalLow && r.ResultValue <= def.NormalHigh {
			normal++
		}
	}
	assert.InDelta(t, 0.8, float64(normal)/float64(len(results)), 0.05)
}

func TestLabResultGenerator_ReferenceRangeEmbedsTestBounds(t *testing.T) {
	encounters := generateEncounters(t, 50)
	results := generators.NewLabResultGenerator(42).Generate(encounters)

	for _, r := range results {
		def := labTestByCode(t, r.TestCode)
		assert.Equal(t, generators.ReferenceRangeLabel(def), r.ReferenceRange)
	}
}

func TestLabResultGenerator_ResultDateFollowsEncounter(t *testing.T) {
	encounters := generateEncounters(t, 100)
	results := generators.NewLabResultGenerator(42).Generate(encounters)

	encounterDates := make(map[string]time.Time, len(encounters))
	for _, enc := range encounters {
		encounterDates[enc.EncounterID] = enc.EncounterDate
	}

	for _, r := range results {
		delay := r.ResultDate.Sub(encounterDates[r.EncounterID])
		assert.GreaterOrEqual(t, delay, time.Hour, "result %s reported too early", r.LabResultID)
		assert.LessOrEqual(t, delay, 24*time.Hour, "result %s reported too late", r.LabResultID)
	}
}

func TestLabResultGenerator_SequentialIDs(t *testing.T) {
	encounters := generateEncounters(t, 50)
	results := generators.NewLabResultGenerator(42).Generate(encounters)

	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("LAB%08d", i+1), r.LabResultID)
	}
}

func TestLabResultGenerator_EmptyInput(t *testing.T) {
	results := generators.NewLabResultGenerator(42).Generate(nil)

	assert.Empty(t, results)
}

func TestLabResultGenerator_Deterministic(t *testing.T) {
	encounters := generateEncounters(t, 100)

	first := generators.NewLabResultGenerator(42).Generate(encounters)
	second := generators.NewLabResultGenerator(42).Generate(encounters)

	assert.Equal(t, first, second)
}
