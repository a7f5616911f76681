package generators

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Fixed parameters of the encounter model. Only the mean
// encounters-per-patient is exposed through configuration.
const (
	encounterWindowYears = 2

	inpatientLOSShape      = 2.0
	inpatientLOSScaleHours = 24.0
	emergencyLOSMeanHours  = 4.0
	ambulatoryLOSMinHours  = 0.5
	ambulatoryLOSMaxHours  = 3.0

	costPerDayFactor = 0.5
	costJitterLow    = 0.7
	costJitterHigh   = 1.8

	meanProceduresPerEncounter = 2.0
	maxAdditionalDiagnoses     = 2

	hoursPerDay = 24.0

	systolicMin    = 90
	systolicMax    = 180
	diastolicMin   = 60
	diastolicMax   = 120
	heartRateMin   = 60
	heartRateMax   = 120
	temperatureMin = 96.5
	temperatureMax = 102.0
	oxygenSatMin   = 92
	oxygenSatMax   = 100
)

// baseCostByType is the per-type cost before the length-of-stay
// multiplier and jitter are applied.
var baseCostByType = map[string]float64{
	entities.EncounterTypeInpatient:   5000,
	entities.EncounterTypeEmergency:   1500,
	entities.EncounterTypeOutpatient:  300,
	entities.EncounterTypeObservation: 2000,
	entities.EncounterTypeAmbulatory:  250,
}

// EncounterGenerator fans each patient out into a variable number of
// encounters with derived length-of-stay, cost and clinical payload.
type EncounterGenerator struct {
	r   *rand.Rand
	now time.Time

	countPerPatient distuv.Poisson
	inpatientLOS    distuv.Gamma
	emergencyLOS    distuv.Exponential
	ambulatoryLOS   distuv.Uniform
	procedureCount  distuv.Poisson
}

// NewEncounterGenerator derives the encounter random stream from the
// master seed. meanPerPatient is the Poisson mean for encounter counts.
func NewEncounterGenerator(seed int64, meanPerPatient float64, now time.Time) *EncounterGenerator {
	r, _ := newStream(seed, streamEncounters)
	src := rand.NewPCG(streamSeed(seed, streamEncounters), uint64(seed)+1)
	return &EncounterGenerator{
		r:               r,
		now:             now,
		countPerPatient: distuv.Poisson{Lambda: meanPerPatient, Src: src},
		inpatientLOS:    distuv.Gamma{Alpha: inpatientLOSShape, Beta: 1 / inpatientLOSScaleHours, Src: src},
		emergencyLOS:    distuv.Exponential{Rate: 1 / emergencyLOSMeanHours, Src: src},
		ambulatoryLOS:   distuv.Uniform{Min: ambulatoryLOSMinHours, Max: ambulatoryLOSMaxHours, Src: src},
		procedureCount:  distuv.Poisson{Lambda: meanProceduresPerEncounter, Src: src},
	}
}

// Generate produces the encounter table. Every patient receives at
// least one encounter even when the Poisson draw is zero.
func (g *EncounterGenerator) Generate(patients []entities.Patient) []entities.Encounter {
	windowStart := g.now.AddDate(-encounterWindowYears, 0, 0)
	windowSpan := g.now.Sub(windowStart)

	encounters := make([]entities.Encounter, 0, len(patients))
	for _, patient := range patients {
		count := int(g.countPerPatient.Rand())
		if count < 1 {
			count = 1
		}

		for j := 0; j < count; j++ {
			encounterType := pick(g.r, entities.EncounterTypes)
			losHours := g.lengthOfStayHours(encounterType)
			encounters = append(encounters, entities.Encounter{
				EncounterID:          fmt.Sprintf("ENC%08d", len(encounters)+1),
				PatientID:            patient.PatientID,
				EncounterDate:        windowStart.Add(time.Duration(g.r.Float64() * float64(windowSpan))).Truncate(time.Second),
				EncounterType:        encounterType,
				FacilityID:           pick(g.r, catalogs.Facilities).FacilityID,
				ProviderID:           pick(g.r, catalogs.Providers).ProviderID,
				AdmissionSource:      pick(g.r, catalogs.AdmissionSources),
				DischargeDisposition: pick(g.r, catalogs.DischargeDispositions),
				Detail: entities.ClinicalDetail{
					DiagnosisCodes:    g.diagnosisCodes(),
					ProcedureCodes:    g.procedureCodes(),
					LengthOfStayHours: math.Round(losHours*10) / 10,
					TotalCost:         g.totalCost(encounterType, losHours),
					VitalSigns:        g.vitalSigns(),
					Complications:     g.complications(),
				},
			})
		}
	}
	return encounters
}

// lengthOfStayHours draws from a per-type distribution family:
// inpatient stays are long-tailed, emergency visits cluster around a
// short mean with occasional outliers, everything else is bounded.
func (g *EncounterGenerator) lengthOfStayHours(encounterType string) float64 {
	switch encounterType {
	case entities.EncounterTypeInpatient:
		return g.inpatientLOS.Rand()
	case entities.EncounterTypeEmergency:
		return g.emergencyLOS.Rand()
	default:
		return g.ambulatoryLOS.Rand()
	}
}

// totalCost couples cost to length-of-stay, then jitters it so the
// relationship is recoverable statistically rather than exactly.
func (g *EncounterGenerator) totalCost(encounterType string, losHours float64) float64 {
	multiplier := 1 + (losHours/hoursPerDay)*costPerDayFactor
	jitter := costJitterLow + g.r.Float64()*(costJitterHigh-costJitterLow)
	return math.Round(baseCostByType[encounterType]*multiplier*jitter*100) / 100
}

// diagnosisCodes selects one primary diagnosis plus 0-2 additional
// codes sampled without replacement among themselves. Duplicates with
// the primary are permitted.
func (g *EncounterGenerator) diagnosisCodes() []string {
	codes := []string{pick(g.r, catalogs.DiagnosisCodes)}
	additional := g.r.IntN(maxAdditionalDiagnoses + 1)
	return append(codes, sampleWithoutReplacement(g.r, catalogs.DiagnosisCodes, additional)...)
}

func (g *EncounterGenerator) procedureCodes() []string {
	count := int(g.procedureCount.Rand()) + 1
	return sampleWithoutReplacement(g.r, catalogs.ProcedureCodes, count)
}

// vitalSigns samples each vital independently within clinically
// bounded ranges.
func (g *EncounterGenerator) vitalSigns() entities.VitalSigns {
	return entities.VitalSigns{
		BloodPressureSystolic:  systolicMin + g.r.IntN(systolicMax-systolicMin+1),
		BloodPressureDiastolic: diastolicMin + g.r.IntN(diastolicMax-diastolicMin+1),
		HeartRate:              heartRateMin + g.r.IntN(heartRateMax-heartRateMin+1),
		Temperature:            math.Round((temperatureMin+g.r.Float64()*(temperatureMax-temperatureMin))*10) / 10,
		OxygenSaturation:       oxygenSatMin + g.r.IntN(oxygenSatMax-oxygenSatMin+1),
	}
}

// complications draws one option from the fixed mutually exclusive
// set; it is not correlated with diagnosis or length-of-stay.
func (g *EncounterGenerator) complications() []string {
	option := pick(g.r, catalogs.ComplicationOptions)
	return append(make([]string, 0, len(option)), option...)
}
