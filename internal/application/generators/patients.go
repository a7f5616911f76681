package generators

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Adult age window for generated dates of birth.
const (
	minPatientAgeYears = 18
	maxPatientAgeYears = 95
)

// PatientGenerator produces the patient population, the root table
// every other generator references.
type PatientGenerator struct {
	r     *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

// NewPatientGenerator derives the patient random stream from the
// master seed. now anchors the age window.
func NewPatientGenerator(seed int64, now time.Time) *PatientGenerator {
	r, faker := newStream(seed, streamPatients)
	return &PatientGenerator{r: r, faker: faker, now: now}
}

// Generate returns exactly n patient records with sequential ids and a
// parallel medical-record-number sharing the sequence number. Patients
// are independent; output ordering is insertion order.
func (g *PatientGenerator) Generate(n int) []entities.Patient {
	dobLow := g.now.AddDate(-maxPatientAgeYears, 0, 0)
	dobHigh := g.now.AddDate(-minPatientAgeYears, 0, 0)

	patients := make([]entities.Patient, 0, n)
	for i := 0; i < n; i++ {
		patients = append(patients, entities.Patient{
			PatientID:           fmt.Sprintf("PAT%06d", i+1),
			MedicalRecordNumber: fmt.Sprintf("MRN%06d", i+1),
			DateOfBirth:         g.faker.DateRange(dobLow, dobHigh).Truncate(24 * time.Hour),
			Gender:              pick(g.r, catalogs.Genders),
			Race:                pick(g.r, catalogs.Races),
			Ethnicity:           pick(g.r, catalogs.Ethnicities),
			PrimaryLanguage:     pick(g.r, catalogs.PrimaryLanguages),
			InsuranceType:       pick(g.r, catalogs.InsuranceTypes),
			ZipCode:             g.faker.Zip(),
		})
	}
	return patients
}
