package generators

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/careloop/synthgen/internal/domain/catalogs"
	"github.com/careloop/synthgen/internal/domain/entities"
)

// Fixed parameters of the imaging model. The sampling fraction is the
// one knob exposed through configuration.
const (
	imagingMaxDelayHours = 48
	radiologistPoolSize  = 10
)

// ImagingStudyGenerator attaches one study to an independently sampled
// subset of encounters. Encounters not selected produce no rows.
type ImagingStudyGenerator struct {
	r        *rand.Rand
	fraction float64
}

// NewImagingStudyGenerator derives the imaging random stream from the
// master seed. fraction is the per-encounter selection probability.
func NewImagingStudyGenerator(seed int64, fraction float64) *ImagingStudyGenerator {
	r, _ := newStream(seed, streamImaging)
	return &ImagingStudyGenerator{r: r, fraction: fraction}
}

// Generate produces the imaging study table by Bernoulli-sampling each
// encounter at the configured fraction.
func (g *ImagingStudyGenerator) Generate(encounters []entities.Encounter) []entities.ImagingStudy {
	studies := make([]entities.ImagingStudy, 0, int(float64(len(encounters))*g.fraction)+1)
	for _, enc := range encounters {
		if g.r.Float64() >= g.fraction {
			continue
		}
		delay := time.Duration(g.r.IntN(imagingMaxDelayHours+1)) * time.Hour
		studies = append(studies, entities.ImagingStudy{
			StudyID:          fmt.Sprintf("IMG%08d", len(studies)+1),
			PatientID:        enc.PatientID,
			EncounterID:      enc.EncounterID,
			Modality:         pick(g.r, catalogs.ImagingModalities).Code,
			StudyDescription: pick(g.r, catalogs.StudyDescriptions),
			StudyDate:        enc.EncounterDate.Add(delay),
			RadiologistID:    fmt.Sprintf("RAD%03d", 1+g.r.IntN(radiologistPoolSize)),
			Findings:         pick(g.r, catalogs.FindingsTemplates),
		})
	}
	return studies
}
