package generators

import (
	"context"
	"sync"
	"time"

	"github.com/careloop/synthgen/internal/domain/entities"
	"github.com/careloop/synthgen/internal/infrastructure/observability"
	apperrors "github.com/careloop/synthgen/pkg/errors"
)

// Config is the tunable surface of the generation model. Everything
// not listed here is a fixed named constant of the model.
type Config struct {
	PopulationSize           int
	MeanEncountersPerPatient float64
	Seed                     int64
	ImagingFraction          float64

	// Now anchors the trailing encounter window and the patient age
	// window. Zero means time.Now() at engine construction.
	Now time.Time
}

// Validate rejects configurations that cannot produce a dataset.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return apperrors.NewValidationError("population size must be a positive integer")
	}
	if c.MeanEncountersPerPatient <= 0 {
		return apperrors.NewValidationError("mean encounters per patient must be positive")
	}
	if c.ImagingFraction < 0 || c.ImagingFraction > 1 {
		return apperrors.NewValidationError("imaging fraction must lie within [0, 1]")
	}
	return nil
}

// Engine orchestrates the generators in dependency order: patients,
// then encounters, then the three derived-record generators. Each
// component owns an independently derived random stream, so the
// derived generators can run concurrently without breaking
// reproducibility.
type Engine struct {
	cfg     Config
	metrics *observability.Metrics
}

// New builds an engine, failing fast on an invalid configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return &Engine{cfg: cfg}, nil
}

// WithMetrics attaches run metrics recording to the engine.
func (e *Engine) WithMetrics(m *observability.Metrics) *Engine {
	e.metrics = m
	return e
}

// Generate runs a full single pass and returns the assembled dataset.
// The dataset is immutable once returned; sinks operate on it without
// the engine regenerating.
func (e *Engine) Generate(ctx context.Context) (*entities.Dataset, error) {
	logger := observability.GetLogger()
	started := time.Now()

	logger.Info().
		Int("population_size", e.cfg.PopulationSize).
		Float64("mean_encounters", e.cfg.MeanEncountersPerPatient).
		Int64("seed", e.cfg.Seed).
		Float64("imaging_fraction", e.cfg.ImagingFraction).
		Msg("starting dataset generation")

	patients := NewPatientGenerator(e.cfg.Seed, e.cfg.Now).Generate(e.cfg.PopulationSize)
	encounters := NewEncounterGenerator(e.cfg.Seed, e.cfg.MeanEncountersPerPatient, e.cfg.Now).Generate(patients)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dims := NewDimensionGenerator(e.cfg.Seed)
	dataset := &entities.Dataset{
		Patients:   patients,
		Encounters: encounters,
		Facilities: dims.Facilities(),
		Providers:  dims.Providers(),
	}

	// The derived generators have no data dependency on each other and
	// each owns its own stream, so order of completion is irrelevant.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		dataset.LabResults = NewLabResultGenerator(e.cfg.Seed).Generate(encounters)
	}()
	go func() {
		defer wg.Done()
		dataset.ImagingStudies = NewImagingStudyGenerator(e.cfg.Seed, e.cfg.ImagingFraction).Generate(encounters)
	}()
	go func() {
		defer wg.Done()
		dataset.Medications = NewMedicationGenerator(e.cfg.Seed).Generate(encounters)
	}()
	wg.Wait()

	summary := dataset.Summarize()
	elapsed := time.Since(started)
	if e.metrics != nil {
		e.metrics.RecordRun(ctx, summary, elapsed)
	}

	logger.Info().
		Interface("row_counts", summary.RowCounts).
		Time("encounter_date_start", summary.EncounterDateStart).
		Time("encounter_date_end", summary.EncounterDateEnd).
		Dur("elapsed", elapsed).
		Msg("dataset generation complete")

	return dataset, nil
}
