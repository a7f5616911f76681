package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/synthgen/internal/adapters/csvfile"
	"github.com/careloop/synthgen/internal/adapters/database"
	"github.com/careloop/synthgen/internal/adapters/events"
	"github.com/careloop/synthgen/internal/application/generators"
	"github.com/careloop/synthgen/internal/domain/entities"
	"github.com/careloop/synthgen/internal/domain/providers"
	"github.com/careloop/synthgen/internal/infrastructure/clients/postgres"
	redisclient "github.com/careloop/synthgen/internal/infrastructure/clients/redis"
	"github.com/careloop/synthgen/internal/infrastructure/observability"
	"github.com/careloop/synthgen/pkg/config"
	"github.com/careloop/synthgen/pkg/retry"
)

type namedSink struct {
	name string
	sink providers.DatasetSink
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	flag.IntVar(&cfg.Generator.PopulationSize, "population", cfg.Generator.PopulationSize, "number of patients to generate")
	flag.Float64Var(&cfg.Generator.MeanEncountersPerPatient, "mean-encounters", cfg.Generator.MeanEncountersPerPatient, "mean encounters per patient")
	flag.Int64Var(&cfg.Generator.Seed, "seed", cfg.Generator.Seed, "master random seed")
	flag.Float64Var(&cfg.Generator.ImagingFraction, "imaging-fraction", cfg.Generator.ImagingFraction, "fraction of encounters receiving an imaging study")
	flag.StringVar(&cfg.Output.Directory, "out", cfg.Output.Directory, "CSV output directory")
	flag.BoolVar(&cfg.Output.WriteCSV, "csv", cfg.Output.WriteCSV, "write one CSV file per table")
	flag.BoolVar(&cfg.Output.WriteWarehouse, "warehouse", cfg.Output.WriteWarehouse, "write tables to the PostgreSQL warehouse")
	flag.BoolVar(&cfg.Output.Announce, "announce", cfg.Output.Announce, "publish a run event on Redis after emission")
	flag.Parse()

	observability.InitLogger(cfg.App.Name, cfg.App.Env)
	logger := observability.GetLogger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := generators.New(generators.Config{
		PopulationSize:           cfg.Generator.PopulationSize,
		MeanEncountersPerPatient: cfg.Generator.MeanEncountersPerPatient,
		Seed:                     cfg.Generator.Seed,
		ImagingFraction:          cfg.Generator.ImagingFraction,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid generator configuration")
	}

	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("OpenTelemetry setup failed, continuing without metrics")
		} else {
			defer shutdown(context.Background())
			if metrics, err := observability.InitMetrics(); err != nil {
				logger.Warn().Err(err).Msg("metrics initialization failed")
			} else {
				engine.WithMetrics(metrics)
			}
		}
	}

	dataset, err := engine.Generate(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("dataset generation failed")
	}

	var sinks []namedSink
	if cfg.Output.WriteCSV {
		sinks = append(sinks, namedSink{"csv", csvfile.NewAdapter(cfg.Output.Directory)})
	}
	if cfg.Output.WriteWarehouse {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("warehouse connection failed")
		}
		defer pgClient.Close()
		sinks = append(sinks, namedSink{"warehouse", database.NewWarehouseAdapter(pgClient)})
	}

	// Sink failures never invalidate the generated tables; each sink
	// is retried against the same in-memory dataset.
	retryCfg := retry.DefaultConfig()
	for _, s := range sinks {
		err := retry.DoWithLog(ctx, retryCfg, s.name,
			func() error { return s.sink.Emit(ctx, dataset) },
			func(attempt int, err error, nextDelay time.Duration) {
				logger.Warn().
					Str("sink", s.name).
					Int("attempt", attempt).
					Err(err).
					Dur("next_delay", nextDelay).
					Msg("sink emission failed, retrying")
			},
		)
		if err != nil {
			logger.Fatal().Err(err).Str("sink", s.name).Msg("sink emission failed")
		}
		logger.Info().Str("sink", s.name).Msg("dataset emitted")
	}

	if cfg.Output.Announce {
		announceRun(ctx, cfg, dataset)
	}

	logger.Info().Msg("synthetic dataset ready")
}

// announceRun publishes the run summary for downstream ETL. Failures
// are logged, not fatal: the dataset has already been written.
func announceRun(ctx context.Context, cfg *config.Config, dataset *entities.Dataset) {
	logger := observability.GetLogger()

	client, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("run announcement skipped, Redis unavailable")
		return
	}

	bus := events.NewRedisEventBus(client)
	defer bus.Close()

	event := &entities.RunEvent{
		RunID:       uuid.NewString(),
		Seed:        cfg.Generator.Seed,
		Summary:     dataset.Summarize(),
		CompletedAt: time.Now().UTC(),
	}
	if err := bus.Publish(ctx, cfg.Output.AnnounceChannel, event); err != nil {
		logger.Warn().Err(err).Msg("run announcement failed")
	}
}
