package config

import (
	"fmt"
	"os"
	"strconv"

	apperrors "github.com/careloop/synthgen/pkg/errors"
)

// Defaults for the generator's tunable surface.
const (
	defaultPopulationSize  = 1000
	defaultMeanEncounters  = 3
	defaultSeed            = 42
	defaultImagingFraction = 0.4
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Output    OutputConfig
	OTEL      OTELConfig
}

// AppConfig holds service-level settings.
type AppConfig struct {
	Name string
	Env  string
}

// GeneratorConfig is the tunable surface of the generation model.
// Everything else is a fixed constant of the model.
type GeneratorConfig struct {
	PopulationSize           int
	MeanEncountersPerPatient float64
	Seed                     int64
	ImagingFraction          float64
}

// DatabaseConfig holds warehouse connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration for run announcements.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OutputConfig selects the enabled sinks.
type OutputConfig struct {
	Directory       string
	WriteCSV        bool
	WriteWarehouse  bool
	Announce        bool
	AnnounceChannel string
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "synthgen"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Generator: GeneratorConfig{
			PopulationSize:           getEnvAsInt("SYNTHGEN_POPULATION", defaultPopulationSize),
			MeanEncountersPerPatient: getEnvAsFloat("SYNTHGEN_MEAN_ENCOUNTERS", defaultMeanEncounters),
			Seed:                     getEnvAsInt64("SYNTHGEN_SEED", defaultSeed),
			ImagingFraction:          getEnvAsFloat("SYNTHGEN_IMAGING_FRACTION", defaultImagingFraction),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "healthcare_analytics"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Output: OutputConfig{
			Directory:       getEnv("SYNTHGEN_OUTPUT_DIR", "data/synthetic"),
			WriteCSV:        getEnvAsBool("SYNTHGEN_WRITE_CSV", true),
			WriteWarehouse:  getEnvAsBool("SYNTHGEN_WRITE_WAREHOUSE", false),
			Announce:        getEnvAsBool("SYNTHGEN_ANNOUNCE", false),
			AnnounceChannel: getEnv("SYNTHGEN_ANNOUNCE_CHANNEL", "synthgen.runs"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "synthgen"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// Validate rejects configurations the generator cannot run with.
// Configuration errors fail fast, before any output is produced.
func (c *Config) Validate() error {
	if c.Generator.PopulationSize <= 0 {
		return apperrors.NewValidationError("SYNTHGEN_POPULATION must be a positive integer")
	}
	if c.Generator.MeanEncountersPerPatient <= 0 {
		return apperrors.NewValidationError("SYNTHGEN_MEAN_ENCOUNTERS must be positive")
	}
	if c.Generator.ImagingFraction < 0 || c.Generator.ImagingFraction > 1 {
		return apperrors.NewValidationError("SYNTHGEN_IMAGING_FRACTION must lie within [0, 1]")
	}
	if !c.Output.WriteCSV && !c.Output.WriteWarehouse {
		return apperrors.NewValidationError("at least one sink must be enabled")
	}
	return nil
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address.
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
