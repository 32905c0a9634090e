package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the generator.
type Config struct {
	Log       LogConfig
	Storage   StorageConfig
	Folders   FolderConfig
	Generator GeneratorConfig
	Import    ImportConfig
	Spawn     SpawnConfig
	Metrics   MetricsConfig
	Tracing   TracingConfig
	Server    ServerConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// ServerConfig controls the optional HTTP surface.
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"4000"`
	// ImportToken guards POST /import with a bearer token when set.
	ImportToken    string `env:"IMPORT_TOKEN"`
	MaxImportBytes int64  `env:"IMPORT_MAX_BYTES" envDefault:"1048576"`
}

// Load reads an optional .env file, then configuration from environment
// variables with sensible defaults.
func Load(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
