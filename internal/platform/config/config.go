package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zonas horarias embebidas para el CLI

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Drivers de store soportados.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Config del dashboard. Precedencia: env > archivo YAML > defaults.
type Config struct {
	HTTPAddr string `yaml:"http_addr" env:"PETCARE_HTTP_ADDR"`
	// Zona horaria usada para calcular "hoy" en los registros de salud.
	Timezone string `yaml:"timezone" env:"PETCARE_TIMEZONE"`

	Store     StoreConfig     `yaml:"store" envPrefix:"PETCARE_STORE_"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type StoreConfig struct {
	Driver      string   `yaml:"driver" env:"DRIVER"`
	DataDir     string   `yaml:"data_dir" env:"DATA_DIR"`
	SQLitePath  string   `yaml:"sqlite_path" env:"SQLITE_PATH"`
	PostgresDSN string   `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	S3          S3Config `yaml:"s3" envPrefix:"S3_"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket" env:"BUCKET"`
	Region          string `yaml:"region" env:"REGION"`
	Endpoint        string `yaml:"endpoint" env:"ENDPOINT"`
	Prefix          string `yaml:"prefix" env:"PREFIX"`
	PathStyle       bool   `yaml:"path_style" env:"PATH_STYLE"`
	AccessKeyID     string `yaml:"access_key_id" env:"ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"SECRET_ACCESS_KEY"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
	App    string `yaml:"app" env:"APP_NAME"`
}

type TelemetryConfig struct {
	OTELEndpoint   string `yaml:"otel_endpoint" env:"PETCARE_OTEL_ENDPOINT"`
	MetricsEnabled bool   `yaml:"metrics_enabled" env:"PETCARE_METRICS_ENABLED"`
}

// Default devuelve la config base (dashboard local, store en archivos).
func Default() Config {
	dataDir := ".petcare"
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dataDir = filepath.Join(home, ".petcare")
	}
	return Config{
		HTTPAddr: "127.0.0.1:8080",
		Timezone: "UTC",
		Store: StoreConfig{
			Driver:  DriverFile,
			DataDir: dataDir,
			S3:      S3Config{Region: "us-east-1"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-care-dashboard",
		},
		Telemetry: TelemetryConfig{MetricsEnabled: true},
	}
}

// Load aplica defaults, luego el YAML en path (si path != "") y por último el entorno.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile:
		if strings.TrimSpace(c.Store.DataDir) == "" {
			return errors.New("config: store.data_dir required for file driver")
		}
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" && strings.TrimSpace(c.Store.DataDir) == "" {
			return errors.New("config: store.sqlite_path or store.data_dir required for sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			return errors.New("config: store.postgres_dsn required for postgres driver")
		}
	case DriverS3:
		if strings.TrimSpace(c.Store.S3.Bucket) == "" {
			return errors.New("config: store.s3.bucket required for s3 driver")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve Timezone ("" = UTC).
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// SQLiteFile devuelve la ruta efectiva de la base sqlite.
func (c StoreConfig) SQLiteFile() string {
	if p := strings.TrimSpace(c.SQLitePath); p != "" {
		return p
	}
	return filepath.Join(c.DataDir, "petcare.db")
}
