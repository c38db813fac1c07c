// Package config provides configuration management for metroreg.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: backend, host, port, user, password, database, schema,
//     ssl_mode, path, batch_size
//   - API: base_url, lang, timeout
//   - Sweep: start_year, end_year, sex_codes, age_group_codes
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Load.DryRun (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use METROREG_ prefix with underscores for nesting:
//
//	METROREG_DATABASE_HOST=localhost
//	METROREG_DATABASE_SCHEMA=eurostat
//	METROREG_SWEEP_START_YEAR=2020
//	METROREG_LOG_LEVEL=info
package config

import (
	"github.com/gnames/metroreg/pkg/eurostat"
	"github.com/gnames/metroreg/pkg/metro"
)

// Config represents the complete metroreg configuration.
type Config struct {
	// Database contains connection settings of the table sink.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// API contains settings of the Eurostat dissemination API.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Sweep determines which years, sexes and age groups are fetched.
	Sweep SweepConfig `mapstructure:"sweep" yaml:"sweep"`

	// Load contains settings specific to the load command.
	Load LoadConfig `yaml:"-"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// DatabaseConfig contains connection parameters of the sink.
type DatabaseConfig struct {
	// Backend selects the storage: "postgres" or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// Schema is the PostgreSQL schema the tables are written to.
	// It is created if it does not exist.
	Schema string `mapstructure:"schema" yaml:"schema"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. If empty, the file is created
	// in the data directory.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize is the number of rows sent to the database at once.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// APIConfig contains settings of the Eurostat API.
type APIConfig struct {
	// BaseURL is the data endpoint, dataset codes are appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Lang is the language of labels in responses.
	Lang string `mapstructure:"lang" yaml:"lang"`

	// Timeout of one request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// SweepConfig is the parameter space of a run.
type SweepConfig struct {
	// StartYear is the first year to fetch.
	StartYear int `mapstructure:"start_year" yaml:"start_year"`

	// EndYear is the last year to fetch (inclusive).
	EndYear int `mapstructure:"end_year" yaml:"end_year"`

	// SexCodes are Eurostat sex codes for the population dataset.
	SexCodes []string `mapstructure:"sex_codes" yaml:"sex_codes"`

	// AgeGroupCodes are Eurostat age band codes for the population dataset.
	AgeGroupCodes []string `mapstructure:"age_group_codes" yaml:"age_group_codes"`
}

// LoadConfig contains settings specific to the load command.
type LoadConfig struct {
	// DryRun fetches and transforms data without writing it.
	DryRun bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	sw := metro.DefaultSweep()
	res := &Config{
		Database: DatabaseConfig{
			Backend:   "postgres",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "metroreg",
			Schema:    "public",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		API: APIConfig{
			BaseURL: eurostat.DefaultBaseURL,
			Lang:    "en",
			Timeout: 60,
		},
		Sweep: SweepConfig{
			StartYear:     sw.StartYear,
			EndYear:       sw.EndYear,
			SexCodes:      sw.SexCodes,
			AgeGroupCodes: sw.AgeGroupCodes,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// MetroSweep converts the sweep settings to the form used by the
// load driver.
func (c *Config) MetroSweep() metro.Sweep {
	return metro.Sweep{
		StartYear:     c.Sweep.StartYear,
		EndYear:       c.Sweep.EndYear,
		SexCodes:      c.Sweep.SexCodes,
		AgeGroupCodes: c.Sweep.AgeGroupCodes,
	}
}
