package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseBackend sets the storage backend.
// Valid values: "postgres", "sqlite".
func OptDatabaseBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Backend", s) {
			c.Database.Backend = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSchema sets the PostgreSQL schema for the tables.
func OptDatabaseSchema(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Schema", s) {
			c.Database.Schema = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabasePath sets the SQLite database file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows sent to the database at once.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptAPIBaseURL sets the Eurostat data endpoint.
func OptAPIBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API Base URL", s) {
			c.API.BaseURL = s
		}
	}
}

// OptAPILang sets the language of labels in API responses.
// Valid values: "en", "fr", "de".
func OptAPILang(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("API.Lang", s) {
			c.API.Lang = s
		}
	}
}

// OptAPITimeout sets the timeout of one request in seconds.
func OptAPITimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.Timeout = i
		}
	}
}

// OptSweepYears sets the first and the last (inclusive) year of the
// sweep. Both values are rejected if start is after end.
func OptSweepYears(start, end int) Option {
	return func(c *Config) {
		if isValidInt("Sweep Start Year", start) &&
			isValidInt("Sweep End Year", end) &&
			isValidRange("Sweep Years", start, end) {
			c.Sweep.StartYear = start
			c.Sweep.EndYear = end
		}
	}
}

// OptSweepSexCodes sets the sex codes of the population sweep.
func OptSweepSexCodes(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Sweep Sex Codes", ss) {
			c.Sweep.SexCodes = ss
		}
	}
}

// OptSweepAgeGroupCodes sets the age group codes of the population sweep.
func OptSweepAgeGroupCodes(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Sweep Age Group Codes", ss) {
			c.Sweep.AgeGroupCodes = ss
		}
	}
}

// OptLoadDryRun makes the load command skip writing to the database.
// Runtime-only field - not in ToOptions().
func OptLoadDryRun(b bool) Option {
	return func(c *Config) {
		c.Load.DryRun = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// cleanList trims codes and drops empty and repeated ones, keeping the
// first occurrence.
func cleanList(ss []string) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok || v == "" {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
