package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "metroreg"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/metroreg by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for data files such as the default
// SQLite database.
// Returns ~/.local/share/metroreg by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/metroreg/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/metroreg/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the SQLite database file used when
// Database.Path is not set.
func SQLitePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}
