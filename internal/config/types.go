package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Default values.
const (
	DefaultBackend    = BackendFile
	DefaultDataDir    = "~/.todo"
	DefaultStorageKey = "todos"
	DefaultLogDir     = "~/.todo/logs"
	DefaultReorder    = true
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for todo.
type Config struct {
	// Storage
	Backend    string `toml:"backend"`
	DataDir    string `toml:"data_dir"`
	StorageKey string `toml:"storage_key"`
	SchemaFile string `toml:"schema_file"`

	// Reorder enables drag-and-drop reordering of tasks.
	Reorder bool `toml:"reorder"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid backend %q, must be one of: file, sqlite, memory", c.Backend)
	}
	key := strings.TrimSpace(c.StorageKey)
	if key == "" {
		return fmt.Errorf("storage_key is empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid storage_key %q", c.StorageKey)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", c.LogFormat)
	}
	return nil
}

// DBFile returns the SQLite database path used by the sqlite backend.
func (c *Config) DBFile() string {
	return filepath.Join(c.DataDir, "todo.db")
}

// DataFile returns the JSON file path used by the file backend.
func (c *Config) DataFile() string {
	return filepath.Join(c.DataDir, c.StorageKey+".json")
}
