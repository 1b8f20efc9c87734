package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from TODO_* environment variables and
// records each override in sources.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) error {
		v := os.Getenv(env)
		if v == "" {
			return nil
		}
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
		*target = b
		sources[field] = SourceEnv
		return nil
	}

	setString("TODO_BACKEND", "backend", &cfg.Backend)
	setString("TODO_DATA_DIR", "data_dir", &cfg.DataDir)
	setString("TODO_STORAGE_KEY", "storage_key", &cfg.StorageKey)
	setString("TODO_SCHEMA", "schema_file", &cfg.SchemaFile)
	setString("TODO_LOG_DIR", "log_dir", &cfg.LogDir)
	setString("TODO_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TODO_LOG_FORMAT", "log_format", &cfg.LogFormat)

	if err := setBool("TODO_REORDER", "reorder", &cfg.Reorder); err != nil {
		return err
	}
	if err := setBool("TODO_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps); err != nil {
		return err
	}
	return setBool("TODO_LOG_CALLER", "log_caller", &cfg.LogCaller)
}

// parseBool accepts the usual spellings of a boolean environment value.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
