package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPaths rewrites the path-valued settings in place.
func expandPaths(cfg *Config) {
	for _, p := range []*string{&cfg.DataDir, &cfg.LogDir, &cfg.SchemaFile} {
		*p = expandPath(*p)
	}
}

// expandPath substitutes $VAR and ${VAR}, then a leading ~ or ~/ with the
// home directory. Other ~ forms are left alone.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
