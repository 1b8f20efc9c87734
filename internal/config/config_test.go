package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// isolate points HOME and the config dirs at empty temp dirs, clears TODO_*
// variables, and changes into a fresh working directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, env := range os.Environ() {
		if name, _, ok := strings.Cut(env, "="); ok && strings.HasPrefix(name, "TODO_") {
			t.Setenv(name, "")
		}
	}
	wd := t.TempDir()
	t.Chdir(wd)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Backend != BackendFile {
		t.Errorf("Backend: got %q, want file", cfg.Backend)
	}
	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey: got %q, want %q", cfg.StorageKey, DefaultStorageKey)
	}
	if !cfg.Reorder {
		t.Error("Reorder: got false, want true")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("logging defaults: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cws, err := LoadWithSources(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config

	if want := filepath.Join(home, ".todo"); cfg.DataDir != want {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, want)
	}
	if want := filepath.Join(home, ".todo", "todos.json"); cfg.DataFile() != want {
		t.Errorf("DataFile: got %q, want %q", cfg.DataFile(), want)
	}
	if want := filepath.Join(home, ".todo", "todo.db"); cfg.DBFile() != want {
		t.Errorf("DBFile: got %q, want %q", cfg.DBFile(), want)
	}
	for field, source := range cws.Sources {
		if source != SourceDefault {
			t.Errorf("source of %s: got %q, want default", field, source)
		}
	}
	if cws.GetConfigFile() != "" {
		t.Errorf("GetConfigFile: got %q, want empty", cws.GetConfigFile())
	}
}

func TestLoadPriority(t *testing.T) {
	home := isolate(t)

	writeFile(t, filepath.Join(home, ".todo", "todo.toml"), `
backend = "sqlite"
storage_key = "user-key"
log_level = "debug"
`)
	writeFile(t, "todo.toml", `
storage_key = "project-key"
reorder = false
`)
	t.Setenv("TODO_LOG_LEVEL", "warn")
	t.Setenv("TODO_DATA_DIR", "data")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cws, err := LoadWithSources(fs, []string{"-reorder=true", "-log-format", "json"})
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config

	tests := []struct {
		field  string
		got    interface{}
		want   interface{}
		source ConfigSource
	}{
		{"backend", cfg.Backend, "sqlite", SourceUserFile},
		{"storage_key", cfg.StorageKey, "project-key", SourceProjFile},
		{"log_level", cfg.LogLevel, "warn", SourceEnv},
		{"reorder", cfg.Reorder, true, SourceFlag},
		{"log_format", cfg.LogFormat, "json", SourceFlag},
		{"log_dir", cfg.LogDir, filepath.Join(home, ".todo", "logs"), SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value: got %v, want %v", tt.got, tt.want)
			}
			if cws.Sources[tt.field] != tt.source {
				t.Errorf("source: got %q, want %q", cws.Sources[tt.field], tt.source)
			}
		})
	}

	wd, _ := os.Getwd()
	if want := filepath.Join(wd, "data"); cfg.DataDir != want {
		t.Errorf("relative DataDir: got %q, want %q", cfg.DataDir, want)
	}
	if len(cws.Files) != 2 || cws.GetConfigFile() != "todo.toml" {
		t.Errorf("Files: got %v", cws.Files)
	}
}

func TestLoadFlagSetKeepsCallerFlags(t *testing.T) {
	isolate(t)

	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	filter := fs.String("filter", "all", "")
	cfg, err := Load(fs, []string{"-filter", "active", "-backend", "memory", "extra"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *filter != "active" {
		t.Errorf("filter: got %q, want active", *filter)
	}
	if cfg.Backend != BackendMemory {
		t.Errorf("Backend: got %q, want memory", cfg.Backend)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "extra" {
		t.Errorf("Args: got %v, want [extra]", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{name: "bad toml", file: `backend = `, wantErr: "project config file"},
		{name: "unknown key", file: `colour = "blue"`, wantErr: "unknown keys: colour"},
		{name: "bad backend", args: []string{"-backend", "redis"}, wantErr: "invalid backend"},
		{name: "bad key", env: map[string]string{"TODO_STORAGE_KEY": "../x"}, wantErr: "invalid storage_key"},
		{name: "bad bool", env: map[string]string{"TODO_REORDER": "maybe"}, wantErr: "TODO_REORDER"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantErr: "invalid log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, ".todo.toml", tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(&strings.Builder{})
			_, err := Load(fs, tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "YES", " on "} {
		if b, err := parseBool(s); err != nil || !b {
			t.Errorf("parseBool(%q) = %v, %v", s, b, err)
		}
	}
	for _, s := range []string{"0", "false", "no", "Off"} {
		if b, err := parseBool(s); err != nil || b {
			t.Errorf("parseBool(%q) = %v, %v", s, b, err)
		}
	}
	if _, err := parseBool("maybe"); err == nil {
		t.Error("parseBool(maybe) returned no error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	t.Setenv("TODO_TEST_DIR", "/srv/todo")
	t.Setenv("TODO_TEST_HOME", "~")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~/test", filepath.Join(home, "test")},
		{"~", home},
		{"~other/test", "~other/test"},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"$TODO_TEST_DIR/data", "/srv/todo/data"},
		{"${TODO_TEST_DIR}/todo.db", "/srv/todo/todo.db"},
		{"$TODO_TEST_HOME/notes", filepath.Join(home, "notes")},
		{"%TODO_TEST_DIR%/data", "%TODO_TEST_DIR%/data"},
	}
	if runtime.GOOS != "windows" {
		tests = append(tests, struct{ input, want string }{`~\test`, `~\test`})
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadExpandsPaths(t *testing.T) {
	home := isolate(t)
	t.Setenv("TODO_TEST_DIR", "/srv/todo")
	t.Setenv("TODO_DATA_DIR", "$TODO_TEST_DIR/data")
	t.Setenv("TODO_LOG_DIR", "~/logs")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/srv/todo/data" {
		t.Errorf("DataDir = %q, want /srv/todo/data", cfg.DataDir)
	}
	if want := filepath.Join(home, "logs"); cfg.LogDir != want {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, want)
	}
}

func TestExampleConfigDecodes(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".todo", "todo.toml"), ExampleConfig())

	cws, err := LoadWithSources(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	if cws.Sources["backend"] != SourceUserFile {
		t.Errorf("backend source: got %q, want user file", cws.Sources["backend"])
	}
	if cws.Sources["schema_file"] != SourceDefault {
		t.Errorf("commented schema_file attributed to %q", cws.Sources["schema_file"])
	}
}
