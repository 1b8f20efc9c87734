package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by TODO_* environment variables or CLI flags

# Storage backend: file, sqlite, or memory
backend = "file"

# Data directory (supports ~ and $VAR expansion)
# The file backend writes <data_dir>/<storage_key>.json,
# the sqlite backend writes <data_dir>/todo.db
data_dir = "~/.todo"

# Key the task list is stored under
storage_key = "todos"

# JSON Schema override used by "todo doctor" (embedded schema if unset)
# schema_file = "todos.schema.json"

# Drag-and-drop reordering in the TUI and the "mv" command
reorder = true

# Session log directory
log_dir = "~/.todo/logs"

# Logging: debug, info, warn, error
log_level = "info"
# text, json, or logfmt
log_format = "text"
log_timestamps = false
log_caller = false
`
}
