package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed todos.schema.json
var embeddedSchema string

const embeddedSchemaURL = "https://github.com/nibzard/todo-go/todos.schema.json"

// Schema returns the embedded JSON Schema for the stored list.
func Schema() string {
	return embeddedSchema
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the embedded schema. If the file cannot be
	// compiled, the embedded schema is used and a warning is recorded.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool
	Tasks      int
}

// ValidateBlob validates a stored list value.
func ValidateBlob(data []byte, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.fail(&ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)})
		return result
	}

	schema := compileSchema(opts.SchemaPath, result)
	if schema != nil {
		result.UsedSchema = true
		if err := schema.Validate(doc); err != nil {
			result.Valid = false
			appendSchemaErrors(result, err)
		}
	} else {
		result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
		validateMinimal(doc, result)
	}
	if !result.Valid {
		return result
	}

	tasks, err := Unmarshal(data)
	if err != nil {
		result.fail(&ValidationError{Err: err})
		return result
	}
	result.Tasks = len(tasks)
	validateTasks(tasks, result)
	return result
}

func (r *ValidationResult) fail(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// validateMinimal checks the document shape without a schema.
func validateMinimal(doc interface{}, result *ValidationResult) {
	items, ok := doc.([]interface{})
	if !ok {
		result.fail(&ValidationError{Err: fmt.Errorf("expected an array of tasks")})
		return
	}
	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := item.(map[string]interface{})
		if !ok {
			result.fail(&ValidationError{Path: path, Err: fmt.Errorf("expected an object")})
			continue
		}
		for _, field := range []string{"id", "text", "createdAt"} {
			if s, ok := obj[field].(string); !ok || s == "" {
				result.fail(&ValidationError{Path: path + "." + field, Err: fmt.Errorf("missing required field")})
			}
		}
		if _, ok := obj["completed"].(bool); !ok {
			result.fail(&ValidationError{Path: path + ".completed", Err: fmt.Errorf("must be a boolean")})
		}
	}
}

// validateTasks applies the checks a schema cannot express.
func validateTasks(tasks []Task, result *ValidationResult) {
	seen := make(map[string]int, len(tasks))
	for i, t := range tasks {
		path := fmt.Sprintf("[%d]", i)
		if first, dup := seen[t.ID]; dup {
			result.fail(&ValidationError{
				Path: path + ".id",
				Err:  fmt.Errorf("duplicate id %q (first at [%d])", t.ID, first),
			})
		} else {
			seen[t.ID] = i
		}
		if strings.TrimSpace(t.Text) == "" {
			result.fail(&ValidationError{Path: path + ".text", Err: fmt.Errorf("blank text")})
		} else if t.Text != strings.TrimSpace(t.Text) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s.text: surrounding whitespace", path))
		}
	}
}

// compileSchema compiles the override schema if one is given, falling back
// to the embedded schema.
func compileSchema(schemaPath string, result *ValidationResult) *jsonschema.Schema {
	if schemaPath != "" {
		schema, err := compileSchemaFile(schemaPath)
		if err == nil {
			return schema
		}
		result.Warnings = append(result.Warnings, err.Error()+", using embedded schema")
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(embeddedSchemaURL, strings.NewReader(embeddedSchema)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid embedded schema: %v", err))
		return nil
	}
	schema, err := compiler.Compile(embeddedSchemaURL)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid embedded schema: %v", err))
		return nil
	}
	return schema
}

func compileSchemaFile(schemaPath string) (*jsonschema.Schema, error) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", absPath)
		}
		return nil, fmt.Errorf("failed to read schema file: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file: %v", err)
	}
	return schema, nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts "/0/text" into "[0].text".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
