package todo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateBlob(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantTasks int
		wantPath  string
	}{
		{
			name:      "empty list",
			input:     `[]`,
			wantValid: true,
		},
		{
			name:      "valid list",
			input:     `[{"id":"a","text":"Buy milk","completed":false,"createdAt":"2024-01-01T10:00:00.000Z"},{"id":"b","text":"Write report","completed":true,"createdAt":"2024-01-01T11:00:00Z"}]`,
			wantValid: true,
			wantTasks: 2,
		},
		{
			name:      "not json",
			input:     `[{`,
			wantValid: false,
		},
		{
			name:      "not an array",
			input:     `{"id":"a"}`,
			wantValid: false,
		},
		{
			name:      "missing completed",
			input:     `[{"id":"a","text":"t","createdAt":"2024-01-01T10:00:00Z"}]`,
			wantValid: false,
			wantPath:  "[0]",
		},
		{
			name:      "bad date",
			input:     `[{"id":"a","text":"t","completed":false,"createdAt":"yesterday"}]`,
			wantValid: false,
			wantPath:  "[0].createdAt",
		},
		{
			name:      "blank text",
			input:     `[{"id":"a","text":"   ","completed":false,"createdAt":"2024-01-01T10:00:00Z"}]`,
			wantValid: false,
			wantPath:  "[0].text",
		},
		{
			name:      "duplicate ids",
			input:     `[{"id":"a","text":"x","completed":false,"createdAt":"2024-01-01T10:00:00Z"},{"id":"a","text":"y","completed":false,"createdAt":"2024-01-01T10:00:00Z"}]`,
			wantValid: false,
			wantPath:  "[1].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateBlob([]byte(tt.input), ValidationOptions{})
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if tt.wantValid {
				if len(result.Errors) != 0 {
					t.Errorf("unexpected errors: %v", result.Errors)
				}
				if !result.UsedSchema {
					t.Error("embedded schema was not used")
				}
				if result.Tasks != tt.wantTasks {
					t.Errorf("Tasks = %d, want %d", result.Tasks, tt.wantTasks)
				}
				return
			}
			if len(result.Errors) == 0 {
				t.Fatal("invalid result carries no errors")
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, err := range result.Errors {
				var ve *ValidationError
				if errors.As(err, &ve) && strings.HasPrefix(ve.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %s in %v", tt.wantPath, result.Errors)
			}
		})
	}
}

func TestValidateBlobWhitespaceWarning(t *testing.T) {
	input := `[{"id":"a","text":" padded ","completed":false,"createdAt":"2024-01-01T10:00:00Z"}]`
	result := ValidateBlob([]byte(input), ValidationOptions{})
	if !result.Valid {
		t.Fatalf("Valid = false: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "[0].text") {
		t.Errorf("Warnings = %v, want one whitespace warning", result.Warnings)
	}
}

func TestValidateBlobSchemaOverride(t *testing.T) {
	t.Run("missing file falls back to embedded schema", func(t *testing.T) {
		result := ValidateBlob([]byte(`[]`), ValidationOptions{
			SchemaPath: filepath.Join(t.TempDir(), "missing.json"),
		})
		if !result.Valid || !result.UsedSchema {
			t.Fatalf("Valid = %v, UsedSchema = %v", result.Valid, result.UsedSchema)
		}
		if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "schema file not found") {
			t.Errorf("Warnings = %v", result.Warnings)
		}
	})

	t.Run("custom schema is applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "strict.json")
		strict := `{"$schema":"https://json-schema.org/draft/2020-12/schema","type":"array","maxItems":1}`
		if err := os.WriteFile(path, []byte(strict), 0o644); err != nil {
			t.Fatalf("write schema: %v", err)
		}
		input := `[{"id":"a","text":"x","completed":false,"createdAt":"2024-01-01T10:00:00Z"},{"id":"b","text":"y","completed":false,"createdAt":"2024-01-01T10:00:00Z"}]`
		result := ValidateBlob([]byte(input), ValidationOptions{SchemaPath: path})
		if result.Valid {
			t.Error("Valid = true, want maxItems violation")
		}
	})
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"/":              "",
		"/0":             "[0]",
		"/0/text":        "[0].text",
		"#/12/createdAt": "[12].createdAt",
		"/a~1b":          "a/b",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
