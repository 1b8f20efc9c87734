package todo

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

// testEnv returns an Env with sequential ids t1, t2, ... and a fixed clock.
func testEnv() Env {
	n := 0
	return Env{
		NewID: func() string {
			n++
			return fmt.Sprintf("t%d", n)
		},
		Now: func() time.Time { return fixedTime },
	}
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"Active", FilterActive, false},
		{" completed ", FilterCompleted, false},
		{"done", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterCycle(t *testing.T) {
	if got := FilterAll.Next(); got != FilterActive {
		t.Errorf("all.Next() = %q, want active", got)
	}
	if got := FilterCompleted.Next(); got != FilterAll {
		t.Errorf("completed.Next() = %q, want all", got)
	}
	if got := FilterAll.Prev(); got != FilterCompleted {
		t.Errorf("all.Prev() = %q, want completed", got)
	}
}

func TestResolveID(t *testing.T) {
	s := NewState([]Task{
		{ID: "abc123", Text: "one"},
		{ID: "abd456", Text: "two"},
		{ID: "ab", Text: "three"},
	})

	tests := []struct {
		prefix  string
		want    string
		wantErr error
	}{
		{"abc", "abc123", nil},
		{"abd456", "abd456", nil},
		{"ab", "ab", nil},
		{"a", "", ErrAmbiguous},
		{"zzz", "", ErrNoMatch},
		{"", "", ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := s.ResolveID(tt.prefix)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveID(%q) error = %v, want %v", tt.prefix, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveID(%q) unexpected error: %v", tt.prefix, err)
			}
			if got != tt.want {
				t.Errorf("ResolveID(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestTaskLine(t *testing.T) {
	task := Task{ID: "0123456789abcdef", Text: "Buy milk", Completed: true}
	if got, want := task.Line(), "[x] 01234567  Buy milk"; got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
	task.Completed = false
	task.ID = "short"
	if got, want := task.Line(), "[ ] short  Buy milk"; got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
