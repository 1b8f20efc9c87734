package todo

import (
	"strings"
	"testing"
	"time"
)

func TestMarshalRoundTrip(t *testing.T) {
	created := Now()
	tasks := []Task{
		{ID: "b", Text: "Write report", Completed: true, CreatedAt: created},
		{ID: "a", Text: "Buy milk", CreatedAt: created.Add(-time.Minute)},
	}

	data, err := Marshal(tasks)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("len = %d, want %d", len(got), len(tasks))
	}
	for i := range tasks {
		if got[i].ID != tasks[i].ID || got[i].Text != tasks[i].Text || got[i].Completed != tasks[i].Completed {
			t.Errorf("task %d = %+v, want %+v", i, got[i], tasks[i])
		}
		if !got[i].CreatedAt.Equal(tasks[i].CreatedAt) {
			t.Errorf("task %d CreatedAt = %v, want %v", i, got[i].CreatedAt, tasks[i].CreatedAt)
		}
	}
}

func TestMarshalFieldNames(t *testing.T) {
	data, err := Marshal([]Task{{ID: "x", Text: "y", CreatedAt: fixedTime}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `[{"id":"x","text":"y","completed":false,"createdAt":"2024-01-01T10:00:00.000Z"}]`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshalCreatedAtMillis(t *testing.T) {
	local := time.FixedZone("CET", 3600)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"whole second", fixedTime, `"2024-01-01T10:00:00.000Z"`},
		{"sub-millisecond dropped", fixedTime.Add(1500 * time.Microsecond), `"2024-01-01T10:00:00.001Z"`},
		{"converted to UTC", time.Date(2024, 1, 1, 11, 0, 0, 250*int(time.Millisecond), local), `"2024-01-01T10:00:00.250Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal([]Task{{ID: "x", Text: "y", CreatedAt: tt.at}})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !strings.Contains(string(data), `"createdAt":`+tt.want) {
				t.Errorf("Marshal = %s, want createdAt %s", data, tt.want)
			}
		})
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(nil) = %s, want []", data)
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{"empty array", "[]", 0, false},
		{"null", "null", 0, false},
		{"one task", `[{"id":"a","text":"t","completed":false,"createdAt":"2024-01-01T10:00:00.000Z"}]`, 1, false},
		{"malformed", `[{"id":`, 0, true},
		{"object", `{"id":"a"}`, 0, true},
		{"bad date", `[{"id":"a","text":"t","completed":false,"createdAt":"yesterday"}]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unmarshal([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "parse tasks") {
					t.Errorf("error %q not wrapped", err)
				}
				return
			}
			if got == nil {
				t.Fatal("Unmarshal returned nil slice")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNowMillisecondPrecision(t *testing.T) {
	now := Now()
	if now.Location() != time.UTC {
		t.Errorf("Now() location = %v, want UTC", now.Location())
	}
	if now.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("Now() = %v has sub-millisecond precision", now)
	}
}
