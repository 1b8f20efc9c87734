package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.jsonl")
	writeLines(t, path, "one", "two", "three", "four")

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"all lines", 0, "one\ntwo\nthree\nfour\n"},
		{"last two", 2, "three\nfour\n"},
		{"more than available", 10, "one\ntwo\nthree\nfour\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Tail(context.Background(), &buf, path, tt.n, false); err != nil {
				t.Fatalf("Tail failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Tail = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTailMissingFile(t *testing.T) {
	err := Tail(context.Background(), &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing"), 0, false)
	if err == nil || !strings.Contains(err.Error(), "open log file") {
		t.Fatalf("expected open error, got %v", err)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestTailFollow(t *testing.T) {
	prev := followInterval
	followInterval = 5 * time.Millisecond
	defer func() { followInterval = prev }()

	path := filepath.Join(t.TempDir(), "s.jsonl")
	writeLines(t, path, "first")

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- Tail(ctx, out, path, 0, true) }()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "second") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Tail returned %v", err)
	}
	if got := out.String(); got != "first\nsecond\n" {
		t.Errorf("followed output = %q", got)
	}
}
