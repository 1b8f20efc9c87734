// Package ids generates task identifiers.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Provider yields a new unique id on every call.
type Provider interface {
	NewID() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates prefix1, prefix2, ... and is safe for concurrent use.
// It is meant for tests and reproducible demos.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s%d", s.Prefix, s.next)
}

// Func adapts a provider to the func form used by todo.Env.
func Func(p Provider) func() string {
	if p == nil {
		p = UUID{}
	}
	return p.NewID
}
