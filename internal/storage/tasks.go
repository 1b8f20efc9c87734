package storage

import (
	"errors"
	"fmt"

	"github.com/nibzard/todo-go/internal/todo"
)

// TaskStore persists a task list under a fixed key of a KV.
type TaskStore struct {
	kv  KV
	key string
}

// NewTaskStore returns a store for the list under key.
func NewTaskStore(kv KV, key string) *TaskStore {
	return &TaskStore{kv: kv, key: key}
}

// Key returns the storage key.
func (s *TaskStore) Key() string { return s.key }

// Load reads and decodes the stored list. An absent key yields an empty
// list; malformed content is an error.
func (s *TaskStore) Load() ([]todo.Task, error) {
	data, err := s.kv.Get(s.key)
	if errors.Is(err, ErrNotFound) {
		return []todo.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	tasks, err := todo.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	return tasks, nil
}

// Save encodes and writes the full list.
func (s *TaskStore) Save(tasks []todo.Task) error {
	data, err := todo.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// Raw returns the stored bytes without decoding them. ok is false when the
// key is absent.
func (s *TaskStore) Raw() (data []byte, ok bool, err error) {
	data, err = s.kv.Get(s.key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.key, err)
	}
	return data, true, nil
}
