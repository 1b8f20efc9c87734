package todo

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes tasks in their stored form: a compact JSON array.
// A nil list encodes as [] rather than null.
func Marshal(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored list. Malformed input is an error; there is no
// partial recovery.
func Unmarshal(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
