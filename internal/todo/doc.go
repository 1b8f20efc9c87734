// Package todo models the task list, the commands that change it, and the
// view derived from it.
//
// The stored form of a list (the value kept under the "todos" key) is a JSON
// array of task records:
//
//	[
//	  {
//	    "id": "3f0c5e0a-4f7e-4a53-9a54-0f6f0e1b9d2c",
//	    "text": "Write report",
//	    "completed": false,
//	    "createdAt": "2024-01-01T10:00:00.000Z"
//	  }
//	]
//
// # State and commands
//
// State holds the ordered task list plus the UI state that is never persisted:
// the active Filter, the new-task input buffer and the optional EditSession.
// Every change goes through Apply, a pure reducer:
//
//	next, changed := todo.Apply(state, todo.Add("Buy milk"), env)
//
// changed reports whether the task list itself differs, which is the signal
// callers use to write the list back to storage.
//
// # Ordering
//
// List order is the only ordering. New tasks are inserted at the head.
// Reorder moves one task to another task's position; both tasks must be
// visible under the current filter.
//
// # Validation
//
// ValidateBlob checks a stored value against the embedded JSON Schema
// (draft 2020-12) and then applies the checks a schema cannot express:
// unique ids and text that is not blank after trimming.
package todo
