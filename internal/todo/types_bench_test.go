package todo

import (
	"fmt"
	"testing"
)

func largeList(n int) []Task {
	tasks := make([]Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, Task{
			ID:        fmt.Sprintf("id-%04d", i),
			Text:      fmt.Sprintf("Task %d", i),
			Completed: i%3 == 0,
			CreatedAt: fixedTime,
		})
	}
	return tasks
}

// BenchmarkUnmarshal benchmarks decoding a stored list of 100 tasks.
func BenchmarkUnmarshal(b *testing.B) {
	data, err := Marshal(largeList(100))
	if err != nil {
		b.Fatalf("Marshal failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(data); err != nil {
			b.Fatalf("Unmarshal failed: %v", err)
		}
	}
}

// BenchmarkProject benchmarks the view projection over 1000 tasks.
func BenchmarkProject(b *testing.B) {
	tasks := largeList(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Project(tasks, FilterActive)
	}
}

// BenchmarkReorder benchmarks moving the last visible task to the top.
func BenchmarkReorder(b *testing.B) {
	s := NewState(largeList(1000))
	src := s.Tasks[len(s.Tasks)-1].ID
	dst := s.Tasks[0].ID

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Apply(s, Reorder(src, dst), Env{})
	}
}
