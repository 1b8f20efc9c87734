package todo

// applyReorder resolves source and destination against the visible list,
// maps both visible positions back to their slots in the full list, and
// moves the source into the destination's slot. Every other task keeps its
// relative order.
func applyReorder(s State, sourceID, destID string) (State, bool) {
	if sourceID == "" || destID == "" || sourceID == destID {
		return s, false
	}

	slots := visibleSlots(s.Tasks, s.Filter)
	from, to := -1, -1
	for _, slot := range slots {
		switch s.Tasks[slot].ID {
		case sourceID:
			from = slot
		case destID:
			to = slot
		}
	}
	if from < 0 || to < 0 {
		return s, false
	}

	s.Tasks = MoveTask(s.Tasks, from, to)
	return s, true
}

// visibleSlots returns the full-list index of every task visible under f,
// in display order.
func visibleSlots(tasks []Task, f Filter) []int {
	slots := make([]int, 0, len(tasks))
	for i, t := range tasks {
		if f.Match(t) {
			slots = append(slots, i)
		}
	}
	return slots
}

// MoveTask returns a copy of tasks with the element at from moved to index
// to. Out-of-range indices return an unmodified copy.
func MoveTask(tasks []Task, from, to int) []Task {
	out := cloneTasks(tasks)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
