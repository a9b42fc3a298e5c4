package taskview

import (
	"sort"
	"strings"
	"time"
	"unicode/utf16"

	"planner/internal/dates"
	"planner/internal/model"
)

// DefaultColor is the bucket used for tasks without a label.
const DefaultColor = "gray"

// palette is the fixed ordered set of label color buckets. Colors are never
// stored; clients recompute them from the label on every read, so both the
// palette and the hash below must stay stable.
var palette = [8]string{
	"purple", "indigo", "pink", "teal",
	"orange", "lime", "cyan", "fuchsia",
}

// IsOverdue reports whether the task's due date has passed relative to now.
// A task with no due date is never overdue, and neither is a completed one.
// Both sides are truncated to the local calendar day before comparing.
func IsOverdue(task model.Task, now time.Time) bool {
	if task.DueDate == nil || task.Status == model.StatusCompleted {
		return false
	}
	return task.DueDate.Before(dates.DateOf(now))
}

// LabelColor maps a free-text label onto one of eight color buckets using a
// multiplier-31 rolling hash over the label's UTF-16 code units. The exact
// recurrence, including the 32-bit wrap at the shift, is load-bearing: the
// same label must land in the same bucket on every platform and every run.
func LabelColor(label string) string {
	if label == "" {
		return DefaultColor
	}
	var hash int64
	for _, unit := range utf16.Encode([]rune(label)) {
		hash = int64(unit) + int64(int32(hash)<<5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	return palette[hash%int64(len(palette))]
}

// Compare orders tasks by due date ascending with absent dates last, breaking
// ties on start time only when both tasks have one. Returns -1, 0 or +1.
func Compare(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		if c := a.DueDate.Compare(*b.DueDate); c != 0 {
			return c
		}
	}
	if a.StartTime != nil && b.StartTime != nil {
		return strings.Compare(*a.StartTime, *b.StartTime)
	}
	return 0
}

// SortTasks sorts tasks in place, stably, using Compare.
func SortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Compare(tasks[i], tasks[j]) < 0
	})
}
