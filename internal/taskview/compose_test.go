package taskview_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planner/internal/model"
	"planner/internal/taskview"
)

// Wednesday 2025-06-11; its week runs Mon 2025-06-09 through Sun 2025-06-15.
var now = time.Date(2025, 6, 11, 14, 0, 0, 0, time.Local)

func TestComposeToday_SplitsByStatus(t *testing.T) {
	tasks := []model.Task{
		{Title: "due today doing", DueDate: dueOn("2025-06-11"), Status: model.StatusDoing},
		{Title: "due today completed", DueDate: dueOn("2025-06-11"), Status: model.StatusCompleted},
		{Title: "due tomorrow", DueDate: dueOn("2025-06-12"), Status: model.StatusDoing},
		{Title: "due yesterday", DueDate: dueOn("2025-06-10"), Status: model.StatusDoing},
		{Title: "undated", Status: model.StatusDoing},
	}

	view := taskview.ComposeToday(tasks, now)

	assert.Len(t, view.Doing, 1)
	assert.Equal(t, "due today doing", view.Doing[0].Title)
	assert.Len(t, view.Completed, 1)
	assert.Equal(t, "due today completed", view.Completed[0].Title)
	// A task due on the current calendar day is by definition not yet
	// overdue, so with uniform date truncation this bucket stays empty.
	assert.Empty(t, view.Overdue)
}

func TestComposeWeek_FiltersAndSorts(t *testing.T) {
	tasks := []model.Task{
		{Title: "sunday", DueDate: dueOn("2025-06-15"), Status: model.StatusDoing},
		{Title: "monday late", DueDate: dueOn("2025-06-09"), StartTime: at("16:00"), Status: model.StatusDoing},
		{Title: "monday early", DueDate: dueOn("2025-06-09"), StartTime: at("08:30"), Status: model.StatusDoing},
		{Title: "previous sunday", DueDate: dueOn("2025-06-08"), Status: model.StatusDoing},
		{Title: "next monday", DueDate: dueOn("2025-06-16"), Status: model.StatusDoing},
		{Title: "undated", Status: model.StatusDoing},
	}

	week := taskview.ComposeWeek(tasks, now)

	titles := make([]string, 0, len(week))
	for _, task := range week {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"monday early", "monday late", "sunday"}, titles)
}

func TestComposeMonth_FiltersAndSorts(t *testing.T) {
	tasks := []model.Task{
		{Title: "last of june", DueDate: dueOn("2025-06-30"), Status: model.StatusDoing},
		{Title: "first of june", DueDate: dueOn("2025-06-01"), Status: model.StatusCompleted},
		{Title: "may", DueDate: dueOn("2025-05-31"), Status: model.StatusDoing},
		{Title: "july", DueDate: dueOn("2025-07-01"), Status: model.StatusDoing},
		{Title: "undated", Status: model.StatusDoing},
	}

	month := taskview.ComposeMonth(tasks, now)

	assert.Len(t, month, 2)
	assert.Equal(t, "first of june", month[0].Title)
	assert.Equal(t, "last of june", month[1].Title)
}

func TestCompose_UndatedTasksNeverAppear(t *testing.T) {
	tasks := []model.Task{
		{Title: "undated doing", Status: model.StatusDoing},
		{Title: "undated completed", Status: model.StatusCompleted},
	}

	today := taskview.ComposeToday(tasks, now)
	assert.Empty(t, today.Doing)
	assert.Empty(t, today.Overdue)
	assert.Empty(t, today.Completed)
	assert.Empty(t, taskview.ComposeWeek(tasks, now))
	assert.Empty(t, taskview.ComposeMonth(tasks, now))
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", DueDate: dueOn("2025-06-12")},
		{Title: "a", DueDate: dueOn("2025-06-09")},
	}

	taskview.ComposeWeek(tasks, now)

	assert.Equal(t, "b", tasks[0].Title)
	assert.Equal(t, "a", tasks[1].Title)
}
