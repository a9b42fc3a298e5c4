package taskview

import (
	"time"

	"planner/internal/dates"
	"planner/internal/model"
)

// TodayView is the today partition: tasks due today split by status, with
// overdue doing tasks separated out.
type TodayView struct {
	Doing     []model.Task
	Overdue   []model.Task
	Completed []model.Task
}

// ComposeToday selects the tasks due on now's calendar date and splits them
// into doing, overdue and completed. Tasks without a due date never appear.
func ComposeToday(tasks []model.Task, now time.Time) TodayView {
	today := dates.DateOf(now)
	view := TodayView{
		Doing:     []model.Task{},
		Overdue:   []model.Task{},
		Completed: []model.Task{},
	}
	for _, task := range tasks {
		if task.DueDate == nil || *task.DueDate != today {
			continue
		}
		switch {
		case task.Status == model.StatusCompleted:
			view.Completed = append(view.Completed, task)
		case IsOverdue(task, now):
			view.Overdue = append(view.Overdue, task)
		default:
			view.Doing = append(view.Doing, task)
		}
	}
	return view
}

// ComposeWeek returns the tasks due in the Mon-Sun week containing now,
// sorted by due date then start time.
func ComposeWeek(tasks []model.Task, now time.Time) []model.Task {
	start, end := dates.WeekOf(now)
	return composeRange(tasks, start, end)
}

// ComposeMonth returns the tasks due in the calendar month containing now,
// sorted by due date then start time.
func ComposeMonth(tasks []model.Task, now time.Time) []model.Task {
	start, end := dates.MonthOf(now)
	return composeRange(tasks, start, end)
}

func composeRange(tasks []model.Task, start, end dates.Date) []model.Task {
	selected := []model.Task{}
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(start) || task.DueDate.After(end) {
			continue
		}
		selected = append(selected, task)
	}
	SortTasks(selected)
	return selected
}
