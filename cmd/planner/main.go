package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"planner/internal/client"
	"planner/internal/collection"
	"planner/internal/dates"
	"planner/internal/model"
	"planner/internal/taskview"
)

func main() {
	// 1. Parse flags
	server := flag.String("server", "http://localhost:8080", "Planner server base URL")
	token := flag.String("token", os.Getenv("PLANNER_TOKEN"), "Bearer token (defaults to PLANNER_TOKEN)")
	view := flag.String("view", "all", "View to print: all, today, week or month")
	add := flag.String("add", "", "Title of a task to add")
	desc := flag.String("desc", "", "Description for -add")
	due := flag.String("due", "", "Due date (YYYY-MM-DD) for -add")
	start := flag.String("start", "", "Start time (HH:MM) for -add")
	end := flag.String("end", "", "End time (HH:MM) for -add")
	label := flag.String("label", "", "Label for -add")
	hours := flag.Float64("hours", 0, "Estimated hours for -add")
	done := flag.String("done", "", "ID of a task to mark completed")
	remove := flag.String("delete", "", "ID of a task to delete")
	flag.Parse()

	if *token == "" {
		log.Fatal("a bearer token is required: pass -token or set PLANNER_TOKEN")
	}

	// 2. Build the controller over the HTTP store. The owner identity lives
	// in the token; the controller just needs a non-empty key for it.
	ctx := context.Background()
	store := client.New(*server, *token)
	ctrl := collection.New(store)
	ctrl.SetOwner(ctx, *token)
	if ctrl.State() == collection.StateError {
		log.Fatalf("Error: %s", ctrl.ErrorMessage())
	}

	// 3. Apply the requested mutation, if any
	switch {
	case *add != "":
		task := model.Task{
			Title:       *add,
			Description: *desc,
			Label:       *label,
		}
		if *hours > 0 {
			task.EstimatedHours = hours
		}
		if *due != "" {
			parsed, err := parseDue(*due)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			task.DueDate = parsed
		}
		if *start != "" {
			task.StartTime = start
		}
		if *end != "" {
			task.EndTime = end
		}
		report(ctrl.Add(ctx, task))

	case *done != "":
		id, err := uuid.Parse(*done)
		if err != nil {
			log.Fatalf("Error: invalid task id %q", *done)
		}
		report(ctrl.ChangeStatus(ctx, id, model.StatusCompleted))

	case *remove != "":
		id, err := uuid.Parse(*remove)
		if err != nil {
			log.Fatalf("Error: invalid task id %q", *remove)
		}
		report(ctrl.Delete(ctx, id))
	}

	// 4. Print the requested view
	now := time.Now()
	tasks := ctrl.Tasks()
	switch *view {
	case "all":
		printTasks(tasks, now)
	case "today":
		today := taskview.ComposeToday(tasks, now)
		printSection("Doing", today.Doing, now)
		printSection("Overdue", today.Overdue, now)
		printSection("Completed", today.Completed, now)
	case "week":
		printTasks(taskview.ComposeWeek(tasks, now), now)
	case "month":
		printTasks(taskview.ComposeMonth(tasks, now), now)
	default:
		log.Fatalf("Error: unknown view %q", *view)
	}
}

func parseDue(s string) (*dates.Date, error) {
	parsed, err := dates.Parse(s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func report(result collection.Result) {
	if !result.OK {
		log.Fatalf("Error: %s", result.Message)
	}
	fmt.Println(result.Message)
}

func printSection(name string, tasks []model.Task, now time.Time) {
	fmt.Printf("%s (%d)\n", name, len(tasks))
	printTasks(tasks, now)
	fmt.Println()
}

func printTasks(tasks []model.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("  no tasks")
		return
	}
	for _, task := range tasks {
		fmt.Println("  " + formatTask(task, now))
	}
}

func formatTask(task model.Task, now time.Time) string {
	mark := "[ ]"
	switch {
	case task.Status == model.StatusCompleted:
		mark = "[x]"
	case taskview.IsOverdue(task, now):
		mark = "[!]"
	}

	line := fmt.Sprintf("%s %s  %s", mark, task.ID, task.Title)
	if task.DueDate != nil {
		line += "  due " + task.DueDate.String()
	}
	if task.StartTime != nil {
		line += " " + *task.StartTime
		if task.EndTime != nil {
			line += "-" + *task.EndTime
		}
	}
	if task.Label != "" {
		line += fmt.Sprintf("  #%s(%s)", task.Label, taskview.LabelColor(task.Label))
	}
	return line
}
