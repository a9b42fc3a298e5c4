package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planner/internal/dates"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/taskview"
)

// ViewHandler serves the date-bucketed projections of the owner's
// collection. Pure projection over the store's list, no extra persistence.
type ViewHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewViewHandler(taskRepo repository.TaskRepositoryInterface) *ViewHandler {
	return &ViewHandler{taskRepo: taskRepo}
}

// TodayViewResponse is the today partition: doing, overdue and completed
// tasks due on the current calendar day.
type TodayViewResponse struct {
	Date      string         `json:"date"`
	Doing     []TaskResponse `json:"doing"`
	Overdue   []TaskResponse `json:"overdue"`
	Completed []TaskResponse `json:"completed"`
}

// RangeViewResponse is the week or month projection, sorted by due date then
// start time.
type RangeViewResponse struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Tasks []TaskResponse `json:"tasks"`
}

// Today returns today's tasks split by status.
func (h *ViewHandler) Today(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks. Please try again."})
		return
	}

	now := time.Now()
	view := taskview.ComposeToday(tasks, now)
	c.JSON(http.StatusOK, TodayViewResponse{
		Date:      dateString(now),
		Doing:     toTaskResponses(view.Doing),
		Overdue:   toTaskResponses(view.Overdue),
		Completed: toTaskResponses(view.Completed),
	})
}

// Week returns the tasks due in the current Mon-Sun week.
func (h *ViewHandler) Week(c *gin.Context) {
	h.rangeView(c, taskview.ComposeWeek, startEndOfWeek)
}

// Month returns the tasks due in the current calendar month.
func (h *ViewHandler) Month(c *gin.Context) {
	h.rangeView(c, taskview.ComposeMonth, startEndOfMonth)
}

type composeFunc func(tasks []model.Task, now time.Time) []model.Task

type boundsFunc func(now time.Time) (string, string)

func startEndOfWeek(now time.Time) (string, string) {
	start, end := dates.WeekOf(now)
	return start.String(), end.String()
}

func startEndOfMonth(now time.Time) (string, string) {
	start, end := dates.MonthOf(now)
	return start.String(), end.String()
}

func dateString(now time.Time) string {
	return dates.DateOf(now).String()
}

func (h *ViewHandler) rangeView(
	c *gin.Context,
	compose composeFunc,
	bounds boundsFunc,
) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks. Please try again."})
		return
	}

	now := time.Now()
	start, end := bounds(now)
	c.JSON(http.StatusOK, RangeViewResponse{
		Start: start,
		End:   end,
		Tasks: toTaskResponses(compose(tasks, now)),
	})
}
