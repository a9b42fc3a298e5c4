package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planner/internal/dates"
	"planner/internal/middleware"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/taskview"
)

// InstructionsGenerator is the text-generation collaborator: text in, text
// out, may fail.
type InstructionsGenerator interface {
	Enabled() bool
	GenerateInstructions(ctx context.Context, title, description string) (string, error)
}

type TaskHandler struct {
	taskRepo  repository.TaskRepositoryInterface
	generator InstructionsGenerator
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface, generator InstructionsGenerator) *TaskHandler {
	return &TaskHandler{
		taskRepo:  taskRepo,
		generator: generator,
	}
}

// TaskRequest is the request body for creating or fully replacing a task.
// Updates carry every field; there is no partial patch.
type TaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
	DueDate        string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime      string   `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime        string   `json:"end_time" binding:"omitempty,datetime=15:04"`
	Instructions   string   `json:"instructions"`
	Label          string   `json:"label"`
	Status         string   `json:"status" binding:"omitempty,oneof=doing completed"`
}

// StatusRequest is the request body for a status-only change.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=doing completed"`
}

// TaskResponse is the task representation sent to clients. LabelColor is
// derived from the label on every read, never stored.
type TaskResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	StartTime      *string  `json:"start_time,omitempty"`
	EndTime        *string  `json:"end_time,omitempty"`
	Instructions   string   `json:"instructions,omitempty"`
	Label          string   `json:"label,omitempty"`
	LabelColor     string   `json:"label_color"`
	Status         string   `json:"status"`
}

func toTaskResponse(task model.Task) TaskResponse {
	response := TaskResponse{
		ID:             task.ID.String(),
		Title:          task.Title,
		Description:    task.Description,
		EstimatedHours: task.EstimatedHours,
		StartTime:      task.StartTime,
		EndTime:        task.EndTime,
		Instructions:   task.Instructions,
		Label:          task.Label,
		LabelColor:     taskview.LabelColor(task.Label),
		Status:         task.Status,
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.String()
		response.DueDate = &dueDate
	}
	return response
}

func toTaskResponses(tasks []model.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses
}

func (req *TaskRequest) toModel() (model.Task, error) {
	task := model.Task{
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		Instructions:   req.Instructions,
		Label:          req.Label,
		Status:         req.Status,
	}
	if req.DueDate != "" {
		dueDate, err := dates.Parse(req.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		task.DueDate = &dueDate
	}
	if req.StartTime != "" {
		startTime := req.StartTime
		task.StartTime = &startTime
	}
	if req.EndTime != "" {
		endTime := req.EndTime
		task.EndTime = &endTime
	}
	return task, nil
}

// ownerID extracts the authenticated owner identity from the context,
// writing the error response itself when it is missing.
func ownerID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}

	owner, ok := value.(string)
	if !ok || owner == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return "", false
	}
	return owner, true
}

// List returns the owner's full collection, due date then start time.
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks. Please try again."})
		return
	}

	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Create inserts a new task for the owner.
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
		return
	}

	if err := h.taskRepo.Create(c.Request.Context(), owner, &task); err != nil {
		if errors.Is(err, repository.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add task. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetByID returns a single task owned by the caller.
func (h *TaskHandler) GetByID(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), owner, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task. Please try again."})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Update fully replaces the task matching the id and the caller.
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
		return
	}
	task.ID = taskID

	updated, err := h.taskRepo.Update(c.Request.Context(), owner, &task)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(*updated))
}

// Delete removes the task matching the id and the caller.
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), owner, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task. Please try again."})
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStatus performs a full update with only the status replaced.
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be doing or completed"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), owner, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task. Please try again."})
		return
	}

	task.Status = req.Status
	updated, err := h.taskRepo.Update(c.Request.Context(), owner, task)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(*updated))
}

// GenerateInstructions asks the text-generation collaborator for step-by-step
// instructions and persists them through a full update.
func (h *TaskHandler) GenerateInstructions(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if h.generator == nil || !h.generator.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Instruction generation is not configured"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), owner, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task. Please try again."})
		return
	}

	instructions, err := h.generator.GenerateInstructions(c.Request.Context(), task.Title, task.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate instructions. Please try again later."})
		return
	}

	task.Instructions = instructions
	updated, err := h.taskRepo.Update(c.Request.Context(), owner, task)
	if err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(*updated))
}

func (h *TaskHandler) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required."})
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task. Please try again."})
	}
}
