package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planner/internal/model"
)

// taskColumns are the replaceable fields of a task. Updates always write all
// of them: the store has full-record-replace semantics, no partial patch.
var taskColumns = []string{
	"title", "description", "estimated_hours", "due_date",
	"start_time", "end_time", "instructions", "label", "status",
}

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	List(ctx context.Context, owner string) ([]model.Task, error)
	GetByID(ctx context.Context, owner string, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, owner string, task *model.Task) error
	Update(ctx context.Context, owner string, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List retrieves all tasks for the owner, due date ascending then start time
// ascending, with null dates last.
func (r *TaskRepository) List(ctx context.Context, owner string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("due_date ASC, start_time ASC").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByID retrieves a single task owned by owner.
func (r *TaskRepository) GetByID(ctx context.Context, owner string, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ? AND user_id = ?", id, owner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Create inserts a new task for the owner. The title must be non-empty and
// the status defaults to doing.
func (r *TaskRepository) Create(ctx context.Context, owner string, task *model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return ErrTitleRequired
	}
	task.UserID = owner
	if task.Status == "" {
		task.Status = model.StatusDoing
	}
	return r.db.WithContext(ctx).Create(task).Error
}

// Update replaces every replaceable field of the task matching (id, owner)
// and returns the stored record. A row owned by someone else is untouched and
// indistinguishable from an absent one.
func (r *TaskRepository) Update(ctx context.Context, owner string, task *model.Task) (*model.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return nil, ErrTitleRequired
	}
	if task.Status == "" {
		task.Status = model.StatusDoing
	}
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, owner).
		Select(taskColumns).
		Updates(task)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return r.GetByID(ctx, owner, task.ID)
}

// Delete removes the task matching (id, owner).
func (r *TaskRepository) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ? AND user_id = ?", id, owner)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
