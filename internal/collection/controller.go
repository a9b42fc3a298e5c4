package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"planner/internal/model"
)

// TaskStore is the persistence contract the controller drives. It is
// satisfied by both the gorm repository and the HTTP client, so the same
// controller works in-process and against a remote server.
type TaskStore interface {
	List(ctx context.Context, owner string) ([]model.Task, error)
	Create(ctx context.Context, owner string, task *model.Task) error
	Update(ctx context.Context, owner string, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

// State is the controller's loading state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

// Result reports the outcome of a mutating action with a human-readable
// message suitable for a dismissible notice.
type Result struct {
	OK      bool
	Message string
}

// Controller holds the single owner-scoped task collection. Every mutation
// goes through the store and is followed by a full refetch; there is no
// optimistic local patching, by design. A failed operation never clobbers the
// last successfully loaded collection.
type Controller struct {
	store TaskStore

	mu     sync.Mutex
	owner  string
	state  State
	tasks  []model.Task
	errMsg string
	seq    uint64
}

func New(store TaskStore) *Controller {
	return &Controller{store: store, state: StateLoading}
}

// SetOwner records the owner identity and reloads the collection. With an
// empty owner the controller stays in the loading state.
func (c *Controller) SetOwner(ctx context.Context, owner string) {
	c.mu.Lock()
	c.owner = owner
	c.mu.Unlock()
	c.Refresh(ctx)
}

// Refresh refetches the collection from the store. Each refresh supersedes
// any still in flight: a fetch that completes after a newer one started is
// discarded, so out-of-order completions cannot clobber newer state.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	owner := c.owner
	if owner == "" {
		c.state = StateLoading
		c.mu.Unlock()
		return nil
	}
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	tasks, err := c.store.List(ctx, owner)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// A newer refresh owns the state now.
		return nil
	}
	if err != nil {
		c.state = StateError
		c.errMsg = "Failed to load tasks. Please try again."
		return err
	}
	c.tasks = tasks
	c.state = StateReady
	c.errMsg = ""
	return nil
}

// Tasks returns a copy of the last successfully loaded collection.
func (c *Controller) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	tasks := make([]model.Task, len(c.tasks))
	copy(tasks, c.tasks)
	return tasks
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ErrorMessage returns the notice for the last failed load, if any.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) currentOwner() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner, c.owner != ""
}

// Add creates a task and refetches the collection.
func (c *Controller) Add(ctx context.Context, task model.Task) Result {
	owner, ok := c.currentOwner()
	if !ok {
		return Result{OK: false, Message: "No signed-in user."}
	}
	if err := c.store.Create(ctx, owner, &task); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("Failed to add task: %v", err)}
	}
	c.Refresh(ctx)
	return Result{OK: true, Message: "Task added successfully!"}
}

// Update replaces a task and refetches the collection.
func (c *Controller) Update(ctx context.Context, task model.Task) Result {
	owner, ok := c.currentOwner()
	if !ok {
		return Result{OK: false, Message: "No signed-in user."}
	}
	if _, err := c.store.Update(ctx, owner, &task); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("Failed to update task: %v", err)}
	}
	c.Refresh(ctx)
	return Result{OK: true, Message: "Task updated successfully!"}
}

// Delete removes a task and refetches the collection.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) Result {
	owner, ok := c.currentOwner()
	if !ok {
		return Result{OK: false, Message: "No signed-in user."}
	}
	if err := c.store.Delete(ctx, owner, id); err != nil {
		return Result{OK: false, Message: fmt.Sprintf("Failed to delete task: %v", err)}
	}
	c.Refresh(ctx)
	return Result{OK: true, Message: "Task deleted successfully!"}
}

// ChangeStatus looks the task up locally and, when present, performs a full
// update with only the status replaced. An unknown id fails without touching
// the store.
func (c *Controller) ChangeStatus(ctx context.Context, id uuid.UUID, status string) Result {
	c.mu.Lock()
	var found *model.Task
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			task := c.tasks[i]
			found = &task
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		return Result{OK: false, Message: "No task found to update status."}
	}
	found.Status = status
	return c.Update(ctx, *found)
}
