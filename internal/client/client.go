package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"planner/internal/dates"
	"planner/internal/handler"
	"planner/internal/model"
	"planner/internal/repository"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// Client is an HTTP implementation of the task store contract, talking to
// the planner server. The owner identity is carried by the bearer token; the
// owner argument on each call is accepted for interface compatibility but
// the server scopes every operation to the token's identity.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) List(ctx context.Context, owner string) ([]model.Task, error) {
	var responses []handler.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, http.StatusOK, &responses); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(responses))
	for _, response := range responses {
		task, err := toTask(response)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (c *Client) Create(ctx context.Context, owner string, task *model.Task) error {
	var response handler.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/tasks", toRequest(task), http.StatusCreated, &response); err != nil {
		return err
	}

	created, err := toTask(response)
	if err != nil {
		return err
	}
	*task = created
	return nil
}

func (c *Client) Update(ctx context.Context, owner string, task *model.Task) (*model.Task, error) {
	var response handler.TaskResponse
	path := "/tasks/" + task.ID.String()
	if err := c.do(ctx, http.MethodPut, path, toRequest(task), http.StatusOK, &response); err != nil {
		return nil, err
	}

	updated, err := toTask(response)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, http.StatusNoContent, nil)
}

// GenerateInstructions asks the server to produce and persist instructions
// for the task.
func (c *Client) GenerateInstructions(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var response handler.TaskResponse
	path := "/tasks/" + id.String() + "/instructions"
	if err := c.do(ctx, http.MethodPost, path, nil, http.StatusOK, &response); err != nil {
		return nil, err
	}

	updated, err := toTask(response)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError maps error responses back onto the store's error taxonomy so
// the collection controller behaves the same against either store.
func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return repository.ErrTaskNotFound
	case http.StatusBadRequest:
		return repository.ErrTitleRequired
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		if body.Error != "" {
			return fmt.Errorf("server error: %s", body.Error)
		}
		return fmt.Errorf("server error: unexpected status %d", resp.StatusCode)
	}
}

func toRequest(task *model.Task) handler.TaskRequest {
	req := handler.TaskRequest{
		Title:          task.Title,
		Description:    task.Description,
		EstimatedHours: task.EstimatedHours,
		Instructions:   task.Instructions,
		Label:          task.Label,
		Status:         task.Status,
	}
	if task.DueDate != nil {
		req.DueDate = task.DueDate.String()
	}
	if task.StartTime != nil {
		req.StartTime = *task.StartTime
	}
	if task.EndTime != nil {
		req.EndTime = *task.EndTime
	}
	return req
}

func toTask(response handler.TaskResponse) (model.Task, error) {
	id, err := uuid.Parse(response.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid task id %q: %w", response.ID, err)
	}

	task := model.Task{
		ID:             id,
		Title:          response.Title,
		Description:    response.Description,
		EstimatedHours: response.EstimatedHours,
		StartTime:      response.StartTime,
		EndTime:        response.EndTime,
		Instructions:   response.Instructions,
		Label:          response.Label,
		Status:         response.Status,
	}
	if response.DueDate != nil {
		dueDate, err := dates.Parse(*response.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		task.DueDate = &dueDate
	}
	return task, nil
}
