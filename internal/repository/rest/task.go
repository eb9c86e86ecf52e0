package rest

import (
	"context"
	"fmt"
	"net/http"

	"taskflow/internal/entities"
	"taskflow/internal/mapper"
	"taskflow/internal/wire"
)

// ListTasks returns every task visible to the session.
func (c *Client) ListTasks(ctx context.Context) ([]entities.Task, error) {
	raw, err := c.do(ctx, http.MethodGet, "tasks/get-task", nil)
	if err != nil {
		return nil, err
	}
	list, err := wire.DecodeTasks(raw)
	if err != nil {
		return nil, err
	}
	return mapper.FromWireTasks(list), nil
}

// CreateTask posts a sanitized draft and returns the stored task.
func (c *Client) CreateTask(ctx context.Context, draft entities.TaskDraft) (*entities.Task, error) {
	raw, err := c.do(ctx, http.MethodPost, "tasks/create-task", mapper.ToTaskPayload(draft))
	if err != nil {
		return nil, err
	}
	return decodeTask(raw)
}

// UpdateTask replaces a task with a sanitized draft and returns the stored task.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, draft entities.TaskDraft) (*entities.Task, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("tasks/%d", taskID), mapper.ToTaskPayload(draft))
	if err != nil {
		return nil, err
	}
	return decodeTask(raw)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("tasks/%d", taskID), nil)
	return err
}

func decodeTask(raw []byte) (*entities.Task, error) {
	t, err := wire.DecodeTask(raw)
	if err != nil {
		return nil, err
	}
	task := mapper.FromWireTask(t)
	return &task, nil
}
