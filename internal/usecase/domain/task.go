package domain

import (
	"context"
	"strings"

	"taskflow/internal/entities"
)

// SaveTask creates the task when draft.ID is zero and updates it otherwise.
func (u *Usecase) SaveTask(ctx context.Context, draft entities.TaskDraft) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	draft.Title = strings.TrimSpace(draft.Title)
	if err := u.check(draft); err != nil {
		return nil, err
	}

	if draft.ID == 0 {
		task, err := u.repo.CreateTask(ctx, draft)
		if err != nil {
			return nil, u.fail("create task", err, msgSaveTask)
		}
		u.store.AppendTask(*task)
		u.log.Infow("task created", "task_id", task.ID, "team_id", task.TeamID)
		return task, nil
	}

	task, err := u.repo.UpdateTask(ctx, draft.ID, draft)
	if err != nil {
		return nil, u.fail("update task", err, msgSaveTask)
	}
	if !u.store.ReplaceTask(*task) {
		u.log.Debugw("updated task not in store", "task_id", task.ID)
	}
	u.log.Infow("task updated", "task_id", task.ID)
	return task, nil
}

// DeleteTask deletes a task and drops it from the store.
func (u *Usecase) DeleteTask(ctx context.Context, taskID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID <= 0 {
		return &entities.ValidationError{Field: "ID", Message: "Please select a task"}
	}
	if err := u.repo.DeleteTask(ctx, taskID); err != nil {
		return u.fail("delete task", err, msgDeleteTask)
	}
	u.store.RemoveTask(taskID)
	u.log.Infow("task deleted", "task_id", taskID)
	return nil
}
