// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusToDo marks a task that has not been started.
	StatusToDo TaskStatus = "To Do"
	// StatusInProgress marks a task that is being worked on.
	StatusInProgress TaskStatus = "In Progress"
	// StatusDone marks a finished task.
	StatusDone TaskStatus = "Done"
)

// Task is a unit of work owned by a team.
type Task struct {
	ID           int64
	Title        string
	Description  *string
	TeamID       int64
	AssignedToID *int64
	AssignedByID int64
	DueDate      *time.Time
	Status       TaskStatus
}
