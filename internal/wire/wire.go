// Package wire describes the JSON shapes exchanged with the task backend.
package wire

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// User is an element of GET /users and GET /teams/{id}/members.
type User struct {
	ID       int64  `json:"id" validate:"required"`
	Username string `json:"username"`
}

// Team is an element of GET /teams and the body of POST /teams responses.
type Team struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// Task is an element of GET /tasks/get-task and the body of task mutations.
type Task struct {
	ID           int64   `json:"id" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	TeamID       int64   `json:"team_id" validate:"required"`
	AssignedToID *int64  `json:"assigned_to_id"`
	AssignedByID *int64  `json:"assigned_by_id"`
	DueDate      *Date   `json:"due_date"`
	Status       string  `json:"status" validate:"oneof='To Do' 'In Progress' 'Done'"`
}

// TaskPayload is the sanitized task sent on create and update. assigned_by_id
// is set by the backend and never sent.
type TaskPayload struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	TeamID       int64   `json:"team_id"`
	DueDate      *Date   `json:"due_date"`
	Status       string  `json:"status"`
	AssignedToID *int64  `json:"assigned_to_id,omitempty"`
}

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest is the body of POST /teams/{id}/members.
type AddMemberRequest struct {
	UserID int64 `json:"userId"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful POST /auth/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the body of a successful POST /auth/register.
type RegisterResponse struct {
	Success bool `json:"success"`
}

// ErrorBody covers the error shapes the backend answers with.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Errors  []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// Date is a calendar day. It accepts "2006-01-02" as well as full timestamps,
// of which only the date part is kept.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	d.Time = t
	return nil
}
