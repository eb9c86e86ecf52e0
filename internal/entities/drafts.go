package entities

import "time"

// LoginDraft is the login form.
type LoginDraft struct {
	Email    string `validate:"required,simple_email"`
	Password string `validate:"required,min=6"`
}

// RegisterDraft is the registration form.
type RegisterDraft struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,simple_email"`
	Password        string `validate:"required,eqfield=ConfirmPassword,min=6"`
	ConfirmPassword string
	AcceptTerms     bool `validate:"required"`
}

// TaskDraft is the create/edit task form. A zero ID creates a new task.
type TaskDraft struct {
	ID           int64
	Title        string `validate:"required"`
	Description  *string
	TeamID       int64 `validate:"required"`
	AssignedToID *int64
	DueDate      *time.Time
	Status       TaskStatus `validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
}

// TeamDraft is the create team form.
type TeamDraft struct {
	Name string `validate:"required"`
}

// MemberDraft is the add member form.
type MemberDraft struct {
	TeamID int64 `validate:"required"`
	UserID int64 `validate:"required"`
}
