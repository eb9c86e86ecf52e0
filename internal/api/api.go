// Package api holds the JSON documents served by the dashboard surface.
package api

// User is a selectable user.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Team is a sidebar entry.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	Members     []User `json:"members"`
	Candidates  []User `json:"candidates"`
}

// Task is a rendered task row.
type Task struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	TeamID         int64   `json:"team_id"`
	TeamName       string  `json:"team_name"`
	AssignedToID   *int64  `json:"assigned_to_id"`
	AssignedToName string  `json:"assigned_to_name"`
	AssignedByID   int64   `json:"assigned_by_id"`
	AssignedByName string  `json:"assigned_by_name"`
	DueDate        string  `json:"due_date"`
	Status         string  `json:"status"`
}

// Filters is the active filter state.
type Filters struct {
	TeamID     int64  `json:"team_id"`
	AssigneeID int64  `json:"assignee_id"`
	Search     string `json:"search"`
}

// Dashboard is the full view of GET /api/dashboard.
type Dashboard struct {
	CurrentUserID   int64   `json:"current_user_id"`
	Teams           []Team  `json:"teams"`
	Tasks           []Task  `json:"tasks"`
	TotalTasks      int     `json:"total_tasks"`
	Filters         Filters `json:"filters"`
	AssigneeOptions []User  `json:"assignee_options"`
	Users           []User  `json:"users"`
	EmptyHint       string  `json:"empty_hint,omitempty"`
}

// FiltersRequest is the body of PATCH /api/dashboard/filters. Absent fields
// keep their current value.
type FiltersRequest struct {
	TeamID     *int64  `json:"team_id"`
	AssigneeID *int64  `json:"assignee_id"`
	Search     *string `json:"search"`
}

// TaskRequest is the body of POST /api/tasks and PUT /api/tasks/:id.
type TaskRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	TeamID       int64   `json:"team_id"`
	AssignedToID *int64  `json:"assigned_to_id"`
	DueDate      *string `json:"due_date"`
	Status       string  `json:"status"`
}

// TeamRequest is the body of POST /api/teams.
type TeamRequest struct {
	Name string `json:"name"`
}

// MemberRequest is the body of POST /api/teams/:id/members.
type MemberRequest struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AcceptTerms     bool   `json:"accept_terms"`
}

// AuthResponse tells the caller where to navigate next.
type AuthResponse struct {
	State    string `json:"state"`
	Redirect string `json:"redirect"`
	Message  string `json:"message,omitempty"`
}

// ErrorResponse is every error body. Redirect is set when the session is gone.
type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}
