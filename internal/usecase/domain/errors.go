package domain

import (
	"errors"

	"taskflow/internal/entities"

	"github.com/go-playground/validator/v10"
)

const (
	msgFetchFailed    = "Failed to fetch data"
	msgSaveTask       = "Failed to save task"
	msgDeleteTask     = "Failed to delete task"
	msgCreateTeam     = "Failed to create team"
	msgDeleteTeam     = "Failed to delete team"
	msgAddMember      = "Failed to add member"
	msgLoginFailed    = "Login failed"
	msgNoToken        = "Login failed: No token received"
	msgRegisterFailed = "Registration failed"
	msgInvalidInput   = "Invalid input"
)

// fieldMessages maps a struct namespace, optionally suffixed with the failed
// tag, to the message shown for it.
var fieldMessages = map[string]string{
	"LoginDraft.Email":               "Please enter a valid email address",
	"LoginDraft.Password":            "Password must be at least 6 characters long",
	"RegisterDraft.Username":         "Username is required",
	"RegisterDraft.Email":            "Please enter a valid email address",
	"RegisterDraft.Password.eqfield": "Passwords do not match",
	"RegisterDraft.Password":         "Password must be at least 6 characters long",
	"RegisterDraft.AcceptTerms":      "Please accept the terms and conditions",
	"TaskDraft.Title":                "Title is required",
	"TaskDraft.TeamID":               "Please select a team",
	"TaskDraft.Status":               "Please select a valid status",
	"TeamDraft.Name":                 "Team name is required",
	"MemberDraft.TeamID":             "Please select a team",
	"MemberDraft.UserID":             "Please select a user",
}

// check validates a draft and returns the first failure as a ValidationError.
func (u *Usecase) check(draft any) error {
	err := u.validate.Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &entities.ValidationError{Message: msgInvalidInput}
	}

	fe := fieldErrs[0]
	msg, ok := fieldMessages[fe.StructNamespace()+"."+fe.Tag()]
	if !ok {
		msg, ok = fieldMessages[fe.StructNamespace()]
	}
	if !ok {
		msg = msgInvalidInput
	}
	return &entities.ValidationError{Field: fe.StructField(), Message: msg}
}

// actionError wraps a backend failure with the server message, or fallback
// when the server sent none.
func actionError(err error, fallback string) error {
	msg := fallback
	var apiErr *entities.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return &entities.ActionError{Message: msg, Err: err}
}

// fail logs a failed action and converts it for display. A 401 drops the
// loaded data; the caller is sent back to login.
func (u *Usecase) fail(op string, err error, fallback string) error {
	if errors.Is(err, entities.ErrUnauthorized) {
		u.log.Warnw("session rejected", "op", op, "err", err)
		u.store.Reset()
	} else {
		u.log.Errorw("action failed", "op", op, "err", err)
	}
	return actionError(err, fallback)
}
