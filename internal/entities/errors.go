// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation signals a form rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized signals a missing or expired session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTransport signals that the backend could not be reached.
	ErrTransport = errors.New("transport failure")
	// ErrDecode signals a response body of unexpected shape.
	ErrDecode = errors.New("unexpected response shape")
	// ErrNoToken signals a login response without a session token.
	ErrNoToken = errors.New("no token received")
	// ErrRegistrationRejected signals a register response with success=false.
	ErrRegistrationRejected = errors.New("registration rejected")
)

// APIError is a failed backend call. Status is zero for network failures.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("api error %d", e.Status)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Is makes every 401 match ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// ValidationError is a local form error carrying the message shown to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ActionError is a failed user action with a human-readable message.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }

func (e *ActionError) Unwrap() error { return e.Err }
