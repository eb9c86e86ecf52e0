// Package entities contains core business entities.
package entities

// User is a backend account that can belong to teams and be assigned tasks.
type User struct {
	ID       int64
	Username string
}
