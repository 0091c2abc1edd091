// Package domain contains the core concepts of the messaging engine.
// No runtime, network, or UI logic should be added here.
package domain

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Participant is created by the directory at registration time and
// immutable for the lifetime of a session.
type Participant struct {
	ID     string `validate:"required"`
	Name   string `validate:"required"`
	Role   Role   `validate:"required,oneof=student instructor"`
	Email  string `validate:"omitempty,email"`
	Avatar string
}
