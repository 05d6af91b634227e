package models

import (
	"time"

	"github.com/google/uuid"
)

// Role gates what an authenticated user may do.
type Role string

const (
	// RoleAdmin may read and mutate the ledger.
	RoleAdmin Role = "admin"
	// RoleViewer may only read.
	RoleViewer Role = "viewer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// CanWrite is the whole authorization policy: reads are open to any
// authenticated role, writes require admin.
func (r Role) CanWrite() bool {
	return r == RoleAdmin
}

// User represents a login account. Users are created at provisioning time
// (the seed command) and never mutated by the service.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique login name.
	Username string

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string

	// Role is admin or viewer.
	Role Role

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser builds a user with a fresh ID and creation timestamp.
func NewUser(username, passwordHash string, role Role) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().Unix(),
	}
}
