package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row of the users table
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, assigned by the store
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Contact email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User event types
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// UserEvent is published after a user is created, updated or deleted
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	User       *User     `json:"user,omitempty"` // Absent for deletions
	OccurredAt time.Time `json:"occurred_at"`
}
