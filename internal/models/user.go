package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles carried in the token role claim.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// UserDB represents a gateway user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	Role         string    `json:"role" db:"role"`             // Admin or User
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
