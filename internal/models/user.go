package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	FirstName    string    `json:"first_name" db:"first_name"` // Given name
	LastName     string    `json:"last_name" db:"last_name"`   // Family name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, never serialized
	Age          *int      `json:"age,omitempty" db:"age"`     // Optional age
	City         *string   `json:"city,omitempty" db:"city"`   // Optional city
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// FullName returns the display name derived from first and last name.
// It is computed at read time and never stored.
func (u *UserDB) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserUpdate is a partial update of a user record. Nil fields are left unchanged.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"` // Plaintext, re-hashed by the service layer
	Age       *int    `json:"age,omitempty"`
	City      *string `json:"city,omitempty"`
}
