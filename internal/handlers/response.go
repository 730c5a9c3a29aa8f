package handlers

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/user-directory/internal/models"
)

// UserResponse is the public representation of a user record.
// The full name is derived at read time; the password hash is never exposed.
// swagger:model UserResponse
type UserResponse struct {
	// User id
	UserID uuid.UUID `json:"user_id"`

	// Given name
	// default: Alice
	FirstName string `json:"first_name"`

	// Family name
	// default: Smith
	LastName string `json:"last_name"`

	// Derived display name
	// default: Alice Smith
	FullName string `json:"full_name"`

	// Email
	// default: alice@example.com
	Email string `json:"email"`

	// Optional age
	Age *int `json:"age,omitempty"`

	// Optional city
	City *string `json:"city,omitempty"`
}

// newUserResponse builds the public view of a user record.
func newUserResponse(u models.UserDB) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Age:       u.Age,
		City:      u.City,
	}
}

// newUserResponses builds the public view of a list of user records.
func newUserResponses(users []models.UserDB) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

// ErrorResponse is the uniform error body. Fields carries per-field detail
// for validation failures and is omitted otherwise.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`

	// Per-field validation detail
	Fields map[string]string `json:"fields,omitempty"`
}
