package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/user-directory/internal/models"
)

// UserUpdater defines the interface that the user update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (*models.UserDB, error)
}

// UpdateUserRequest represents a partial user update.
// Only the fields present in the body are applied.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	// example: John
	FirstName *string `json:"first_name,omitempty"`

	// Last name
	// example: Doe
	LastName *string `json:"last_name,omitempty"`

	// Email address
	// example: john.doe@example.com
	Email *string `json:"email,omitempty"`

	// New password, stored hashed
	// example: s3cret42
	Password *string `json:"password,omitempty"`

	// Age in years
	// example: 30
	Age *int `json:"age,omitempty"`

	// City of residence
	// example: Berlin
	City *string `json:"city,omitempty"`
}

func (r UpdateUserRequest) toPatch() models.UserUpdate {
	return models.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Age:       r.Age,
		City:      r.City,
	}
}

// UpdateUserResponse represents a successful user update
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// default: User updated successfully
	Message string `json:"message"`

	// Updated user
	User UserResponse `json:"user"`
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Applies the provided fields to an existing user. Absent fields keep their stored values.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateUserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already taken"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error:  "Validation failed",
				Fields: map[string]string{"id": "must be a valid UUID"},
			})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Update(r.Context(), userID, req.toPatch())
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		json.NewEncoder(w).Encode(UpdateUserResponse{
			Message: "User updated successfully",
			User:    newUserResponse(*user),
		})
	}
}
