package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserDeleter defines the interface that the user deletion service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// DeleteUserResponse represents a successful user deletion
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// default: User deleted successfully
	Message string `json:"message"`
}

// NewDeleteUserHandler returns an HTTP handler for deleting a single user.
// @Summary Delete a user
// @Description Removes the user with the given ID.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user ID"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID); err != nil {
			writeUserWriteError(w, err)
			return
		}

		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: "User deleted successfully",
		})
	}
}
