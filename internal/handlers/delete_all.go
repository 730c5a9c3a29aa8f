package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// AllUsersDeleter defines the interface that the bulk deletion service must implement.
type AllUsersDeleter interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// DeleteAllUsersResponse represents a successful bulk deletion
// swagger:model DeleteAllUsersResponse
type DeleteAllUsersResponse struct {
	// Success message
	// default: All users deleted successfully
	Message string `json:"message"`

	// Number of deleted users
	// example: 42
	DeletedCount int64 `json:"deleted_count"`
}

// NewDeleteAllUsersHandler returns an HTTP handler that removes every user.
// @Summary Delete all users
// @Description Removes all users and reports how many were deleted.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.DeleteAllUsersResponse "All users deleted"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /deleteAllUser [delete]
func NewDeleteAllUsersHandler(svc AllUsersDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.DeleteAll(r.Context())
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		json.NewEncoder(w).Encode(DeleteAllUsersResponse{
			Message:      "All users deleted successfully",
			DeletedCount: count,
		})
	}
}
