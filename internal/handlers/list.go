package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
)

// UserListProvider defines the interface that the listing service must implement.
type UserListProvider interface {
	List(ctx context.Context, q models.ListQuery) ([]models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler for querying the user collection.
// @Summary List users
// @Description Returns a filtered, sorted and paginated page of users
// @Tags users
// @Produce json
// @Param age query int false "Exact age filter"
// @Param name query string false "Case-insensitive substring match against the full name"
// @Param sortBy query string false "Sort column" default(first_name)
// @Param order query string false "asc or desc" default(asc)
// @Param page query int false "Page number, 1-based" default(1)
// @Param limit query int false "Page size, capped at 100" default(10)
// @Success 200 {array} handlers.UserResponse "Page of users, possibly empty"
// @Failure 400 {object} handlers.ErrorResponse "Malformed query parameter"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserListProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := models.ParseListQuery(r.URL.Query())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error:  "Invalid query parameters",
				Fields: map[string]string{"query": err.Error()},
			})
			return
		}

		users, err := svc.List(r.Context(), query)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponses(users))
	}
}
