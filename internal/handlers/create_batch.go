package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-directory/internal/models"
	"github.com/sbilibin2017/user-directory/internal/services"
)

// BatchCreator defines the interface that the bulk-insert service must implement.
type BatchCreator interface {
	CreateBatch(ctx context.Context, ins []services.UserInput) ([]models.UserDB, error)
}

// InsertManyResponse represents a successful bulk insert
// swagger:model InsertManyResponse
type InsertManyResponse struct {
	// Success message
	// default: Users inserted successfully
	Message string `json:"message"`

	// Inserted users
	SavedUsers []UserResponse `json:"saved_users"`
}

// NewInsertManyHandler returns an HTTP handler for bulk user insertion.
// @Summary Insert many users
// @Description Validates and persists an array of users in a single transaction. Either all records are inserted or none.
// @Tags users
// @Accept json
// @Produce json
// @Param users body []handlers.CreateUserRequest true "Users to insert"
// @Success 201 {object} handlers.InsertManyResponse "Inserted users"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate email in the batch"
// @Router /users/insertMany [post]
func NewInsertManyHandler(svc BatchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		ins := make([]services.UserInput, 0, len(reqs))
		for _, req := range reqs {
			ins = append(ins, req.toInput())
		}

		users, err := svc.CreateBatch(r.Context(), ins)
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InsertManyResponse{
			Message:    "Users inserted successfully",
			SavedUsers: newUserResponses(users),
		})
	}
}
