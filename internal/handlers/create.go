package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
	"github.com/sbilibin2017/user-directory/internal/services"
)

// UserCreator defines the interface that the creation service must implement.
type UserCreator interface {
	Create(ctx context.Context, in services.UserInput) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for direct user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Given name
	// required: true
	// default: Alice
	FirstName string `json:"first_name"`

	// Family name
	// required: true
	// default: Smith
	LastName string `json:"last_name"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret1
	Password string `json:"password"`

	// Optional age
	Age *int `json:"age,omitempty"`

	// Optional city
	City *string `json:"city,omitempty"`
}

func (req CreateUserRequest) toInput() services.UserInput {
	return services.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		City:      req.City,
	}
}

// NewCreateUserHandler returns an HTTP handler for direct user creation.
// @Summary Create a user
// @Description Validates and persists a single user. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User to create"
// @Success 201 {object} handlers.UserResponse "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newUserResponse(*user))
	}
}

// writeUserWriteError maps service errors from the user write paths onto
// HTTP status codes. Internal detail is logged, never returned.
func writeUserWriteError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:  "Validation failed",
			Fields: vErr.Fields,
		})
	case errors.Is(err, services.ErrUserAlreadyExists):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Email already registered",
		})
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "User not found",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Internal server error",
		})
	}
}
