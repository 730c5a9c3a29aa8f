package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/user-directory/internal/services"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
	}{
		{
			name:   "success",
			target: "/users/" + userID.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), userID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid user id",
			target:       "/users/not-a-uuid",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			target: "/users/" + userID.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), userID).
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "internal server error",
			target: "/users/" + userID.String(),
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), userID).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/users/{id}", NewDeleteUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp DeleteUserResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "User deleted successfully", resp.Message)
			}
		})
	}
}
