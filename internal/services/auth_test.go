package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/user-directory/internal/models"
	"github.com/sbilibin2017/user-directory/internal/repositories"
	"github.com/sbilibin2017/user-directory/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		firstName  string
		lastName   string
		email      string
		password   string
		saveErr    error
		expectSave bool
		wantErr    error
		wantValid  bool // expect a ValidationError
	}{
		{
			name:      "successful registration",
			firstName: "Alice", lastName: "Smith",
			email: "alice@example.com", password: "secret1",
			expectSave: true,
		},
		{
			name:      "duplicate email",
			firstName: "Alice", lastName: "Smith",
			email: "alice@example.com", password: "secret1",
			saveErr:    repositories.ErrDuplicateEmail,
			expectSave: true,
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			firstName: "Alice", lastName: "Smith",
			email: "alice@example.com", password: "secret1",
			saveErr:    errors.New("db error"),
			expectSave: true,
			wantErr:    errors.New("db error"),
		},
		{
			name:      "empty first name",
			firstName: "", lastName: "Smith",
			email: "alice@example.com", password: "secret1",
			wantValid: true,
		},
		{
			name:      "empty last name",
			firstName: "Alice", lastName: "  ",
			email: "alice@example.com", password: "secret1",
			wantValid: true,
		},
		{
			name:      "malformed email",
			firstName: "Alice", lastName: "Smith",
			email: "not-an-email", password: "secret1",
			wantValid: true,
		},
		{
			name:      "short password",
			firstName: "Alice", lastName: "Smith",
			email: "alice@example.com", password: "12345",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			var saved *models.UserDB
			if tt.expectSave {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.UserDB) error {
						saved = user
						return tt.saveErr
					})
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			err := svc.Register(context.Background(), tt.firstName, tt.lastName, tt.email, tt.password)

			if tt.wantValid {
				var vErr *services.ValidationError
				assert.ErrorAs(t, err, &vErr)
				return
			}
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, saved)
			// The persisted record holds a hash, never the plaintext
			assert.NotEqual(t, tt.password, saved.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret1"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	storedUser := &models.UserDB{
		UserID:       userID,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantToken string
		wantErr   error
		wantValid bool
	}{
		{
			name:  "successful login",
			email: "alice@example.com", password: password,
			user:     storedUser,
			jwtToken: "signed-token",

			wantToken: "signed-token",
		},
		{
			name:  "unknown user",
			email: "nobody@example.com", password: password,
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:  "wrong password",
			email: "alice@example.com", password: "wrong-pass",
			user:    storedUser,
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:  "reader error",
			email: "alice@example.com", password: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:  "jwt error",
			email: "alice@example.com", password: password,
			user:    storedUser,
			jwtErr:  errors.New("sign error"),
			wantErr: errors.New("sign error"),
		},
		{
			name:  "missing email",
			email: "", password: password,
			wantValid: true,
		},
		{
			name:  "missing password",
			email: "alice@example.com", password: "",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			if !tt.wantValid {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.user, tt.readerErr)
			}
			if tt.jwtToken != "" || tt.jwtErr != nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID).
					Return(tt.jwtToken, tt.jwtErr)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantValid {
				var vErr *services.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Empty(t, token)
				return
			}
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
