package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
	"github.com/sbilibin2017/user-directory/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserLister defines read operations over the user collection.
type UserLister interface {
	List(ctx context.Context, q models.ListQuery) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	AggregateAvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, error)
	AggregateCountByCity(ctx context.Context) ([]models.CityCount, error)
}

// UserStore defines write operations over the user collection.
type UserStore interface {
	Save(ctx context.Context, user *models.UserDB) error
	SaveBatch(ctx context.Context, users []*models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// AggregateCache caches aggregation results.
type AggregateCache interface {
	GetAvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, bool, error)
	SetAvgAgeByCity(ctx context.Context, rows []models.CityAvgAge) error
	GetCountByCity(ctx context.Context) ([]models.CityCount, bool, error)
	SetCountByCity(ctx context.Context, rows []models.CityCount) error
	Invalidate(ctx context.Context) error
}

// UserInput is the full set of attributes accepted when creating a user.
// The password arrives in plaintext and is hashed before it reaches the store.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       *int
	City      *string
}

// UserService handles user CRUD, querying and aggregation.
type UserService struct {
	reader UserLister
	writer UserStore
	cache  AggregateCache
	events EventWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader UserLister, writer UserStore, cache AggregateCache, events EventWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// List returns the page of users selected by the query specification.
func (s *UserService) List(ctx context.Context, q models.ListQuery) ([]models.UserDB, error) {
	users, err := s.reader.List(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Create validates, hashes and persists a single user.
func (s *UserService) Create(ctx context.Context, in UserInput) (*models.UserDB, error) {
	user, err := s.buildUser(in)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	s.invalidateAggregates(ctx)
	publishUserEvent(ctx, s.events, models.EventUserCreated, user.UserID.String(), user.Email, 0)

	return user, nil
}

// CreateBatch validates and persists several users in one transaction.
// Either every record is inserted or none.
func (s *UserService) CreateBatch(ctx context.Context, ins []UserInput) ([]models.UserDB, error) {
	if len(ins) == 0 {
		return nil, newValidationError(map[string]string{"users": "must not be empty"})
	}

	users := make([]*models.UserDB, 0, len(ins))
	for _, in := range ins {
		user, err := s.buildUser(in)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := s.writer.SaveBatch(ctx, users); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user batch", "err", err)
		return nil, err
	}

	s.invalidateAggregates(ctx)

	out := make([]models.UserDB, 0, len(users))
	for _, user := range users {
		publishUserEvent(ctx, s.events, models.EventUserCreated, user.UserID.String(), user.Email, 0)
		out = append(out, *user)
	}

	return out, nil
}

// Update applies a partial update to the user with the given id. Fields not
// present in the patch keep their stored values; a supplied password is
// re-hashed, an absent one leaves the stored hash untouched.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Age != nil {
		user.Age = patch.Age
	}
	if patch.City != nil {
		user.City = patch.City
	}

	fields := userFieldViolations(user.FirstName, user.LastName, user.Email)
	if patch.Password != nil && len(*patch.Password) < MinPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	if err := newValidationError(fields); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.writer.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}

	s.invalidateAggregates(ctx)
	publishUserEvent(ctx, s.events, models.EventUserUpdated, user.UserID.String(), user.Email, 0)

	return user, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.invalidateAggregates(ctx)
	publishUserEvent(ctx, s.events, models.EventUserDeleted, userID.String(), "", 0)

	return nil
}

// DeleteAll removes every user and returns the number of deleted records.
func (s *UserService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.writer.DeleteAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to delete all users", "err", err)
		return 0, err
	}

	s.invalidateAggregates(ctx)
	publishUserEvent(ctx, s.events, models.EventUsersCleared, "", "", count)

	return count, nil
}

// AvgAgeByCity returns the per-city average age, cache-aside.
func (s *UserService) AvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, error) {
	if s.cache != nil {
		if rows, ok, err := s.cache.GetAvgAgeByCity(ctx); err == nil && ok {
			return rows, nil
		}
	}

	rows, err := s.reader.AggregateAvgAgeByCity(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate avg age", "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAvgAgeByCity(ctx, rows); err != nil {
			logger.Log.Warnw("failed to cache avg age aggregate", "err", err)
		}
	}

	return rows, nil
}

// CountByCity returns the per-city user count, cache-aside.
func (s *UserService) CountByCity(ctx context.Context) ([]models.CityCount, error) {
	if s.cache != nil {
		if rows, ok, err := s.cache.GetCountByCity(ctx); err == nil && ok {
			return rows, nil
		}
	}

	rows, err := s.reader.AggregateCountByCity(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate count", "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCountByCity(ctx, rows); err != nil {
			logger.Log.Warnw("failed to cache count aggregate", "err", err)
		}
	}

	return rows, nil
}

// buildUser validates the input and produces a record ready for the store.
func (s *UserService) buildUser(in UserInput) (*models.UserDB, error) {
	if err := validateUserFields(in.FirstName, in.LastName, in.Email, in.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	return &models.UserDB{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		Age:          in.Age,
		City:         in.City,
	}, nil
}

// invalidateAggregates drops cached aggregation results after a write.
func (s *UserService) invalidateAggregates(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate aggregate cache", "err", err)
	}
}
