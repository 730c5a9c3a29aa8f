package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
)

// ErrDuplicateEmail is returned when an insert or update collides with the
// unique constraint on the email column.
var ErrDuplicateEmail = errors.New("email already exists")

const userColumns = "user_id, first_name, last_name, email, password_hash, age, city, created_at, updated_at"

// UserReadRepository provides read access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 LIMIT 1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns the page of users selected by the query specification.
// The sort column is validated against a whitelist at parse time, so it is
// safe to interpolate into ORDER BY here.
func (r *UserReadRepository) List(ctx context.Context, q models.ListQuery) ([]models.UserDB, error) {
	var (
		conds []string
		args  []any
	)

	if q.Age != nil {
		args = append(args, *q.Age)
		conds = append(conds, fmt.Sprintf("age = $%d", len(args)))
	}
	if q.Name != "" {
		args = append(args, q.Name)
		conds = append(conds, fmt.Sprintf("(first_name || ' ' || last_name) ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	direction := "ASC"
	if q.Order == models.OrderDesc {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", q.SortBy, direction)

	args = append(args, q.Limit, q.Offset())
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// AggregateAvgAgeByCity returns the average age of users grouped by city.
func (r *UserReadRepository) AggregateAvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, error) {
	query := `
		SELECT COALESCE(city, '') AS city, COALESCE(AVG(age), 0) AS avg_age
		FROM users
		GROUP BY city
		ORDER BY city
	`

	rows := make([]models.CityAvgAge, 0)
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// AggregateCountByCity returns the number of users grouped by city.
func (r *UserReadRepository) AggregateCountByCity(ctx context.Context) ([]models.CityCount, error) {
	query := `
		SELECT COALESCE(city, '') AS city, COUNT(*) AS count
		FROM users
		GROUP BY city
		ORDER BY city
	`

	rows := make([]models.CityCount, 0)
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// UserWriteRepository provides write access to the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

const insertUserQuery = `
	INSERT INTO users (first_name, last_name, email, password_hash, age, city, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING user_id, created_at, updated_at
`

// Save inserts a new user and fills in the store-assigned id and timestamps.
// Uniqueness of the email is enforced by the table constraint, not by a
// read-then-write check.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	args := []any{user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Age, user.City}

	err := r.db.QueryRowxContext(ctx, insertUserQuery, args...).
		Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(insertUserQuery), " "),
		"args", []any{user.FirstName, user.LastName, user.Email, user.Age, user.City},
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// SaveBatch inserts the given users in a single transaction. Either all of
// them are persisted or none.
func (r *UserWriteRepository) SaveBatch(ctx context.Context, users []*models.UserDB) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, user := range users {
		err := tx.QueryRowxContext(ctx, insertUserQuery,
			user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Age, user.City).
			Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			logger.Log.Infow("user batch insert",
				"email", user.Email,
				"error", err,
			)
			if isUniqueViolation(err) {
				return ErrDuplicateEmail
			}
			return err
		}
	}

	err = tx.Commit()

	logger.Log.Infow("user batch insert",
		"rows", len(users),
		"error", err,
	)

	return err
}

// Update replaces all mutable columns of the given user. The caller is
// expected to have merged the partial update into a full record.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, password_hash = $4, age = $5, city = $6, updated_at = NOW()
		WHERE user_id = $7
		RETURNING updated_at
	`
	args := []any{user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Age, user.City, user.UserID}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.UpdatedAt)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.FirstName, user.LastName, user.Email, user.Age, user.City, user.UserID},
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// Delete removes the user with the given id and reports whether a record
// was actually deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user query",
		"query", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// DeleteAll removes every user and returns the number of deleted records.
func (r *UserWriteRepository) DeleteAll(ctx context.Context) (int64, error) {
	query := `DELETE FROM users`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user query",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
