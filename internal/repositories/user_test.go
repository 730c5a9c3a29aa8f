package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/user-directory/internal/models"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		age INT,
		city VARCHAR(100),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	cleanup := func() {
		db.Close()
		container.Terminate(context.Background())
	}
	return db, cleanup
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func seedUser(first, last, email string, age *int, city *string) *models.UserDB {
	return &models.UserDB{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Age:          age,
		City:         city,
	}
}

func TestUserRepositories(t *testing.T) {
	db, cleanup := setupUserPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()
	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)

	t.Run("Save assigns id and timestamps", func(t *testing.T) {
		user := seedUser("Alice", "Smith", "alice@example.com", intPtr(30), strPtr("Berlin"))

		err := writeRepo.Save(ctx, user)
		assert.NoError(t, err)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.UserID.String())
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("Save duplicate email", func(t *testing.T) {
		user := seedUser("Alice", "Again", "alice@example.com", nil, nil)

		err := writeRepo.Save(ctx, user)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Alice Smith", user.FullName())

		missing, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("SaveBatch all-or-nothing", func(t *testing.T) {
		batch := []*models.UserDB{
			seedUser("Natalia", "Romanova", "natalia@example.com", intPtr(35), strPtr("Moscow")),
			seedUser("Malik", "Jones", "malik@example.com", intPtr(28), strPtr("Berlin")),
			seedUser("Bob", "Brown", "bob@example.com", intPtr(41), strPtr("Paris")),
		}
		err := writeRepo.SaveBatch(ctx, batch)
		assert.NoError(t, err)

		// One duplicate rolls back the whole batch
		failing := []*models.UserDB{
			seedUser("Carol", "White", "carol@example.com", nil, nil),
			seedUser("Alice", "Dup", "alice@example.com", nil, nil),
		}
		err = writeRepo.SaveBatch(ctx, failing)
		assert.ErrorIs(t, err, ErrDuplicateEmail)

		user, err := readRepo.GetByEmail(ctx, "carol@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("List filter by name substring", func(t *testing.T) {
		// "ali" matches Alice, Natalia and Malik, case-insensitively
		users, err := readRepo.List(ctx, models.ListQuery{
			Name:   "ali",
			SortBy: "first_name",
			Order:  models.OrderAsc,
			Page:   1,
			Limit:  10,
		})
		assert.NoError(t, err)
		assert.Len(t, users, 3)
		assert.Equal(t, "Alice", users[0].FirstName)
		assert.Equal(t, "Malik", users[1].FirstName)
		assert.Equal(t, "Natalia", users[2].FirstName)
	})

	t.Run("List filter by age", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.ListQuery{
			Age:    intPtr(28),
			SortBy: "first_name",
			Order:  models.OrderAsc,
			Page:   1,
			Limit:  10,
		})
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "malik@example.com", users[0].Email)

		empty, err := readRepo.List(ctx, models.ListQuery{
			Age:    intPtr(99),
			SortBy: "first_name",
			Order:  models.OrderAsc,
			Page:   1,
			Limit:  10,
		})
		assert.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("List pagination", func(t *testing.T) {
		all, err := readRepo.List(ctx, models.ListQuery{
			SortBy: "email",
			Order:  models.OrderAsc,
			Page:   1,
			Limit:  100,
		})
		assert.NoError(t, err)
		assert.Len(t, all, 4)

		page2, err := readRepo.List(ctx, models.ListQuery{
			SortBy: "email",
			Order:  models.OrderAsc,
			Page:   2,
			Limit:  2,
		})
		assert.NoError(t, err)
		assert.Len(t, page2, 2)
		assert.Equal(t, all[2].Email, page2[0].Email)
		assert.Equal(t, all[3].Email, page2[1].Email)
	})

	t.Run("List sort descending", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.ListQuery{
			SortBy: "age",
			Order:  models.OrderDesc,
			Page:   1,
			Limit:  10,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, users)
		assert.Equal(t, "bob@example.com", users[0].Email)
	})

	t.Run("Aggregate avg age by city", func(t *testing.T) {
		rows, err := readRepo.AggregateAvgAgeByCity(ctx)
		assert.NoError(t, err)

		byCity := map[string]float64{}
		for _, row := range rows {
			byCity[row.City] = row.AvgAge
		}
		// Berlin has Alice (30) and Malik (28)
		assert.InDelta(t, 29.0, byCity["Berlin"], 0.001)
		assert.InDelta(t, 35.0, byCity["Moscow"], 0.001)
	})

	t.Run("Aggregate count by city", func(t *testing.T) {
		rows, err := readRepo.AggregateCountByCity(ctx)
		assert.NoError(t, err)

		byCity := map[string]int64{}
		for _, row := range rows {
			byCity[row.City] = row.Count
		}
		assert.Equal(t, int64(2), byCity["Berlin"])
		assert.Equal(t, int64(1), byCity["Paris"])
	})

	t.Run("Update", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)

		user.City = strPtr("Lyon")
		user.Age = intPtr(42)
		err = writeRepo.Update(ctx, user)
		assert.NoError(t, err)

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Lyon", *got.City)
		assert.Equal(t, 42, *got.Age)
		// Untouched fields survive the update
		assert.Equal(t, "Bob", got.FirstName)
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("Update to duplicate email", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)

		user.Email = "alice@example.com"
		err = writeRepo.Update(ctx, user)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("Delete", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)

		deleted, err := writeRepo.Delete(ctx, user.UserID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		// Deleting again reports not found
		deleted, err = writeRepo.Delete(ctx, user.UserID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		count, err := writeRepo.DeleteAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)

		users, err := readRepo.List(ctx, models.ListQuery{
			SortBy: "first_name",
			Order:  models.OrderAsc,
			Page:   1,
			Limit:  10,
		})
		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}
