package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/user-directory/internal/models"
)

func TestAggregateCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewAggregateCacheRepository(rdb, 2*time.Second)

	avgRows := []models.CityAvgAge{
		{City: "Berlin", AvgAge: 29},
		{City: "Moscow", AvgAge: 35},
	}
	countRows := []models.CityCount{
		{City: "Berlin", Count: 2},
		{City: "Moscow", Count: 1},
	}

	t.Run("miss before set", func(t *testing.T) {
		_, ok, err := repo.GetAvgAgeByCity(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = repo.GetCountByCity(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		assert.NoError(t, repo.SetAvgAgeByCity(ctx, avgRows))
		assert.NoError(t, repo.SetCountByCity(ctx, countRows))

		got, ok, err := repo.GetAvgAgeByCity(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, avgRows, got)

		counts, ok, err := repo.GetCountByCity(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, countRows, counts)
	})

	t.Run("invalidate drops both keys", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx))

		_, ok, err := repo.GetAvgAgeByCity(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = repo.GetCountByCity(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		assert.NoError(t, repo.SetCountByCity(ctx, countRows))
		time.Sleep(3 * time.Second)

		_, ok, err := repo.GetCountByCity(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
