// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jsalcedo/boxtrack-be/internal/adapters/db"
	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_boxtrack",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_boxtrack",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// TruncateAllTables clears mutable tables between tests. The seeded
// RECEIVING system location survives; everything else goes.
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"events",
		"inventory_state",
		"boxes",
		"products",
		"box_id_counters",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}

	_, err := db.Exec(ctx, "DELETE FROM locations WHERE NOT is_system_location")
	require.NoError(t, err, "Failed to clear locations")
}

// CreateTestEvent creates a valid IN scan event. Each call gets a fresh
// event id and client event id so default events never collide.
func CreateTestEvent(overrides ...func(*domain.Event)) *domain.Event {
	event := &domain.Event{
		EventID:       uuid.New(),
		ClientEventID: uuid.NewString(),
		EventType:     domain.EventIn,
		BoxID:         "BX-20260315-000001",
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourceInboundStation,
		Timestamp:     time.Now().UTC().Truncate(time.Millisecond),
	}

	for _, override := range overrides {
		override(event)
	}

	return event
}

// CreateTestProduct creates a test catalog product
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	size := "M"
	product := &domain.Product{
		Brand: "Acme",
		Name:  "Widget",
		Size:  &size,
	}
	product.PrepareForStorage()

	for _, override := range overrides {
		override(product)
	}

	return product
}

// CreateTestBoxDetails creates a box joined with its product
func CreateTestBoxDetails(overrides ...func(*ports.BoxDetails)) *ports.BoxDetails {
	product := CreateTestProduct()
	details := &ports.BoxDetails{
		Box: domain.Box{
			BoxID:     "BX-20260315-000001",
			ProductID: product.ID,
			LotCode:   "LOT-2026-001",
			CreatedAt: time.Now().UTC(),
		},
		Product: *product,
	}

	for _, override := range overrides {
		override(details)
	}

	return details
}

// CreateTestState creates an in-stock projection row
func CreateTestState(overrides ...func(*domain.InventoryState)) *domain.InventoryState {
	locationID := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	inType := domain.EventIn
	state := &domain.InventoryState{
		BoxID:             "BX-20260315-000001",
		Status:            domain.StatusInStock,
		CurrentLocationID: &locationID,
		LastEventTime:     &now,
		LastEventType:     &inType,
		UpdatedAt:         now,
	}

	for _, override := range overrides {
		override(state)
	}

	return state
}

// CreateTestLocation creates a storage bin with a derived code
func CreateTestLocation(overrides ...func(*domain.Location)) *domain.Location {
	location := &domain.Location{
		Zone:  "A",
		Aisle: "01",
		Rack:  "02",
		Shelf: "A",
	}
	location.PrepareForStorage()

	for _, override := range overrides {
		override(location)
	}

	return location
}
