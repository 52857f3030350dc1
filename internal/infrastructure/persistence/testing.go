//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/infrastructure/persistence/models"
	"github.com/ajeshvyas/address-book-service/internal/pkg/config"
	pkgTesting "github.com/ajeshvyas/address-book-service/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	AddressRepo addresses.AddressRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.AddressModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)

	addressRepo, err := NewGormAddressRepository(db, logger)
	require.NoError(t, err, "Failed to create address repository")

	return &TestContext{
		DB:          db,
		AddressRepo: addressRepo,
	}
}

// CreateTestAddress creates a test address with default values
func CreateTestAddress(t *testing.T, name string) *addresses.Address {
	t.Helper()

	if name == "" {
		name = "Test Office"
	}

	return &addresses.Address{
		Name:            name,
		Latitude:        12.9716,
		Longitude:       77.5946,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestAddressWithOptions creates a test address with custom coordinates
func CreateTestAddressWithOptions(t *testing.T, name string, latitude, longitude float64) *addresses.Address {
	t.Helper()

	return &addresses.Address{
		Name:            name,
		Latitude:        latitude,
		Longitude:       longitude,
		DateTimeCreated: time.Now(),
	}
}
