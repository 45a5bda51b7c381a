package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-backoffice/models"
)

// newTestDB opens an isolated in-memory store with the full schema. The pool
// is pinned to one connection so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.GivenName{},
		&models.FamilyName{},
		&models.Guest{},
		&models.Room{},
		&models.Booking{},
		&models.Account{},
		&models.Session{},
	))
	return db
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func createTestGuest(t *testing.T, svc *GuestService, given, family, series, number string) uint {
	t.Helper()
	id, err := svc.Create(GuestInput{
		GivenName:      given,
		FamilyName:     family,
		Age:            30,
		PassportSeries: series,
		PassportNumber: number,
	})
	require.NoError(t, err)
	return id
}
