// Package databasetest opens throwaway databases for tests.
package databasetest

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/julianespinel/movies/internal/config"
	"github.com/julianespinel/movies/internal/infrastructure/database"
)

// NewSQLite opens an in-memory SQLite database with the movies schema applied.
// The database is closed when the test finishes.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver:          config.DriverSQLite,
		DSN:             ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
		LogLevel:        gormlogger.Silent,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.EnsureSchema(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

// CountMovies returns the number of rows in the movies table.
func CountMovies(t testing.TB, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Table("movies").Count(&count).Error; err != nil {
		t.Fatalf("count movies: %v", err)
	}
	return count
}
