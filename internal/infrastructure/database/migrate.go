package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/julianespinel/movies/internal/infrastructure/database/entities"
)

// EnsureSchema creates the movies table when it does not exist yet.
// It is a no-op for an existing table and is meant to run once at start.
func EnsureSchema(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	migrator := db.WithContext(ctx).Migrator()
	if migrator.HasTable(&entities.Movie{}) {
		log.Debug().Msg("movies table already present")
		return nil
	}

	if err := migrator.CreateTable(&entities.Movie{}); err != nil {
		return err
	}
	log.Info().Msg("created movies table")
	return nil
}
