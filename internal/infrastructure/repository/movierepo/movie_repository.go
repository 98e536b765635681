package movierepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/infrastructure/database"
	"github.com/julianespinel/movies/internal/infrastructure/database/entities"
	"github.com/julianespinel/movies/internal/infrastructure/metrics"
	"github.com/julianespinel/movies/internal/infrastructure/observability"
	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

const pgUniqueViolation = "23505"

// MovieGormRepository persists movies in a single relational table using GORM.
type MovieGormRepository struct {
	db *gorm.DB
}

var _ movie.Repository = (*MovieGormRepository)(nil)

// NewMovieGormRepository creates a repository backed by the provided DB.
func NewMovieGormRepository(db *gorm.DB) movie.Repository {
	return &MovieGormRepository{db: db}
}

func (r *MovieGormRepository) Create(ctx context.Context, m *movie.Movie) (id string, err error) {
	ctx, done := r.observe(ctx, "create", m.ImdbID)
	defer func() { done(err) }()

	entity := entities.NewSchemaMovie(m)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if isUniqueViolation(err) {
			return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
				"movie already exists", err, "3f6b1a2c-8d4e-4c9a-b7e1-5a2d9c0f4e81",
				map[string]any{"imdb_id": m.ImdbID})
		}
		return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create movie", err, "a91d4e7b-2c5f-4a08-9e36-7b1c8d2f0a54",
			map[string]any{"imdb_id": m.ImdbID})
	}
	return entity.ImdbID, nil
}

func (r *MovieGormRepository) FindByImdbID(ctx context.Context, imdbID string) (result *movie.Movie, err error) {
	ctx, done := r.observe(ctx, "find_by_id", imdbID)
	defer func() { done(err) }()

	var entity entities.Movie
	if err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to find movie", err, "5c2e8a14-7f3b-4d69-a1e0-9b4c6d2f8e37")
	}
	return entity.EtoD(), nil
}

func (r *MovieGormRepository) FindByFilter(ctx context.Context, filter movie.Filter) (result []*movie.Movie, err error) {
	ctx, done := r.observe(ctx, "find_by_filter", "")
	defer func() { done(err) }()

	var rows []entities.Movie
	if err := applyFilter(r.db.WithContext(ctx), filter).Order("imdb_id ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to search movies", err, "e4a7c0d2-9b15-4f3e-8c6a-2d1b7f9e0c43")
	}

	movies := make([]*movie.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, rows[i].EtoD())
	}
	return movies, nil
}

// Update overwrites every mutable column of the row keyed by imdbID and
// returns the stored result, or nil when no such row exists.
func (r *MovieGormRepository) Update(ctx context.Context, imdbID string, m *movie.Movie) (result *movie.Movie, err error) {
	ctx, done := r.observe(ctx, "update", imdbID)
	defer func() { done(err) }()

	entity := entities.NewSchemaMovie(m)
	res := r.db.WithContext(ctx).Model(&entities.Movie{}).Where("imdb_id = ?", imdbID).Updates(map[string]any{
		"title":              entity.Title,
		"runtime_in_minutes": entity.RuntimeInMinutes,
		"release_date":       entity.ReleaseDate,
		"film_rating":        entity.FilmRating,
		"genre":              entity.Genre,
		"director":           entity.Director,
		"plot":               entity.Plot,
		"metascore":          entity.Metascore,
		"imdb_rating":        entity.ImdbRating,
		"imdb_votes":         entity.ImdbVotes,
	})
	if res.Error != nil {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to update movie", res.Error, "7b3d9f1a-0e64-4c2b-95d8-1a6e3c7f2b90",
			map[string]any{"imdb_id": imdbID})
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var stored entities.Movie
	if err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&stored).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to reload updated movie", err, "c8e1f5a3-6d27-4b90-a4c1-3f8b0d5e9a62")
	}
	return stored.EtoD(), nil
}

func (r *MovieGormRepository) Delete(ctx context.Context, imdbID string) (deleted bool, err error) {
	ctx, done := r.observe(ctx, "delete", imdbID)
	defer func() { done(err) }()

	res := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).Delete(&entities.Movie{})
	if res.Error != nil {
		return false, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to delete movie", res.Error, "2a9c6e0f-4b83-4d1a-b5f7-8e0d3c6a1f25")
	}
	return res.RowsAffected > 0, nil
}

// observe opens a storage span and returns a callback that closes it and
// records the operation metrics.
func (r *MovieGormRepository) observe(ctx context.Context, operation, imdbID string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := observability.StartStorageSpan(ctx, operation, imdbID)
	return ctx, func(err error) {
		status := "success"
		switch {
		case platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict):
			status = "conflict"
		case err != nil:
			status = "error"
		}
		metrics.RecordStorageOperation(operation, status, time.Since(start).Seconds())
		observability.EndSpan(span, err)
	}
}

func applyFilter(tx *gorm.DB, filter movie.Filter) *gorm.DB {
	if filter.Title != nil {
		tx = tx.Where(titleContains(tx.Dialector.Name()), "%"+escapeLike(strings.ToLower(*filter.Title))+"%")
	}
	if filter.MinRuntimeInMinutes != nil {
		tx = tx.Where("runtime_in_minutes >= ?", *filter.MinRuntimeInMinutes)
	}
	if filter.MinMetascore != nil {
		tx = tx.Where("metascore >= ?", *filter.MinMetascore)
	}
	if filter.MinImdbRating != nil {
		tx = tx.Where("imdb_rating >= ?", *filter.MinImdbRating)
	}
	if filter.MinImdbVotes != nil {
		tx = tx.Where("imdb_votes >= ?", *filter.MinImdbVotes)
	}
	return tx
}

// titleContains returns a case-insensitive substring match on title that
// also folds non-ASCII letters. The pattern argument must be lower case.
func titleContains(dialect string) string {
	if dialect == "sqlite" {
		return database.UnicodeLowerFunc + `(title) LIKE ? ESCAPE '\'`
	}
	return `title ILIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite reports "UNIQUE constraint failed: movies.imdb_id"
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
