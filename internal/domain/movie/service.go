package movie

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

// ErrInconsistentState is the panic value raised when a create fails for a
// storage reason while CreateFailureFatal is on.
var ErrInconsistentState = errors.New("system is in an inconsistent state")

// Service describes the business logic surface for movie operations.
type Service interface {
	CreateMovie(ctx context.Context, m *Movie) (string, error)
	GetMovieByImdbID(ctx context.Context, imdbID string) (*Movie, error)
	GetMoviesByParams(ctx context.Context, filter Filter) ([]*Movie, error)
	UpdateMovie(ctx context.Context, imdbID string, m *Movie) (*Movie, error)
	DeleteMovie(ctx context.Context, imdbID string) (bool, error)
}

// Options tunes the movie service.
type Options struct {
	// CreateFailureFatal panics with ErrInconsistentState when the repository
	// fails to create a movie. When false the failure is returned as an error.
	CreateFailureFatal bool
}

type service struct {
	repo Repository
	log  zerolog.Logger
	opts Options
}

// NewService wires the movie service with its repository.
func NewService(repo Repository, log zerolog.Logger, opts Options) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "movie-service").Logger(),
		opts: opts,
	}
}

func (s *service) CreateMovie(ctx context.Context, m *Movie) (string, error) {
	if err := m.Validate(ctx); err != nil {
		return "", err
	}

	imdbID, err := s.repo.Create(ctx, m)
	if err != nil {
		if s.opts.CreateFailureFatal {
			s.log.Error().Err(err).Str("imdb_id", m.ImdbID).Msg("create movie failed, aborting request")
			panic(fmt.Errorf("%w: create movie %s: %w", ErrInconsistentState, m.ImdbID, err))
		}
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "create movie")
	}

	s.log.Debug().Str("imdb_id", imdbID).Msg("movie created")
	return imdbID, nil
}

func (s *service) GetMovieByImdbID(ctx context.Context, imdbID string) (*Movie, error) {
	result, err := s.repo.FindByImdbID(ctx, imdbID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "get movie")
	}
	return result, nil
}

func (s *service) GetMoviesByParams(ctx context.Context, filter Filter) ([]*Movie, error) {
	result, err := s.repo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "search movies")
	}
	if result == nil {
		result = []*Movie{}
	}
	return result, nil
}

// UpdateMovie replaces every field of the stored movie except its IMDB id,
// which always comes from imdbID.
func (s *service) UpdateMovie(ctx context.Context, imdbID string, m *Movie) (*Movie, error) {
	updated := m.WithImdbID(imdbID)
	if err := updated.Validate(ctx); err != nil {
		return nil, err
	}

	result, err := s.repo.Update(ctx, imdbID, &updated)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "update movie")
	}
	return result, nil
}

func (s *service) DeleteMovie(ctx context.Context, imdbID string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, imdbID)
	if err != nil {
		return false, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "delete movie")
	}
	return deleted, nil
}
