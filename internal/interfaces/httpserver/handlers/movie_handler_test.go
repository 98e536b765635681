package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/domain/movie/movietest"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/handlers"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/middlewares"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/requests"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/responses"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/routes"
	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

// MockMovieService is a mock implementation of movie.Service for testing.
type MockMovieService struct {
	CreateMovieFunc       func(ctx context.Context, m *movie.Movie) (string, error)
	GetMovieByImdbIDFunc  func(ctx context.Context, imdbID string) (*movie.Movie, error)
	GetMoviesByParamsFunc func(ctx context.Context, filter movie.Filter) ([]*movie.Movie, error)
	UpdateMovieFunc       func(ctx context.Context, imdbID string, m *movie.Movie) (*movie.Movie, error)
	DeleteMovieFunc       func(ctx context.Context, imdbID string) (bool, error)
}

func (s *MockMovieService) CreateMovie(ctx context.Context, m *movie.Movie) (string, error) {
	if s.CreateMovieFunc != nil {
		return s.CreateMovieFunc(ctx, m)
	}
	return m.ImdbID, nil
}

func (s *MockMovieService) GetMovieByImdbID(ctx context.Context, imdbID string) (*movie.Movie, error) {
	if s.GetMovieByImdbIDFunc != nil {
		return s.GetMovieByImdbIDFunc(ctx, imdbID)
	}
	return nil, nil
}

func (s *MockMovieService) GetMoviesByParams(ctx context.Context, filter movie.Filter) ([]*movie.Movie, error) {
	if s.GetMoviesByParamsFunc != nil {
		return s.GetMoviesByParamsFunc(ctx, filter)
	}
	return []*movie.Movie{}, nil
}

func (s *MockMovieService) UpdateMovie(ctx context.Context, imdbID string, m *movie.Movie) (*movie.Movie, error) {
	if s.UpdateMovieFunc != nil {
		return s.UpdateMovieFunc(ctx, imdbID, m)
	}
	return nil, nil
}

func (s *MockMovieService) DeleteMovie(ctx context.Context, imdbID string) (bool, error) {
	if s.DeleteMovieFunc != nil {
		return s.DeleteMovieFunc(ctx, imdbID)
	}
	return false, nil
}

func setupMovieTestRouter(service movie.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recovery(zerolog.Nop()))
	routes.NewProvider(handlers.NewProvider(service, zerolog.Nop())).Register(r)
	return r
}

func movieBody(t *testing.T, m movie.Movie) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(requests.MovieRequest{
		ImdbID:           m.ImdbID,
		Title:            m.Title,
		RuntimeInMinutes: m.RuntimeInMinutes,
		ReleaseDate:      m.ReleaseDate,
		FilmRating:       string(m.FilmRating),
		Genre:            m.Genre,
		Director:         m.Director,
		Plot:             m.Plot,
		Metascore:        m.Metascore,
		ImdbRating:       m.ImdbRating,
		ImdbVotes:        m.ImdbVotes,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func serve(router *gin.Engine, method, target string, body *bytes.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMovie(t *testing.T, w *httptest.ResponseRecorder) movie.Movie {
	t.Helper()
	var resp responses.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return movie.Movie{
		ImdbID:           resp.ImdbID,
		Title:            resp.Title,
		RuntimeInMinutes: resp.RuntimeInMinutes,
		ReleaseDate:      resp.ReleaseDate,
		FilmRating:       movie.FilmRating(resp.FilmRating),
		Genre:            resp.Genre,
		Director:         resp.Director,
		Plot:             resp.Plot,
		Metascore:        resp.Metascore,
		ImdbRating:       resp.ImdbRating,
		ImdbVotes:        resp.ImdbVotes,
	}
}

func typedError(errorType platformerrors.ErrorType) error {
	return platformerrors.NewError(context.Background(), platformerrors.LayerDomain, errorType, "boom", errors.New("driver"), "test-uuid")
}

func TestMovieHandler_Create(t *testing.T) {
	matrix := movietest.Matrix()
	var received *movie.Movie
	router := setupMovieTestRouter(&MockMovieService{
		CreateMovieFunc: func(ctx context.Context, m *movie.Movie) (string, error) {
			received = m
			return m.ImdbID, nil
		},
	})

	w := serve(router, http.MethodPost, "/movies", movieBody(t, matrix))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/movies/tt0133093", w.Header().Get("Location"))
	assert.JSONEq(t, `{"imdbId":"tt0133093"}`, w.Body.String())
	require.NotNil(t, received)
	assert.True(t, matrix.Equal(*received))
}

func TestMovieHandler_Create_InvalidMovieIs422(t *testing.T) {
	called := false
	router := setupMovieTestRouter(&MockMovieService{
		CreateMovieFunc: func(ctx context.Context, m *movie.Movie) (string, error) {
			called = true
			return m.ImdbID, nil
		},
	})

	w := serve(router, http.MethodPost, "/movies", movieBody(t, movietest.Invalid()))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, called, "invalid movie must not reach the service")

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "title is required")
	assert.Contains(t, resp.Error, "runtimeInMinutes must be greater than 0")
	assert.NotEmpty(t, resp.RequestID)
}

func TestMovieHandler_Create_MalformedJSONIs400(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{})

	w := serve(router, http.MethodPost, "/movies", bytes.NewReader([]byte(`{"imdbId":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovieHandler_Create_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     platformerrors.ErrorType
		expected int
	}{
		{"conflict", platformerrors.ErrorTypeConflict, http.StatusConflict},
		{"database", platformerrors.ErrorTypeDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupMovieTestRouter(&MockMovieService{
				CreateMovieFunc: func(ctx context.Context, m *movie.Movie) (string, error) {
					return "", typedError(tt.kind)
				},
			})

			w := serve(router, http.MethodPost, "/movies", movieBody(t, movietest.Matrix()))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestMovieHandler_Create_EscalatedFailureIs500(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{
		CreateMovieFunc: func(ctx context.Context, m *movie.Movie) (string, error) {
			panic(fmt.Errorf("%w: create movie %s", movie.ErrInconsistentState, m.ImdbID))
		},
	})

	w := serve(router, http.MethodPost, "/movies", movieBody(t, movietest.Matrix()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))
}

func TestMovieHandler_GetByImdbID(t *testing.T) {
	matrix := movietest.Matrix()
	router := setupMovieTestRouter(&MockMovieService{
		GetMovieByImdbIDFunc: func(ctx context.Context, imdbID string) (*movie.Movie, error) {
			if imdbID == matrix.ImdbID {
				return &matrix, nil
			}
			return nil, nil
		},
	})

	w := serve(router, http.MethodGet, "/movies/tt0133093", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, matrix.Compare(decodeMovie(t, w)))

	w = serve(router, http.MethodGet, "/movies/tt0000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_GetByImdbID_StorageFailure(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{
		GetMovieByImdbIDFunc: func(ctx context.Context, imdbID string) (*movie.Movie, error) {
			return nil, typedError(platformerrors.ErrorTypeDatabaseError)
		},
	})

	w := serve(router, http.MethodGet, "/movies/tt0133093", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMovieHandler_GetByParams(t *testing.T) {
	matrix := movietest.Matrix()
	reloaded := movietest.MatrixReloaded()
	var received movie.Filter
	router := setupMovieTestRouter(&MockMovieService{
		GetMoviesByParamsFunc: func(ctx context.Context, filter movie.Filter) ([]*movie.Movie, error) {
			received = filter
			return []*movie.Movie{&matrix, &reloaded}, nil
		},
	})

	w := serve(router, http.MethodGet, "/movies?title=matrix&runtimeInMinutes=100&metascore=6&imdbRating=7.0&imdbVotes=10000", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var movies []responses.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	assert.Len(t, movies, 2)

	require.NotNil(t, received.Title)
	assert.Equal(t, "matrix", *received.Title)
	assert.Equal(t, 100, *received.MinRuntimeInMinutes)
	assert.Equal(t, 6, *received.MinMetascore)
	assert.Equal(t, "7", received.MinImdbRating.String())
	assert.Equal(t, int64(10000), *received.MinImdbVotes)
}

func TestMovieHandler_GetByParams_EmptyResultIsArray(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{})

	w := serve(router, http.MethodGet, "/movies", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMovieHandler_GetByParams_MalformedNumberIs422(t *testing.T) {
	called := false
	router := setupMovieTestRouter(&MockMovieService{
		GetMoviesByParamsFunc: func(ctx context.Context, filter movie.Filter) ([]*movie.Movie, error) {
			called = true
			return nil, nil
		},
	})

	w := serve(router, http.MethodGet, "/movies?metascore=high", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, called)
}

func TestMovieHandler_Update_PathIDWins(t *testing.T) {
	matrixID := movietest.Matrix().ImdbID
	reloaded := movietest.MatrixReloaded()
	router := setupMovieTestRouter(&MockMovieService{
		UpdateMovieFunc: func(ctx context.Context, imdbID string, m *movie.Movie) (*movie.Movie, error) {
			assert.Equal(t, matrixID, imdbID)
			updated := m.WithImdbID(imdbID)
			return &updated, nil
		},
	})

	w := serve(router, http.MethodPut, "/movies/"+matrixID, movieBody(t, reloaded))

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeMovie(t, w)
	assert.Equal(t, matrixID, updated.ImdbID)
	// only the imdb id differs
	assert.Equal(t, 1, reloaded.Compare(updated))
}

func TestMovieHandler_Update_Missing(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{})

	w := serve(router, http.MethodPut, "/movies/tt0000000", movieBody(t, movietest.Matrix()))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieHandler_Update_Invalid(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{
		UpdateMovieFunc: func(ctx context.Context, imdbID string, m *movie.Movie) (*movie.Movie, error) {
			updated := m.WithImdbID(imdbID)
			return nil, updated.Validate(ctx)
		},
	})

	w := serve(router, http.MethodPut, "/movies/tt0133093", movieBody(t, movietest.Invalid()))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMovieHandler_Delete(t *testing.T) {
	router := setupMovieTestRouter(&MockMovieService{
		DeleteMovieFunc: func(ctx context.Context, imdbID string) (bool, error) {
			return imdbID == "tt0133093", nil
		},
	})

	w := serve(router, http.MethodDelete, "/movies/tt0133093", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(router, http.MethodDelete, "/movies/tt0000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
