package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/julianespinel/movies/internal/config"
	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/domain/movie/movietest"
	"github.com/julianespinel/movies/internal/infrastructure/database/databasetest"
	"github.com/julianespinel/movies/internal/infrastructure/repository/movierepo"
	"github.com/julianespinel/movies/internal/interfaces/httpserver"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/middlewares"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/requests"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/responses"
)

func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := databasetest.NewSQLite(t)
	cfg := &config.Config{
		ServiceName:        "movies-api",
		Environment:        "test",
		HTTPPort:           0,
		MetricsEnabled:     true,
		ShutdownTimeout:    time.Second,
		DBDriver:           config.DriverSQLite,
		CreateFailureFatal: true,
	}
	service := movie.NewService(movierepo.NewMovieGormRepository(db), zerolog.Nop(), movie.Options{CreateFailureFatal: true})
	return httpserver.New(cfg, zerolog.Nop(), service, db).Handler(), db
}

func do(t *testing.T, h http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func toRequest(m movie.Movie) requests.MovieRequest {
	return requests.MovieRequest{
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
	}
}

func TestCoreRoutes(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/", "/healthz", "/readyz"} {
		w := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "movies_api_requests_total")
}

func TestRequestIDIsEchoed(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(middlewares.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middlewares.RequestIDHeader))
}

func TestMovieLifecycle(t *testing.T) {
	h, db := newTestServer(t)
	matrix := movietest.Matrix()
	reloaded := movietest.MatrixReloaded()

	w := do(t, h, http.MethodPost, "/movies", toRequest(matrix))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(t, h, http.MethodPost, "/movies", toRequest(reloaded))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/movies/"+matrix.ImdbID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched responses.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, matrix.Title, fetched.Title)
	assert.True(t, matrix.ImdbRating.Equal(fetched.ImdbRating))
	assert.True(t, matrix.ReleaseDate.Equal(fetched.ReleaseDate))

	w = do(t, h, http.MethodGet, "/movies?title=matrix&runtimeInMinutes=100&metascore=6&imdbRating=7.0&imdbVotes=10000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []responses.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Len(t, found, 2)

	w = do(t, h, http.MethodPut, "/movies/"+matrix.ImdbID, toRequest(reloaded))
	require.Equal(t, http.StatusOK, w.Code)
	var updated responses.MovieResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, matrix.ImdbID, updated.ImdbID)
	assert.Equal(t, reloaded.Title, updated.Title)
	assert.Equal(t, int64(2), databasetest.CountMovies(t, db))

	w = do(t, h, http.MethodDelete, "/movies/"+matrix.ImdbID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, "/movies/"+matrix.ImdbID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodPut, "/movies/"+matrix.ImdbID, toRequest(reloaded))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1), databasetest.CountMovies(t, db))
}

func TestCreate_InvalidMovieIsNotPersisted(t *testing.T) {
	h, db := newTestServer(t)

	w := do(t, h, http.MethodPost, "/movies", toRequest(movietest.Invalid()))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, int64(0), databasetest.CountMovies(t, db))
}

func TestCreate_DuplicateEscalates(t *testing.T) {
	h, db := newTestServer(t)
	matrix := movietest.Matrix()

	w := do(t, h, http.MethodPost, "/movies", toRequest(matrix))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodPost, "/movies", toRequest(matrix))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(1), databasetest.CountMovies(t, db))
}
