package movie_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/domain/movie/movietest"
	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

func TestCompare_EqualMovies(t *testing.T) {
	a := movietest.Matrix()
	b := movietest.Matrix()

	assert.Equal(t, 0, a.Compare(b))
	assert.True(t, a.Equal(b))
}

func TestCompare_ReleaseDateInstantNotLocation(t *testing.T) {
	a := movietest.Matrix()
	b := movietest.Matrix()
	b.ReleaseDate = a.ReleaseDate.In(time.FixedZone("UTC-5", -5*60*60))

	assert.True(t, a.Equal(b))
}

func TestCompare_OnlyImdbIDDiffers(t *testing.T) {
	reloaded := movietest.MatrixReloaded()
	updated := reloaded.WithImdbID(movietest.Matrix().ImdbID)

	// tt0234215 sorts after tt0133093
	assert.Equal(t, 1, reloaded.Compare(updated))
	assert.Equal(t, -1, updated.Compare(reloaded))
	assert.Equal(t, "tt0234215", reloaded.ImdbID, "WithImdbID must not mutate the receiver")
}

func TestCompare_EachFieldParticipates(t *testing.T) {
	base := movietest.Matrix()
	mutations := map[string]func(m *movie.Movie){
		"title":      func(m *movie.Movie) { m.Title += "!" },
		"runtime":    func(m *movie.Movie) { m.RuntimeInMinutes++ },
		"release":    func(m *movie.Movie) { m.ReleaseDate = m.ReleaseDate.Add(time.Hour) },
		"filmRating": func(m *movie.Movie) { m.FilmRating = movie.FilmRatingPG13 },
		"genre":      func(m *movie.Movie) { m.Genre = "Drama" },
		"director":   func(m *movie.Movie) { m.Director = "Someone else" },
		"plot":       func(m *movie.Movie) { m.Plot = "" },
		"metascore":  func(m *movie.Movie) { m.Metascore = 0 },
		"imdbRating": func(m *movie.Movie) { m.ImdbRating = m.ImdbRating.Neg() },
		"imdbVotes":  func(m *movie.Movie) { m.ImdbVotes = 0 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed := base
			mutate(&changed)
			assert.NotEqual(t, 0, base.Compare(changed))
			assert.Equal(t, -base.Compare(changed), changed.Compare(base))
		})
	}
}

func TestValidate_ValidMovie(t *testing.T) {
	m := movietest.Matrix()
	assert.NoError(t, m.Validate(context.Background()))
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	m := movietest.Invalid()
	m.FilmRating = "X"

	err := m.Validate(context.Background())
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "runtimeInMinutes must be greater than 0")
	assert.Contains(t, err.Error(), "filmRating must be one of")
}

func TestValidate_RequiresIDAndReleaseDate(t *testing.T) {
	m := movietest.Matrix()
	m.ImdbID = ""
	m.ReleaseDate = time.Time{}

	err := m.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imdbId is required")
	assert.Contains(t, err.Error(), "releaseDate is required")
}

func TestValidate_NegativeVotes(t *testing.T) {
	m := movietest.Matrix()
	m.ImdbVotes = -1

	err := m.Validate(context.Background())
	assert.ErrorContains(t, err, "imdbVotes must be at least 0")
}

func TestFilmRating_IsValid(t *testing.T) {
	for _, r := range movie.FilmRatings {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, movie.FilmRating("PG13").IsValid())
	assert.False(t, movie.FilmRating("").IsValid())
}
