package responses

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianespinel/movies/internal/domain/movie"
)

// MovieResponse is the JSON representation of a movie.
type MovieResponse struct {
	ImdbID           string          `json:"imdbId" example:"tt0133093"`
	Title            string          `json:"title" example:"The Matrix"`
	RuntimeInMinutes int             `json:"runtimeInMinutes" example:"136"`
	ReleaseDate      time.Time       `json:"releaseDate" example:"1999-03-31T00:00:00Z"`
	FilmRating       string          `json:"filmRating" example:"R"`
	Genre            string          `json:"genre" example:"Action, Sci-Fi"`
	Director         string          `json:"director" example:"The Wachowski brothers"`
	Plot             string          `json:"plot"`
	Metascore        int             `json:"metascore" example:"73"`
	ImdbRating       decimal.Decimal `json:"imdbRating" swaggertype:"string" example:"8.7"`
	ImdbVotes        int64           `json:"imdbVotes" example:"1023621"`
}

// CreateMovieResponse carries the id of a newly created movie.
type CreateMovieResponse struct {
	ImdbID string `json:"imdbId" example:"tt0133093"`
}

// BuildMovieResponse creates response from domain object
func BuildMovieResponse(m *movie.Movie) *MovieResponse {
	return &MovieResponse{
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

// BuildMovieListResponse maps a search result; the result is never nil.
func BuildMovieListResponse(movies []*movie.Movie) []*MovieResponse {
	out := make([]*MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, BuildMovieResponse(m))
	}
	return out
}
