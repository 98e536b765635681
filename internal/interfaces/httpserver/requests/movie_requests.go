package requests

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

// MovieRequest is the JSON body accepted by create and update.
type MovieRequest struct {
	ImdbID           string          `json:"imdbId" example:"tt0133093"`
	Title            string          `json:"title" example:"The Matrix"`
	RuntimeInMinutes int             `json:"runtimeInMinutes" example:"136"`
	ReleaseDate      time.Time       `json:"releaseDate" example:"1999-03-31T00:00:00Z"`
	FilmRating       string          `json:"filmRating" example:"R" enums:"G,PG,PG-13,R,NC-17"`
	Genre            string          `json:"genre" example:"Action, Sci-Fi"`
	Director         string          `json:"director" example:"The Wachowski brothers"`
	Plot             string          `json:"plot"`
	Metascore        int             `json:"metascore" example:"73"`
	ImdbRating       decimal.Decimal `json:"imdbRating" swaggertype:"string" example:"8.7"`
	ImdbVotes        int64           `json:"imdbVotes" example:"1023621"`
}

// ToDomain maps the request body to the domain movie.
func (r MovieRequest) ToDomain() *movie.Movie {
	return &movie.Movie{
		ImdbID:           strings.TrimSpace(r.ImdbID),
		Title:            r.Title,
		RuntimeInMinutes: r.RuntimeInMinutes,
		ReleaseDate:      r.ReleaseDate,
		FilmRating:       movie.FilmRating(r.FilmRating),
		Genre:            r.Genre,
		Director:         r.Director,
		Plot:             r.Plot,
		Metascore:        r.Metascore,
		ImdbRating:       r.ImdbRating,
		ImdbVotes:        r.ImdbVotes,
	}
}

// Query parameter names accepted by the movie search.
const (
	QueryTitle            = "title"
	QueryRuntimeInMinutes = "runtimeInMinutes"
	QueryMetascore        = "metascore"
	QueryImdbRating       = "imdbRating"
	QueryImdbVotes        = "imdbVotes"
)

// ParseMovieFilter builds a search filter from query parameters. Absent or
// empty parameters leave their condition out; malformed numbers are a
// VALIDATION error.
func ParseMovieFilter(ctx context.Context, query url.Values) (movie.Filter, error) {
	var filter movie.Filter
	var invalid []string

	if title := query.Get(QueryTitle); title != "" {
		filter.Title = &title
	}
	if raw := query.Get(QueryRuntimeInMinutes); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinRuntimeInMinutes = &v
		} else {
			invalid = append(invalid, QueryRuntimeInMinutes)
		}
	}
	if raw := query.Get(QueryMetascore); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinMetascore = &v
		} else {
			invalid = append(invalid, QueryMetascore)
		}
	}
	if raw := query.Get(QueryImdbRating); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinImdbRating = &v
		} else {
			invalid = append(invalid, QueryImdbRating)
		}
	}
	if raw := query.Get(QueryImdbVotes); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.MinImdbVotes = &v
		} else {
			invalid = append(invalid, QueryImdbVotes)
		}
	}

	if len(invalid) > 0 {
		return movie.Filter{}, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRoute, platformerrors.ErrorTypeValidation,
			"invalid numeric query parameters: "+strings.Join(invalid, ", "), nil, "6e2b0d94-1c7a-4f58-b3e9-0d4a8c2f7b16",
			map[string]any{"parameters": invalid})
	}
	return filter, nil
}
