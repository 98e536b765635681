package movie

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

// FilmRating is the MPAA classification of a movie.
type FilmRating string

const (
	FilmRatingG    FilmRating = "G"
	FilmRatingPG   FilmRating = "PG"
	FilmRatingPG13 FilmRating = "PG-13"
	FilmRatingR    FilmRating = "R"
	FilmRatingNC17 FilmRating = "NC-17"
)

// FilmRatings lists every accepted rating.
var FilmRatings = []FilmRating{FilmRatingG, FilmRatingPG, FilmRatingPG13, FilmRatingR, FilmRatingNC17}

// IsValid reports whether r is one of FilmRatings.
func (r FilmRating) IsValid() bool {
	for _, known := range FilmRatings {
		if r == known {
			return true
		}
	}
	return false
}

// Movie is one film record identified by its IMDB id.
type Movie struct {
	ImdbID           string          `json:"imdbId" validate:"required"`
	Title            string          `json:"title" validate:"required"`
	RuntimeInMinutes int             `json:"runtimeInMinutes" validate:"gt=0"`
	ReleaseDate      time.Time       `json:"releaseDate" validate:"required"`
	FilmRating       FilmRating      `json:"filmRating" validate:"required,filmrating"`
	Genre            string          `json:"genre"`
	Director         string          `json:"director"`
	Plot             string          `json:"plot"`
	Metascore        int             `json:"metascore"`
	ImdbRating       decimal.Decimal `json:"imdbRating"`
	ImdbVotes        int64           `json:"imdbVotes" validate:"gte=0"`
}

// WithImdbID returns a copy of m carrying id instead of its own IMDB id.
func (m Movie) WithImdbID(id string) Movie {
	m.ImdbID = id
	return m
}

// Compare imposes a total order over every field, in declaration order.
// It returns 0 only when all fields match.
func (m Movie) Compare(other Movie) int {
	if c := strings.Compare(m.ImdbID, other.ImdbID); c != 0 {
		return c
	}
	if c := strings.Compare(m.Title, other.Title); c != 0 {
		return c
	}
	if c := cmp.Compare(m.RuntimeInMinutes, other.RuntimeInMinutes); c != 0 {
		return c
	}
	if c := m.ReleaseDate.Compare(other.ReleaseDate); c != 0 {
		return c
	}
	if c := strings.Compare(string(m.FilmRating), string(other.FilmRating)); c != 0 {
		return c
	}
	if c := strings.Compare(m.Genre, other.Genre); c != 0 {
		return c
	}
	if c := strings.Compare(m.Director, other.Director); c != 0 {
		return c
	}
	if c := strings.Compare(m.Plot, other.Plot); c != 0 {
		return c
	}
	if c := cmp.Compare(m.Metascore, other.Metascore); c != 0 {
		return c
	}
	if c := m.ImdbRating.Cmp(other.ImdbRating); c != 0 {
		return c
	}
	return cmp.Compare(m.ImdbVotes, other.ImdbVotes)
}

// Equal reports whether every field of m and other match.
func (m Movie) Equal(other Movie) bool {
	return m.Compare(other) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("filmrating", func(fl validator.FieldLevel) bool {
		return FilmRating(fl.Field().String()).IsValid()
	})
	return v
}

// Validate checks the structural invariants of a movie and returns a
// VALIDATION PlatformError describing every violated field.
func (m *Movie) Validate(ctx context.Context) error {
	err := validate.StructCtx(ctx, m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"unable to validate movie", err, "8d0c4f1e-63a2-4b7e-9f35-0a6e2c1b7d94")
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describeViolation(fe))
	}

	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
		"invalid movie: "+strings.Join(violations, "; "), nil, "c4f7a2d9-1e38-4b56-a0c2-5d9e8f3b6a17",
		map[string]any{"imdb_id": m.ImdbID, "violations": violations})
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "filmrating":
		return fmt.Sprintf("%s must be one of %v", fe.Field(), FilmRatings)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
