package movie

import (
	"context"

	"github.com/shopspring/decimal"
)

// Filter narrows a movie search. A nil field leaves that condition out.
type Filter struct {
	Title               *string
	MinRuntimeInMinutes *int
	MinMetascore        *int
	MinImdbRating       *decimal.Decimal
	MinImdbVotes        *int64
}

// Repository exposes data access for Movie entities.
//
// Lookups that match nothing return a nil result and a nil error.
type Repository interface {
	Create(ctx context.Context, m *Movie) (string, error)
	FindByImdbID(ctx context.Context, imdbID string) (*Movie, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*Movie, error)
	Update(ctx context.Context, imdbID string, m *Movie) (*Movie, error)
	Delete(ctx context.Context, imdbID string) (bool, error)
}
