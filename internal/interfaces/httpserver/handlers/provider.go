package handlers

import (
	"github.com/rs/zerolog"

	"github.com/julianespinel/movies/internal/domain/movie"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Movie *MovieHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(movieService movie.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Movie: NewMovieHandler(movieService, log),
	}
}
