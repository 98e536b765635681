//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/julianespinel/movies/internal/config"
	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/infrastructure/logger"
	"github.com/julianespinel/movies/internal/infrastructure/repository/movierepo"
	"github.com/julianespinel/movies/internal/interfaces/httpserver"
)

var movieSet = wire.NewSet(
	movierepo.NewMovieGormRepository,
	newServiceOptions,
	movie.NewService,
)

// BuildApplication assembles the movies service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		openDatabase,
		movieSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
