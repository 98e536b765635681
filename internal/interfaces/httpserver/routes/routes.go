package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/julianespinel/movies/internal/interfaces/httpserver/handlers"
)

// Provider encapsulates route registration.
type Provider struct {
	handlers *handlers.Provider
}

// NewProvider builds the route registrar.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		handlers: handlerProvider,
	}
}

// Register attaches every resource route to the engine.
func (p *Provider) Register(engine *gin.Engine) {
	registerMovieRoutes(engine.Group("/movies"), p.handlers.Movie)
}

func registerMovieRoutes(router gin.IRoutes, handler *handlers.MovieHandler) {
	router.POST("", handler.CreateMovie)
	router.GET("", handler.GetMoviesByParams)
	router.GET("/:imdbId", handler.GetMovieByImdbID)
	router.PUT("/:imdbId", handler.UpdateMovie)
	router.DELETE("/:imdbId", handler.DeleteMovie)
}
