package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/requests"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/responses"
	"github.com/julianespinel/movies/internal/utils/platformerrors"
)

const imdbIDParam = "imdbId"

// MovieHandler exposes the movie endpoints.
type MovieHandler struct {
	service movie.Service
	log     zerolog.Logger
}

func NewMovieHandler(service movie.Service, log zerolog.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With().Str("component", "movie-handler").Logger(),
	}
}

// CreateMovie godoc
// @Summary      Create a movie
// @Description  Stores a new movie. The caller supplies every field, including the IMDB id.
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        request  body      requests.MovieRequest  true  "Movie"
// @Success      201      {object}  responses.CreateMovieResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req requests.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBadRequest(c, err, "b1d7e4a0-3c92-4f6b-8a15-e9c2d0f7a384")
		return
	}

	m := req.ToDomain()
	if err := m.Validate(c.Request.Context()); err != nil {
		h.handleError(c, err, "invalid movie")
		return
	}

	imdbID, err := h.service.CreateMovie(c.Request.Context(), m)
	if err != nil {
		h.handleError(c, err, "failed to create movie")
		return
	}

	c.Header("Location", "/movies/"+imdbID)
	c.JSON(http.StatusCreated, responses.CreateMovieResponse{ImdbID: imdbID})
}

// GetMovieByImdbID godoc
// @Summary      Get a movie
// @Description  Looks a movie up by its exact IMDB id.
// @Tags         movies
// @Produce      json
// @Param        imdbId  path      string  true  "IMDB id"
// @Success      200     {object}  responses.MovieResponse
// @Failure      404     {object}  responses.ErrorResponse
// @Failure      500     {object}  responses.ErrorResponse
// @Router       /movies/{imdbId} [get]
func (h *MovieHandler) GetMovieByImdbID(c *gin.Context) {
	imdbID := c.Param(imdbIDParam)

	result, err := h.service.GetMovieByImdbID(c.Request.Context(), imdbID)
	if err != nil {
		h.handleError(c, err, "failed to get movie")
		return
	}
	if result == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "movie not found", "d3a8f6c1-5e29-4b07-9c4d-1f7e2a6b8c05")
		return
	}

	c.JSON(http.StatusOK, responses.BuildMovieResponse(result))
}

// GetMoviesByParams godoc
// @Summary      Search movies
// @Description  Returns every movie whose title contains the given text (case-insensitive) and whose numeric fields are at least the given thresholds. Absent parameters are ignored.
// @Tags         movies
// @Produce      json
// @Param        title             query     string  false  "Title substring"
// @Param        runtimeInMinutes  query     int     false  "Minimum runtime in minutes"
// @Param        metascore         query     int     false  "Minimum metascore"
// @Param        imdbRating        query     string  false  "Minimum IMDB rating"
// @Param        imdbVotes         query     int     false  "Minimum IMDB votes"
// @Success      200               {array}   responses.MovieResponse
// @Failure      422               {object}  responses.ErrorResponse
// @Failure      500               {object}  responses.ErrorResponse
// @Router       /movies [get]
func (h *MovieHandler) GetMoviesByParams(c *gin.Context) {
	filter, err := requests.ParseMovieFilter(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.handleError(c, err, "invalid search parameters")
		return
	}

	movies, err := h.service.GetMoviesByParams(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err, "failed to search movies")
		return
	}

	c.JSON(http.StatusOK, responses.BuildMovieListResponse(movies))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Replaces every field of the movie except its IMDB id. The id in the path always wins over the body.
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        imdbId   path      string                 true  "IMDB id"
// @Param        request  body      requests.MovieRequest  true  "Movie"
// @Success      200      {object}  responses.MovieResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /movies/{imdbId} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	imdbID := c.Param(imdbIDParam)

	var req requests.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleBadRequest(c, err, "4c0a9e27-d6f1-4b83-a2e5-7b9d1c3f6e08")
		return
	}

	updated, err := h.service.UpdateMovie(c.Request.Context(), imdbID, req.ToDomain())
	if err != nil {
		h.handleError(c, err, "failed to update movie")
		return
	}
	if updated == nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "movie not found", "8f1c3b6e-0a47-4d92-b5e8-2c6d9a0f3b71")
		return
	}

	c.JSON(http.StatusOK, responses.BuildMovieResponse(updated))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         movies
// @Param        imdbId  path  string  true  "IMDB id"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /movies/{imdbId} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	imdbID := c.Param(imdbIDParam)

	deleted, err := h.service.DeleteMovie(c.Request.Context(), imdbID)
	if err != nil {
		h.handleError(c, err, "failed to delete movie")
		return
	}
	if !deleted {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "movie not found", "e7b2a5d8-9c14-4f60-83a1-5d0e8b2c4f96")
		return
	}

	h.log.Debug().Str("imdb_id", imdbID).Msg("movie deleted")
	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) handleError(c *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		platformerrors.LogError(h.log, platformErr)
	} else {
		h.log.Error().Err(err).Msg(message)
	}
	responses.HandleError(c, err, message)
}
