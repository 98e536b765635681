package middlewares

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/infrastructure/metrics"
	"github.com/julianespinel/movies/internal/interfaces/httpserver/responses"
)

const panicErrorCode = "0f5e7c21-b9a4-4d36-8e1f-6c2a9d3b7e40"

// Recovery turns a panic raised while serving a request into a 500 response.
// Panics carrying movie.ErrInconsistentState are counted separately.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}

		event := logger.Error().Err(err).Str("path", c.Request.URL.Path)
		if requestID := RequestIDFromContext(c); requestID != "" {
			event = event.Str("request_id", requestID)
		}
		if errors.Is(err, movie.ErrInconsistentState) {
			metrics.RecordCreateFailureEscalated()
			event.Msg("request aborted, storage state is unknown")
		} else {
			event.Msg("recovered from panic")
		}

		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:      panicErrorCode,
			Error:     "internal server error",
			RequestID: RequestIDFromContext(c),
		})
	})
}
