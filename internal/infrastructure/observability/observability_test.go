package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/julianespinel/movies/internal/config"
)

func TestSetup_TracingDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.Config{ServiceName: "movies-api"}, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStorageSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := StartStorageSpan(context.Background(), "create", "tt0133093")
	EndSpan(span, errors.New("unique constraint"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "movies.create", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("movie.imdb_id", "tt0133093"))
	assert.Contains(t, ended[0].Attributes(), attribute.String("db.operation", "create"))
}
