package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/julianespinel/movies/internal/config"
	"github.com/julianespinel/movies/internal/domain/movie"
	"github.com/julianespinel/movies/internal/infrastructure/database"
	"github.com/julianespinel/movies/internal/infrastructure/logger"
	"github.com/julianespinel/movies/internal/infrastructure/observability"
	"github.com/julianespinel/movies/internal/infrastructure/repository/movierepo"
	"github.com/julianespinel/movies/internal/interfaces/httpserver"
)

// @title Movies API
// @version 1.0
// @description CRUD service for movie records keyed by IMDB id
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	movieRepository := movierepo.NewMovieGormRepository(db)
	movieService := movie.NewService(movieRepository, log, newServiceOptions(cfg))

	httpServer := httpserver.New(cfg, log, movieService, db)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// openDatabase connects, ensures the movies schema and loads DB_SEED_FILE
// when it is set.
func openDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(newDatabaseConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.EnsureSchema(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("ensure movies schema: %w", err)
	}
	if cfg.DBSeedFile != "" {
		if err := database.Seed(ctx, movierepo.NewMovieGormRepository(db), cfg.DBSeedFile, log); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("seed movies from %s: %w", cfg.DBSeedFile, err)
		}
	}
	return db, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newServiceOptions(cfg *config.Config) movie.Options {
	return movie.Options{CreateFailureFatal: cfg.CreateFailureFatal}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
