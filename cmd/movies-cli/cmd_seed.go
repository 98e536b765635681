package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"

	"github.com/julianespinel/movies/internal/config"
	"github.com/julianespinel/movies/internal/infrastructure/database"
	"github.com/julianespinel/movies/internal/infrastructure/logger"
	"github.com/julianespinel/movies/internal/infrastructure/repository/movierepo"
)

func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load movies from a YAML file",
		Long: `Validate every movie of a YAML seed file and insert them when the
movies table is empty. With --dry-run the file is only validated.`,
		RunE: runSeed,
	}
	seedCmd.Flags().StringP("file", "f", "", "Seed file (default: DB_SEED_FILE)")
	seedCmd.Flags().Bool("dry-run", false, "Validate the file without touching the database")
	return seedCmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = cfg.DBSeedFile
	}
	if path == "" {
		return fmt.Errorf("no seed file: pass --file or set DB_SEED_FILE")
	}

	movies, err := database.LoadSeedFile(ctx, path)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d valid movies\n", path, len(movies))
		return nil
	}

	log := logger.New(cfg)
	db, err := database.Connect(database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.EnsureSchema(ctx, db, log); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := database.Seed(ctx, movierepo.NewMovieGormRepository(db), path, log); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: seeded\n", path)
	return nil
}
