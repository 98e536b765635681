package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "movies-cli",
		Short: "Operational tooling for the movies service",
		Long: `movies-cli inspects the movies service configuration and loads
movie fixtures into its database.

Examples:
  movies-cli config show --format env
  movies-cli config validate
  movies-cli seed --file data/seed_movies.yaml
  movies-cli seed --file data/seed_movies.yaml --dry-run`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return loadEnvFile(envFile)
		},
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSeedCmd())

	rootCmd.PersistentFlags().String("env-file", ".env", "Env file loaded before reading configuration")
	return rootCmd
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
