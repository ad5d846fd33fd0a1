package main

import (
	"fmt"
	"os"

	"github.com/amitsingh771/Numerology/cmd/migration/initialize"
	"github.com/amitsingh771/Numerology/cmd/migration/seed"
	"github.com/amitsingh771/Numerology/config"
	"github.com/amitsingh771/Numerology/internal/database"
	"github.com/amitsingh771/Numerology/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
)

var (
	upSteps   int
	downSteps int
)

var rootCmd = &cobra.Command{
	Use:          "migration",
	Short:        "Manage the SQLite fortune reference database",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: withDB(func(db database.DB, cfg config.Config, log logger.Logger) error {
		if upSteps > 0 {
			_, err := db.Migrate(migrate.Up, upSteps)
			return err
		}
		return initialize.InitializeTables(db, cfg, log)
	}),
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: withDB(func(db database.DB, cfg config.Config, log logger.Logger) error {
		_, err := db.Migrate(migrate.Down, downSteps)
		return err
	}),
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate, then load the combination fortune JSON table",
	RunE: withDB(func(db database.DB, cfg config.Config, log logger.Logger) error {
		if err := initialize.InitializeTables(db, cfg, log); err != nil {
			return err
		}
		_, err := seed.Seed(db.SQL, cfg, log)
		return err
	}),
}

var flushCacheCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Clear rate limiter counters from valkey",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := load(cmd)
		if err != nil {
			return err
		}

		if !cfg.CacheEnabled() {
			return log.ErrMsg("DATABASE_CACHE_ADDRESS and DATABASE_CACHE_PORT must be set")
		}

		cfg.DatabaseDbPath = ""
		db, err := database.New(cfg)
		if err != nil {
			return log.Err("failed to connect to cache", err)
		}
		defer db.Close()

		deleted, err := db.FlushAllCaches()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d cache keys\n", deleted)
		return err
	},
}

func init() {
	upCmd.Flags().IntVar(&upSteps, "steps", 0, "maximum migrations to apply (0 for all)")
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "maximum migrations to roll back (0 for all)")
	rootCmd.AddCommand(upCmd, downCmd, seedCmd, flushCacheCmd)
}

func withDB(run func(database.DB, config.Config, logger.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := load(cmd)
		if err != nil {
			return err
		}

		if cfg.DatabaseDbPath == "" {
			return log.ErrMsg("DATABASE_DB_PATH must be set")
		}

		cfg.DatabaseCacheAddress = ""
		db, err := database.New(cfg)
		if err != nil {
			return log.Err("failed to open database", err)
		}
		defer db.Close()

		return run(db, cfg, log)
	}
}

func load(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return config.Config{}, logger.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cmd.ErrOrStderr(), cfg.IsProduction(), cfg.LogLevel)
	return cfg, logger.New("migration").Function(cmd.Name()), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
