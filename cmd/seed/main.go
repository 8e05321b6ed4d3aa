package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GTDGit/multitool_api/internal/config"
	"github.com/GTDGit/multitool_api/internal/database"
	"github.com/GTDGit/multitool_api/internal/repository"
	"github.com/GTDGit/multitool_api/internal/seed"
)

// seedOptions carries the parsed command-line flags.
type seedOptions struct {
	count int
	seed  uint64
}

// main replaces the product catalog with generated data.
func main() {
	if err := newRootCmd(runSeed).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the seed command; run receives the validated options.
func newRootCmd(run func(ctx context.Context, opts seedOptions) error) *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Replace the product catalog with generated products",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.count < 0 {
				return fmt.Errorf("--count must be >= 0, got %d", opts.count)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", seed.DefaultCount, "number of products to generate")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	return cmd
}

func runSeed(ctx context.Context, opts seedOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db.DB, cfg.DB.MigrationsPath); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	log.Info().Int("count", opts.count).Uint64("seed", opts.seed).Msg("starting database seeding")
	if err := seed.Run(ctx, repository.NewProductRepository(db), seed.NewGenerator(opts.seed), opts.count); err != nil {
		log.Error().Err(err).Msg("error seeding database")
		return err
	}
	return nil
}
