package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-dm-tools/internal/config"
	"github.com/KirkDiggler/rpg-dm-tools/internal/logging"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services/perception"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type detectTrapsOptions struct {
	bonus       int
	dataDir     string
	backend     string
	redisURL    string
	seed        int64
	concurrency int
}

func newDetectTrapsCmd() *cobra.Command {
	opts := &detectTrapsOptions{}

	cmd := &cobra.Command{
		Use:   "detect-traps <session-id> [<session-id>...]",
		Short: "Search the current room of a session for traps",
		Long: "Rolls a perception check (d20 + bonus) for each session and compares it with the DC of the trap in the " +
			"session's current room. Prints one JSON result, or a JSON array when several sessions are given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetectTraps(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.bonus, "bonus", "b", 0, "Perception bonus added to the d20 roll")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "Base game data directory (overrides GAME_DATA_DIR)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Session state backend: file or redis (overrides STATE_BACKEND)")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the redis backend (overrides REDIS_URL)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Fixed dice seed for reproducible rolls (overrides DICE_SEED)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", defaultConcurrency, "Sessions resolved at the same time")

	return cmd
}

func runDetectTraps(cmd *cobra.Command, opts *detectTrapsOptions, sessionIDs []string) error {
	cfg := config.Load()
	if err := applyOverrides(cmd, cfg, opts); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	provider, err := services.NewProviderFromConfig(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := provider.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("failed to close state backend")
		}
	}()

	results, err := detectAll(cmd.Context(), provider.PerceptionService, sessionIDs, opts.bonus, opts.concurrency)
	if err != nil {
		return err
	}

	if len(results) == 1 {
		return writeJSON(cmd.OutOrStdout(), results[0])
	}
	return writeJSON(cmd.OutOrStdout(), results)
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *detectTrapsOptions) error {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.State.DataDir = opts.dataDir
	}
	if flags.Changed("backend") {
		cfg.State.Backend = opts.backend
	}
	if flags.Changed("redis-url") {
		cfg.Redis.URL = opts.redisURL
	}
	if flags.Changed("seed") {
		cfg.SetSeed(opts.seed)
	}
	if opts.concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	return cfg.Validate()
}

// detectAll resolves every session with at most limit calls in flight.
// Results keep the order of sessionIDs.
func detectAll(ctx context.Context, svc perception.Service, sessionIDs []string, bonus, limit int) ([]*perception.DetectTrapsResult, error) {
	results := make([]*perception.DetectTrapsResult, len(sessionIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range sessionIDs {
		g.Go(func() error {
			result, err := svc.DetectTraps(ctx, &perception.DetectTrapsInput{
				SessionID:       id,
				PerceptionBonus: bonus,
			})
			if err != nil {
				return fmt.Errorf("session %q: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
