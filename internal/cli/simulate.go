package cli

import (
	"context"
	"os"

	"github.com/rileyhilliard/lcdstat/internal/config"
	"github.com/rileyhilliard/lcdstat/internal/errors"
	"github.com/rileyhilliard/lcdstat/internal/logger"
	"github.com/rileyhilliard/lcdstat/internal/sim"
	"github.com/rileyhilliard/lcdstat/internal/stats"
)

func simulateCommand(ctx context.Context) error {
	if !stdinIsTerminal() || !stdoutIsTerminal() {
		return errors.New(errors.ErrConfig,
			"simulate needs an interactive terminal",
			"Use 'lcdstat stats' for non-interactive output")
	}

	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logging stays off unless --verbose.
	log := logger.Noop()
	if verboseFlag {
		log = logger.NewEnvLogger("sim")
	}
	return sim.Run(ctx, stats.NewSampler(cfg.NewSource(), log), log, os.Stdout, os.Stdin)
}
