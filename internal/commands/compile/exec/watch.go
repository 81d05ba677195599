package exec

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sexpcc/sexpcc/internal/commands/compile/config"
)

// Watch compiles all inputs, then polls their modification times and
// recompiles whenever at least one input changed. It blocks until ctx is
// cancelled and returns the cancel cause.
func (e *Executor) Watch(ctx context.Context, cfg *config.Config) error {
	ctx, span := e.tracer.Start(ctx, "watch")
	defer span.End()

	logger := zerolog.Ctx(ctx)

	modTimes := make(map[string]time.Time, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			return fmt.Errorf("stat %s: %w", input, err)
		}

		modTimes[input] = info.ModTime()
	}

	// a failed build must not stop the watch, the next change gets
	// another chance
	if err := e.Run(ctx, cfg); err != nil {
		logger.Error().Err(err).Msg("build failed")
	}

	ticker := e.newTicker(cfg.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.Chan():
		}

		changed := e.changedInputs(ctx, cfg.Inputs, modTimes)
		if len(changed) == 0 {
			continue
		}

		logger.Info().Strs("changed", changed).Msg("inputs changed, rebuilding")

		if err := e.Run(ctx, cfg); err != nil {
			logger.Error().Err(err).Msg("build failed")
		}
	}
}

// changedInputs returns the inputs whose modification time advanced since the
// last poll and records the new times. Inputs that cannot be read are skipped
// until they reappear.
func (e *Executor) changedInputs(ctx context.Context, inputs []string, modTimes map[string]time.Time) []string {
	logger := zerolog.Ctx(ctx)

	changed := make([]string, 0)
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			logger.Warn().Err(err).Msg("could not stat input")

			continue
		}

		if !info.ModTime().After(modTimes[input]) {
			continue
		}

		modTimes[input] = info.ModTime()
		changed = append(changed, input)
	}

	return changed
}
