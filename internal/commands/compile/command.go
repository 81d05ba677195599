package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sexpcc/sexpcc/internal/commandinit"
	"github.com/sexpcc/sexpcc/internal/commands/compile/config"
	"github.com/sexpcc/sexpcc/internal/commands/compile/exec"
	"github.com/sexpcc/sexpcc/internal/defaults"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
)

var ErrCommandFailed = errors.New("command failed")

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compiles source files.",
		ArgsUsage: "<file>... (use '-' for standard input)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "emit-ast",
				Usage: "print the parsed source tree to standard error",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, or output directory with multiple inputs",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "export spans to an OpenTelemetry collector",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "recompile whenever an input file changes",
			},
			&cli.DurationFlag{
				Name:  "watch-interval",
				Usage: "interval between modification time polls",
				Value: 2 * time.Second,
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	consoleWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		// standard output carries generated code
		w.Out = os.Stderr
	})

	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().With().Str("command", "compile").Logger()

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.LogLevel != "" {
		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level")
		} else {
			logger = logger.Level(level)
		}
	}

	var traceProvider trace.TracerProvider = defaults.TraceProvider
	if cfg.Trace {
		sdkProvider, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "sexpcc")
		if err != nil {
			logger.Error().Err(err).Msg("init OTEL provider")
			return ErrCommandFailed
		}
		defer tpShutdown(ctx)

		traceProvider = sdkProvider
	}

	ctx = logger.WithContext(ctx)

	executor := exec.NewExecutor(exec.WithTracerProvider(traceProvider))

	if !cfg.Watch {
		if err := executor.Run(ctx, cfg); err != nil {
			return fmt.Errorf("compile command: %w", err)
		}

		return nil
	}

	ctx, cancel := context.WithCancelCause(ctx)
	stopChan := make(chan os.Signal, 1)

	errInterrupted := errors.New("interrupted")

	go func() {
		signal.Notify(stopChan, os.Interrupt, syscall.SIGINT)

		<-stopChan
		logger.Info().Msg("received cancel signal")

		cancel(errInterrupted)
	}()

	if err := executor.Watch(ctx, cfg); err != nil && !errors.Is(err, errInterrupted) {
		return fmt.Errorf("compile command: %w", err)
	}

	return nil
}
