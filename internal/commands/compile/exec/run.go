package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/sexpcc/sexpcc/internal/commands/compile/config"
	"github.com/sexpcc/sexpcc/internal/compiler"
	"github.com/sexpcc/sexpcc/internal/defaults"
	"github.com/sexpcc/sexpcc/internal/log/semconv"
	"github.com/sexpcc/sexpcc/internal/util/timeutil"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/sexpcc/sexpcc/internal/commands/compile/exec"
)

type Executor struct {
	compiler  *compiler.Compiler
	newTicker timeutil.NewTickerFunc
	stderr    io.Writer
	stdin     io.Reader
	stdout    io.Writer
	tracer    trace.Tracer
}

func NewExecutor(options ...func(*Executor)) *Executor {
	executor := Executor{
		compiler:  compiler.New(defaults.TraceProvider),
		newTicker: timeutil.NewTicker,
		stderr:    os.Stderr,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		tracer:    defaults.TraceProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

// Run compiles every configured input once. A single input without --output
// goes to standard output, multiple inputs are compiled concurrently into
// the output directory. The first error wins, nothing is retried.
func (e *Executor) Run(ctx context.Context, cfg *config.Config) error {
	ctx, span := e.tracer.Start(ctx, "run")
	defer span.End()

	logger := zerolog.Ctx(ctx).With().Str(semconv.BuildID, uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	if len(cfg.Inputs) == 1 {
		return e.compileFile(ctx, cfg, cfg.Inputs[0], cfg.OutputPath)
	}

	outputs := make(map[string]string, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		outputPath := outputPathFor(cfg.OutputPath, input)

		if previous, exists := outputs[outputPath]; exists {
			return fmt.Errorf("inputs %s and %s map to the same output file %s", previous, input, outputPath)
		}

		outputs[outputPath] = input
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for outputPath, input := range outputs {
		group.Go(func() error {
			return e.compileFile(groupCtx, cfg, input, outputPath)
		})
	}

	return group.Wait()
}

func (e *Executor) compileFile(ctx context.Context, cfg *config.Config, inputPath, outputPath string) error {
	logger := zerolog.Ctx(ctx).With().Str(semconv.InputPath, inputPath).Logger()
	ctx = logger.WithContext(ctx)

	source, err := e.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	if cfg.EmitAST {
		program, err := e.compiler.Parse(ctx, source)
		if err != nil {
			return fmt.Errorf("compile %s: %w", inputPath, err)
		}

		fmt.Fprintln(e.stderr, pretty.Sprint(program))
	}

	output, err := e.compiler.Compile(ctx, source)
	if err != nil {
		return fmt.Errorf("compile %s: %w", inputPath, err)
	}

	if outputPath == "" {
		fmt.Fprintln(e.stdout, output)

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info().Str(semconv.OutputPath, outputPath).Msg("compiled")

	return nil
}

func (e *Executor) readInput(path string) (string, error) {
	if path == config.StdinPath {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// outputPathFor maps an input file into the output directory with the
// extension replaced by .c.
func outputPathFor(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(outputDir, stem+".c")
}

func WithNewTickerFunc(newTicker timeutil.NewTickerFunc) func(*Executor) {
	return func(e *Executor) {
		e.newTicker = newTicker
	}
}

func WithStderr(w io.Writer) func(*Executor) {
	return func(e *Executor) {
		e.stderr = w
	}
}

func WithStdin(r io.Reader) func(*Executor) {
	return func(e *Executor) {
		e.stdin = r
	}
}

func WithStdout(w io.Writer) func(*Executor) {
	return func(e *Executor) {
		e.stdout = w
	}
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.compiler = compiler.New(tp)
		e.tracer = tp.Tracer(tracerName)
	}
}
