package compiler

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sexpcc/sexpcc/internal/ast"
	"github.com/sexpcc/sexpcc/internal/cast"
	"github.com/sexpcc/sexpcc/internal/codegen"
	"github.com/sexpcc/sexpcc/internal/defaults"
	"github.com/sexpcc/sexpcc/internal/lexer"
	"github.com/sexpcc/sexpcc/internal/log/semconv"
	"github.com/sexpcc/sexpcc/internal/parser"
	"github.com/sexpcc/sexpcc/internal/transform"
	"go.opentelemetry.io/otel/trace"
)

type Compiler struct {
	tracer trace.Tracer
}

func New(traceProvider trace.TracerProvider) *Compiler {
	return &Compiler{
		tracer: traceProvider.Tracer("github.com/sexpcc/sexpcc/internal/compiler"),
	}
}

// Compile is a convenience wrapper for one off compilations, with tracing
// disabled.
func Compile(ctx context.Context, input string) (string, error) {
	return New(defaults.TraceProvider).Compile(ctx, input)
}

// Compile runs the full pipeline on one compilation unit. The first failing
// stage aborts the run and its error is returned as is, so callers can match
// stage errors with errors.Is.
func (c *Compiler) Compile(ctx context.Context, input string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "Compile")
	defer span.End()

	program, err := c.Parse(ctx, input)
	if err != nil {
		return "", err
	}

	target, err := c.transform(ctx, program)
	if err != nil {
		return "", err
	}

	return c.generate(ctx, target)
}

// Parse runs the pipeline front end only and returns the source tree.
func (c *Compiler) Parse(ctx context.Context, input string) (*ast.Program, error) {
	tokens, err := c.tokenize(ctx, input)
	if err != nil {
		return nil, err
	}

	return c.parse(ctx, tokens)
}

func (c *Compiler) tokenize(ctx context.Context, input string) ([]lexer.Token, error) {
	ctx, span := c.tracer.Start(ctx, "Tokenize")
	defer span.End()

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str(semconv.Stage, "tokenize").
		Int(semconv.TokenCount, len(tokens)).
		Msg("tokenized input")

	return tokens, nil
}

func (c *Compiler) parse(ctx context.Context, tokens []lexer.Token) (*ast.Program, error) {
	ctx, span := c.tracer.Start(ctx, "Parse")
	defer span.End()

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str(semconv.Stage, "parse").
		Int(semconv.StatementCount, len(program.Body)).
		Msg("parsed program")

	return program, nil
}

func (c *Compiler) transform(ctx context.Context, program *ast.Program) (*cast.Program, error) {
	ctx, span := c.tracer.Start(ctx, "Transform")
	defer span.End()

	target, err := transform.Transform(program)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str(semconv.Stage, "transform").
		Int(semconv.StatementCount, len(target.Body)).
		Msg("transformed program")

	return target, nil
}

func (c *Compiler) generate(ctx context.Context, program *cast.Program) (string, error) {
	ctx, span := c.tracer.Start(ctx, "Generate")
	defer span.End()

	output, err := codegen.Generate(program)
	if err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str(semconv.Stage, "generate").
		Msg("generated output")

	return output, nil
}
