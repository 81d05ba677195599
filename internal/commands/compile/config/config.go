package config

import (
	"fmt"
	"slices"
	"time"
)

// StdinPath marks an input read from standard input instead of a file.
const StdinPath = "-"

type Flagger interface {
	Bool(name string) bool
	Duration(name string) time.Duration
	String(name string) string
}

type Config struct {
	EmitAST       bool
	Inputs        []string
	LogLevel      string
	OutputPath    string
	Trace         bool
	Watch         bool
	WatchInterval time.Duration
}

func Read(flags Flagger, args []string, getEnv func(string) string) (*Config, error) {
	// args - required
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one input file is required")
	}

	inputs := slices.Clone(args)

	stdinCount := 0
	for _, input := range inputs {
		if input == StdinPath {
			stdinCount++
		}
	}

	if stdinCount > 1 {
		return nil, fmt.Errorf("standard input may be read only once")
	}

	// flags
	outputPath := flags.String("output")
	if len(inputs) > 1 && outputPath == "" {
		return nil, fmt.Errorf("flag --output is required with multiple input files")
	}

	watch := flags.Bool("watch")
	if watch && outputPath == "" {
		return nil, fmt.Errorf("flag --output is required with --watch")
	}

	if watch && stdinCount > 0 {
		return nil, fmt.Errorf("standard input cannot be watched")
	}

	watchInterval := flags.Duration("watch-interval")
	if watchInterval <= 0 {
		return nil, fmt.Errorf("flag --watch-interval must be positive")
	}

	cfg := Config{
		EmitAST:       flags.Bool("emit-ast"),
		Inputs:        inputs,
		LogLevel:      getEnv("SEXPCC_LOG_LEVEL"),
		OutputPath:    outputPath,
		Trace:         flags.Bool("trace"),
		Watch:         watch,
		WatchInterval: watchInterval,
	}

	return &cfg, nil
}
