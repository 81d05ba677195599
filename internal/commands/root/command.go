package root

import (
	"github.com/sexpcc/sexpcc/internal/commands/compile"
	"github.com/sexpcc/sexpcc/internal/meta/version"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:    "sexpcc",
		Usage:   "Compiles prefix call expressions to C style call syntax.",
		Version: version.Version,
		Commands: []*cli.Command{
			compile.NewCommand(),
		},
	}
}
