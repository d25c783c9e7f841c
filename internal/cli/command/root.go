// Package command provides CLI command definitions for logmesh-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/logmesh-go/internal/cli/output"
	"github.com/yndnr/logmesh-go/internal/infra/buildinfo"
	"github.com/yndnr/logmesh-go/internal/infra/confloader"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "logmesh-cli",
		Usage:   "logmesh command-line management tool",
		Version: buildinfo.Get().String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConfigCommand(),
			NodeIDCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.StringFlag{
			Name:  "env-prefix",
			Usage: "Prefix of environment variables merged over the file",
			Value: confloader.DefaultEnvPrefix,
		},
		&cli.BoolFlag{
			Name:  "no-env",
			Usage: "Ignore environment variables",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Output    string
	EnvPrefix string
	NoEnv     bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Output:    c.String("output"),
		EnvPrefix: c.String("env-prefix"),
		NoEnv:     c.Bool("no-env"),
	}
}

// loadSource reads the FILE argument and the environment the same way
// logmesh-server does.
func loadSource(c *cli.Context) (*confloader.Loader, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one FILE argument, got %d", c.NArg())
	}

	flags := ParseGlobalFlags(c)
	prefix := flags.EnvPrefix
	if flags.NoEnv {
		prefix = ""
	}

	src := confloader.NewLoader(
		confloader.WithConfigFile(c.Args().First()),
		confloader.WithEnvPrefix(prefix),
	)
	if err := src.Load(); err != nil {
		return nil, err
	}
	return src, nil
}

// printResult writes data in the selected output format.
func printResult(c *cli.Context, data any) error {
	format, err := output.ParseFormat(ParseGlobalFlags(c).Output)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}
