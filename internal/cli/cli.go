// Package cli builds the pyver root command.
package cli

import (
	"context"
	"fmt"

	"github.com/indaco/pyver/internal/commands/extract"
	"github.com/indaco/pyver/internal/config"
	"github.com/indaco/pyver/internal/printer"
	"github.com/indaco/pyver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command, configuring all flags for
// the pyver cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "pyver",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Extract semantic versions from Python package metadata files",
		UsageText: `pyver [options]

Reads a version from setup.py, pyproject.toml, or an __init__.py file
(explicit path or auto-discovery), normalizes it into major/minor/patch,
and prints the result. With --output-file, five key=value lines are
appended for GitHub Actions style pipelines.

The process exits successfully whether or not a version was found; an
unresolved version degrades to the fallback value with a warning.`,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "file-path",
				Aliases:     []string{"f"},
				Usage:       "Path to the version file, or \"auto\" for discovery",
				Value:       cfg.FilePath,
				DefaultText: "auto",
			},
			&urfavecli.StringFlag{
				Name:        "fallback-version",
				Usage:       "Version used when no version is resolved",
				Value:       cfg.FallbackVersion,
				DefaultText: "0.0.0",
			},
			&urfavecli.StringFlag{
				Name:    "output-file",
				Aliases: []string{"o"},
				Usage:   "Append version=, tag=, major=, minor=, patch= lines to this file",
				Value:   cfg.OutputFile,
			},
			&urfavecli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, json",
				Value: "text",
			},
			&urfavecli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress human-readable output",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag || printer.ShouldDisableColor())
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return extract.RunExtract(ctx, cmd, cfg)
		},
	}
}
