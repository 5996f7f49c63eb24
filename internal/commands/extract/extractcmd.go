// Package extract implements the pyver extraction pipeline: resolve a
// version from package metadata files, normalize it, and emit the results.
package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/pyver/internal/config"
	"github.com/indaco/pyver/internal/core"
	"github.com/indaco/pyver/internal/discovery"
	"github.com/indaco/pyver/internal/gha"
	"github.com/indaco/pyver/internal/printer"
	"github.com/indaco/pyver/internal/semver"
	"github.com/urfave/cli/v3"
)

// RunExtract executes the extraction pipeline for the root command.
// A version that cannot be resolved degrades to the fallback value with a
// warning on the error stream; it is never an error.
func RunExtract(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	fsys := core.NewOSFileSystem()
	svc := discovery.NewService(fsys, cfg.ExtraFiles...)

	result := svc.Resolve(ctx, rootDir, cmd.String("file-path"))

	version := result.Version
	usedFallback := false
	if version == "" {
		version = cmd.String("fallback-version")
		usedFallback = true
		printer.Warnf("Warning: No version found, using fallback: %s", version)
	}

	out := gha.FromVersion(version, semver.ParseParts(version))

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")), cmd.Bool("quiet"))
	formatter.PrintResult(result, out, usedFallback)

	if dest := cmd.String("output-file"); dest != "" {
		if err := gha.Append(ctx, fsys, dest, out); err != nil {
			return err
		}
	}

	return nil
}
