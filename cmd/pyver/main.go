package main

import (
	"context"
	"os"

	"github.com/indaco/pyver/internal/cli"
	"github.com/indaco/pyver/internal/config"
	"github.com/indaco/pyver/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

// runCLI loads configuration and runs the root command with the given
// arguments.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return cli.New(cfg).Run(context.Background(), args)
}
