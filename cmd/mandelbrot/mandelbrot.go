package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot-bench/pkg/bench"
	"github.com/willbeason/mandelbrot-bench/pkg/escape"
	"github.com/willbeason/mandelbrot-bench/pkg/logging"
)

// Label identifies this implementation in the summary line.
const Label = "Go"

const logLevelFlag = "log-level"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Time the Mandelbrot escape-time grid, best of 20 runs",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().String(logLevelFlag, logging.DefaultLevel, "diagnostic log level written to stderr: debug, info, warn or error")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level, err := cmd.Flags().GetString(logLevelFlag)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	logger.Debug("configuration",
		"width", escape.Width,
		"height", escape.Height,
		"maxIterations", escape.MaxIterations,
		"runs", bench.Runs)

	runner := &bench.Runner{
		Label:  Label,
		Out:    cmd.OutOrStdout(),
		Logger: logger,
	}

	err = runner.Banner()
	if err != nil {
		return err
	}

	_, err = runner.Run(func() {
		_ = escape.Grid(escape.Width, escape.Height)
	})

	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
