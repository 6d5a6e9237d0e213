// Package cli implements the quilt command-line interface.
//
// The CLI loads declarative tree files, runs the layout passes against a
// requested viewport, and either renders the result to a vector/raster
// file or prints the computed geometry. It is built using cobra with
// verbose logging via the charmbracelet/log library.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the quilt CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger rides on the command context so every subcommand can
// reach it.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "quilt",
		Short:        "Quilt lays out rectangle trees and renders them",
		Long:         `Quilt is a retained-tree layout engine. The CLI takes a TOML tree file, solves sizes and positions for a viewport, and renders the result or reports the computed geometry.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(ctx)
}
