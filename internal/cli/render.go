package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	canvasrenderer "github.com/quilt-ui/quilt/renderer/canvas"
	"github.com/quilt-ui/quilt/treefile"
)

// newRenderCmd creates the render command: tree file in, image file out.
func newRenderCmd() *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "render [tree.toml]",
		Short: "Lay out a tree file and render it to SVG, PNG, or PDF",
		Long: `Lay out a tree file and render it.

The render command loads a TOML tree file, solves the layout against the
requested viewport, and writes the resulting rectangles to the output
file. The format is picked from the output extension (.svg, .png, .pdf).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.ContainsRune(output, '.') {
				return fmt.Errorf("output %q has no file extension to pick a format from", output)
			}
			return runRender(cmd.Context(), args[0], output, width, height)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out.svg", "output file; extension selects the format")
	cmd.Flags().IntVar(&width, "width", 800, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "viewport height in pixels")

	return cmd
}

func runRender(ctx context.Context, input, output string, width, height int) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	ui, err := treefile.Load(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	ui.Resize(width, height)
	logger.Debug("tree loaded", "nodes", ui.Tree().Len(), "viewport", fmt.Sprintf("%dx%d", width, height))

	r := canvasrenderer.New()
	if err := ui.Frame(r); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.WriteFile(output); err != nil {
		return err
	}

	logger.Infof("Rendered %d nodes to %s (%s)", ui.Tree().Len(), output, time.Since(start).Round(time.Millisecond))
	return nil
}
