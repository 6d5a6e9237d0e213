package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/quilt-ui/quilt"
	"github.com/quilt-ui/quilt/treefile"
)

// newInspectCmd creates the inspect command: computed geometry as a table.
func newInspectCmd() *cobra.Command {
	var (
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "inspect [tree.toml]",
		Short: "Lay out a tree file and print the computed geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", 800, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "viewport height in pixels")

	return cmd
}

func runInspect(cmd *cobra.Command, input string, width, height int) error {
	ui, err := treefile.Load(input)
	if err != nil {
		return fmt.Errorf("load tree %s: %w", input, err)
	}
	ui.Resize(width, height)
	ui.Layout()

	tree := ui.Tree()
	var rows [][]string
	tree.Walk(tree.Root(), func(id quilt.NodeID) bool {
		b := tree.Bounds(id)
		style := tree.Style(id)
		rows = append(rows, []string{
			indentFor(tree, id) + strconv.Itoa(int(id)),
			sizingString(style.Sizing),
			strconv.Itoa(b.X),
			strconv.Itoa(b.Y),
			strconv.Itoa(b.Width),
			strconv.Itoa(b.Height),
		})
		return true
	})

	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Node", "Sizing", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		})

	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

// indentFor prefixes a node label with two spaces per tree depth so the
// table reads as a hierarchy.
func indentFor(tree *quilt.Tree, id quilt.NodeID) string {
	depth := 0
	for p := tree.Parent(id); p != quilt.NoNode; p = tree.Parent(p) {
		depth++
	}
	return strings.Repeat("  ", depth)
}

func sizingString(s quilt.Sizing) string {
	return modeString(s.Width) + "×" + modeString(s.Height)
}

func modeString(s quilt.Size) string {
	switch s.Mode {
	case quilt.ModeFixed:
		return fmt.Sprintf("fixed:%d", s.Amount)
	case quilt.ModeGrow:
		return "grow"
	default:
		return "fit"
	}
}
