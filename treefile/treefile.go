// Package treefile loads declarative quilt trees from TOML.
//
// A tree file describes the node hierarchy with nested tables:
//
//	background = "#1a1a2e"
//
//	[node]
//	direction = "row"
//	width = "grow"
//	height = "grow"
//	padding = 16
//	gap = 16
//	color = "#e94560"
//
//	  [[node.children]]
//	  width = "grow"
//	  height = "grow"
//	  min-width = 100
//	  max-width = 200
//	  color = "#0f3460"
//
// Sizing strings are "fit" (default), "grow", or "fixed:N".
package treefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quilt-ui/quilt"
)

// File is the top-level tree file schema.
type File struct {
	Background string `toml:"background"`
	Node       *Spec  `toml:"node"`
}

// Spec describes one node; children nest recursively.
type Spec struct {
	Direction string `toml:"direction"` // "row" (default) or "column"
	Width     string `toml:"width"`     // "fit", "grow", "fixed:N"
	Height    string `toml:"height"`
	Padding   int    `toml:"padding"`
	Gap       int    `toml:"gap"`
	MinWidth  int    `toml:"min-width"`
	MinHeight int    `toml:"min-height"`
	MaxWidth  int    `toml:"max-width"`
	MaxHeight int    `toml:"max-height"`
	Color     string `toml:"color"`
	Children  []Spec `toml:"children"`
}

// Load reads and builds a UI from the tree file at path.
func Load(path string, opts ...quilt.Option) (*quilt.UI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	u, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// Parse builds a UI from tree file contents.
func Parse(data []byte, opts ...quilt.Option) (*quilt.UI, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Node == nil {
		return nil, fmt.Errorf("tree file has no [node] table")
	}

	if f.Background != "" {
		bg, err := quilt.ParseColor(f.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, quilt.WithBackground(bg))
	}

	u := quilt.New(opts...)
	if err := build(u, quilt.NoNode, f.Node); err != nil {
		return nil, err
	}
	return u, nil
}

func build(u *quilt.UI, parent quilt.NodeID, s *Spec) error {
	style, err := s.Style()
	if err != nil {
		return err
	}

	c := quilt.Color{}
	if s.Color != "" {
		if c, err = quilt.ParseColor(s.Color); err != nil {
			return err
		}
	}

	id := u.Box(parent, style, c)
	for i := range s.Children {
		if err := build(u, id, &s.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// Style resolves the spec's string fields into a layout style.
func (s *Spec) Style() (quilt.Style, error) {
	style := quilt.Style{
		Padding:   s.Padding,
		Gap:       s.Gap,
		MinWidth:  s.MinWidth,
		MinHeight: s.MinHeight,
		MaxWidth:  s.MaxWidth,
		MaxHeight: s.MaxHeight,
	}

	switch s.Direction {
	case "", "row":
		style.Direction = quilt.Row
	case "column":
		style.Direction = quilt.Column
	default:
		return style, fmt.Errorf("unknown direction %q", s.Direction)
	}

	var err error
	if style.Sizing.Width, err = parseSize(s.Width); err != nil {
		return style, fmt.Errorf("width: %w", err)
	}
	if style.Sizing.Height, err = parseSize(s.Height); err != nil {
		return style, fmt.Errorf("height: %w", err)
	}
	return style, nil
}

func parseSize(s string) (quilt.Size, error) {
	switch {
	case s == "" || s == "fit":
		return quilt.Fit(), nil
	case s == "grow":
		return quilt.Grow(), nil
	case strings.HasPrefix(s, "fixed:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "fixed:"))
		if err != nil || n < 0 {
			return quilt.Size{}, fmt.Errorf("bad fixed size %q", s)
		}
		return quilt.Fixed(n), nil
	default:
		return quilt.Size{}, fmt.Errorf("unknown sizing %q (want fit, grow, or fixed:N)", s)
	}
}
