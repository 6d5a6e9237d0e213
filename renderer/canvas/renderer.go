// Package canvasrenderer draws quilt frames via github.com/tdewolff/canvas.
//
// It implements the quilt.Renderer contract with a vector canvas: each
// submitted mesh is filled triangle by triangle in pixel coordinates, and
// the finished frame can be written to SVG, PNG, or PDF by file extension.
package canvasrenderer

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/quilt-ui/quilt"
	"github.com/quilt-ui/quilt/mesh"
)

// Renderer accumulates one frame on a vector canvas.
type Renderer struct {
	canvas *canvas.Canvas
	ctx    *canvas.Context
}

var _ quilt.Renderer = (*Renderer)(nil)

// New creates a renderer with no active frame; Begin starts one.
func New() *Renderer {
	return &Renderer{}
}

// Begin starts a frame with the given viewport size. Canvas units map
// one-to-one to layout pixels, with the origin at the top-left to match
// the layout coordinate system.
func (r *Renderer) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas renderer: invalid viewport %dx%d", width, height)
	}
	r.canvas = canvas.New(float64(width), float64(height))
	r.ctx = canvas.NewContext(r.canvas)
	r.ctx.SetCoordSystem(canvas.CartesianIV)
	return nil
}

// Submit fills the mesh's triangles. Vertices are expected in pixel
// space; each triangle takes the color of its first vertex, which for
// rectangle quads is the uniform node color.
func (r *Renderer) Submit(m mesh.Mesh) error {
	if r.ctx == nil {
		return fmt.Errorf("canvas renderer: Submit before Begin")
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("canvas renderer: index count %d is not a triangle list", len(m.Indices))
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := m.Vertices[m.Indices[i]]
		v1 := m.Vertices[m.Indices[i+1]]
		v2 := m.Vertices[m.Indices[i+2]]

		p := &canvas.Path{}
		p.MoveTo(float64(v0.Position[0]), float64(v0.Position[1]))
		p.LineTo(float64(v1.Position[0]), float64(v1.Position[1]))
		p.LineTo(float64(v2.Position[0]), float64(v2.Position[1]))
		p.Close()

		r.ctx.SetFillColor(v0.Color.RGBA8())
		r.ctx.DrawPath(0, 0, p)
	}
	return nil
}

// End finishes the frame. The canvas stays available until the next Begin
// so callers can write it out.
func (r *Renderer) End() error {
	if r.ctx == nil {
		return fmt.Errorf("canvas renderer: End before Begin")
	}
	return nil
}

// WriteFile encodes the last finished frame to path, picking the format
// from the file extension (.svg, .png, .pdf, ...).
func (r *Renderer) WriteFile(path string) error {
	if r.canvas == nil {
		return fmt.Errorf("canvas renderer: no frame to write")
	}
	if err := renderers.Write(path, r.canvas); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
