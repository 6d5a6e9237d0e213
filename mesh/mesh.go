// Package mesh converts absolute rectangles into renderable triangle
// geometry. It is pure: no layout state, no backend handles.
package mesh

// Vertex is a single point of renderable geometry. Position is in pixel
// space with the origin at the top-left and y growing downward, unless
// the mesh has been passed through [Mesh.Normalize].
type Vertex struct {
	Position [3]float32
	Color    Color
}

// Mesh is indexed triangle geometry for one or more rectangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// quadIndices winds the two triangles of a rectangle counter-clockwise
// for a y-down coordinate system.
var quadIndices = [6]uint16{0, 2, 1, 3, 1, 2}

// Rectangle emits the two-triangle quad for an axis-aligned rectangle at
// (x, y) with the given size and a uniform color.
func Rectangle(x, y, width, height int, c Color) Mesh {
	fx, fy := float32(x), float32(y)
	fw, fh := float32(width), float32(height)
	return Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{fx, fy, 0}, Color: c},
			{Position: [3]float32{fx + fw, fy, 0}, Color: c},
			{Position: [3]float32{fx, fy + fh, 0}, Color: c},
			{Position: [3]float32{fx + fw, fy + fh, 0}, Color: c},
		},
		Indices: append([]uint16(nil), quadIndices[:]...),
	}
}

// Normalize returns a copy of the mesh with positions mapped from pixel
// space into normalized device coordinates for the given viewport:
// x spans [-1, 1] left to right, y spans [1, -1] top to bottom.
func (m Mesh) Normalize(viewportWidth, viewportHeight int) Mesh {
	out := Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  m.Indices,
	}
	w, h := float32(viewportWidth), float32(viewportHeight)
	for i, v := range m.Vertices {
		v.Position[0] = 2*v.Position[0]/w - 1
		v.Position[1] = 1 - 2*v.Position[1]/h
		out.Vertices[i] = v
	}
	return out
}
