package renderer

// CubeVertices is a unit cube centered at the origin, four vertices per
// face so each face gets a flat color. Layout: x, y, z, r, g, b.
var CubeVertices = []float32{
	// Front (red)
	-0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	-0.5, 0.5, 0.5, 1, 0, 0,

	// Back (green)
	-0.5, -0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, -0.5, -0.5, 0, 1, 0,

	// Top (blue)
	-0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, -0.5, 0, 0, 1,
	-0.5, 0.5, -0.5, 0, 0, 1,

	// Bottom (yellow)
	-0.5, -0.5, 0.5, 1, 1, 0,
	0.5, -0.5, 0.5, 1, 1, 0,
	0.5, -0.5, -0.5, 1, 1, 0,
	-0.5, -0.5, -0.5, 1, 1, 0,

	// Right (cyan)
	0.5, -0.5, 0.5, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 1,
	0.5, 0.5, -0.5, 0, 1, 1,
	0.5, -0.5, -0.5, 0, 1, 1,

	// Left (magenta)
	-0.5, -0.5, 0.5, 1, 0, 1,
	-0.5, -0.5, -0.5, 1, 0, 1,
	-0.5, 0.5, -0.5, 1, 0, 1,
	-0.5, 0.5, 0.5, 1, 0, 1,
}

// CubeIndices are CCW triangles for CubeVertices.
var CubeIndices = []uint16{
	0, 1, 2, 2, 3, 0, // front
	4, 5, 6, 6, 7, 4, // back
	8, 11, 10, 10, 9, 8, // top
	12, 13, 14, 14, 15, 12, // bottom
	16, 17, 18, 18, 19, 16, // right
	20, 23, 22, 22, 21, 20, // left
}
