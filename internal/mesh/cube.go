package mesh

// Cube returns the unit cube used by the first demo: 8 corners, one color per
// corner, 12 triangles.
func Cube() *Data {
	return &Data{
		Positions: []float32{
			-0.5, -0.5, 0.5,
			0.5, -0.5, 0.5,
			0.5, 0.5, 0.5,
			-0.5, 0.5, 0.5,
			-0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, 0.5, -0.5,
			-0.5, 0.5, -0.5,
		},
		Colors: []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
			1, 1, 0,
			1, 0, 1,
			0, 1, 1,
			1, 1, 1,
			0, 0, 0,
		},
		Indices: []uint32{
			// front
			0, 1, 2, 2, 3, 0,
			// right
			1, 5, 6, 6, 2, 1,
			// back
			5, 4, 7, 7, 6, 5,
			// left
			4, 0, 3, 3, 7, 4,
			// top
			3, 2, 6, 6, 7, 3,
			// bottom
			4, 5, 1, 1, 0, 4,
		},
	}
}
