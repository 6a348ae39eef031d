package obj

// Interleave flattens the mesh into a unique-vertex array and a triangle
// index list referencing it. Corners with identical (position, texcoord,
// normal) index triples are deduplicated into one vertex. Each vertex is
// laid out as position(3) [normal(3)] [texcoord(2)], with the normal and
// texcoord fields present only when the mesh defines any; a corner that
// omits one of them gets zeroes there.
func (m *Mesh) Interleave() (verts []float32, indices []uint32) {
	seen := make(map[Corner]uint32, 3*len(m.Faces))
	verts = make([]float32, 0, 3*len(m.Faces)*int(m.FloatsPerVertex()))
	indices = make([]uint32, 0, 3*len(m.Faces))
	for _, face := range m.Faces {
		for _, c := range face {
			idx, ok := seen[c]
			if !ok {
				idx = uint32(len(seen))
				seen[c] = idx
				verts = m.appendVertex(verts, c)
			}
			indices = append(indices, idx)
		}
	}
	return verts, indices
}

// FloatsPerVertex returns the number of float32s one interleaved vertex
// occupies.
func (m *Mesh) FloatsPerVertex() int32 {
	n := int32(3)
	if m.HasNormals() {
		n += 3
	}
	if m.HasTexcoords() {
		n += 2
	}
	return n
}

func (m *Mesh) appendVertex(verts []float32, c Corner) []float32 {
	p := m.Positions[c.Position]
	verts = append(verts, p[0], p[1], p[2])
	if m.HasNormals() {
		if c.Normal >= 0 {
			n := m.Normals[c.Normal]
			verts = append(verts, n[0], n[1], n[2])
		} else {
			verts = append(verts, 0, 0, 0)
		}
	}
	if m.HasTexcoords() {
		if c.Texcoord >= 0 {
			t := m.Texcoords[c.Texcoord]
			verts = append(verts, t[0], t[1])
		} else {
			verts = append(verts, 0, 0)
		}
	}
	return verts
}
