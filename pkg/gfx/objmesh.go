package gfx

import (
	"math"

	"github.com/gregjohnson2017/objview/pkg/log"
	"github.com/gregjohnson2017/objview/pkg/obj"
	"github.com/gregjohnson2017/objview/pkg/util"
)

// NewMeshFromFile decodes the OBJ file at path, interleaves it into a single
// vertex buffer with position on slot 0, normal on slot 1 and texture
// coordinates on slot 2, and composes the result with an index buffer into a
// drawable mesh. The index buffer uses 16-bit elements when the unique
// vertex count allows it.
func NewMeshFromFile(path string) (*Mesh, error) {
	sw := util.Start()
	model, err := obj.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	sw.StopRecordAverage("obj.decode")
	log.Infof("%v: %v positions, %v triangles", path, len(model.Positions), model.TriangleCount())

	sw = util.Start()
	defer sw.StopRecordAverage("gfx.uploadMesh")

	verts, indices := model.Interleave()
	vbo, err := NewVertexBuffer()
	if err != nil {
		return nil, err
	}
	if err = vbo.LoadData(verts); err != nil {
		vbo.Destroy()
		return nil, err
	}

	mesh, err := NewMesh()
	if err != nil {
		vbo.Destroy()
		return nil, err
	}
	if err = mesh.AddVertexBuffer(vbo, InterleavedLayout(model)); err != nil {
		vbo.Destroy()
		mesh.Destroy()
		return nil, err
	}

	ibo, err := NewIndexBuffer()
	if err != nil {
		mesh.Destroy()
		return nil, err
	}
	uniqueVerts := len(verts) / int(model.FloatsPerVertex())
	if uniqueVerts <= math.MaxUint16+1 {
		small := make([]uint16, len(indices))
		for i, idx := range indices {
			small[i] = uint16(idx)
		}
		err = ibo.LoadUint16(small)
	} else {
		err = ibo.LoadUint32(indices)
	}
	if err != nil {
		ibo.Destroy()
		mesh.Destroy()
		return nil, err
	}
	mesh.SetIndexBuffer(ibo)

	return mesh, nil
}

// InterleavedLayout builds the attribute layout matching the model's
// Interleave output: position always on slot 0, normal on slot 1 when
// present, texture coordinates on slot 2 when present.
func InterleavedLayout(model *obj.Mesh) []BufferAttribute {
	stride := 4 * model.FloatsPerVertex()
	attrs := []BufferAttribute{
		{Slot: 0, Components: 3, Type: Float32, Stride: stride, Offset: 0},
	}
	offset := int32(3 * 4)
	if model.HasNormals() {
		attrs = append(attrs, BufferAttribute{Slot: 1, Components: 3, Type: Float32, Stride: stride, Offset: offset})
		offset += 3 * 4
	}
	if model.HasTexcoords() {
		attrs = append(attrs, BufferAttribute{Slot: 2, Components: 2, Type: Float32, Stride: stride, Offset: offset})
	}
	return attrs
}
