package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/objview/pkg/log"
	set "github.com/kroppt/Int32Set"
)

// ErrSlotConflict indicates that two vertex buffers on the same mesh tried
// to feed the same attribute slot.
const ErrSlotConflict log.ConstErr = "attribute slot already bound on this mesh"

type vertexBinding struct {
	buffer *VertexBuffer
	attrs  []BufferAttribute
}

// Mesh composes one or more vertex buffers, each with its attribute layout,
// and an optional index buffer into a single drawable unit. It wraps an
// OpenGL vertex array object. The mesh owns the buffers handed to it and
// releases them in Destroy.
type Mesh struct {
	vaoID    uint32
	bindings []vertexBinding
	ibo      *IndexBuffer
	slots    set.Set
}

func NewMesh() (*Mesh, error) {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	if vaoID == 0 {
		return nil, fmt.Errorf("%w: vertex array object", ErrBufferAlloc)
	}
	return &Mesh{
		vaoID: vaoID,
		slots: set.NewSet(),
	}, nil
}

// AddVertexBuffer registers the buffer's attributes against this mesh.
// Every attribute is validated first, and a slot claimed twice, whether by
// a previously added buffer or within the list itself, is rejected with
// ErrSlotConflict, so a bad layout can never reach a draw call.
func (m *Mesh) AddVertexBuffer(vbo *VertexBuffer, attrs []BufferAttribute) error {
	if err := ValidateLayout(attrs); err != nil {
		return err
	}
	for _, a := range attrs {
		if m.slots.Contains(int32(a.Slot)) {
			return fmt.Errorf("%w: slot %v", ErrSlotConflict, a.Slot)
		}
	}

	gl.BindVertexArray(m.vaoID)
	vbo.Bind()
	for _, a := range attrs {
		gl.EnableVertexAttribArray(a.Slot)
		gl.VertexAttribPointer(a.Slot, a.Components, uint32(a.Type), false,
			a.StrideBytes(), unsafe.Pointer(uintptr(a.Offset)))
		m.slots.Add(int32(a.Slot))
	}
	gl.BindVertexArray(0)
	vbo.Unbind()

	m.bindings = append(m.bindings, vertexBinding{buffer: vbo, attrs: attrs})
	return nil
}

// SetIndexBuffer attaches the index buffer to this mesh. A mesh holds at
// most one; attaching a second replaces and destroys the first, with a
// warning since the prior data path is silently dropped.
func (m *Mesh) SetIndexBuffer(ibo *IndexBuffer) {
	if m.ibo != nil {
		log.Warnf("mesh %v: replacing previously attached index buffer %v", m.vaoID, m.ibo.GetID())
		m.ibo.Destroy()
	}
	m.ibo = ibo

	gl.BindVertexArray(m.vaoID)
	if ibo != nil {
		ibo.Bind()
	} else {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}
	gl.BindVertexArray(0)
}

// Bind makes this mesh the current vertex array object.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vaoID)
}

// Unbind clears the current vertex array object.
func (m *Mesh) Unbind() {
	gl.BindVertexArray(0)
}

// Draw issues a single draw call for the mesh: an indexed draw over the
// index buffer's element count when one is attached, otherwise a non-indexed
// draw over the vertex count of the first bound buffer. Draw binds and
// unbinds the mesh itself so it never depends on, or leaks, the device's
// current binding state.
func (m *Mesh) Draw() {
	if len(m.bindings) == 0 {
		return
	}
	m.Bind()
	if m.ibo != nil {
		gl.DrawElements(gl.TRIANGLES, m.ibo.ElementCount(), uint32(m.ibo.ElementType()), gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount())
	}
	m.Unbind()
}

// VertexCount derives the vertex count from the first bound buffer's size
// and the stride of its first attribute.
func (m *Mesh) VertexCount() int32 {
	if len(m.bindings) == 0 || len(m.bindings[0].attrs) == 0 {
		return 0
	}
	b := m.bindings[0]
	return int32(b.buffer.GetSizeBytes()) / b.attrs[0].StrideBytes()
}

// AttributeBySlot returns the attribute bound on the given slot, if any.
func (m *Mesh) AttributeBySlot(slot uint32) (BufferAttribute, bool) {
	for _, b := range m.bindings {
		for _, a := range b.attrs {
			if a.Slot == slot {
				return a, true
			}
		}
	}
	return BufferAttribute{}, false
}

// IndexCount returns the attached index buffer's element count, or 0 when
// the mesh draws non-indexed.
func (m *Mesh) IndexCount() int32 {
	if m.ibo == nil {
		return 0
	}
	return m.ibo.ElementCount()
}

// Destroy releases the vertex array object along with every buffer the
// mesh owns.
func (m *Mesh) Destroy() {
	for _, b := range m.bindings {
		b.buffer.Destroy()
	}
	if m.ibo != nil {
		m.ibo.Destroy()
	}
	gl.DeleteVertexArrays(1, &m.vaoID)
	m.bindings = nil
	m.ibo = nil
	m.vaoID = 0
}
