package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/objview/pkg/log"
)

// ErrBufferAlloc indicates that the device rejected buffer storage
const ErrBufferAlloc log.ConstErr = "failed to allocate buffer storage"

// ErrEmptyData indiciates that the given data is empty.
const ErrEmptyData log.ConstErr = "data is empty so cannot be used"

// VertexBuffer owns a device-resident copy of interleaved float32 vertex
// data. Loading replaces any prior content.
type VertexBuffer struct {
	id        uint32
	sizeBytes uint32
}

func NewVertexBuffer() (*VertexBuffer, error) {
	var vbo VertexBuffer
	gl.GenBuffers(1, &vbo.id)
	if vbo.id == 0 {
		return nil, fmt.Errorf("%w: vertex buffer", ErrBufferAlloc)
	}
	return &vbo, nil
}

// LoadData uploads the given vertex data with gl.STATIC_DRAW usage,
// replacing whatever the buffer held before.
func (vbo *VertexBuffer) LoadData(data []float32) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	vbo.Bind()
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(&data[0]), gl.STATIC_DRAW)
	vbo.Unbind()
	if errno := gl.GetError(); errno == gl.OUT_OF_MEMORY {
		return fmt.Errorf("%w: %v vertex bytes", ErrBufferAlloc, 4*len(data))
	}
	vbo.sizeBytes = uint32(4 * len(data))
	return nil
}

func (vbo *VertexBuffer) GetID() uint32 {
	return vbo.id
}

func (vbo *VertexBuffer) GetSizeBytes() uint32 {
	return vbo.sizeBytes
}

func (vbo *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo.id)
}

func (vbo *VertexBuffer) Unbind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vbo *VertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &vbo.id)
	vbo.id = 0
	vbo.sizeBytes = 0
}

// IndexBuffer owns a device-resident list of element indices along with
// their element type, either 16- or 32-bit unsigned.
type IndexBuffer struct {
	id       uint32
	count    int32
	elemType AttributeType
}

func NewIndexBuffer() (*IndexBuffer, error) {
	var ibo IndexBuffer
	gl.GenBuffers(1, &ibo.id)
	if ibo.id == 0 {
		return nil, fmt.Errorf("%w: index buffer", ErrBufferAlloc)
	}
	return &ibo, nil
}

// LoadUint16 uploads 16-bit indices, replacing any prior content.
func (ibo *IndexBuffer) LoadUint16(indices []uint16) error {
	if len(indices) == 0 {
		return ErrEmptyData
	}
	ibo.Bind()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(indices), gl.Ptr(&indices[0]), gl.STATIC_DRAW)
	ibo.Unbind()
	if errno := gl.GetError(); errno == gl.OUT_OF_MEMORY {
		return fmt.Errorf("%w: %v index bytes", ErrBufferAlloc, 2*len(indices))
	}
	ibo.count = int32(len(indices))
	ibo.elemType = UInt16
	return nil
}

// LoadUint32 uploads 32-bit indices, replacing any prior content.
func (ibo *IndexBuffer) LoadUint32(indices []uint32) error {
	if len(indices) == 0 {
		return ErrEmptyData
	}
	ibo.Bind()
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(&indices[0]), gl.STATIC_DRAW)
	ibo.Unbind()
	if errno := gl.GetError(); errno == gl.OUT_OF_MEMORY {
		return fmt.Errorf("%w: %v index bytes", ErrBufferAlloc, 4*len(indices))
	}
	ibo.count = int32(len(indices))
	ibo.elemType = UInt32
	return nil
}

// ElementCount returns the number of indices currently loaded.
func (ibo *IndexBuffer) ElementCount() int32 {
	return ibo.count
}

// ElementType returns UInt16 or UInt32 depending on what was loaded.
func (ibo *IndexBuffer) ElementType() AttributeType {
	return ibo.elemType
}

func (ibo *IndexBuffer) GetID() uint32 {
	return ibo.id
}

func (ibo *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo.id)
}

func (ibo *IndexBuffer) Unbind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (ibo *IndexBuffer) Destroy() {
	gl.DeleteBuffers(1, &ibo.id)
	ibo.id = 0
	ibo.count = 0
}
