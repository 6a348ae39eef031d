package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/objview/pkg/log"
	set "github.com/kroppt/Int32Set"
)

// AttributeType identifies the component type of a vertex attribute.
type AttributeType uint32

const (
	Float32 AttributeType = gl.FLOAT
	UInt16  AttributeType = gl.UNSIGNED_SHORT
	UInt32  AttributeType = gl.UNSIGNED_INT
)

// SizeBytes returns the size of a single component of this type.
func (t AttributeType) SizeBytes() int32 {
	switch t {
	case UInt16:
		return 2
	case Float32, UInt32:
		return 4
	}
	return 0
}

// BufferAttribute describes how one shader input slot reads its per-vertex
// data out of a vertex buffer: which slot, how many components per vertex,
// the component type, and the byte stride and offset within the buffer.
// A Stride of 0 means the attribute is tightly packed.
type BufferAttribute struct {
	Slot       uint32
	Components int32
	Type       AttributeType
	Stride     int32
	Offset     int32
}

// ErrBadLayout indicates that a buffer attribute describes an impossible
// read, such as one past the end of its own stride.
const ErrBadLayout log.ConstErr = "invalid buffer attribute layout"

// Validate checks the attribute's internal consistency. An attribute whose
// components would read past its stride is rejected here, before any draw
// call could consume it.
func (a BufferAttribute) Validate() error {
	if a.Components < 1 || a.Components > 4 {
		return fmt.Errorf("%w: slot %v has %v components, want 1 to 4", ErrBadLayout, a.Slot, a.Components)
	}
	if a.Type.SizeBytes() == 0 {
		return fmt.Errorf("%w: slot %v has unknown component type %v", ErrBadLayout, a.Slot, uint32(a.Type))
	}
	if a.Stride < 0 || a.Offset < 0 {
		return fmt.Errorf("%w: slot %v has negative stride or offset", ErrBadLayout, a.Slot)
	}
	if a.Stride != 0 && a.Offset+a.Components*a.Type.SizeBytes() > a.Stride {
		return fmt.Errorf("%w: slot %v reads %v bytes at offset %v past stride %v",
			ErrBadLayout, a.Slot, a.Components*a.Type.SizeBytes(), a.Offset, a.Stride)
	}
	return nil
}

// ValidateLayout checks every attribute in the list and rejects a slot
// claimed twice within it, which would otherwise silently overwrite the
// first registration at the device.
func ValidateLayout(attrs []BufferAttribute) error {
	seen := set.NewSet()
	for _, a := range attrs {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen.Contains(int32(a.Slot)) {
			return fmt.Errorf("%w: slot %v appears twice in one layout", ErrSlotConflict, a.Slot)
		}
		seen.Add(int32(a.Slot))
	}
	return nil
}

// StrideBytes returns the effective stride: the declared stride, or the
// packed size of the attribute when the declared stride is 0.
func (a BufferAttribute) StrideBytes() int32 {
	if a.Stride != 0 {
		return a.Stride
	}
	return a.Components * a.Type.SizeBytes()
}
