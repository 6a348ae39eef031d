package gfx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gregjohnson2017/objview/pkg/gfx"
	"github.com/gregjohnson2017/objview/pkg/obj"
)

func TestAttributeTypeSizes(t *testing.T) {
	tests := []struct {
		name string
		typ  gfx.AttributeType
		want int32
	}{
		{"float32", gfx.Float32, 4},
		{"uint16", gfx.UInt16, 2},
		{"uint32", gfx.UInt32, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.SizeBytes(); got != tt.want {
				t.Errorf("expected size %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBufferAttributeValidate(t *testing.T) {
	tests := []struct {
		name    string
		attr    gfx.BufferAttribute
		wantErr bool
	}{
		{
			"tightly packed position",
			gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.Float32},
			false,
		},
		{
			"interleaved position and color",
			gfx.BufferAttribute{Slot: 1, Components: 3, Type: gfx.Float32, Stride: 24, Offset: 12},
			false,
		},
		{
			"read past stride",
			gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 8, Offset: 4},
			true,
		},
		{
			"exact fit at end of stride",
			gfx.BufferAttribute{Slot: 0, Components: 1, Type: gfx.Float32, Stride: 8, Offset: 4},
			false,
		},
		{
			"zero components",
			gfx.BufferAttribute{Slot: 0, Components: 0, Type: gfx.Float32},
			true,
		},
		{
			"too many components",
			gfx.BufferAttribute{Slot: 0, Components: 5, Type: gfx.Float32},
			true,
		},
		{
			"negative offset",
			gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 24, Offset: -4},
			true,
		},
		{
			"unknown component type",
			gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.AttributeType(0)},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.attr.Validate()
			if tt.wantErr && !errors.Is(err, gfx.ErrBadLayout) {
				t.Errorf("expected an ErrBadLayout, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateLayout(t *testing.T) {
	t.Run("distinct slots pass", func(t *testing.T) {
		attrs := []gfx.BufferAttribute{
			{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 24, Offset: 0},
			{Slot: 1, Components: 3, Type: gfx.Float32, Stride: 24, Offset: 12},
		}
		if err := gfx.ValidateLayout(attrs); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
	t.Run("duplicate slot in one list", func(t *testing.T) {
		attrs := []gfx.BufferAttribute{
			{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 24, Offset: 0},
			{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 24, Offset: 12},
		}
		err := gfx.ValidateLayout(attrs)
		if !errors.Is(err, gfx.ErrSlotConflict) {
			t.Errorf("expected an ErrSlotConflict, got %v", err)
		}
	})
	t.Run("invalid attribute still rejected", func(t *testing.T) {
		attrs := []gfx.BufferAttribute{
			{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 8, Offset: 4},
		}
		err := gfx.ValidateLayout(attrs)
		if !errors.Is(err, gfx.ErrBadLayout) {
			t.Errorf("expected an ErrBadLayout, got %v", err)
		}
	})
}

func TestBufferAttributeStrideBytes(t *testing.T) {
	packed := gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.Float32}
	if got := packed.StrideBytes(); got != 12 {
		t.Errorf("expected packed stride of 12, got %v", got)
	}
	explicit := gfx.BufferAttribute{Slot: 0, Components: 3, Type: gfx.Float32, Stride: 32}
	if got := explicit.StrideBytes(); got != 32 {
		t.Errorf("expected declared stride of 32, got %v", got)
	}
}

func decodeObj(t *testing.T, src string) *obj.Mesh {
	t.Helper()
	m, err := obj.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return m
}

func TestInterleavedLayoutSlots(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantSlots []uint32
		wantAttrs []int32
	}{
		{
			"position only",
			"v 0 0 0\nf 1 1 1\n",
			[]uint32{0},
			[]int32{3},
		},
		{
			"position and normal",
			"v 0 0 0\nvn 0 0 1\nf 1//1 1//1 1//1\n",
			[]uint32{0, 1},
			[]int32{3, 3},
		},
		{
			"position normal and texcoord",
			"v 0 0 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1\n",
			[]uint32{0, 1, 2},
			[]int32{3, 3, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := decodeObj(t, tt.src)
			attrs := gfx.InterleavedLayout(model)
			if len(attrs) != len(tt.wantSlots) {
				t.Fatalf("expected %v attributes, got %v", len(tt.wantSlots), len(attrs))
			}
			stride := 4 * model.FloatsPerVertex()
			var offset int32
			for i, a := range attrs {
				if err := a.Validate(); err != nil {
					t.Errorf("attribute %v failed validation: %v", i, err)
				}
				if a.Slot != tt.wantSlots[i] {
					t.Errorf("attribute %v: expected slot %v, got %v", i, tt.wantSlots[i], a.Slot)
				}
				if a.Components != tt.wantAttrs[i] {
					t.Errorf("attribute %v: expected %v components, got %v", i, tt.wantAttrs[i], a.Components)
				}
				if a.Stride != stride {
					t.Errorf("attribute %v: expected stride %v, got %v", i, stride, a.Stride)
				}
				if a.Offset != offset {
					t.Errorf("attribute %v: expected offset %v, got %v", i, offset, a.Offset)
				}
				offset += 4 * a.Components
			}
		})
	}
}
