// Package camera produces the view-projection matrices the render loop
// combines with per-mesh model transforms.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a look-at camera that can switch between perspective and
// orthographic projection.
type Camera struct {
	position   mgl32.Vec3
	target     mgl32.Vec3
	up         mgl32.Vec3
	fovDegrees float32
	aspect     float32
	near       float32
	far        float32
	ortho      bool
	orthoScale float32
}

// New returns a camera at the origin looking down -Z with a 60 degree
// perspective projection.
func New() *Camera {
	return &Camera{
		position:   mgl32.Vec3{0, 0, 0},
		target:     mgl32.Vec3{0, 0, -1},
		up:         mgl32.Vec3{0, 1, 0},
		fovDegrees: 60,
		aspect:     1,
		near:       0.01,
		far:        1000,
		orthoScale: 10,
	}
}

func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *Camera) GetPosition() mgl32.Vec3 {
	return c.position
}

// LookAt aims the camera at the given target point.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.target = target
}

// SetAspect updates the projection for a new viewport size.
func (c *Camera) SetAspect(width, height int32) {
	if height != 0 {
		c.aspect = float32(width) / float32(height)
	}
}

func (c *Camera) SetFovDegrees(fov float32) {
	c.fovDegrees = fov
}

// SetOrthoEnabled switches between orthographic and perspective projection.
func (c *Camera) SetOrthoEnabled(enabled bool) {
	c.ortho = enabled
}

func (c *Camera) OrthoEnabled() bool {
	return c.ortho
}

// SetOrthoVerticalScale sets the world-space height of the orthographic
// view volume. A negative scale flips the vertical axis.
func (c *Camera) SetOrthoVerticalScale(scale float32) {
	c.orthoScale = scale
}

// View returns the world-to-camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

// Projection returns the camera-to-clip transform for the current mode.
func (c *Camera) Projection() mgl32.Mat4 {
	if c.ortho {
		halfV := c.orthoScale / 2
		halfH := halfV * c.aspect
		return mgl32.Ortho(-halfH, halfH, -halfV, halfV, c.near, c.far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.fovDegrees), c.aspect, c.near, c.far)
}

// ViewProjection returns the combined world-to-clip transform, ready to be
// multiplied with a model transform.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
