package camera_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gregjohnson2017/objview/pkg/camera"
)

// project runs a world-space point through the camera's view-projection and
// performs the perspective divide.
func project(c *camera.Camera, p mgl32.Vec3) mgl32.Vec3 {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	return mgl32.Vec3{clip.X() / clip.W(), clip.Y() / clip.W(), clip.Z() / clip.W()}
}

func closeTo(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestLookAtCentersTarget(t *testing.T) {
	c := camera.New()
	c.SetPosition(mgl32.Vec3{0, 15, 15})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	ndc := project(c, mgl32.Vec3{0, 0, 0})
	if !closeTo(ndc.X(), 0) || !closeTo(ndc.Y(), 0) {
		t.Errorf("expected the look-at target in the view center, got %v", ndc)
	}
}

func TestOrthoToggleChangesProjection(t *testing.T) {
	c := camera.New()
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	persp := c.Projection()
	c.SetOrthoEnabled(true)
	if !c.OrthoEnabled() {
		t.Fatal("expected orthographic mode after enabling it")
	}
	ortho := c.Projection()
	if persp == ortho {
		t.Error("expected orthographic and perspective projections to differ")
	}

	c.SetOrthoEnabled(false)
	if c.Projection() != persp {
		t.Error("expected the perspective projection to be restored")
	}
}

func TestOrthoIgnoresDistance(t *testing.T) {
	// under orthographic projection, moving the camera back must not change
	// a point's projected size
	c := camera.New()
	c.SetOrthoEnabled(true)
	c.LookAt(mgl32.Vec3{0, 0, 0})

	c.SetPosition(mgl32.Vec3{0, 0, 10})
	near := project(c, mgl32.Vec3{1, 1, 0})
	c.SetPosition(mgl32.Vec3{0, 0, 100})
	far := project(c, mgl32.Vec3{1, 1, 0})

	if !closeTo(near.X(), far.X()) || !closeTo(near.Y(), far.Y()) {
		t.Errorf("expected identical footprint at both distances, got %v and %v", near, far)
	}
}

func TestOrthoVerticalScale(t *testing.T) {
	c := camera.New()
	c.SetOrthoEnabled(true)
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{0, 0, 0})
	c.SetOrthoVerticalScale(4)

	// with a vertical scale of 4, a point 2 up from center lands on the top
	// edge of the view volume
	ndc := project(c, mgl32.Vec3{0, 2, 0})
	if !closeTo(ndc.Y(), 1) {
		t.Errorf("expected y of 1 at the top edge, got %v", ndc.Y())
	}

	// a negative scale flips the vertical axis
	c.SetOrthoVerticalScale(-4)
	flipped := project(c, mgl32.Vec3{0, 2, 0})
	if !closeTo(flipped.Y(), -1) {
		t.Errorf("expected y of -1 with a flipped axis, got %v", flipped.Y())
	}
}

func TestFovNarrowsView(t *testing.T) {
	c := camera.New()
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	c.SetFovDegrees(90)
	wide := project(c, mgl32.Vec3{1, 0, 0})
	c.SetFovDegrees(30)
	narrow := project(c, mgl32.Vec3{1, 0, 0})

	// a narrower field of view magnifies the same point toward the edge
	if narrow.X() <= wide.X() {
		t.Errorf("expected x to grow with a narrower FOV, got %v then %v", wide.X(), narrow.X())
	}
}

func TestAspectWidensHorizontally(t *testing.T) {
	c := camera.New()
	c.SetPosition(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	c.SetAspect(100, 100)
	square := project(c, mgl32.Vec3{1, 0, 0})
	c.SetAspect(200, 100)
	wide := project(c, mgl32.Vec3{1, 0, 0})

	// a wider viewport shows more world per NDC unit, shrinking x
	if wide.X() >= square.X() {
		t.Errorf("expected x to shrink with a wider aspect, got %v then %v", square.X(), wide.X())
	}

	// a zero-height viewport must not poison the aspect ratio
	c.SetAspect(100, 0)
	if got := project(c, mgl32.Vec3{1, 0, 0}); got.X() != wide.X() {
		t.Errorf("expected aspect to be unchanged by a zero height, got %v", got.X())
	}
}
