package schwarz

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pointAnim holds active tweens for the camera's X and Y pointer position.
type pointAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera tracks the effective pointer position that drives the view's yaw
// and pitch. The effective position is a smoothed version of the physical
// pointer, so small mouse movements glide instead of jumping.
type Camera struct {
	// X and Y are the current effective pointer position, consumed as the
	// (cx, cy) arguments of [Renderer.Render].
	X, Y float32

	anim *pointAnim
}

// NewCamera creates a camera at the given pointer position.
func NewCamera(x, y float32) *Camera {
	return &Camera{X: x, Y: y}
}

// PointTo animates the effective position to (x, y) over duration seconds.
// Retargeting mid-flight starts a new tween from the current position.
func (c *Camera) PointTo(x, y float32, duration float32, easeFn ease.TweenFunc) {
	c.anim = &pointAnim{
		tweenX: gween.New(c.X, x, duration, easeFn),
		tweenY: gween.New(c.Y, y, duration, easeFn),
	}
}

// SnapTo sets the effective position immediately, cancelling any tween.
func (c *Camera) SnapTo(x, y float32) {
	c.X, c.Y = x, y
	c.anim = nil
}

// Update advances the smoothing animation by dt seconds.
func (c *Camera) Update(dt float32) {
	a := c.anim
	if a == nil {
		return
	}
	if !a.doneX {
		c.X, a.doneX = a.tweenX.Update(dt)
	}
	if !a.doneY {
		c.Y, a.doneY = a.tweenY.Update(dt)
	}
	if a.doneX && a.doneY {
		c.anim = nil
	}
}
