package schwarz

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraSnapTo(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.PointTo(0, 0, 1, ease.Linear)
	cam.SnapTo(100, 50)

	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("position = (%f, %f), want (100, 50)", cam.X, cam.Y)
	}
	// SnapTo cancels the tween; further updates must not move the camera.
	cam.Update(1)
	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("position moved after SnapTo: (%f, %f)", cam.X, cam.Y)
	}
}

func TestCameraPointToConverges(t *testing.T) {
	cam := NewCamera(0, 0)
	cam.PointTo(100, 50, 0.5, ease.OutQuad)

	for i := 0; i < 60; i++ {
		cam.Update(1.0 / 60)
	}

	if !approx32(cam.X, 100, 1e-3) || !approx32(cam.Y, 50, 1e-3) {
		t.Errorf("position = (%f, %f), want (100, 50)", cam.X, cam.Y)
	}
}

func TestCameraPointToMovesGradually(t *testing.T) {
	cam := NewCamera(0, 0)
	cam.PointTo(100, 0, 1, ease.Linear)

	cam.Update(0.25)
	if !approx32(cam.X, 25, 1e-3) {
		t.Errorf("X after quarter duration = %f, want 25", cam.X)
	}
}

func TestCameraRetargetMidFlight(t *testing.T) {
	cam := NewCamera(0, 0)
	cam.PointTo(100, 100, 1, ease.Linear)
	cam.Update(0.5)

	// Retargeting starts a fresh tween from the current position.
	cam.PointTo(-40, 10, 0.5, ease.Linear)
	for i := 0; i < 30; i++ {
		cam.Update(1.0 / 30)
	}

	if !approx32(cam.X, -40, 1e-3) || !approx32(cam.Y, 10, 1e-3) {
		t.Errorf("position = (%f, %f), want (-40, 10)", cam.X, cam.Y)
	}
}

func TestCameraUpdateWithoutTween(t *testing.T) {
	cam := NewCamera(7, 8)
	cam.Update(1)
	if cam.X != 7 || cam.Y != 8 {
		t.Errorf("position = (%f, %f), want (7, 8)", cam.X, cam.Y)
	}
}
