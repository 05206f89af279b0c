package schwarz

import "math"

// Outcome is the fate of a geodesic: either it crosses the event horizon or
// it reaches the escape radius.
type Outcome uint8

const (
	Captured Outcome = iota // ray fell into the black hole
	Escaped                 // ray escaped to infinity
)

// String returns "Captured" or "Escaped".
func (o Outcome) String() string {
	switch o {
	case Captured:
		return "Captured"
	case Escaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// Pixel is one framebuffer element. The byte order matches the presentation
// buffer the renderer targets; see [Renderer.Render] for how the channels are
// assigned.
type Pixel struct {
	A, R, G, B uint8
}

// Vec2 is a 2D vector used for screen-space positions.
type Vec2 struct {
	X, Y float32
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y)
}

// Vec3 is a 3D direction vector.
type Vec3 struct {
	X, Y, Z float32
}

const pi = float32(math.Pi)

// float32 wrappers over the stdlib math package. The numerical core is
// single-precision throughout.

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }

func cos32(v float32) float32 { return float32(math.Cos(float64(v))) }

func acos32(v float32) float32 { return float32(math.Acos(float64(v))) }

func atan232(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

func floor32(v float32) float32 { return float32(math.Floor(float64(v))) }

// lerp32 interpolates from a to b at fraction t.
func lerp32(a, b, t float32) float32 {
	return b*t + a*(1-t)
}

// isFinite32 reports whether v is neither NaN nor infinite.
func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// clampByte converts a [0, 255] float channel value to a byte with truncation,
// clamping first. Filtered texture values and AA sums can land slightly
// outside the nominal range.
func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
