package schwarz

import "fmt"

// Renderer shades a framebuffer using a precomputed outcome table, a sky
// texture, and an event-horizon sphere texture.
//
// The table must be fully built before Render is called; Render only ever
// reads it, so a single Renderer is safe to reuse across frames, and the
// table may be shared between Renderers.
type Renderer struct {
	Config Config
	Table  *OutcomeTable
	Sky    *Texture
	Sphere *Texture
	// AA is the antialiasing factor per axis: each pixel averages AA*AA
	// supersamples. Values below 1 behave as 1.
	AA int
}

// Render shades every pixel of fb. (cx, cy) is the pointer position driving
// the camera: yaw is cx/Config.YawScale and pitch is
// (cy-Config.PitchOffset)/Config.PitchScale.
//
// Pixels are independent; rows are shaded in parallel across all CPUs.
// The output channel assignment is fixed by the presentation buffer format:
// A=0, R=blue accumulator, G=green accumulator, B=red accumulator.
func (rd *Renderer) Render(fb *Framebuffer, cx, cy float32) {
	if rd.Table == nil || rd.Sky == nil || rd.Sphere == nil {
		panic(fmt.Sprintf("schwarz: Renderer missing inputs (table=%v sky=%v sphere=%v)",
			rd.Table != nil, rd.Sky != nil, rd.Sphere != nil))
	}

	aa := rd.AA
	if aa < 1 {
		aa = 1
	}

	fr := frame{
		cfg:    rd.Config,
		table:  rd.Table,
		sky:    rd.Sky,
		sphere: rd.Sphere,
		aa:     aa,
		width:  fb.Width(),
		height: fb.Height(),
		// Both axes normalize by half the width so pixels stay square
		// regardless of aspect ratio. The denominator keeps the integer
		// halving of the reference implementation.
		halfW:  float32(fb.Width()) / 2,
		halfH:  float32(fb.Height()) / 2,
		norm:   float32(fb.Width() / 2),
		scale:  float32(rd.Table.Len()) / rd.Config.TableMaxRay,
		xAngle: cx / rd.Config.YawScale,
		yAngle: (cy - rd.Config.PitchOffset) / rd.Config.PitchScale,
	}

	parallelFor(fr.height, func(y int) {
		row := fb.row(y)
		for x := 0; x < fr.width; x++ {
			row[x] = fr.shade(x, y)
		}
	})
}

// frame is the per-call immutable state shared by every rendering lane.
type frame struct {
	cfg            Config
	table          *OutcomeTable
	sky, sphere    *Texture
	aa             int
	width, height  int
	halfW, halfH   float32
	norm           float32
	scale          float32
	xAngle, yAngle float32
}

// shade computes the final pixel at (px, py), averaging aa*aa supersamples.
func (fr *frame) shade(px, py int) Pixel {
	var accR, accG, accB int

	for aaX := 0; aaX < fr.aa; aaX++ {
		for aaY := 0; aaY < fr.aa; aaY++ {
			x := float32(px) + float32(aaX)/float32(fr.aa)
			y := float32(py) + float32(aaY)/float32(fr.aa)

			s := fr.sample(Vec2{
				X: (x - fr.halfW) / fr.norm,
				Y: (y - fr.halfH) / fr.norm,
			})
			accR += int(s.R)
			accG += int(s.G)
			accB += int(s.B)
		}
	}

	n := fr.aa * fr.aa
	accR /= n
	accG /= n
	accB /= n

	return Pixel{A: 0, R: uint8(accB), G: uint8(accG), B: uint8(accR)}
}

// sample traces one supersample at centered, square-normalized screen
// position p and returns its texture color.
func (fr *frame) sample(p Vec2) Pixel {
	r := p.Len() * fr.cfg.RadiusScale
	angleOut, outcome := fr.table.Lookup(r * fr.scale)

	// The deflected ray's direction within its orbital plane. The xy-plane
	// goes through the equator: x is the screen's x, z is the screen's y.
	v := Vec3{X: cos32(angleOut), Y: sin32(angleOut), Z: 0}

	// Orient the orbital plane to the pixel's azimuth around the hole's
	// screen-space silhouette, then apply camera pitch, then yaw.
	pixelAngle := atan232(p.Y, p.X)
	sinP, cosP := sin32(pixelAngle), cos32(pixelAngle)
	v = Vec3{X: cosP*v.X + sinP*v.Z, Y: v.Y, Z: -sinP*v.X + cosP*v.Z}

	sinY, cosY := sin32(fr.yAngle), cos32(fr.yAngle)
	v = Vec3{X: v.X, Y: cosY*v.Y + sinY*v.Z, Z: -sinY*v.Y + cosY*v.Z}

	sinX, cosX := sin32(fr.xAngle), cos32(fr.xAngle)
	v = Vec3{X: cosX*v.X + sinX*v.Y, Y: -sinX*v.X + cosX*v.Y, Z: v.Z}

	// Equirectangular coordinates. Rounding can push a unit vector's z a
	// hair outside [-1, 1]; keep acos in its domain.
	z := v.Z
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}
	phi := acos32(z) / pi
	theta := (atan232(v.Y, v.X) + pi) / (2 * pi)

	if outcome == Captured {
		return fr.sphere.Sample(theta, phi)
	}
	// The sign flip is deliberate: we see the front of the event horizon
	// but the back of the skybox.
	return fr.sky.Sample(-theta, phi)
}
