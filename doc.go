// Package schwarz renders gravitational lensing around a non-rotating
// (Schwarzschild) black hole in real time.
//
// Light passing near the event horizon bends, so a camera looking toward the
// hole sees a distorted composite of the background sky and the horizon
// itself. Because a Schwarzschild hole is spherically symmetric, only one
// number matters per ray: the angle between the ray and the line from the
// camera to the hole's center. The package exploits this in two phases:
//
//  1. [ComputeOutcomes] integrates a fan of null geodesics over a range of
//     impact parameters and records, for each, whether the ray falls in or
//     escapes, and at what angle. The result is an [OutcomeTable].
//  2. [Renderer.Render] shades every pixel of a [Framebuffer] by converting
//     the pixel's screen radius into a table index, looking up the deflected
//     angle, rotating it into world space by the camera's yaw and pitch, and
//     bilinearly sampling either the sky [Texture] or the event-horizon
//     sphere texture.
//
// The table is immutable once built; a frame only reads it, so one table can
// serve any number of frames until the ray parameters change.
//
// # Quick start
//
//	cfg := schwarz.DefaultConfig()
//	table := schwarz.ComputeOutcomes(cfg, 0, 5, 8192, 100)
//
//	r := &schwarz.Renderer{
//		Config: cfg,
//		Table:  table,
//		Sky:    sky,    // equirectangular skybox
//		Sphere: sphere, // event-horizon surface
//		AA:     4,
//	}
//
//	fb := schwarz.NewFramebuffer(1600, 1200)
//	r.Render(fb, cx, cy) // cx, cy: pointer position driving yaw/pitch
//
// Both phases are CPU data-parallel maps and use every core; see cmd/schwarz
// for an interactive viewer built on [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
package schwarz
