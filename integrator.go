package schwarz

import "fmt"

// ComputeOutcomes integrates a fan of null geodesics and returns their
// outcomes as a lookup table.
//
// Slot i of the table corresponds to a ray whose initial direction is
// (dx, dz) = (lerp(min, max, i/(num-1)), 1), starting at radius startR on the
// negative-x axis and aimed at the black hole at the origin. Each slot records
// whether the ray is captured (with the angle of the point where it crosses
// the horizon) or escapes (with the angle of its asymptotic direction).
//
// Rays are independent and are integrated in parallel across all CPUs.
// num must be at least 2 for the table to be interpolable.
func ComputeOutcomes(cfg Config, min, max float32, num int, startR float32) *OutcomeTable {
	if num < 2 {
		panic(fmt.Sprintf("schwarz: ComputeOutcomes needs num >= 2, got %d", num))
	}

	t := &OutcomeTable{
		angles:   make([]float32, num),
		outcomes: make([]Outcome, num),
	}
	parallelFor(num, func(slot int) {
		frac := float32(slot) / float32(num-1)
		t.angles[slot], t.outcomes[slot] = traceRay(cfg, lerp32(min, max, frac), startR)
	})
	return t
}

// traceRay integrates a single null geodesic with fixed-step Euler until it
// crosses the horizon, reaches the escape radius, or exhausts cfg.MaxSteps.
//
// This is a plain reverse ray march: we start at the camera and ask where the
// ray came from. Outside the horizon a null path retraces itself exactly when
// reversed, so the distinction doesn't matter. (Not true of Kerr holes.)
func traceRay(cfg Config, rayAmt, startR float32) (angle float32, outcome Outcome) {
	minR := cfg.horizonRadius()

	// Initial direction in rectangular coordinates, converted to
	// Schwarzschild radial/angular rates. The ray starts at theta = pi.
	dx, dz := rayAmt, float32(1)
	r := startR
	theta := pi
	dr := -startR * dz / r
	dtheta := -startR * dx / (r * r)

	for step := 0; step < cfg.MaxSteps; step++ {
		// dt is not integrated: recomputing it from the null condition
		// each step keeps the path exactly null, with no drift.
		dt := nullDT(cfg, r, dr, dtheta)

		ddr := d2r(cfg, r, dt, dr, dtheta)
		ddtheta := d2theta(r, dr, dtheta)

		// Velocities first, then positions from the updated velocities.
		// The update order is part of the scheme; don't reorder.
		prevTheta := theta
		dr += cfg.TimeStep * ddr
		dtheta += cfg.TimeStep * ddtheta
		r += cfg.TimeStep * dr
		theta += cfg.TimeStep * dtheta

		if !isFinite32(r) || !isFinite32(theta) {
			// Euler blew up inside the margin region, which only
			// happens while grazing the horizon: count it as captured.
			if !isFinite32(theta) {
				theta = prevTheta
			}
			return pi/2 - theta, Captured
		}
		if r <= minR {
			// Fell in. What matters is the angle of the position.
			return pi/2 - theta, Captured
		}
		if r > cfg.EscapeRadius {
			// Far enough that the current direction is, near enough,
			// the direction it will keep.
			break
		}
	}

	// Escaped, or ran out of steps (treated the same way): project the
	// velocity back to embedding space and take the angle of the direction.
	ex := r*cos32(theta)*dtheta + sin32(theta)*dr
	ez := -r*sin32(theta)*dtheta + cos32(theta)*dr
	return atan232(ez, ex), Escaped
}

// nullDT returns the dt that makes the path null given r, dr, and dtheta.
// Either root works: dt only ever appears squared or not at all.
func nullDT(cfg Config, r, dr, dtheta float32) float32 {
	q := 1 - 2*cfg.GM/r
	return sqrt32(dr*dr/(q*q) + r*r*dtheta*dtheta/q)
}

// d2r is the second derivative of r along the equatorial geodesic.
func d2r(cfg Config, r, dt, dr, dtheta float32) float32 {
	return -cfg.GM/(r*r*r)*(r-2*cfg.GM)*dt*dt +
		cfg.GM/(r*(r-2*cfg.GM))*dr*dr +
		(r-2*cfg.GM)*dtheta*dtheta
}

// d2theta is the second derivative of theta along the equatorial geodesic.
func d2theta(r, dr, dtheta float32) float32 {
	return -2 / r * dtheta * dr
}
