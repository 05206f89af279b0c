package schwarz

// Config collects the tuning constants of the integrator and renderer so
// callers (and tests) can vary them independently. The zero value is not
// usable; start from [DefaultConfig].
type Config struct {
	// GM is the black hole's mass parameter.
	GM float32
	// TimeStep is the fixed Euler step of the affine parameter.
	TimeStep float32
	// MaxSteps bounds the integration loop. Rays that neither fall in nor
	// escape within MaxSteps are treated as escaped along their last
	// velocity.
	MaxSteps int
	// HorizonMargin is added to the Schwarzschild radius 2*GM when testing
	// for capture. Euler's method can blow up arbitrarily close to the
	// coordinate singularity, so capture is declared slightly early.
	HorizonMargin float32
	// EscapeRadius is the distance beyond which a ray's direction is taken
	// as its asymptotic direction.
	EscapeRadius float32

	// TableMaxRay is the impact parameter the last table slot corresponds
	// to when the renderer maps a pixel radius to a table index.
	TableMaxRay float32
	// RadiusScale multiplies the normalized pixel radius before the table
	// lookup. It is a hand-tuned visual calibration, distinct from
	// TableMaxRay; the two do not derive from each other.
	RadiusScale float32

	// YawScale, PitchScale, and PitchOffset map the pointer position
	// (cx, cy) to camera yaw cx/YawScale and pitch (cy-PitchOffset)/PitchScale.
	YawScale    float32
	PitchScale  float32
	PitchOffset float32
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		GM:            10,
		TimeStep:      0.01,
		MaxSteps:      1_000_000,
		HorizonMargin: 0.0001,
		EscapeRadius:  500,
		TableMaxRay:   5,
		RadiusScale:   3,
		YawScale:      200,
		PitchScale:    200,
		PitchOffset:   600,
	}
}

// horizonRadius is the capture threshold: the Schwarzschild radius plus the
// stability margin.
func (c Config) horizonRadius() float32 {
	return 2*c.GM + c.HorizonMargin
}
