package core

// RuntimeConfig contains settings passed to the renderer and viewer.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Spin animation ticks per second
	Aspect   float64 // Height of a terminal cell relative to its width
	Step     float64 // World units moved per key press
	SpinStep float64 // Radians turned per key press or spin tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Aspect:   2.0,
		Step:     1.0,
		SpinStep: 0.2617993877991494, // 15 degrees
	}
}

// Normalize fills zero or negative fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Aspect <= 0 {
		c.Aspect = d.Aspect
	}
	if c.Step <= 0 {
		c.Step = d.Step
	}
	if c.SpinStep == 0 {
		c.SpinStep = d.SpinStep
	}
	return c
}
