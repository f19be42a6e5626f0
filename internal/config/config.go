// Package config provides YAML-based settings for the scene viewer and the
// SSH server, and precision presets that scale editing steps.
package config

import (
	"math"
	"time"

	"github.com/vovakirdan/sigep/internal/core"
)

// Settings contains all user-tunable configuration.
type Settings struct {
	View   ViewSettings   `yaml:"view"`
	Server ServerSettings `yaml:"server"`
}

// ViewSettings controls rendering and editing in the viewer.
type ViewSettings struct {
	FPS         int     `yaml:"fps"`           // Spin animation ticks per second
	Aspect      float64 `yaml:"aspect"`        // Cell height relative to width
	Step        float64 `yaml:"step"`          // World units per move key
	SpinStepDeg float64 `yaml:"spin_step_deg"` // Degrees per rotate key
}

// ServerSettings defines SSH server parameters.
type ServerSettings struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerSettings) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// RuntimeConfig converts view settings to a core.RuntimeConfig for a
// w x h screen. Unset fields take core defaults.
func (v ViewSettings) RuntimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: v.FPS,
		Aspect:   v.Aspect,
		Step:     v.Step,
		SpinStep: v.SpinStepDeg * math.Pi / 180,
	}.Normalize()
}
