package config

import (
	_ "embed"
)

//go:embed defaults/sigep.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		View: ViewSettings{
			FPS:         30,
			Aspect:      2.0,
			Step:        1.0,
			SpinStepDeg: 15,
		},
		Server: ServerSettings{
			Address:        ":23234",
			IdleTimeoutMin: 30,
		},
	}
}
