package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sigep.yaml")
	data := []byte("view:\n  step: 0.5\nserver:\n  address: \":2222\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.View.Step != 0.5 {
		t.Errorf("Step = %v, want 0.5", cfg.View.Step)
	}
	if cfg.Server.Address != ":2222" {
		t.Errorf("Address = %q, want :2222", cfg.Server.Address)
	}
	// unset fields keep defaults
	if cfg.View.SpinStepDeg != 15 || cfg.View.FPS != 30 {
		t.Errorf("defaults lost: %+v", cfg.View)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("view: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestEmbeddedDefaultsMatch(t *testing.T) {
	// the embedded file and DefaultSettings must agree
	var cfg Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultSettings() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultSettings())
	}
}

func TestRuntimeConfig(t *testing.T) {
	rc := DefaultSettings().View.RuntimeConfig(100, 40)

	if rc.ScreenW != 100 || rc.ScreenH != 40 {
		t.Errorf("screen = %dx%d, want 100x40", rc.ScreenW, rc.ScreenH)
	}
	if math.Abs(rc.SpinStep-math.Pi/12) > 1e-12 {
		t.Errorf("SpinStep = %v, want π/12", rc.SpinStep)
	}
	if rc.TickRate != 30 || rc.Aspect != 2 || rc.Step != 1 {
		t.Errorf("unexpected runtime config %+v", rc)
	}

	// zero settings fall back to core defaults
	if got := (ViewSettings{}).RuntimeConfig(0, 0); got.ScreenW != 80 || got.Step != 1 {
		t.Errorf("zero settings not normalized: %+v", got)
	}
}

func TestIdleTimeout(t *testing.T) {
	if got := DefaultSettings().Server.IdleTimeout(); got != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v, want 30m", got)
	}
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		input    string
		expected PrecisionPreset
		wantErr  bool
	}{
		{"", PrecisionNormal, false},
		{"fine", PrecisionFine, false},
		{"Normal", PrecisionNormal, false},
		{" COARSE ", PrecisionCoarse, false},
		{"exact", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrecision(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrecision(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParsePrecision(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestApplyPrecision(t *testing.T) {
	v := DefaultSettings().View
	ApplyPrecision(&v, PrecisionFine)
	if math.Abs(v.Step-0.2) > 1e-12 || math.Abs(v.SpinStepDeg-3) > 1e-12 {
		t.Errorf("fine preset gave step %v, spin %v", v.Step, v.SpinStepDeg)
	}

	v = DefaultSettings().View
	ApplyPrecision(&v, PrecisionNormal)
	if v != DefaultSettings().View {
		t.Errorf("normal preset changed settings: %+v", v)
	}
}
