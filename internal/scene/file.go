package scene

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
)

// File is the YAML layout of a scene document.
type File struct {
	Name   string       `yaml:"name"`
	Shapes []ShapeEntry `yaml:"shapes"`
	Probes [][]float64  `yaml:"probes,omitempty"`
}

// ShapeEntry describes one shape. Rotation is in radians; RotationDeg, when
// set, takes precedence and is given in degrees.
type ShapeEntry struct {
	Name        string    `yaml:"name"`
	Rect        []float64 `yaml:"rect,flow"`
	Rotation    float64   `yaml:"rotation,omitempty"`
	RotationDeg *float64  `yaml:"rotation_deg,omitempty"`
	Color       string    `yaml:"color,omitempty"`
}

// Shape builds the geometry described by the entry.
func (sp ShapeEntry) Shape() (geom.Shape, error) {
	r, err := geom.RectFromValues(sp.Rect...)
	if err != nil {
		return nil, err
	}
	rot := sp.Rotation
	if sp.RotationDeg != nil {
		rot = *sp.RotationDeg * math.Pi / 180
	}
	if math.IsNaN(rot) || math.IsInf(rot, 0) {
		return nil, fmt.Errorf("%w: non-finite rotation", geom.ErrInvalidArgument)
	}
	// an unrotated shape always decodes as a plain Rect
	if rot == 0 {
		return r, nil
	}
	return r.Rotated(rot), nil
}

// Parse decodes a YAML scene document.
func Parse(data []byte) (Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scene{}, fmt.Errorf("scene: parse: %w", err)
	}
	return f.Scene()
}

// Scene validates the file and converts it into a Scene.
func (f File) Scene() (Scene, error) {
	items := make([]Item, 0, len(f.Shapes))
	for i, sp := range f.Shapes {
		sh, err := sp.Shape()
		if err != nil {
			return Scene{}, fmt.Errorf("scene: shape %d (%s): %w", i, sp.Name, err)
		}
		color := core.PaletteColor(i)
		if sp.Color != "" {
			c, ok := core.ParseColor(sp.Color)
			if !ok {
				return Scene{}, fmt.Errorf("scene: shape %d (%s): %w: unknown color %q", i, sp.Name, geom.ErrInvalidArgument, sp.Color)
			}
			color = c
		}
		items = append(items, Item{Name: sp.Name, Shape: sh, Color: color})
	}

	probes := make([]geom.Vector, 0, len(f.Probes))
	for i, p := range f.Probes {
		v, err := geom.VectorFromValues(p...)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: probe %d: %w", i, err)
		}
		probes = append(probes, v)
	}

	return New(f.Name, items, probes)
}

// File converts the scene back into its YAML layout.
func (s Scene) File() File {
	f := File{Name: s.Name}
	for _, it := range s.Items {
		x, y, w, h := it.Shape.AsTuple()
		f.Shapes = append(f.Shapes, ShapeEntry{
			Name:     it.Name,
			Rect:     []float64{x, y, w, h},
			Rotation: it.Shape.Rotation(),
			Color:    it.Color.String(),
		})
	}
	for _, p := range s.Probes {
		f.Probes = append(f.Probes, []float64{p.X, p.Y})
	}
	return f
}

// Marshal encodes the scene as YAML.
func (s Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s.File())
	if err != nil {
		return nil, fmt.Errorf("scene: encode: %w", err)
	}
	return data, nil
}
