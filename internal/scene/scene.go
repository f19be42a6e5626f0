// Package scene holds named collections of shapes loaded from YAML files,
// with hit-testing and bounds queries over them.
package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
)

// ErrUnknownShape is returned when a shape name is not in the scene.
var ErrUnknownShape = errors.New("scene: unknown shape")

// Item is a named, colored shape.
type Item struct {
	Name  string
	Shape geom.Shape
	Color core.Color
}

// Scene is an ordered list of shapes plus probe points of interest.
// Scenes are values: every mutating method returns a new Scene.
type Scene struct {
	Name   string
	Items  []Item
	Probes []geom.Vector
}

// New creates a scene, rejecting empty or duplicate shape names.
func New(name string, items []Item, probes []geom.Vector) (Scene, error) {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.Name == "" {
			return Scene{}, fmt.Errorf("scene: shape %d: %w: empty name", i, geom.ErrInvalidArgument)
		}
		if seen[it.Name] {
			return Scene{}, fmt.Errorf("scene: shape %d: %w: duplicate name %q", i, geom.ErrInvalidArgument, it.Name)
		}
		if it.Shape == nil {
			return Scene{}, fmt.Errorf("scene: shape %q: %w: no geometry", it.Name, geom.ErrInvalidArgument)
		}
		seen[it.Name] = true
	}
	return Scene{
		Name:   name,
		Items:  slices.Clone(items),
		Probes: slices.Clone(probes),
	}, nil
}

// Len returns the number of shapes.
func (s Scene) Len() int {
	return len(s.Items)
}

// Index returns the position of the named shape, or -1.
func (s Scene) Index(name string) int {
	return slices.IndexFunc(s.Items, func(it Item) bool { return it.Name == name })
}

// Get returns the named shape.
func (s Scene) Get(name string) (Item, error) {
	i := s.Index(name)
	if i < 0 {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s.Items[i], nil
}

// Hit returns the names of all shapes containing p, in scene order.
func (s Scene) Hit(p geom.Vector) []string {
	var names []string
	for _, it := range s.Items {
		if it.Shape.Contains(p) {
			names = append(names, it.Name)
		}
	}
	return names
}

// Bounds returns the smallest axis-aligned rectangle enclosing the
// surrounding rects of every shape. ok is false for an empty scene.
func (s Scene) Bounds() (r geom.Rect, ok bool) {
	if len(s.Items) == 0 {
		return geom.Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, it := range s.Items {
		sr := it.Shape.SurroundingRect()
		for _, c := range sr.Corners() {
			minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
			minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		}
	}
	return geom.NewRect(minX, minY, maxX-minX, maxY-minY), true
}

// Rotate returns a copy of the scene with the i-th shape turned by angle.
func (s Scene) Rotate(i int, angle float64) Scene {
	return s.replace(i, func(sh geom.Shape) geom.Shape {
		return sh.Rotated(angle)
	})
}

// Move returns a copy of the scene with the i-th shape shifted by d.
func (s Scene) Move(i int, d geom.Vector) Scene {
	return s.replace(i, func(sh geom.Shape) geom.Shape {
		return Translate(sh, d)
	})
}

// Reset returns a copy of the scene with the i-th shape's rotation undone.
func (s Scene) Reset(i int) Scene {
	return s.replace(i, func(sh geom.Shape) geom.Shape {
		x, y, w, h := sh.AsTuple()
		return geom.NewRect(x, y, w, h)
	})
}

func (s Scene) replace(i int, f func(geom.Shape) geom.Shape) Scene {
	if i < 0 || i >= len(s.Items) {
		return s
	}
	items := slices.Clone(s.Items)
	items[i].Shape = f(items[i].Shape)
	s.Items = items
	return s
}

// Translate shifts a shape's footprint by d, keeping its rotation.
func Translate(sh geom.Shape, d geom.Vector) geom.Shape {
	x, y, w, h := sh.AsTuple()
	if rot := sh.Rotation(); rot != 0 {
		return geom.NewRotatedRect(x+d.X, y+d.Y, w, h, rot)
	}
	return geom.NewRect(x+d.X, y+d.Y, w, h)
}
