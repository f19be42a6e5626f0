package core

import (
	"math"

	"github.com/vovakirdan/sigep/internal/geom"
)

// CellRect is an integer rectangle in screen cells.
type CellRect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// Right returns the x-coordinate one past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps world coordinates onto screen cells. World Y grows downward,
// like screen rows. Each cell covers Scale world units horizontally and
// Scale*Aspect vertically.
type Viewport struct {
	Origin geom.Vector // World position of the top-left corner of cell (0, 0)
	Scale  float64     // World units per cell column
	Aspect float64     // Cell height relative to its width
}

// FitViewport returns a viewport that shows bounds inside a w x h cell area,
// leaving margin cells on every side and keeping the aspect ratio.
func FitViewport(bounds geom.Rect, w, h, margin int, aspect float64) Viewport {
	if aspect <= 0 {
		aspect = 1
	}
	usableW := float64(max(w-2*margin, 1))
	usableH := float64(max(h-2*margin, 1))

	scale := math.Max(bounds.W/usableW, bounds.H/(usableH*aspect))
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	// center the bounds in the screen
	c := bounds.Center()
	origin := geom.V(
		c.X-scale*float64(w)/2,
		c.Y-scale*aspect*float64(h)/2,
	)
	return Viewport{Origin: origin, Scale: scale, Aspect: aspect}
}

// CellCenter returns the world position at the middle of cell (x, y).
func (v Viewport) CellCenter(x, y int) geom.Vector {
	return geom.V(
		v.Origin.X+(float64(x)+0.5)*v.Scale,
		v.Origin.Y+(float64(y)+0.5)*v.Scale*v.Aspect,
	)
}

// ToCell returns the cell that contains world point p.
func (v Viewport) ToCell(p geom.Vector) (int, int) {
	x := math.Floor((p.X - v.Origin.X) / v.Scale)
	y := math.Floor((p.Y - v.Origin.Y) / (v.Scale * v.Aspect))
	return int(x), int(y)
}

// Visible returns the world rectangle covered by a w x h screen.
func (v Viewport) Visible(w, h int) geom.Rect {
	return geom.NewRect(v.Origin.X, v.Origin.Y, float64(w)*v.Scale, float64(h)*v.Scale*v.Aspect)
}
