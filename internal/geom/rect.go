package geom

import (
	"fmt"
	"math"
)

// Epsilon is the per-field tolerance used by rectangle equality.
const Epsilon = 1e-10

// Shape is implemented by Rect and RotatedRect.
type Shape interface {
	Center() Vector
	// Corners are ordered top-left, top-right, bottom-left, bottom-right in
	// the shape's own unrotated frame.
	Corners() [4]Vector
	SurroundingRect() Rect
	Rotation() float64
	Rotated(angle float64) RotatedRect
	Contains(p Vector) bool
	AsTuple() (x, y, w, h float64)
	Equal(other Shape) bool
	String() string
}

var (
	_ Shape = Rect{}
	_ Shape = RotatedRect{}
)

// Rect is an axis-aligned rectangle with origin (X, Y) and size (W, H).
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its four components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromOriginSize creates a rectangle at origin with the given size.
func RectFromOriginSize(origin, size Vector) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
}

// RectFromValues builds a rectangle from exactly four finite values.
func RectFromValues(vals ...float64) (Rect, error) {
	if len(vals) != 4 {
		return Rect{}, fmt.Errorf("%w: rect needs 4 components, got %d", ErrInvalidArgument, len(vals))
	}
	for _, v := range vals {
		if !finite(v) {
			return Rect{}, fmt.Errorf("%w: non-finite rect component %v", ErrInvalidArgument, v)
		}
	}
	return Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// Copy returns r. It exists for call sites that want the copy to be explicit.
func (r Rect) Copy() Rect {
	return r
}

// Origin returns the (X, Y) corner.
func (r Rect) Origin() Vector {
	return Vector{X: r.X, Y: r.Y}
}

// Size returns (W, H) as a vector.
func (r Rect) Size() Vector {
	return Vector{X: r.W, Y: r.H}
}

// Center returns the middle of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the four corners.
func (r Rect) Corners() [4]Vector {
	return [4]Vector{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y + r.H},
	}
}

// SurroundingRect of an axis-aligned rectangle is the rectangle itself.
func (r Rect) SurroundingRect() Rect {
	return r
}

// AsTuple returns (x, y, w, h).
func (r Rect) AsTuple() (x, y, w, h float64) {
	return r.X, r.Y, r.W, r.H
}

// Rotation is always 0 for an axis-aligned rectangle.
func (r Rect) Rotation() float64 {
	return 0
}

// Rotated returns r turned by angle about its center.
func (r Rect) Rotated(angle float64) RotatedRect {
	return NewRotatedRect(r.X, r.Y, r.W, r.H, angle)
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Vector) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Equal compares the (x, y, w, h) tuples within Epsilon. When other is a
// RotatedRect the comparison is delegated to it, so both sides are reduced
// to their surrounding rectangles.
func (r Rect) Equal(other Shape) bool {
	switch o := other.(type) {
	case nil:
		return false
	case RotatedRect:
		return o.Equal(r)
	case *RotatedRect:
		return o != nil && o.Equal(r)
	case *Rect:
		return o != nil && tupleEqual(r, *o)
	}
	return tupleEqual(r, other)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.4f, %.4f, %.4f, %.4f)", r.X, r.Y, r.W, r.H)
}

// RotatedRect is an axis-aligned footprint turned about its center.
//
// The stored angle is always normalized into [0, 2π).
type RotatedRect struct {
	footprint Rect
	rotation  float64
}

// NewRotatedRect creates a footprint (x, y, w, h) rotated by rotation radians.
func NewRotatedRect(x, y, w, h, rotation float64) RotatedRect {
	return RotatedRect{
		footprint: Rect{X: x, Y: y, W: w, H: h},
		rotation:  NormalizeAngle(rotation),
	}
}

// Footprint returns the unrotated rectangle.
func (r RotatedRect) Footprint() Rect {
	return r.footprint
}

// Rotation returns the angle in [0, 2π).
func (r RotatedRect) Rotation() float64 {
	return r.rotation
}

// Center is the footprint's center, which rotation leaves fixed.
func (r RotatedRect) Center() Vector {
	return r.footprint.Center()
}

// Corners returns the footprint's corners rotated about the center, in the
// footprint's corner order.
func (r RotatedRect) Corners() [4]Vector {
	c := r.footprint.Center()
	corners := r.footprint.Corners()
	for i, p := range corners {
		corners[i] = p.Sub(c).Rotated(r.rotation).Add(c)
	}
	return corners
}

// SurroundingRect returns the smallest axis-aligned rectangle holding all
// four rotated corners.
func (r RotatedRect) SurroundingRect() Rect {
	corners := r.Corners()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// AsTuple returns the footprint's (x, y, w, h).
func (r RotatedRect) AsTuple() (x, y, w, h float64) {
	return r.footprint.AsTuple()
}

// Rotated adds angle to the current rotation.
func (r RotatedRect) Rotated(angle float64) RotatedRect {
	f := r.footprint
	return NewRotatedRect(f.X, f.Y, f.W, f.H, r.rotation+angle)
}

// Contains rotates p back into the footprint's frame and tests it there.
func (r RotatedRect) Contains(p Vector) bool {
	c := r.footprint.Center()
	local := p.Sub(c).Rotated(-r.rotation).Add(c)
	return r.footprint.Contains(local)
}

// Equal compares surrounding rectangles, not footprints or angles. Two
// rectangles with different rotations but the same bounding box are equal,
// and a RotatedRect can equal a plain Rect.
func (r RotatedRect) Equal(other Shape) bool {
	switch o := other.(type) {
	case nil:
		return false
	case *RotatedRect:
		if o == nil {
			return false
		}
		other = *o
	case *Rect:
		if o == nil {
			return false
		}
		other = *o
	}
	return tupleEqual(r.SurroundingRect(), other.SurroundingRect())
}

func (r RotatedRect) String() string {
	return fmt.Sprintf("%s.rotated(%.4f)", r.footprint, r.rotation)
}

func tupleEqual(a, b Shape) bool {
	ax, ay, aw, ah := a.AsTuple()
	bx, by, bw, bh := b.AsTuple()
	return math.Abs(ax-bx) < Epsilon &&
		math.Abs(ay-by) < Epsilon &&
		math.Abs(aw-bw) < Epsilon &&
		math.Abs(ah-bh) < Epsilon
}
