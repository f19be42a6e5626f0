// Package geom is a small 2D geometry kernel: an immutable Vector type and
// axis-aligned and rotated rectangles built on top of it.
//
// Angles are in radians and rotations are counter-clockwise. Every operation
// returns a new value; nothing in this package mutates its receiver.
package geom

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Vector is a 2D point or direction.
//
// Equality is exact (see Equal). Callers comparing results of trigonometric
// operations should compare with a tolerance instead.
type Vector struct {
	X, Y float64
}

// V is a short constructor for Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// VectorFromValues builds a vector from a slice of exactly two finite values.
// It is the entry point for decoders that receive untyped component lists.
func VectorFromValues(vals ...float64) (Vector, error) {
	if len(vals) != 2 {
		return Vector{}, fmt.Errorf("%w: vector needs 2 components, got %d", ErrInvalidArgument, len(vals))
	}
	v := Vector{X: vals[0], Y: vals[1]}
	if err := v.Validate(); err != nil {
		return Vector{}, err
	}
	return v, nil
}

// FromAngle returns the unit vector pointing at angle.
func FromAngle(angle float64) Vector {
	angle = NormalizeAngle(angle)
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// a tiny negative input can round up to exactly 2π; also clears -0
	if a >= TwoPi || a == 0 {
		a = 0
	}
	return a
}

// Validate reports ErrInvalidArgument if either component is NaN or infinite.
func (v Vector) Validate() error {
	if !finite(v.X) || !finite(v.Y) {
		return fmt.Errorf("%w: non-finite component in %v", ErrInvalidArgument, v)
	}
	return nil
}

// XY returns both components.
func (v Vector) XY() (x, y float64) {
	return v.X, v.Y
}

// All yields X then Y. Each call returns a fresh sequence.
func (v Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. A zero divisor is rejected with
// ErrDivideByZero rather than producing Inf or NaN components.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, fmt.Errorf("%w: %v / 0", ErrDivideByZero, v)
	}
	return Vector{X: v.X / s, Y: v.Y / s}, nil
}

// Neg flips the sign of both components.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Abs is an alias for Length.
func (v Vector) Abs() float64 {
	return v.Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector in the same direction, or the zero
// vector when v is zero.
func (v Vector) Normalized() Vector {
	if v.IsZero() {
		return Vector{}
	}
	l := v.Length()
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in [0, 2π).
func (v Vector) Angle() (float64, error) {
	if v.IsZero() {
		return 0, ErrNoAngle
	}
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += TwoPi
	}
	return a, nil
}

// Rotated rotates v counter-clockwise by angle. The zero vector is returned
// unchanged.
func (v Vector) Rotated(angle float64) Vector {
	if v.IsZero() {
		return Vector{}
	}
	a, _ := v.Angle()
	return FromAngle(a + angle).Scale(v.Length())
}

// SmallerAngleBetween returns |angle(v) - angle(o)| mod π, a value in [0, π).
// Opposite vectors therefore give 0.
func (v Vector) SmallerAngleBetween(o Vector) (float64, error) {
	a, b, err := anglePair(v, o)
	if err != nil {
		return 0, err
	}
	return math.Mod(math.Abs(a-b), math.Pi), nil
}

// DirectedAngleBetween returns |angle(v) - angle(o)|, shifted down by 2π when
// it exceeds π. The result lies in (-π, π]; its sign reflects whether the
// absolute difference passed π, not the order of the operands.
func (v Vector) DirectedAngleBetween(o Vector) (float64, error) {
	a, b, err := anglePair(v, o)
	if err != nil {
		return 0, err
	}
	d := math.Abs(a - b)
	if d > math.Pi {
		d -= TwoPi
	}
	return d, nil
}

// DistanceTo returns the Euclidean distance between the points v and o.
func (v Vector) DistanceTo(o Vector) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Equal reports exact component equality.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y
}

// String formats v as "Vector(x, y)". Integral components are printed without
// decimals, anything else with four.
func (v Vector) String() string {
	if integral(v.X) && integral(v.Y) {
		return "Vector(" + strconv.FormatFloat(v.X, 'f', -1, 64) + ", " +
			strconv.FormatFloat(v.Y, 'f', -1, 64) + ")"
	}
	return fmt.Sprintf("Vector(%.4f, %.4f)", v.X, v.Y)
}

func anglePair(v, o Vector) (float64, float64, error) {
	a, err := v.Angle()
	if err != nil {
		return 0, 0, err
	}
	b, err := o.Angle()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func integral(f float64) bool {
	return finite(f) && f == math.Trunc(f)
}
