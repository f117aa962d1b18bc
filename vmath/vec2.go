package vmath

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Mutation and access errors. Any of these reaching a caller is a
// programming error, never an expected runtime condition.
var (
	// ErrFrozen is returned by every mutator once the vector has been hashed
	ErrFrozen = errors.New("vmath: vector is frozen after hashing")

	// ErrIndexOutOfRange is returned by At for indices other than 0 and 1
	ErrIndexOutOfRange = errors.New("vmath: vector index out of range")

	// ErrTypeMismatch is returned when an operand is not a vector
	ErrTypeMismatch = errors.New("vmath: operand is not a vector")
)

// readPrecision quantizes component reads to 9 decimal digits so equality
// and hashing stay stable against accumulated floating-point noise
const readPrecision = 1e9

func round9(f float64) float64 {
	return math.Round(f*readPrecision) / readPrecision
}

// Vec2 is a mutable 2D vector with freeze-on-hash semantics.
// Components are stored at full precision and rounded on read. The first
// call to Hash caches the digest and freezes the instance: from then on
// every mutator fails with ErrFrozen. The freeze guards hash-keyed
// structures against silent corruption by a later in-place mutation, and
// is irreversible for the lifetime of the instance.
//
// Vec2 carries no concurrency contract; instances are cheap and meant to
// be copied, not shared.
type Vec2 struct {
	x, y   float64
	sum    uint64
	frozen bool
}

// New returns an unfrozen vector with the given components.
func New(x, y float64) *Vec2 {
	return &Vec2{x: x, y: y}
}

// X returns the x component rounded to read precision.
func (v *Vec2) X() float64 { return round9(v.x) }

// Y returns the y component rounded to read precision.
func (v *Vec2) Y() float64 { return round9(v.y) }

// SetX replaces the x component. Fails once the vector is frozen.
func (v *Vec2) SetX(x float64) error {
	if v.frozen {
		return ErrFrozen
	}
	v.x = x
	return nil
}

// SetY replaces the y component. Fails once the vector is frozen.
func (v *Vec2) SetY(y float64) error {
	if v.frozen {
		return ErrFrozen
	}
	v.y = y
	return nil
}

// Copy returns a fresh unfrozen vector with the same unrounded components.
// The copy never aliases the source.
func (v *Vec2) Copy() *Vec2 {
	return &Vec2{x: v.x, y: v.y}
}

// Add adds w component-wise in place and returns the receiver for chaining.
func (v *Vec2) Add(w *Vec2) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x += w.x
	v.y += w.y
	return v, nil
}

// Sub subtracts w component-wise in place.
func (v *Vec2) Sub(w *Vec2) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x -= w.x
	v.y -= w.y
	return v, nil
}

// Mul multiplies component-wise in place.
func (v *Vec2) Mul(w *Vec2) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x *= w.x
	v.y *= w.y
	return v, nil
}

// Div divides component-wise in place.
func (v *Vec2) Div(w *Vec2) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x /= w.x
	v.y /= w.y
	return v, nil
}

// AddScalar adds s to both components in place.
func (v *Vec2) AddScalar(s float64) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x += s
	v.y += s
	return v, nil
}

// SubScalar subtracts s from both components in place.
func (v *Vec2) SubScalar(s float64) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x -= s
	v.y -= s
	return v, nil
}

// MulScalar scales both components by s in place.
func (v *Vec2) MulScalar(s float64) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x *= s
	v.y *= s
	return v, nil
}

// DivScalar divides both components by s in place.
func (v *Vec2) DivScalar(s float64) (*Vec2, error) {
	if v.frozen {
		return nil, ErrFrozen
	}
	v.x /= s
	v.y /= s
	return v, nil
}

// Move displaces the vector by w in place. Convenience verb for Add.
func (v *Vec2) Move(w *Vec2) error {
	_, err := v.Add(w)
	return err
}

// Scale multiplies the vector by w component-wise in place.
// Convenience verb for Mul.
func (v *Vec2) Scale(w *Vec2) error {
	_, err := v.Mul(w)
	return err
}

// Rotate rotates the vector counter-clockwise about the origin by the given
// angle in degrees. Fails once the vector is frozen.
func (v *Vec2) Rotate(degrees float64) error {
	if v.frozen {
		return ErrFrozen
	}
	sin, cos := math.Sincos(degrees * math.Pi / 180.0)
	x, y := v.x, v.y
	v.x = x*cos - y*sin
	v.y = y*cos + x*sin
	return nil
}

// Plus returns v + w without mutating v.
func (v *Vec2) Plus(w *Vec2) *Vec2 {
	return &Vec2{x: v.x + w.x, y: v.y + w.y}
}

// Minus returns v - w without mutating v.
func (v *Vec2) Minus(w *Vec2) *Vec2 {
	return &Vec2{x: v.x - w.x, y: v.y - w.y}
}

// Times returns the component-wise product v * w without mutating v.
func (v *Vec2) Times(w *Vec2) *Vec2 {
	return &Vec2{x: v.x * w.x, y: v.y * w.y}
}

// Over returns the component-wise quotient v / w without mutating v.
func (v *Vec2) Over(w *Vec2) *Vec2 {
	return &Vec2{x: v.x / w.x, y: v.y / w.y}
}

// PlusScalar returns v + (s, s) without mutating v.
func (v *Vec2) PlusScalar(s float64) *Vec2 {
	return &Vec2{x: v.x + s, y: v.y + s}
}

// MinusScalar returns v - (s, s) without mutating v.
func (v *Vec2) MinusScalar(s float64) *Vec2 {
	return &Vec2{x: v.x - s, y: v.y - s}
}

// TimesScalar returns v scaled by s without mutating v.
func (v *Vec2) TimesScalar(s float64) *Vec2 {
	return &Vec2{x: v.x * s, y: v.y * s}
}

// OverScalar returns v divided by s without mutating v.
func (v *Vec2) OverScalar(s float64) *Vec2 {
	return &Vec2{x: v.x / s, y: v.y / s}
}

// ScalarPlus returns s + v. Addition commutes:
// ScalarPlus(s, v) equals v.PlusScalar(s).
func ScalarPlus(s float64, v *Vec2) *Vec2 {
	return v.PlusScalar(s)
}

// ScalarTimes returns s * v. Multiplication commutes:
// ScalarTimes(s, v) equals v.TimesScalar(s).
func ScalarTimes(s float64, v *Vec2) *Vec2 {
	return v.TimesScalar(s)
}

// Neg returns a new vector with both components sign-flipped.
// The receiver is neither mutated nor frozen.
func (v *Vec2) Neg() *Vec2 {
	return &Vec2{x: -v.x, y: -v.y}
}

// Mag returns the Euclidean norm, computed from the unrounded components.
func (v *Vec2) Mag() float64 {
	return math.Hypot(v.x, v.y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b *Vec2) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

// Equal reports whether both rounded components match exactly.
// Inequality is the strict negation: vectors differing in a single
// component are unequal.
func (v *Vec2) Equal(w *Vec2) bool {
	return v.X() == w.X() && v.Y() == w.Y()
}

// Equals compares against an arbitrary operand. A non-vector operand is a
// type mismatch, surfaced as ErrTypeMismatch rather than a silent false.
func (v *Vec2) Equals(other any) (bool, error) {
	w, ok := other.(*Vec2)
	if !ok || w == nil {
		return false, ErrTypeMismatch
	}
	return v.Equal(w), nil
}

// Hash returns the xxhash digest of the rounded component pair. The first
// call caches the digest and freezes the vector; this is the only
// operation that transitions the frozen state.
func (v *Vec2) Hash() uint64 {
	if !v.frozen {
		// Negative zero compares equal to zero but has different bits;
		// strip the sign so rounded-equal vectors hash equally
		x, y := v.X(), v.Y()
		if x == 0 {
			x = 0
		}
		if y == 0 {
			y = 0
		}
		var buf [16]byte
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(x))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(y))
		v.sum = xxhash.Sum64(buf[:])
		v.frozen = true
	}
	return v.sum
}

// Frozen reports whether the vector has been hashed.
func (v *Vec2) Frozen() bool { return v.frozen }

// At returns the rounded component at index 0 (x) or 1 (y).
func (v *Vec2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X(), nil
	case 1:
		return v.Y(), nil
	default:
		return 0, ErrIndexOutOfRange
	}
}

// Len returns the number of components.
func (v *Vec2) Len() int { return 2 }

func (v *Vec2) String() string {
	return fmt.Sprintf("vec2(%v, %v)", v.X(), v.Y())
}
