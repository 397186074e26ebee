package graphics

import (
	"fmt"
	"math"
	"reflect"
)

// Number is the set of numeric representations a bounded value can use.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bounds describes the closed interval [Min, Max] of a bounded value.
//
// Static bounds are zero-size types whose methods return constants
// (Normal, Bits1 ... Bits16); dynamic bounds are carried by Range.
type Bounds[T Number] interface {
	Min() T
	Max() T
}

// Range is a Bounds chosen at run time.
type Range[T Number] struct {
	Lo, Hi T
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.Lo }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.Hi }

// Contains reports whether v lies in [Lo, Hi].
func (r Range[T]) Contains(v T) bool { return v >= r.Lo && v <= r.Hi }

// BitRange returns the range [0, 2^bits-1] of an unsigned integer channel.
// A non-positive bit count yields the degenerate range [0, 0]; an upper
// bound beyond the largest T saturates to it.
func BitRange[T Number](bits int) Range[T] {
	if bits <= 0 {
		return Range[T]{}
	}
	var hi uint64 = math.MaxUint64
	if bits < 64 {
		hi = 1<<uint(bits) - 1
	}
	if limit, ok := intLimit[T](); ok && hi > limit {
		hi = limit
	}
	return Range[T]{Hi: T(hi)}
}

// intLimit returns the largest value of T when T is an integer type.
func intLimit[T Number]() (uint64, bool) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return math.MaxUint64 >> uint(64-t.Bits()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return math.MaxInt64 >> uint(64-t.Bits()), true
	default:
		return 0, false
	}
}

// Normal is the static range [0, 1] of a normalized floating-point channel.
type Normal struct{}

func (Normal) Min() float64 { return 0 }
func (Normal) Max() float64 { return 1 }

// Static N-bit ranges. Depths up to 8 are stored in a uint8, deeper ones in a uint16.
type (
	Bits1  struct{}
	Bits2  struct{}
	Bits3  struct{}
	Bits4  struct{}
	Bits5  struct{}
	Bits6  struct{}
	Bits7  struct{}
	Bits8  struct{}
	Bits10 struct{}
	Bits12 struct{}
	Bits16 struct{}
)

func (Bits1) Min() uint8   { return 0 }
func (Bits1) Max() uint8   { return 1<<1 - 1 }
func (Bits2) Min() uint8   { return 0 }
func (Bits2) Max() uint8   { return 1<<2 - 1 }
func (Bits3) Min() uint8   { return 0 }
func (Bits3) Max() uint8   { return 1<<3 - 1 }
func (Bits4) Min() uint8   { return 0 }
func (Bits4) Max() uint8   { return 1<<4 - 1 }
func (Bits5) Min() uint8   { return 0 }
func (Bits5) Max() uint8   { return 1<<5 - 1 }
func (Bits6) Min() uint8   { return 0 }
func (Bits6) Max() uint8   { return 1<<6 - 1 }
func (Bits7) Min() uint8   { return 0 }
func (Bits7) Max() uint8   { return 1<<7 - 1 }
func (Bits8) Min() uint8   { return 0 }
func (Bits8) Max() uint8   { return 1<<8 - 1 }
func (Bits10) Min() uint16 { return 0 }
func (Bits10) Max() uint16 { return 1<<10 - 1 }
func (Bits12) Min() uint16 { return 0 }
func (Bits12) Max() uint16 { return 1<<12 - 1 }
func (Bits16) Min() uint16 { return 0 }
func (Bits16) Max() uint16 { return 1<<16 - 1 }

// Value is a scalar of representation T bounded by B.
//
// Construction never checks the bounds: an out-of-range Value is
// representable and simply reports Valid() == false.
type Value[T Number, B Bounds[T]] struct {
	v T
	b B
}

// NewValue returns a Value with static bounds B.
//
//	ch := graphics.NewValue[graphics.Bits5](uint8(17))
func NewValue[B Bounds[T], T Number](v T) Value[T, B] {
	return Value[T, B]{v: v}
}

// InRange returns a Value bounded by the dynamic range r.
func InRange[T Number](v T, r Range[T]) Value[T, Range[T]] {
	return Value[T, Range[T]]{v: v, b: r}
}

// Value returns the raw scalar.
func (x Value[T, B]) Value() T { return x.v }

// WithValue returns a copy holding v.
func (x Value[T, B]) WithValue(v T) Value[T, B] {
	x.v = v
	return x
}

// Bounds returns the range of x.
func (x Value[T, B]) Bounds() B { return x.b }

// Min returns the lower bound of x.
func (x Value[T, B]) Min() T { return x.b.Min() }

// Max returns the upper bound of x.
func (x Value[T, B]) Max() T { return x.b.Max() }

// Valid reports whether the value lies inside its bounds.
func (x Value[T, B]) Valid() bool {
	return x.v >= x.b.Min() && x.v <= x.b.Max()
}

// Fraction returns the relative position of the value inside its bounds,
// (value-min)/(max-min). It is in [0, 1] for valid values.
func (x Value[T, B]) Fraction() (float64, error) {
	lo, hi := float64(x.b.Min()), float64(x.b.Max())
	if lo == hi {
		return 0, ErrDegenerateRange
	}
	return (float64(x.v) - lo) / (hi - lo), nil
}

// WithFraction returns a copy of x holding the value at fraction f of its
// bounds, f*(max-min)+min. Integer representations truncate toward zero and
// saturate at the limits of T.
func (x Value[T, B]) WithFraction(f float64) Value[T, B] {
	lo, hi := float64(x.b.Min()), float64(x.b.Max())
	x.v = fromFloat[T](f*(hi-lo) + lo)
	return x
}

func (x Value[T, B]) String() string {
	return fmt.Sprint(x.v)
}

// Channel is a normalized floating-point color channel in [0, 1].
type Channel = Value[float64, Normal]

// Channel8 is an 8-bit integer color channel in [0, 255].
type Channel8 = Value[uint8, Bits8]

// Channel16 is a 16-bit integer color channel in [0, 65535].
type Channel16 = Value[uint16, Bits16]

// NewChannel returns a normalized channel holding v.
func NewChannel(v float64) Channel { return Channel{v: v} }

// NewChannel8 returns an 8-bit channel holding v.
func NewChannel8(v uint8) Channel8 { return Channel8{v: v} }

// Scaler is implemented by every bounded value.
type Scaler interface {
	Fraction() (float64, error)
}

// Scalable is satisfied by bounded value types C that can be rebuilt from
// a fraction of their range.
type Scalable[C any] interface {
	Scaler
	Valid() bool
	WithFraction(f float64) C
}

// Convert maps src into the static representation D by its relative
// position: Convert[Value[uint8, Bits4]](NewChannel(0.5)) yields 7.
//
// D's zero value must carry its bounds, so use ConvertInto for Range-bounded
// destinations.
func Convert[D Scalable[D]](src Scaler) (D, error) {
	var zero D
	return ConvertInto(zero, src)
}

// ConvertInto maps src into the representation and bounds of template.
func ConvertInto[D Scalable[D]](template D, src Scaler) (D, error) {
	f, err := src.Fraction()
	if err != nil {
		return template, err
	}
	return template.WithFraction(f), nil
}

// fromFloat converts f to T. Integer kinds truncate toward zero and saturate;
// NaN becomes zero.
func fromFloat[T Number](f float64) T {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return T(f)
	}
	if math.IsNaN(f) {
		return 0
	}
	f = truncate(f)

	bits := t.Bits()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f <= 0 {
			return 0
		}
		if f >= math.Ldexp(1, bits) {
			var maxU uint64 = math.MaxUint64 >> uint(64-bits)
			return T(maxU)
		}
		return T(uint64(f))
	default:
		if f < -math.Ldexp(1, bits-1) {
			var minI int64 = math.MinInt64 >> uint(64-bits)
			return T(minI)
		}
		if f >= math.Ldexp(1, bits-1) {
			var maxI int64 = math.MaxInt64 >> uint(64-bits)
			return T(maxI)
		}
		return T(int64(f))
	}
}

// truncate drops the fractional part of f, first absorbing the rounding
// error of a (v/n)*n round trip so exact integers are not cut to v-1.
func truncate(f float64) float64 {
	eps := math.Max(math.Abs(f), 1) * 1e-12
	return math.Trunc(f + math.Copysign(eps, f))
}
