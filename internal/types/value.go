package types

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Value is an optional decimal. An absent value means there is not enough
// history yet or the input had a gap. Arithmetic on values propagates absence.
type Value struct {
	optional.Option[decimal.Decimal]
}

// None returns an absent value.
func None() Value {
	return Value{Option: optional.None[decimal.Decimal]()}
}

// ValueOf wraps a decimal into a present value.
func ValueOf(d decimal.Decimal) Value {
	return Value{Option: optional.Some(d)}
}

// NewValue creates a present value from a float64.
func NewValue(f float64) Value {
	return ValueOf(decimal.NewFromFloat(f))
}

// NewValueFromInt creates a present value from an int64.
func NewValueFromInt(i int64) Value {
	return ValueOf(decimal.NewFromInt(i))
}

// Decimal returns the wrapped decimal and whether it is present.
func (v Value) Decimal() (decimal.Decimal, bool) {
	if v.IsNone() {
		return decimal.Zero, false
	}

	return v.Unwrap(), true
}

// Float64 returns the value as a float64, or 0 when absent.
func (v Value) Float64() float64 {
	if v.IsNone() {
		return 0
	}

	return v.Unwrap().InexactFloat64()
}

// Or returns v when present and fallback otherwise.
func (v Value) Or(fallback decimal.Decimal) Value {
	if v.IsSome() {
		return v
	}

	return ValueOf(fallback)
}

// Equal reports whether both values are absent or both hold equal decimals.
func (v Value) Equal(other Value) bool {
	if v.IsNone() || other.IsNone() {
		return v.IsNone() && other.IsNone()
	}

	return v.Unwrap().Equal(other.Unwrap())
}

func (v Value) String() string {
	if v.IsNone() {
		return "None"
	}

	return v.Unwrap().String()
}

func (v Value) zip(other Value, f func(a, b decimal.Decimal) decimal.Decimal) Value {
	if v.IsNone() || other.IsNone() {
		return None()
	}

	return ValueOf(f(v.Unwrap(), other.Unwrap()))
}

func (v Value) Add(other Value) Value {
	return v.zip(other, decimal.Decimal.Add)
}

func (v Value) Sub(other Value) Value {
	return v.zip(other, decimal.Decimal.Sub)
}

func (v Value) Mul(other Value) Value {
	return v.zip(other, decimal.Decimal.Mul)
}

// Div divides v by other. Division by zero yields an absent value.
func (v Value) Div(other Value) Value {
	if other.IsSome() && other.Unwrap().IsZero() {
		return None()
	}

	return v.zip(other, decimal.Decimal.Div)
}

// Scale multiplies v by a constant.
func (v Value) Scale(factor decimal.Decimal) Value {
	if v.IsNone() {
		return v
	}

	return ValueOf(v.Unwrap().Mul(factor))
}

func (v Value) Neg() Value {
	if v.IsNone() {
		return v
	}

	return ValueOf(v.Unwrap().Neg())
}

func (v Value) Abs() Value {
	if v.IsNone() {
		return v
	}

	return ValueOf(v.Unwrap().Abs())
}

func (v Value) Max(other Value) Value {
	return v.zip(other, func(a, b decimal.Decimal) decimal.Decimal { return decimal.Max(a, b) })
}

func (v Value) Min(other Value) Value {
	return v.zip(other, func(a, b decimal.Decimal) decimal.Decimal { return decimal.Min(a, b) })
}

// Cmp compares two present values. ok is false when either side is absent.
func (v Value) Cmp(other Value) (cmp int, ok bool) {
	if v.IsNone() || other.IsNone() {
		return 0, false
	}

	return v.Unwrap().Cmp(other.Unwrap()), true
}

// GreaterThan reports whether both values are present and v > other.
func (v Value) GreaterThan(other Value) bool {
	c, ok := v.Cmp(other)

	return ok && c > 0
}

// LessThan reports whether both values are present and v < other.
func (v Value) LessThan(other Value) bool {
	c, ok := v.Cmp(other)

	return ok && c < 0
}

// IsZero reports whether v is present and equal to zero.
func (v Value) IsZero() bool {
	return v.IsSome() && v.Unwrap().IsZero()
}
