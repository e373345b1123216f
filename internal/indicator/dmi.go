package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// DMI is the directional movement index. +DM and -DM come from the high and
// low deltas, are RMA-smoothed and normalized by the ATR into +DI and -DI.
// ADX is RMA(100 * |+DI - -DI| / (+DI + -DI)), where a zero sum is replaced
// by 1. A zero ATR yields DI values of 0. The node itself is ADX.
type DMI struct {
	*Composite[types.Bar]

	PlusDI  Series
	MinusDI Series
}

// NewDMI creates a directional movement index with separate DI and ADX
// smoothing lengths.
func NewDMI(input Upstream[types.Bar], period, smoothing int) (*DMI, error) {
	if err := validatePeriods("DMI", period, smoothing); err != nil {
		return nil, err
	}

	return newDMI(input, period, smoothing), nil
}

// NewADX creates a DMI whose ADX smoothing equals the DI length.
func NewADX(input Upstream[types.Bar], period int) (*DMI, error) {
	return NewDMI(input, period, period)
}

// directional keeps a move only when it dominates the opposite one.
func directional(move, opposite types.Value) types.Value {
	if move.IsNone() || opposite.IsNone() {
		return types.None()
	}

	if move.GreaterThan(opposite) && move.Unwrap().IsPositive() {
		return move
	}

	return types.ValueOf(decimal.Zero)
}

func newDMI(input Upstream[types.Bar], period, smoothing int) *DMI {
	m := &DMI{Composite: newBarComposite()}
	bars := m.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	up := newDifference(high, 1, differenceChange)
	down := Map(newDifference(low, 1, differenceChange), types.Value.Neg)
	plusDM := join2(up, down, directional)
	minusDM := join2(down, up, directional)

	tr := NewTrueRange(bars)
	atr := newRMA(tr, period)
	plusSmoothed := newRMA(plusDM, period)
	minusSmoothed := newRMA(minusDM, period)
	plusDI := join2(plusSmoothed, atr, percentOf)
	minusDI := join2(minusSmoothed, atr, percentOf)
	dx := join2(plusDI, minusDI, func(p, n types.Value) types.Value {
		sum := p.Add(n)
		if sum.IsZero() {
			sum = types.NewValueFromInt(1)
		}

		return hundred.Mul(p.Sub(n).Abs()).Div(sum)
	})
	adx := newRMA(dx, smoothing)

	m.PlusDI = plusDI
	m.MinusDI = minusDI
	m.Own(high, low, up, down, plusDM, minusDM, tr, atr,
		plusSmoothed, minusSmoothed, plusDI, minusDI, dx, adx)
	m.Bind(adx.Value, input)

	return m
}

// percentOf returns 100 * a / b. A zero ATR means no movement at all, so the
// index is 0 rather than absent.
func percentOf(a, b types.Value) types.Value {
	if b.IsZero() && a.IsSome() {
		return types.ValueOf(decimal.Zero)
	}

	return hundred.Mul(a).Div(b)
}
