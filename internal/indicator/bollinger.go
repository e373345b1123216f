package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// BollingerBands is SMA(p) ± multiplier * StdDev(p). The node itself is the
// middle band.
type BollingerBands struct {
	*Composite[types.Value]

	Upper  Series
	Middle Series
	Lower  Series
}

// NewBollingerBands creates Bollinger bands.
func NewBollingerBands(input Series, period int, multiplier decimal.Decimal) (*BollingerBands, error) {
	if err := validatePeriod("Bollinger bands", period); err != nil {
		return nil, err
	}

	if err := validateMultiplier("Bollinger bands", multiplier); err != nil {
		return nil, err
	}

	return newBollingerBands(input, period, multiplier), nil
}

func newBollingerBands(input Series, period int, multiplier decimal.Decimal) *BollingerBands {
	b := &BollingerBands{Composite: newValueComposite()}
	anchor := b.Anchor()

	middle := newSMA(anchor, period)
	deviation := newStdDev(anchor, period)
	upper := join2(middle, deviation, func(m, d types.Value) types.Value {
		return m.Add(d.Scale(multiplier))
	})
	lower := join2(middle, deviation, func(m, d types.Value) types.Value {
		return m.Sub(d.Scale(multiplier))
	})

	b.Upper = upper
	b.Middle = middle
	b.Lower = lower
	b.Own(middle, deviation, upper, lower)
	b.Bind(middle.Value, Follow(input))

	return b
}
