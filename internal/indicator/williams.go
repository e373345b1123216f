package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// WilliamsR is -100 * (highest - close) / (highest - lowest). A flat range
// yields -50.
type WilliamsR struct {
	*Composite[types.Bar]
}

// NewWilliamsR creates a Williams %R, usually with 14.
func NewWilliamsR(input Upstream[types.Bar], period int) (*WilliamsR, error) {
	if err := validatePeriod("Williams %R", period); err != nil {
		return nil, err
	}

	return newWilliamsR(input, period), nil
}

func newWilliamsR(input Upstream[types.Bar], period int) *WilliamsR {
	w := &WilliamsR{Composite: newBarComposite()}
	bars := w.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	highest := newHighest(high, period)
	lowest := newLowest(low, period)
	r := join3(w.Anchor(), highest, lowest, func(c, hi, lo types.Value) types.Value {
		return stochasticOf(c, hi, lo).Sub(hundred)
	})

	w.Own(high, low, highest, lowest, r)
	w.Bind(r.Value, input)

	return w
}
