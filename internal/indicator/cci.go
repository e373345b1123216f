package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

var cciConstant = decimal.NewFromFloat(0.015)

// CCI is the commodity channel index: (p - SMA(p)) / (0.015 * mean absolute
// deviation). A zero deviation yields 0.
type CCI struct {
	*Composite[types.Value]

	period int
}

// NewCCI creates a commodity channel index. Callers usually feed it the
// typical price (hlc3).
func NewCCI(input Series, period int) (*CCI, error) {
	if err := validatePeriod("CCI", period); err != nil {
		return nil, err
	}

	return newCCI(input, period), nil
}

func newCCI(input Series, period int) *CCI {
	c := &CCI{Composite: newValueComposite(), period: period}
	anchor := c.Anchor()

	sma := newSMA(anchor, period)
	window := newMovingWindow(anchor, period)
	cci := newJoin(func(index int) types.Value {
		mean, ok := sma.Value(index).Decimal()
		if !ok {
			return types.None()
		}

		price, ok := anchor.Value(index).Decimal()
		if !ok {
			return types.None()
		}

		deviation := decimal.Zero
		for _, v := range window.Snapshot(index) {
			d, ok := v.Decimal()
			if !ok {
				return types.None()
			}

			deviation = deviation.Add(d.Sub(mean).Abs())
		}

		deviation = deviation.Div(decimal.NewFromInt(int64(period)))
		if deviation.IsZero() {
			return types.ValueOf(decimal.Zero)
		}

		return types.ValueOf(price.Sub(mean).Div(cciConstant.Mul(deviation)))
	}, sma, window)

	c.Own(sma, window, cci)
	c.Bind(cci.Value, Follow(input))

	return c
}
