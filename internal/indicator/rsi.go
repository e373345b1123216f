package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

var (
	hundred = types.NewValue(100)
	fifty   = types.NewValue(50)
)

// RSI is the relative strength index: 100 - 100/(1+RMA(gain)/RMA(loss)).
// When the average loss is zero the RSI is 100, or 50 when the average gain
// is zero as well.
type RSI struct {
	*Composite[types.Value]

	period  int
	AvgGain Series
	AvgLoss Series
}

// NewRSI creates a relative strength index over prices.
func NewRSI(input Series, period int) (*RSI, error) {
	if err := validatePeriod("RSI", period); err != nil {
		return nil, err
	}

	return newRSI(input, period), nil
}

func newRSI(input Series, period int) *RSI {
	r := &RSI{Composite: newValueComposite(), period: period}
	anchor := r.Anchor()

	gain := newDifference(anchor, 1, differenceGain)
	loss := newDifference(anchor, 1, differenceAbsLoss)
	avgGain := newRMA(gain, period)
	avgLoss := newRMA(loss, period)
	rsi := join2(avgGain, avgLoss, rsiFormula)

	r.AvgGain = avgGain
	r.AvgLoss = avgLoss
	r.Own(gain, loss, avgGain, avgLoss, rsi)
	r.Bind(rsi.Value, Follow(input))

	return r
}

func rsiFormula(gain, loss types.Value) types.Value {
	if gain.IsNone() || loss.IsNone() {
		return types.None()
	}

	if loss.IsZero() {
		if gain.IsZero() {
			return fifty
		}

		return hundred
	}

	rs := gain.Div(loss)

	return hundred.Sub(hundred.Div(types.NewValue(1).Add(rs)))
}
