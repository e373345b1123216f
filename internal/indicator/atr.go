package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// TrueRange is max(high-low, |high-prevClose|, |low-prevClose|). The first
// bar has no previous close and uses high-low.
type TrueRange struct {
	*Composite[types.Bar]
}

// NewTrueRange creates a true range series over bars.
func NewTrueRange(input Upstream[types.Bar]) *TrueRange {
	t := &TrueRange{Composite: newBarComposite()}
	bars := t.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	prevClose := newShift(t.Anchor(), 1)
	tr := join3(high, low, prevClose, func(h, l, pc types.Value) types.Value {
		hl := h.Sub(l)
		if pc.IsNone() {
			return hl
		}

		return hl.Max(h.Sub(pc).Abs()).Max(l.Sub(pc).Abs())
	})

	t.Own(high, low, prevClose, tr)
	t.Bind(tr.Value, input)

	return t
}

// ATR smooths the true range with the configured method.
type ATR struct {
	*Composite[types.Bar]

	period int
	method Method
	// TrueRange is the unsmoothed true range.
	TrueRange Series
}

// NewATR creates an average true range.
func NewATR(input Upstream[types.Bar], method Method, period int) (*ATR, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}

	if err := validatePeriod("ATR", period); err != nil {
		return nil, err
	}

	return newATR(input, method, period), nil
}

func newATR(input Upstream[types.Bar], method Method, period int) *ATR {
	a := &ATR{Composite: newBarComposite(), period: period, method: method}

	tr := NewTrueRange(a.Bars())
	avg := newMovingAverage(tr, method, period)
	a.TrueRange = tr

	a.Own(tr, avg)
	a.Bind(avg.Value, input)

	return a
}
