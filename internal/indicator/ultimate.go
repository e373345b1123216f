package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// UltimateOscillator blends buying pressure over three lookbacks:
// 100 * (4*avg(fast) + 2*avg(middle) + avg(slow)) / 7, where avg(n) is
// sum(close - trueLow, n) / sum(trueHigh - trueLow, n).
type UltimateOscillator struct {
	*Composite[types.Bar]
}

// NewUltimateOscillator creates an ultimate oscillator, usually with 7, 14, 28.
func NewUltimateOscillator(input Upstream[types.Bar], fast, middle, slow int) (*UltimateOscillator, error) {
	if err := validatePeriods("ultimate oscillator", fast, middle, slow); err != nil {
		return nil, err
	}

	return newUltimateOscillator(input, fast, middle, slow), nil
}

func newUltimateOscillator(input Upstream[types.Bar], fast, middle, slow int) *UltimateOscillator {
	u := &UltimateOscillator{Composite: newBarComposite()}
	bars := u.Bars()
	anchor := u.Anchor()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	prevClose := newShift(anchor, 1)
	trueLow := join2(low, prevClose, func(l, pc types.Value) types.Value {
		if pc.IsNone() {
			return l
		}

		return l.Min(pc)
	})
	trueHigh := join2(high, prevClose, func(h, pc types.Value) types.Value {
		if pc.IsNone() {
			return h
		}

		return h.Max(pc)
	})
	pressure := join2(anchor, trueLow, subtract)
	span := join2(trueHigh, trueLow, subtract)
	u.Own(high, low, prevClose, trueLow, trueHigh, pressure, span)

	average := func(period int) Series {
		p := newMovingSum(pressure, period)
		s := newMovingSum(span, period)
		avg := join2(p, s, types.Value.Div)
		u.Own(p, s, avg)

		return avg
	}

	four := decimal.NewFromInt(4)
	two := decimal.NewFromInt(2)
	seven := types.NewValueFromInt(7)
	uo := join3(average(fast), average(middle), average(slow), func(f, m, s types.Value) types.Value {
		return hundred.Mul(f.Scale(four).Add(m.Scale(two)).Add(s)).Div(seven)
	})

	u.Own(uo)
	u.Bind(uo.Value, input)

	return u
}
