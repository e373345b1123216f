package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// Trend directions reported by SuperTrend.Direction.
const (
	TrendDown = -1
	TrendNone = 0
	TrendUp   = 1
)

type trendState struct {
	upper     types.Value
	lower     types.Value
	direction int
}

// SuperTrend follows price with ATR bands around hl2. The lower band is
// reported in an uptrend and the upper band in a downtrend. Bands only move
// in the trend's favor until the close crosses them.
type SuperTrend struct {
	*Composite[types.Bar]

	states []trendState
	ATR    Series
}

// NewSuperTrend creates a SuperTrend with an RMA-smoothed ATR.
func NewSuperTrend(input Upstream[types.Bar], period int, multiplier decimal.Decimal) (*SuperTrend, error) {
	if err := validatePeriod("SuperTrend", period); err != nil {
		return nil, err
	}

	if err := validateMultiplier("SuperTrend", multiplier); err != nil {
		return nil, err
	}

	return newSuperTrend(input, period, multiplier), nil
}

func newSuperTrend(input Upstream[types.Bar], period int, multiplier decimal.Decimal) *SuperTrend {
	s := &SuperTrend{Composite: newBarComposite()}
	bars := s.Bars()

	median := Project(bars, FieldHL2)
	atr := newATR(bars, MethodRMA, period)
	trend := newJoin(func(index int) types.Value {
		return s.step(index, median.Value(index), atr.Value(index), multiplier)
	}, median, atr)

	s.ATR = atr
	s.Own(median, atr, trend)
	s.Bind(trend.Value, input)

	return s
}

func (s *SuperTrend) state(index int) trendState {
	if index < 0 || index >= len(s.states) {
		return trendState{upper: types.None(), lower: types.None()}
	}

	return s.states[index]
}

func (s *SuperTrend) step(index int, median, atr types.Value, multiplier decimal.Decimal) types.Value {
	for len(s.states) <= index {
		s.states = append(s.states, trendState{upper: types.None(), lower: types.None()})
	}

	if median.IsNone() || atr.IsNone() {
		s.states[index] = trendState{upper: types.None(), lower: types.None()}

		return types.None()
	}

	offset := atr.Scale(multiplier)
	upper := median.Add(offset)
	lower := median.Sub(offset)

	anchor := s.Anchor()
	closing := anchor.Value(index)
	prevClose := anchor.Value(index - 1)
	prev := s.state(index - 1)

	if prev.direction != TrendNone {
		if !(lower.GreaterThan(prev.lower) || prevClose.LessThan(prev.lower)) {
			lower = prev.lower
		}

		if !(upper.LessThan(prev.upper) || prevClose.GreaterThan(prev.upper)) {
			upper = prev.upper
		}
	}

	direction := TrendDown

	switch prev.direction {
	case TrendDown:
		if closing.GreaterThan(upper) {
			direction = TrendUp
		}
	case TrendUp:
		direction = TrendUp
		if closing.LessThan(lower) {
			direction = TrendDown
		}
	}

	s.states[index] = trendState{upper: upper, lower: lower, direction: direction}
	if direction == TrendUp {
		return lower
	}

	return upper
}

// Direction returns TrendUp, TrendDown, or TrendNone while the ATR warms up.
func (s *SuperTrend) Direction(index int) int {
	return s.state(index).direction
}
