package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

type rangeState struct {
	filter   types.Value
	upward   int
	downward int
}

// RangeFilter trails the close by a smoothed range:
// smooth = EMA(EMA(|close - prevClose|, p), 2p-1) * multiplier. The filter
// only moves when the close leaves the band filter ± smooth, and then only
// toward the close. The node itself is the filter.
type RangeFilter struct {
	*Composite[types.Bar]

	states []rangeState
	// Smooth is the smoothed range.
	Smooth Series
	High   Series
	Low    Series
}

// NewRangeFilter creates a range filter over the close.
func NewRangeFilter(input Upstream[types.Bar], period int, multiplier decimal.Decimal) (*RangeFilter, error) {
	if err := validatePeriod("range filter", period); err != nil {
		return nil, err
	}

	if err := validateMultiplier("range filter", multiplier); err != nil {
		return nil, err
	}

	return newRangeFilter(input, period, multiplier), nil
}

func newRangeFilter(input Upstream[types.Bar], period int, multiplier decimal.Decimal) *RangeFilter {
	r := &RangeFilter{Composite: newBarComposite()}
	price := r.Anchor()

	change := Map(newDifference(price, 1, differenceChange), types.Value.Abs)
	average := newEMA(change, period)
	smooth := Map(newEMA(average, 2*period-1), func(v types.Value) types.Value {
		return v.Scale(multiplier)
	})
	filter := newJoin(func(index int) types.Value {
		return r.step(index, price.Value(index), smooth.Value(index))
	}, price, smooth)
	high := join2(filter, smooth, add)
	low := join2(filter, smooth, subtract)

	r.Smooth = smooth
	r.High = high
	r.Low = low
	r.Own(change, average, smooth, filter, high, low)
	r.Bind(filter.Value, input)

	return r
}

func (r *RangeFilter) state(index int) rangeState {
	if index < 0 || index >= len(r.states) {
		return rangeState{filter: types.None()}
	}

	return r.states[index]
}

func (r *RangeFilter) step(index int, price, smooth types.Value) types.Value {
	for len(r.states) <= index {
		r.states = append(r.states, rangeState{filter: types.None()})
	}

	prev := r.state(index - 1)

	var next rangeState

	switch {
	case price.IsNone():
		next = rangeState{filter: types.None()}
	case prev.filter.IsNone() || smooth.IsNone():
		next = rangeState{filter: price}
	default:
		next = rangeState{filter: rangeFilterValue(price, prev.filter, smooth), upward: prev.upward, downward: prev.downward}

		switch {
		case next.filter.GreaterThan(prev.filter):
			next.upward, next.downward = prev.upward+1, 0
		case next.filter.LessThan(prev.filter):
			next.upward, next.downward = 0, prev.downward+1
		}
	}

	r.states[index] = next

	return next.filter
}

func rangeFilterValue(price, prev, smooth types.Value) types.Value {
	if price.GreaterThan(prev) {
		return prev.Max(price.Sub(smooth))
	}

	return prev.Min(price.Add(smooth))
}

// Upward counts consecutive bars on which the filter rose, up to index.
func (r *RangeFilter) Upward(index int) int {
	return r.state(index).upward
}

// Downward counts consecutive bars on which the filter fell, up to index.
func (r *RangeFilter) Downward(index int) int {
	return r.state(index).downward
}

// Action is a buy while the filter is rising and a sell while it is falling.
func (r *RangeFilter) Action(index int) types.Action {
	s := r.state(index)

	switch {
	case s.upward > 0:
		return types.ActionBuy
	case s.downward > 0:
		return types.ActionSell
	default:
		return types.ActionNeutral
	}
}
