package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// Aggregate is a windowed reduction over the last period source values.
// Results before index period-1 are absent unless WithWarmUp is given.
type Aggregate struct {
	*Node[types.Value]

	period int
	window *window
}

func newAggregate(input Series, w *window, opts []WindowOption, reduce func(w *window) decimal.Decimal) *Aggregate {
	cfg := newWindowConfig(opts)
	a := &Aggregate{Node: newNode[types.Value](), period: w.size, window: w}
	load := func(index int) types.Value {
		return a.source[index]
	}

	a.calculate = func(index int) types.Value {
		a.window.advance(index, load)
		if !a.window.ready(cfg.warmUp) {
			return types.None()
		}

		return types.ValueOf(reduce(a.window))
	}
	link(a.Node, Follow(input))

	return a
}

// Period returns the window length.
func (a *Aggregate) Period() int {
	return a.period
}

// NewMovingSum sums the last period values.
func NewMovingSum(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("moving sum", period); err != nil {
		return nil, err
	}

	return newMovingSum(input, period, opts...), nil
}

func newMovingSum(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period), opts, func(w *window) decimal.Decimal {
		return w.sum
	})
}

// NewSMA averages the last period values.
func NewSMA(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("SMA", period); err != nil {
		return nil, err
	}

	return newSMA(input, period, opts...), nil
}

func newSMA(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period), opts, (*window).mean)
}

// NewHighest tracks the maximum of the last period values.
func NewHighest(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("highest", period); err != nil {
		return nil, err
	}

	return newHighest(input, period, opts...), nil
}

func newHighest(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period).withExtremes(), opts, (*window).highest)
}

// NewLowest tracks the minimum of the last period values.
func NewLowest(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("lowest", period); err != nil {
		return nil, err
	}

	return newLowest(input, period, opts...), nil
}

func newLowest(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period).withExtremes(), opts, (*window).lowest)
}

// NewVariance computes the population variance of the last period values.
func NewVariance(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("variance", period); err != nil {
		return nil, err
	}

	return newVariance(input, period, opts...), nil
}

func newVariance(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period).withSquares(), opts, (*window).variance)
}

// NewStdDev computes the population standard deviation of the last period values.
func NewStdDev(input Series, period int, opts ...WindowOption) (*Aggregate, error) {
	if err := validatePeriod("standard deviation", period); err != nil {
		return nil, err
	}

	return newStdDev(input, period, opts...), nil
}

func newStdDev(input Series, period int, opts ...WindowOption) *Aggregate {
	return newAggregate(input, newWindow(period).withSquares(), opts, func(w *window) decimal.Decimal {
		return sqrt(w.variance())
	})
}

// sqrt goes through float64; decimal has no square root.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if !d.IsPositive() {
		return decimal.Zero
	}

	return decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
}

// MovingWindow exposes the last period source values at every index. Its
// result is the newest value once the window is full.
type MovingWindow struct {
	*Aggregate
}

// NewMovingWindow creates a window snapshot node.
func NewMovingWindow(input Series, period int, opts ...WindowOption) (*MovingWindow, error) {
	if err := validatePeriod("moving window", period); err != nil {
		return nil, err
	}

	return newMovingWindow(input, period, opts...), nil
}

func newMovingWindow(input Series, period int, opts ...WindowOption) *MovingWindow {
	m := &MovingWindow{}
	m.Aggregate = newAggregate(input, newWindow(period), opts, func(w *window) decimal.Decimal {
		return w.at(w.end).Unwrap()
	})

	return m
}

// Snapshot returns a copy of the source values in the window ending at index,
// oldest first. It is shorter than the period near the start of the series.
func (m *MovingWindow) Snapshot(index int) []types.Value {
	if index < 0 || index >= len(m.source) {
		return nil
	}

	start := max(0, index-m.period+1)
	out := make([]types.Value, index-start+1)
	copy(out, m.source[start:index+1])

	return out
}
