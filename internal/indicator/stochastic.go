package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// stochasticOf returns 100 * (x - lo) / (hi - lo), or 50 on a flat range.
func stochasticOf(x, hi, lo types.Value) types.Value {
	span := hi.Sub(lo)
	if span.IsNone() || x.IsNone() {
		return types.None()
	}

	if span.IsZero() {
		return fifty
	}

	return hundred.Mul(x.Sub(lo)).Div(span)
}

// Stochastic is the raw %K: where the close sits in the high/low range of the
// last period bars.
type Stochastic struct {
	*Composite[types.Bar]

	period int
}

// NewStochastic creates a raw stochastic over bars.
func NewStochastic(input Upstream[types.Bar], period int) (*Stochastic, error) {
	if err := validatePeriod("stochastic", period); err != nil {
		return nil, err
	}

	return newStochastic(input, period), nil
}

func newStochastic(input Upstream[types.Bar], period int) *Stochastic {
	s := &Stochastic{Composite: newBarComposite(), period: period}
	bars := s.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	highest := newHighest(high, period)
	lowest := newLowest(low, period)
	k := join3(s.Anchor(), highest, lowest, stochasticOf)

	s.Own(high, low, highest, lowest, k)
	s.Bind(k.Value, input)

	return s
}

// StochasticOscillator smooths the raw stochastic: K = SMA(raw, k) and
// D = SMA(K, d). The node itself is K.
type StochasticOscillator struct {
	*Composite[types.Bar]

	K Series
	D Series
}

// NewStochasticOscillator creates a smoothed stochastic oscillator.
func NewStochasticOscillator(input Upstream[types.Bar], period, k, d int) (*StochasticOscillator, error) {
	if err := validatePeriods("stochastic oscillator", period, k, d); err != nil {
		return nil, err
	}

	return newStochasticOscillator(input, period, k, d), nil
}

func newStochasticOscillator(input Upstream[types.Bar], period, k, d int) *StochasticOscillator {
	s := &StochasticOscillator{Composite: newBarComposite()}

	raw := newStochastic(s.Bars(), period)
	kLine := newSMA(raw, k)
	dLine := newSMA(kLine, d)

	s.K = kLine
	s.D = dLine
	s.Own(raw, kLine, dLine)
	s.Bind(kLine.Value, input)

	return s
}

// StochasticRSI applies the stochastic formula to an RSI series and smooths
// it like the stochastic oscillator. The node itself is K.
type StochasticRSI struct {
	*Composite[types.Value]

	RSI Series
	K   Series
	D   Series
}

// NewStochasticRSI creates a stochastic RSI.
func NewStochasticRSI(input Series, rsiPeriod, stochPeriod, k, d int) (*StochasticRSI, error) {
	if err := validatePeriods("stochastic RSI", rsiPeriod, stochPeriod, k, d); err != nil {
		return nil, err
	}

	return newStochasticRSI(input, rsiPeriod, stochPeriod, k, d), nil
}

func newStochasticRSI(input Series, rsiPeriod, stochPeriod, k, d int) *StochasticRSI {
	s := &StochasticRSI{Composite: newValueComposite()}

	rsi := newRSI(s.Anchor(), rsiPeriod)
	highest := newHighest(rsi, stochPeriod)
	lowest := newLowest(rsi, stochPeriod)
	raw := join3(rsi, highest, lowest, stochasticOf)
	kLine := newSMA(raw, k)
	dLine := newSMA(kLine, d)

	s.RSI = rsi
	s.K = kLine
	s.D = dLine
	s.Own(rsi, highest, lowest, raw, kLine, dLine)
	s.Bind(kLine.Value, Follow(input))

	return s
}
