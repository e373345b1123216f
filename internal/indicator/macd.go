package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// MACD is EMA(fast) - EMA(slow) with a signal line EMA(macd, signal) and the
// histogram macd - signal.
type MACD struct {
	*Composite[types.Value]

	Signal    Series
	Histogram Series
}

// NewMACD creates a moving average convergence divergence.
func NewMACD(input Series, fast, slow, signal int) (*MACD, error) {
	if err := validatePeriods("MACD", fast, slow, signal); err != nil {
		return nil, err
	}

	if fast >= slow {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod,
			"MACD fast period %d must be shorter than slow period %d", fast, slow)
	}

	return newMACD(input, fast, slow, signal), nil
}

func newMACD(input Series, fast, slow, signal int) *MACD {
	m := &MACD{Composite: newValueComposite()}
	anchor := m.Anchor()

	fastEMA := newEMA(anchor, fast)
	slowEMA := newEMA(anchor, slow)
	macd := join2(fastEMA, slowEMA, subtract)
	signalEMA := newEMA(macd, signal)
	histogram := join2(macd, signalEMA, subtract)

	m.Signal = signalEMA
	m.Histogram = histogram
	m.Own(fastEMA, slowEMA, macd, signalEMA, histogram)
	m.Bind(macd.Value, Follow(input))

	return m
}
