package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
)

// WaddahAttar scales the close MACD and an RMA-smoothed ATR by the same
// multiplier. The node itself is the trend, MACD * multiplier. Explosion is
// ATR * multiplier.
type WaddahAttar struct {
	*Composite[types.Bar]

	MACD      *MACD
	Explosion Series
}

// NewWaddahAttar creates a Waddah Attar explosion, usually 20/40/9 with an
// ATR of 14 and a multiplier of 150.
func NewWaddahAttar(input Upstream[types.Bar], fast, slow, signal, atr int, multiplier decimal.Decimal) (*WaddahAttar, error) {
	if err := validatePeriods("Waddah Attar", fast, slow, signal, atr); err != nil {
		return nil, err
	}

	if fast >= slow {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod,
			"Waddah Attar fast period %d must be shorter than slow period %d", fast, slow)
	}

	if err := validateMultiplier("Waddah Attar", multiplier); err != nil {
		return nil, err
	}

	return newWaddahAttar(input, fast, slow, signal, atr, multiplier), nil
}

func newWaddahAttar(input Upstream[types.Bar], fast, slow, signal, period int, multiplier decimal.Decimal) *WaddahAttar {
	w := &WaddahAttar{Composite: newBarComposite()}
	scale := func(v types.Value) types.Value {
		return v.Scale(multiplier)
	}

	macd := newMACD(w.Anchor(), fast, slow, signal)
	atr := newATR(w.Bars(), MethodRMA, period)
	trend := Map(macd, scale)
	explosion := Map(atr, scale)

	w.MACD = macd
	w.Explosion = explosion
	w.Own(macd, atr, trend, explosion)
	w.Bind(trend.Value, input)

	return w
}

// Action is a buy when the explosion is positive and the trend is up, and a
// sell when the explosion is positive and the trend is down.
func (w *WaddahAttar) Action(index int) types.Action {
	explosion := w.Explosion.Value(index)
	trend := w.Value(index)
	zero := types.ValueOf(decimal.Zero)

	if !explosion.GreaterThan(zero) {
		return types.ActionNeutral
	}

	switch {
	case trend.GreaterThan(zero):
		return types.ActionBuy
	case trend.LessThan(zero):
		return types.ActionSell
	default:
		return types.ActionNeutral
	}
}
