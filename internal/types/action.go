package types

import (
	"strings"

	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
)

// Action is the 5-level trading signal produced by the technical ratings.
type Action int

const (
	ActionStrongSell Action = iota - 2
	ActionSell
	ActionNeutral
	ActionBuy
	ActionStrongBuy
)

var (
	strongBound = decimal.RequireFromString("0.5")
	weakBound   = decimal.RequireFromString("0.1")
)

func (a Action) String() string {
	switch a {
	case ActionStrongSell:
		return "STRONG_SELL"
	case ActionSell:
		return "SELL"
	case ActionBuy:
		return "BUY"
	case ActionStrongBuy:
		return "STRONG_BUY"
	default:
		return "NEUTRAL"
	}
}

// ActionForScore maps a summary score in [-1, 1] to an action:
// |score| > 0.5 is strong, |score| > 0.1 is a plain buy or sell.
func ActionForScore(score decimal.Decimal) Action {
	abs := score.Abs()

	var action Action

	switch {
	case abs.GreaterThan(strongBound):
		action = ActionStrongBuy
	case abs.GreaterThan(weakBound):
		action = ActionBuy
	default:
		return ActionNeutral
	}

	if score.IsNegative() {
		return -action
	}

	return action
}

// ActionForValue maps an optional score. Absent scores are neutral.
func ActionForValue(score Value) Action {
	d, ok := score.Decimal()
	if !ok {
		return ActionNeutral
	}

	return ActionForScore(d)
}

// ParseAction parses the String form of an action, case-insensitively.
func ParseAction(s string) (Action, error) {
	for a := ActionStrongSell; a <= ActionStrongBuy; a++ {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}

	return ActionNeutral, errors.Newf(errors.ErrCodeInvalidParameter, "unknown action %q", s)
}
