package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

type differenceKind int

const (
	differenceChange differenceKind = iota
	differenceGain
	differenceLoss
	differenceAbsLoss
)

// Difference computes source[i] - source[i-periods] and optionally keeps only
// its positive part (gain), its negative part (loss) or the magnitude of the
// negative part (absolute loss). Results for i < periods are absent.
type Difference struct {
	*Node[types.Value]

	periods int
}

// NewChange creates source[i] - source[i-periods].
func NewChange(input Series, periods int) (*Difference, error) {
	return newCheckedDifference(input, periods, differenceChange)
}

// NewGain creates max(change, 0).
func NewGain(input Series, periods int) (*Difference, error) {
	return newCheckedDifference(input, periods, differenceGain)
}

// NewLoss creates min(change, 0).
func NewLoss(input Series, periods int) (*Difference, error) {
	return newCheckedDifference(input, periods, differenceLoss)
}

// NewAbsLoss creates |min(change, 0)|.
func NewAbsLoss(input Series, periods int) (*Difference, error) {
	return newCheckedDifference(input, periods, differenceAbsLoss)
}

func newCheckedDifference(input Series, periods int, kind differenceKind) (*Difference, error) {
	if err := validatePeriod("difference", periods); err != nil {
		return nil, err
	}

	return newDifference(input, periods, kind), nil
}

func newDifference(input Series, periods int, kind differenceKind) *Difference {
	d := &Difference{Node: newNode[types.Value](), periods: periods}
	d.calculate = func(index int) types.Value {
		if index < periods {
			return types.None()
		}

		change := d.source[index].Sub(d.source[index-periods])
		if change.IsNone() {
			return change
		}

		switch kind {
		case differenceGain:
			return types.ValueOf(decimal.Max(change.Unwrap(), decimal.Zero))
		case differenceLoss:
			return types.ValueOf(decimal.Min(change.Unwrap(), decimal.Zero))
		case differenceAbsLoss:
			return types.ValueOf(decimal.Min(change.Unwrap(), decimal.Zero).Abs())
		default:
			return change
		}
	}
	link(d.Node, Follow(input))

	return d
}
