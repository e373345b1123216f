package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// KDJ is a stochastic variant. RSV is the raw stochastic, K and D are
// recursively smoothed as K = (RSV + (ma1-1)*K[t-1]) / ma1 and
// D = (K + (ma2-1)*D[t-1]) / ma2, and J = 3K - 2D. The first value seeds
// K = D = RSV. The node itself is K.
type KDJ struct {
	*Composite[types.Bar]

	RSV Series
	D   Series
	J   Series
}

// NewKDJ creates a KDJ indicator.
func NewKDJ(input Upstream[types.Bar], period, ma1, ma2 int) (*KDJ, error) {
	if err := validatePeriods("KDJ", period, ma1, ma2); err != nil {
		return nil, err
	}

	return newKDJ(input, period, ma1, ma2), nil
}

// kdjStep returns the KDJ recurrence step for a given length.
func kdjStep(length int) func(prev, x types.Value) types.Value {
	n := types.NewValueFromInt(int64(length))
	keep := decimal.NewFromInt(int64(length - 1))

	return func(prev, x types.Value) types.Value {
		return x.Add(prev.Scale(keep)).Div(n)
	}
}

func newKDJ(input Upstream[types.Bar], period, ma1, ma2 int) *KDJ {
	k := &KDJ{Composite: newBarComposite()}
	bars := k.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	highest := newHighest(high, period)
	lowest := newLowest(low, period)
	rsv := join3(k.Anchor(), highest, lowest, stochasticOf)
	kLine := NewRecurrence(rsv, identity, kdjStep(ma1))
	dLine := NewRecurrence(kLine, identity, kdjStep(ma2))
	jLine := join2(kLine, dLine, func(k, d types.Value) types.Value {
		return k.Scale(decimal.NewFromInt(3)).Sub(d.Scale(decimal.NewFromInt(2)))
	})

	k.RSV = rsv
	k.D = dLine
	k.J = jLine
	k.Own(high, low, highest, lowest, rsv, kLine, dLine, jLine)
	k.Bind(kLine.Value, input)

	return k
}
