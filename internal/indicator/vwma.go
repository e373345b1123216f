package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// VWMA is the volume weighted moving average sum(close*volume)/sum(volume).
// A window with zero volume is absent.
type VWMA struct {
	*Composite[types.Bar]

	period int
}

// NewVWMA creates a volume weighted moving average.
func NewVWMA(input Upstream[types.Bar], period int) (*VWMA, error) {
	if err := validatePeriod("VWMA", period); err != nil {
		return nil, err
	}

	return newVWMA(input, period), nil
}

func newVWMA(input Upstream[types.Bar], period int) *VWMA {
	v := &VWMA{Composite: newBarComposite(), period: period}
	bars := v.Bars()

	weighted := NewTransform(bars, func(bar types.Bar) types.Value {
		return types.ValueOf(bar.Close.Mul(bar.Volume))
	})
	volume := Project(bars, FieldVolume)
	weightedSum := newMovingSum(weighted, period)
	volumeSum := newMovingSum(volume, period)
	vwma := join2(weightedSum, volumeSum, types.Value.Div)

	v.Own(weighted, volume, weightedSum, volumeSum, vwma)
	v.Bind(vwma.Value, input)

	return v
}
