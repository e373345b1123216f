package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// BullBearPower measures highs and lows against an EMA of the close:
// Bull = high - EMA and Bear = low - EMA. The node itself is Bull + Bear.
type BullBearPower struct {
	*Composite[types.Bar]

	Bull Series
	Bear Series
}

// NewBullBearPower creates a bull/bear power indicator, usually with 13.
func NewBullBearPower(input Upstream[types.Bar], period int) (*BullBearPower, error) {
	if err := validatePeriod("bull bear power", period); err != nil {
		return nil, err
	}

	return newBullBearPower(input, period), nil
}

func newBullBearPower(input Upstream[types.Bar], period int) *BullBearPower {
	b := &BullBearPower{Composite: newBarComposite()}
	bars := b.Bars()

	ema := newEMA(b.Anchor(), period)
	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	bull := join2(high, ema, subtract)
	bear := join2(low, ema, subtract)
	power := join2(bull, bear, add)

	b.Bull = bull
	b.Bear = bear
	b.Own(ema, high, low, bull, bear, power)
	b.Bind(power.Value, input)

	return b
}
