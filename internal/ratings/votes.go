package ratings

import (
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

var (
	buy     = types.NewValueFromInt(1)
	neutral = types.NewValueFromInt(0)
	sell    = types.NewValueFromInt(-1)
)

func present(values ...types.Value) bool {
	for _, v := range values {
		if v.IsNone() {
			return false
		}
	}

	return true
}

// direction votes buy when a > b and sell when a < b.
func direction(a, b types.Value) types.Value {
	c, ok := a.Cmp(b)
	if !ok {
		return types.None()
	}

	switch {
	case c > 0:
		return buy
	case c < 0:
		return sell
	default:
		return neutral
	}
}

// priceAbove votes buy while the price is above the average.
func priceAbove(price, average indicator.Series) func(index int) types.Value {
	return func(index int) types.Value {
		return direction(price.Value(index), average.Value(index))
	}
}

// threshold votes buy above high and sell below low.
func threshold(v types.Value, low, high float64) types.Value {
	if v.IsNone() {
		return types.None()
	}

	switch {
	case v.GreaterThan(types.NewValue(high)):
		return buy
	case v.LessThan(types.NewValue(low)):
		return sell
	default:
		return neutral
	}
}

// bounded votes buy when the series is below low and rising, and sell when it
// is above high and falling.
func bounded(s indicator.Series, low, high float64) func(index int) types.Value {
	lower := types.NewValue(low)
	upper := types.NewValue(high)

	return func(index int) types.Value {
		v, prev := s.Value(index), s.Value(index-1)
		if !present(v, prev) {
			return types.None()
		}

		switch {
		case v.LessThan(lower) && v.GreaterThan(prev):
			return buy
		case v.GreaterThan(upper) && v.LessThan(prev):
			return sell
		default:
			return neutral
		}
	}
}

var (
	oversold   = types.NewValue(20)
	overbought = types.NewValue(80)
)

// stochasticVote votes buy when both lines are oversold and K is above D, and
// sell when both are overbought and K is below D.
func stochasticVote(k, d indicator.Series, index int) types.Value {
	kv, dv := k.Value(index), d.Value(index)
	if !present(kv, dv) {
		return types.None()
	}

	switch {
	case kv.LessThan(oversold) && dv.LessThan(oversold) && kv.GreaterThan(dv):
		return buy
	case kv.GreaterThan(overbought) && dv.GreaterThan(overbought) && kv.LessThan(dv):
		return sell
	default:
		return neutral
	}
}

var trending = types.NewValue(20)

// adxVote votes on a DI cross while the ADX shows a trend.
func adxVote(dmi *indicator.DMI, index int) types.Value {
	adx := dmi.Value(index)
	plus, minus := dmi.PlusDI.Value(index), dmi.MinusDI.Value(index)
	prevPlus, prevMinus := dmi.PlusDI.Value(index-1), dmi.MinusDI.Value(index-1)

	if !present(adx, plus, minus, prevPlus, prevMinus) {
		return types.None()
	}

	if !adx.GreaterThan(trending) {
		return neutral
	}

	switch {
	case prevPlus.LessThan(prevMinus) && plus.GreaterThan(minus):
		return buy
	case prevPlus.GreaterThan(prevMinus) && plus.LessThan(minus):
		return sell
	default:
		return neutral
	}
}

// awesomeVote votes on a zero line cross or a saucer.
func awesomeVote(ao indicator.Series, index int) types.Value {
	v, prev, prev2 := ao.Value(index), ao.Value(index-1), ao.Value(index-2)
	if !present(v, prev) {
		return types.None()
	}

	zero := types.NewValue(0)
	positive := v.GreaterThan(zero) && prev.GreaterThan(zero)
	negative := v.LessThan(zero) && prev.LessThan(zero)

	switch {
	case v.GreaterThan(zero) && prev.LessThan(zero):
		return buy
	case positive && v.GreaterThan(prev) && prev2.GreaterThan(prev):
		return buy
	case v.LessThan(zero) && prev.GreaterThan(zero):
		return sell
	case negative && v.LessThan(prev) && prev2.LessThan(prev):
		return sell
	default:
		return neutral
	}
}

// bullBearVote votes buy when bear power is negative but recovering, and sell
// when bull power is positive but fading.
func bullBearVote(bbp *indicator.BullBearPower, index int) types.Value {
	bull, prevBull := bbp.Bull.Value(index), bbp.Bull.Value(index-1)
	bear, prevBear := bbp.Bear.Value(index), bbp.Bear.Value(index-1)
	if !present(bull, prevBull, bear, prevBear) {
		return types.None()
	}

	zero := types.NewValue(0)

	switch {
	case bear.LessThan(zero) && bear.GreaterThan(prevBear):
		return buy
	case bull.GreaterThan(zero) && bull.LessThan(prevBull):
		return sell
	default:
		return neutral
	}
}

// ichimokuVote votes buy when the close breaks above the conversion line
// inside a bullish cloud below the base line, and sell on the mirror image.
func ichimokuVote(cloud *indicator.Ichimoku, price indicator.Series, index int) types.Value {
	leadA, leadB := cloud.LeadA.Value(index), cloud.LeadB.Value(index)
	base, conversion := cloud.Base.Value(index), cloud.Conversion.Value(index)
	closing, prevClose := price.Value(index), price.Value(index-1)

	if !present(leadA, leadB, base, conversion, closing, prevClose) {
		return types.None()
	}

	switch {
	case leadA.GreaterThan(leadB) && closing.GreaterThan(leadA) && closing.LessThan(base) &&
		prevClose.LessThan(conversion) && closing.GreaterThan(conversion):
		return buy
	case leadB.GreaterThan(leadA) && closing.LessThan(leadB) && closing.GreaterThan(base) &&
		prevClose.GreaterThan(conversion) && closing.LessThan(conversion):
		return sell
	default:
		return neutral
	}
}
