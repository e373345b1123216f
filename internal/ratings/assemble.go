package ratings

import (
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// assembly builds indicators until the first construction error.
type assembly struct {
	r   *TechnicalRatings
	err error
}

func register[T indicator.Indicator](a *assembly, name types.IndicatorType, build func() (T, error)) T {
	var zero T
	if a.err != nil {
		return zero
	}

	ind, err := build()
	if err != nil {
		a.err = err

		return zero
	}

	a.r.Own(ind)
	if err := a.r.registry.Register(name, ind); err != nil {
		a.err = err

		return zero
	}

	return ind
}

func (a *assembly) vote(name types.IndicatorType, group Group, f func(index int) types.Value) {
	if a.err != nil {
		return
	}

	a.r.voters = append(a.r.voters, voter{name: name, group: group, vote: f})
}

func (r *TechnicalRatings) assemble(cfg Config) error {
	a := &assembly{r: r}
	bars := r.Bars()
	price := r.Anchor()

	for _, period := range cfg.MAPeriods {
		name := types.Named(types.IndicatorTypeSMA, period)
		sma := register(a, name, func() (*indicator.Aggregate, error) {
			return indicator.NewSMA(price, period)
		})
		a.vote(name, GroupMovingAverages, priceAbove(price, sma))
	}

	for _, period := range cfg.MAPeriods {
		name := types.Named(types.IndicatorTypeEMA, period)
		ema := register(a, name, func() (*indicator.ExpAverage, error) {
			return indicator.NewEMA(price, period)
		})
		a.vote(name, GroupMovingAverages, priceAbove(price, ema))
	}

	ichimoku := register(a, types.IndicatorTypeIchimoku, func() (*indicator.Ichimoku, error) {
		return indicator.NewIchimoku(bars, cfg.Ichimoku)
	})
	a.vote(types.IndicatorTypeIchimoku, GroupMovingAverages, func(index int) types.Value {
		return ichimokuVote(ichimoku, price, index)
	})

	vwmaName := types.Named(types.IndicatorTypeVWMA, cfg.VWMA)
	vwma := register(a, vwmaName, func() (*indicator.VWMA, error) {
		return indicator.NewVWMA(bars, cfg.VWMA)
	})
	a.vote(vwmaName, GroupMovingAverages, priceAbove(price, vwma))

	hmaName := types.Named(types.IndicatorTypeHMA, cfg.HMA)
	hma := register(a, hmaName, func() (*indicator.HMA, error) {
		return indicator.NewHMA(price, cfg.HMA)
	})
	a.vote(hmaName, GroupMovingAverages, priceAbove(price, hma))

	rsiName := types.Named(types.IndicatorTypeRSI, cfg.RSI)
	rsi := register(a, rsiName, func() (*indicator.RSI, error) {
		return indicator.NewRSI(price, cfg.RSI)
	})
	a.vote(rsiName, GroupOscillators, bounded(rsi, 30, 70))

	stoch := register(a, types.IndicatorTypeStochasticOscillator, func() (*indicator.StochasticOscillator, error) {
		return indicator.NewStochasticOscillator(bars, cfg.Stochastic.Period, cfg.Stochastic.K, cfg.Stochastic.D)
	})
	a.vote(types.IndicatorTypeStochasticOscillator, GroupOscillators, func(index int) types.Value {
		return stochasticVote(stoch.K, stoch.D, index)
	})

	cciName := types.Named(types.IndicatorTypeCCI, cfg.CCI)
	cci := register(a, cciName, func() (*indicator.CCI, error) {
		return indicator.NewCCI(price, cfg.CCI)
	})
	a.vote(cciName, GroupOscillators, bounded(cci, -100, 100))

	adxName := types.Named(types.IndicatorTypeADX, cfg.ADX)
	adx := register(a, adxName, func() (*indicator.DMI, error) {
		return indicator.NewADX(bars, cfg.ADX)
	})
	a.vote(adxName, GroupOscillators, func(index int) types.Value {
		return adxVote(adx, index)
	})

	ao := register(a, types.IndicatorTypeAO, func() (*indicator.AwesomeOscillator, error) {
		return indicator.NewAwesomeOscillator(bars, cfg.AwesomeOscillator.Fast, cfg.AwesomeOscillator.Slow)
	})
	a.vote(types.IndicatorTypeAO, GroupOscillators, func(index int) types.Value {
		return awesomeVote(ao, index)
	})

	momentumName := types.Named(types.IndicatorTypeMomentum, cfg.Momentum)
	momentum := register(a, momentumName, func() (*indicator.Difference, error) {
		return indicator.NewMomentum(price, cfg.Momentum)
	})
	a.vote(momentumName, GroupOscillators, func(index int) types.Value {
		return direction(momentum.Value(index), momentum.Value(index-1))
	})

	macd := register(a, types.IndicatorTypeMACD, func() (*indicator.MACD, error) {
		return indicator.NewMACD(price, cfg.MACD.Fast, cfg.MACD.Slow, cfg.MACD.Signal)
	})
	a.vote(types.IndicatorTypeMACD, GroupOscillators, func(index int) types.Value {
		return direction(macd.Value(index), macd.Signal.Value(index))
	})

	stochRSI := register(a, types.IndicatorTypeStochasticRSI, func() (*indicator.StochasticRSI, error) {
		c := cfg.StochasticRSI

		return indicator.NewStochasticRSI(price, c.RSI, c.Stochastic, c.K, c.D)
	})
	a.vote(types.IndicatorTypeStochasticRSI, GroupOscillators, func(index int) types.Value {
		return stochasticVote(stochRSI.K, stochRSI.D, index)
	})

	williamsName := types.Named(types.IndicatorTypeWilliamsR, cfg.WilliamsR)
	williams := register(a, williamsName, func() (*indicator.WilliamsR, error) {
		return indicator.NewWilliamsR(bars, cfg.WilliamsR)
	})
	a.vote(williamsName, GroupOscillators, bounded(williams, -80, -20))

	bbp := register(a, types.IndicatorTypeBullBearPower, func() (*indicator.BullBearPower, error) {
		return indicator.NewBullBearPower(bars, cfg.BullBearPower)
	})
	a.vote(types.IndicatorTypeBullBearPower, GroupOscillators, func(index int) types.Value {
		return bullBearVote(bbp, index)
	})

	uo := register(a, types.IndicatorTypeUltimateOscillator, func() (*indicator.UltimateOscillator, error) {
		u := cfg.UltimateOscillator

		return indicator.NewUltimateOscillator(bars, u.Fast, u.Middle, u.Slow)
	})
	a.vote(types.IndicatorTypeUltimateOscillator, GroupOscillators, func(index int) types.Value {
		return threshold(uo.Value(index), 30, 70)
	})

	if c := cfg.RangeFilter; c != nil {
		register(a, types.IndicatorTypeRangeFilter, func() (*indicator.RangeFilter, error) {
			return indicator.NewRangeFilter(bars, c.Period, decimal.NewFromFloat(c.Multiplier))
		})
	}

	if c := cfg.WaddahAttar; c != nil {
		register(a, types.IndicatorTypeWaddahAttar, func() (*indicator.WaddahAttar, error) {
			return indicator.NewWaddahAttar(bars, c.Fast, c.Slow, c.Signal, c.ATR, decimal.NewFromFloat(c.Multiplier))
		})
	}

	return a.err
}
