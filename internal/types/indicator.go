package types

import "strconv"

type IndicatorType string

const (
	IndicatorTypeSMA                  IndicatorType = "sma"
	IndicatorTypeEMA                  IndicatorType = "ema"
	IndicatorTypeHMA                  IndicatorType = "hma"
	IndicatorTypeVWMA                 IndicatorType = "vwma"
	IndicatorTypeRSI                  IndicatorType = "rsi"
	IndicatorTypeMACD                 IndicatorType = "macd"
	IndicatorTypeBollingerBands       IndicatorType = "bollinger_bands"
	IndicatorTypeStochastic           IndicatorType = "stochastic"
	IndicatorTypeStochasticOscillator IndicatorType = "stochastic_oscillator"
	IndicatorTypeStochasticRSI        IndicatorType = "stochastic_rsi"
	IndicatorTypeWilliamsR            IndicatorType = "williams_r"
	IndicatorTypeADX                  IndicatorType = "adx"
	IndicatorTypeCCI                  IndicatorType = "cci"
	IndicatorTypeAO                   IndicatorType = "ao"
	IndicatorTypeATR                  IndicatorType = "atr"
	IndicatorTypeTrueRange            IndicatorType = "true_range"
	IndicatorTypeIchimoku             IndicatorType = "ichimoku"
	IndicatorTypeKDJ                  IndicatorType = "kdj"
	IndicatorTypeMomentum             IndicatorType = "momentum"
	IndicatorTypeBullBearPower        IndicatorType = "bull_bear_power"
	IndicatorTypeUltimateOscillator   IndicatorType = "ultimate_oscillator"
	IndicatorTypeSuperTrend           IndicatorType = "super_trend"
	IndicatorTypeParabolicSAR         IndicatorType = "parabolic_sar"
	IndicatorTypeDonchian             IndicatorType = "donchian"
	IndicatorTypeRangeFilter          IndicatorType = "range_filter"
	IndicatorTypeWaddahAttar          IndicatorType = "waddah_attar"
)

// Named builds a registry key for a parameterized indicator, e.g. "ema_20".
func Named(t IndicatorType, period int) IndicatorType {
	return IndicatorType(string(t) + "_" + strconv.Itoa(period))
}
