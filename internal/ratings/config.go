package ratings

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// StochasticConfig configures the smoothed stochastic oscillator.
type StochasticConfig struct {
	Period int `yaml:"period" json:"period" jsonschema:"title=Period,default=14" validate:"min=1"`
	K      int `yaml:"k" json:"k" jsonschema:"title=K smoothing,default=3" validate:"min=1"`
	D      int `yaml:"d" json:"d" jsonschema:"title=D smoothing,default=3" validate:"min=1"`
}

// StochasticRSIConfig configures the stochastic RSI.
type StochasticRSIConfig struct {
	K          int `yaml:"k" json:"k" jsonschema:"title=K smoothing,default=3" validate:"min=1"`
	D          int `yaml:"d" json:"d" jsonschema:"title=D smoothing,default=3" validate:"min=1"`
	RSI        int `yaml:"rsi" json:"rsi" jsonschema:"title=RSI length,default=14" validate:"min=1"`
	Stochastic int `yaml:"stochastic" json:"stochastic" jsonschema:"title=Stochastic length,default=14" validate:"min=1"`
}

// MACDConfig configures the MACD.
type MACDConfig struct {
	Fast   int `yaml:"fast" json:"fast" jsonschema:"title=Fast length,default=12" validate:"min=1,ltfield=Slow"`
	Slow   int `yaml:"slow" json:"slow" jsonschema:"title=Slow length,default=26" validate:"min=1"`
	Signal int `yaml:"signal" json:"signal" jsonschema:"title=Signal length,default=9" validate:"min=1"`
}

// AwesomeConfig configures the awesome oscillator.
type AwesomeConfig struct {
	Fast int `yaml:"fast" json:"fast" jsonschema:"title=Fast length,default=5" validate:"min=1,ltfield=Slow"`
	Slow int `yaml:"slow" json:"slow" jsonschema:"title=Slow length,default=34" validate:"min=1"`
}

// UltimateConfig configures the ultimate oscillator.
type UltimateConfig struct {
	Fast   int `yaml:"fast" json:"fast" jsonschema:"title=Fast length,default=7" validate:"min=1"`
	Middle int `yaml:"middle" json:"middle" jsonschema:"title=Middle length,default=14" validate:"min=1"`
	Slow   int `yaml:"slow" json:"slow" jsonschema:"title=Slow length,default=28" validate:"min=1"`
}

// RangeFilterConfig configures the range filter.
type RangeFilterConfig struct {
	Period     int     `yaml:"period" json:"period" jsonschema:"title=Period,default=100" validate:"min=1"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier" jsonschema:"title=Range multiplier,default=3" validate:"gt=0"`
}

// WaddahAttarConfig configures the Waddah Attar explosion.
type WaddahAttarConfig struct {
	Fast       int     `yaml:"fast" json:"fast" jsonschema:"title=Fast length,default=20" validate:"min=1,ltfield=Slow"`
	Slow       int     `yaml:"slow" json:"slow" jsonschema:"title=Slow length,default=40" validate:"min=1"`
	Signal     int     `yaml:"signal" json:"signal" jsonschema:"title=Signal length,default=9" validate:"min=1"`
	ATR        int     `yaml:"atr" json:"atr" jsonschema:"title=ATR length,default=14" validate:"min=1"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier" jsonschema:"title=Sensitivity,default=150" validate:"gt=0"`
}

// DefaultRangeFilterConfig returns a 100 bar filter with a 3x range.
func DefaultRangeFilterConfig() *RangeFilterConfig {
	return &RangeFilterConfig{Period: 100, Multiplier: 3}
}

// DefaultWaddahAttarConfig returns the 20/40/9 MACD with a 14 bar ATR.
func DefaultWaddahAttarConfig() *WaddahAttarConfig {
	return &WaddahAttarConfig{Fast: 20, Slow: 40, Signal: 9, ATR: 14, Multiplier: 150}
}

// Config holds the lookbacks of every indicator that takes part in the rating.
type Config struct {
	MAPeriods          []int                    `yaml:"ma_periods" json:"ma_periods" jsonschema:"title=Moving average lengths,description=Each length adds one SMA and one EMA vote" validate:"required,min=1,dive,min=1"`
	Ichimoku           indicator.IchimokuConfig `yaml:"ichimoku" json:"ichimoku" jsonschema:"title=Ichimoku cloud"`
	VWMA               int                      `yaml:"vwma" json:"vwma" jsonschema:"title=VWMA length,default=20" validate:"min=1"`
	HMA                int                      `yaml:"hma" json:"hma" jsonschema:"title=HMA length,default=9" validate:"min=1"`
	RSI                int                      `yaml:"rsi" json:"rsi" jsonschema:"title=RSI length,default=14" validate:"min=1"`
	Stochastic         StochasticConfig         `yaml:"stochastic" json:"stochastic"`
	CCI                int                      `yaml:"cci" json:"cci" jsonschema:"title=CCI length,default=20" validate:"min=1"`
	ADX                int                      `yaml:"adx" json:"adx" jsonschema:"title=ADX length,default=14" validate:"min=1"`
	AwesomeOscillator  AwesomeConfig            `yaml:"awesome_oscillator" json:"awesome_oscillator"`
	Momentum           int                      `yaml:"momentum" json:"momentum" jsonschema:"title=Momentum length,default=10" validate:"min=1"`
	MACD               MACDConfig               `yaml:"macd" json:"macd"`
	StochasticRSI      StochasticRSIConfig      `yaml:"stochastic_rsi" json:"stochastic_rsi"`
	WilliamsR          int                      `yaml:"williams_r" json:"williams_r" jsonschema:"title=Williams %R length,default=14" validate:"min=1"`
	BullBearPower      int                      `yaml:"bull_bear_power" json:"bull_bear_power" jsonschema:"title=Bull bear power length,default=13" validate:"min=1"`
	UltimateOscillator UltimateConfig           `yaml:"ultimate_oscillator" json:"ultimate_oscillator"`
	// RangeFilter and WaddahAttar are computed alongside the rating when set
	// but do not vote.
	RangeFilter *RangeFilterConfig `yaml:"range_filter,omitempty" json:"range_filter,omitempty" jsonschema:"title=Range filter"`
	WaddahAttar *WaddahAttarConfig `yaml:"waddah_attar,omitempty" json:"waddah_attar,omitempty" jsonschema:"title=Waddah Attar explosion"`
}

// DefaultConfig returns the classic technical ratings setup.
func DefaultConfig() Config {
	return Config{
		MAPeriods:          []int{10, 20, 30, 50, 100, 200},
		Ichimoku:           indicator.DefaultIchimokuConfig(),
		VWMA:               20,
		HMA:                9,
		RSI:                14,
		Stochastic:         StochasticConfig{Period: 14, K: 3, D: 3},
		CCI:                20,
		ADX:                14,
		AwesomeOscillator:  AwesomeConfig{Fast: 5, Slow: 34},
		Momentum:           10,
		MACD:               MACDConfig{Fast: 12, Slow: 26, Signal: 9},
		StochasticRSI:      StochasticRSIConfig{K: 3, D: 3, RSI: 14, Stochastic: 14},
		WilliamsR:          14,
		BullBearPower:      13,
		UltimateOscillator: UltimateConfig{Fast: 7, Middle: 14, Slow: 28},
	}
}

// Validate checks every lookback.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid ratings config", err)
	}

	return nil
}
