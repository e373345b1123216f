package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// BarGenerator generates synthetic OHLCV bars for tests and benchmarks.
type BarGenerator struct {
	rng *rand.Rand
}

// NewBarGenerator creates a generator. Use a fixed seed for reproducible results.
func NewBarGenerator(seed int64) *BarGenerator {
	return &BarGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how bars are generated.
type GeneratorConfig struct {
	// Symbol is the instrument name written into every bar
	Symbol string
	// StartTime is the time of the first bar
	StartTime time.Time
	// Interval is the duration between bars
	Interval time.Duration
	// Count is the number of bars
	Count int
	// InitialPrice is the first open
	InitialPrice float64
	// Volatility is the per-bar standard deviation of returns (0.01 = 1%)
	Volatility float64
	// Trend is the total drift spread across all bars
	Trend float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
	// VolumeVariance is the relative volume spread (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultGeneratorConfig returns a minute-bar configuration with no drift.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:         "BTCUSDT",
		StartTime:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval:       time.Minute,
		Count:          500,
		InitialPrice:   100.0,
		Volatility:     0.002,
		Trend:          0.0,
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generate creates bars following a geometric Brownian motion.
func (g *BarGenerator) Generate(config GeneratorConfig) []types.Bar {
	bars := make([]types.Bar, config.Count)
	price := config.InitialPrice
	at := config.StartTime

	for i := 0; i < config.Count; i++ {
		open := price

		// Box-Muller
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		drift := config.Trend / float64(config.Count)

		closing := open * (1 + config.Volatility*z + drift)
		if closing <= 0 {
			closing = open * 0.99
		}

		high := math.Max(open, closing) + math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		low := math.Min(open, closing) - math.Abs(g.rng.Float64()*config.Volatility*open*0.5)
		if low <= 0 {
			low = math.Min(open, closing) * 0.99
		}

		volume := config.VolumeBase * (1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance)
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		bars[i] = types.Bar{
			Time:   at,
			Symbol: config.Symbol,
			Open:   rounded(open, 4),
			High:   rounded(high, 4),
			Low:    rounded(low, 4),
			Close:  rounded(closing, 4),
			Volume: rounded(volume, 2),
		}

		price = closing
		at = at.Add(config.Interval)
	}

	return bars
}

// GenerateBars generates count bars from the default configuration with seed 42.
func GenerateBars(count int) []types.Bar {
	config := DefaultGeneratorConfig()
	config.Count = count

	return NewBarGenerator(42).Generate(config)
}

func rounded(val float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(val).Round(places)
}
