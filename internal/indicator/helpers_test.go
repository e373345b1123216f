package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

// none marks an expected absent result in assertSeries.
var none any = nil

func source(xs ...float64) *Node[types.Value] {
	n := NewIdentity(nil)
	for _, x := range xs {
		n.Add(types.NewValue(x))
	}

	return n
}

func bar(open, high, low, closing, volume float64) types.Bar {
	return types.Bar{
		Open:   decimal.NewFromFloat(open),
		High:   decimal.NewFromFloat(high),
		Low:    decimal.NewFromFloat(low),
		Close:  decimal.NewFromFloat(closing),
		Volume: decimal.NewFromFloat(volume),
	}
}

// flatBar has open, high, low and close all equal to price.
func flatBar(price float64) types.Bar {
	return bar(price, price, price, price, 1)
}

func barSource(bars ...types.Bar) *Node[types.Bar] {
	n := NewBarIdentity(nil)
	for _, b := range bars {
		n.Add(b)
	}

	return n
}

// assertSeries compares every result with expected, where nil means absent.
func assertSeries(t *testing.T, expected []any, s Series) {
	t.Helper()

	if !assert.Equal(t, len(expected), s.Len(), "series length") {
		return
	}

	for i, want := range expected {
		got := s.Value(i)
		if want == nil {
			assert.True(t, got.IsNone(), "index %d: expected absent, got %s", i, got)

			continue
		}

		if assert.True(t, got.IsSome(), "index %d: expected %v, got absent", i, want) {
			assert.InDelta(t, toFloat(want), got.Float64(), tolerance, "index %d", i)
		}
	}
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case float64:
		return x
	default:
		panic("unsupported expected value")
	}
}
