package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one OHLCV sample for a fixed time interval.
type Bar struct {
	Time   time.Time       `csv:"time" json:"time"`
	Symbol string          `csv:"symbol" json:"symbol"`
	Open   decimal.Decimal `csv:"open" json:"open"`
	High   decimal.Decimal `csv:"high" json:"high"`
	Low    decimal.Decimal `csv:"low" json:"low"`
	Close  decimal.Decimal `csv:"close" json:"close"`
	Volume decimal.Decimal `csv:"volume" json:"volume"`
}

// WithClose returns a copy of the bar with the close replaced by price. High
// and low are widened so the bar stays consistent.
func (b Bar) WithClose(price decimal.Decimal) Bar {
	b.Close = price
	b.High = decimal.Max(b.High, price)
	b.Low = decimal.Min(b.Low, price)

	return b
}

// HL2 is (high + low) / 2.
func (b Bar) HL2() decimal.Decimal {
	return b.High.Add(b.Low).Div(decimal.NewFromInt(2))
}

// HLC3 is (high + low + close) / 3.
func (b Bar) HLC3() decimal.Decimal {
	return b.High.Add(b.Low).Add(b.Close).Div(decimal.NewFromInt(3))
}
