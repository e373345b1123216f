package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

func midpoint(a, b types.Value) types.Value {
	return a.Add(b).Scale(half)
}

// Donchian is the midpoint of the highest high and the lowest low over the
// last period bars.
type Donchian struct {
	*Composite[types.Bar]

	Upper Series
	Lower Series
}

// NewDonchian creates a Donchian channel midline.
func NewDonchian(input Upstream[types.Bar], period int) (*Donchian, error) {
	if err := validatePeriod("Donchian", period); err != nil {
		return nil, err
	}

	return newDonchian(input, period), nil
}

func newDonchian(input Upstream[types.Bar], period int) *Donchian {
	d := &Donchian{Composite: newBarComposite()}
	bars := d.Bars()

	high := Project(bars, FieldHigh)
	low := Project(bars, FieldLow)
	upper := newHighest(high, period)
	lower := newLowest(low, period)
	mid := join2(upper, lower, midpoint)

	d.Upper = upper
	d.Lower = lower
	d.Own(high, low, upper, lower, mid)
	d.Bind(mid.Value, input)

	return d
}

// IchimokuConfig holds the Ichimoku lookbacks.
type IchimokuConfig struct {
	Conversion   int `yaml:"conversion" json:"conversion" validate:"min=1"`
	Base         int `yaml:"base" json:"base" validate:"min=1"`
	SpanB        int `yaml:"span_b" json:"span_b" validate:"min=1"`
	Displacement int `yaml:"displacement" json:"displacement" validate:"min=1"`
}

// DefaultIchimokuConfig returns the classic 9/26/52/26 setup.
func DefaultIchimokuConfig() IchimokuConfig {
	return IchimokuConfig{Conversion: 9, Base: 26, SpanB: 52, Displacement: 26}
}

// Ichimoku is the Ichimoku cloud. The node itself is the base line.
// LeadA and LeadB are shifted forward by displacement-1 bars. Lagging is the
// close, which charts plot displacement-1 bars back.
type Ichimoku struct {
	*Composite[types.Bar]

	Conversion Series
	Base       Series
	LeadA      Series
	LeadB      Series
	Lagging    Series
}

// NewIchimoku creates an Ichimoku cloud.
func NewIchimoku(input Upstream[types.Bar], cfg IchimokuConfig) (*Ichimoku, error) {
	if err := validatePeriods("Ichimoku", cfg.Conversion, cfg.Base, cfg.SpanB, cfg.Displacement); err != nil {
		return nil, err
	}

	return newIchimoku(input, cfg), nil
}

func newIchimoku(input Upstream[types.Bar], cfg IchimokuConfig) *Ichimoku {
	c := &Ichimoku{Composite: newBarComposite()}
	bars := c.Bars()

	conversion := newDonchian(bars, cfg.Conversion)
	base := newDonchian(bars, cfg.Base)
	spanA := join2(conversion, base, midpoint)
	spanB := newDonchian(bars, cfg.SpanB)
	leadA := newShift(spanA, cfg.Displacement-1)
	leadB := newShift(spanB, cfg.Displacement-1)

	c.Conversion = conversion
	c.Base = base
	c.LeadA = leadA
	c.LeadB = leadB
	c.Lagging = c.Anchor()
	c.Own(conversion, base, spanA, spanB, leadA, leadB)
	c.Bind(base.Value, input)

	return c
}
