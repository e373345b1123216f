package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
)

// Method selects the smoothing used by indicators with a configurable average.
type Method string

const (
	MethodSMA Method = "sma"
	MethodEMA Method = "ema"
	MethodRMA Method = "rma"
	MethodWMA Method = "wma"
	MethodHMA Method = "hma"
)

// Validate reports whether m is a known smoothing method.
func (m Method) Validate() error {
	switch m {
	case MethodSMA, MethodEMA, MethodRMA, MethodWMA, MethodHMA:
		return nil
	default:
		return errors.Newf(errors.ErrCodeInvalidMethod, "unknown smoothing method %q", string(m))
	}
}

// NewMovingAverage creates the average selected by method.
func NewMovingAverage(input Series, method Method, period int) (Indicator, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}

	if err := validatePeriod(string(method), period); err != nil {
		return nil, err
	}

	return newMovingAverage(input, method, period), nil
}

func newMovingAverage(input Series, method Method, period int) Indicator {
	switch method {
	case MethodEMA:
		return newEMA(input, period)
	case MethodRMA:
		return newRMA(input, period)
	case MethodWMA:
		return newWMA(input, period)
	case MethodHMA:
		return newHMA(input, period)
	default:
		return newSMA(input, period)
	}
}

// ExpAverage is an exponential average. The first value is the simple
// average of the first full window, so there is no start-up spike; after that
// result = alpha*x + (1-alpha)*previous. An absent input makes the result
// absent and the average reseeds from the next clean window.
type ExpAverage struct {
	*Node[types.Value]

	period int
	alpha  decimal.Decimal
	seed   *window
}

// NewEMA creates an exponential moving average with alpha = 2/(period+1).
func NewEMA(input Series, period int) (*ExpAverage, error) {
	if err := validatePeriod("EMA", period); err != nil {
		return nil, err
	}

	return newEMA(input, period), nil
}

func newEMA(input Series, period int) *ExpAverage {
	alpha := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(period + 1)))

	return newExpAverage(input, period, alpha)
}

// NewRMA creates Wilder's moving average with alpha = 1/period.
func NewRMA(input Series, period int) (*ExpAverage, error) {
	if err := validatePeriod("RMA", period); err != nil {
		return nil, err
	}

	return newRMA(input, period), nil
}

func newRMA(input Series, period int) *ExpAverage {
	return newExpAverage(input, period, decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(period))))
}

func newExpAverage(input Series, period int, alpha decimal.Decimal) *ExpAverage {
	e := &ExpAverage{
		Node:   newNode[types.Value](),
		period: period,
		alpha:  alpha,
		seed:   newWindow(period),
	}
	keep := decimal.NewFromInt(1).Sub(alpha)
	load := func(index int) types.Value {
		return e.source[index]
	}

	e.calculate = func(index int) types.Value {
		e.seed.advance(index, load)

		prev := e.Value(index - 1)
		if prev.IsNone() {
			if !e.seed.ready(false) {
				return types.None()
			}

			return types.ValueOf(e.seed.mean())
		}

		x, ok := e.source[index].Decimal()
		if !ok {
			return types.None()
		}

		return types.ValueOf(x.Mul(e.alpha).Add(prev.Unwrap().Mul(keep)))
	}
	link(e.Node, Follow(input))

	return e
}

// WMA is a linearly weighted average: the k-th oldest value in the window has
// weight k, normalized by the sum of weights.
type WMA struct {
	*Node[types.Value]

	period int
	window *window
}

// NewWMA creates a weighted moving average.
func NewWMA(input Series, period int) (*WMA, error) {
	if err := validatePeriod("WMA", period); err != nil {
		return nil, err
	}

	return newWMA(input, period), nil
}

func newWMA(input Series, period int) *WMA {
	w := &WMA{Node: newNode[types.Value](), period: period, window: newWindow(period)}
	norm := decimal.NewFromInt(int64(period * (period + 1) / 2))
	load := func(index int) types.Value {
		return w.source[index]
	}

	w.calculate = func(index int) types.Value {
		w.window.advance(index, load)
		if !w.window.ready(false) {
			return types.None()
		}

		total := decimal.Zero
		w.window.each(func(k int, v decimal.Decimal) {
			total = total.Add(v.Mul(decimal.NewFromInt(int64(k))))
		})

		return types.ValueOf(total.Div(norm))
	}
	link(w.Node, Follow(input))

	return w
}

// HMA is the Hull moving average: WMA(sqrt(n)) of 2*WMA(n/2) - WMA(n).
type HMA struct {
	*Composite[types.Value]

	period int
}

// NewHMA creates a Hull moving average.
func NewHMA(input Series, period int) (*HMA, error) {
	if err := validatePeriod("HMA", period); err != nil {
		return nil, err
	}

	return newHMA(input, period), nil
}

func newHMA(input Series, period int) *HMA {
	h := &HMA{Composite: newValueComposite(), period: period}
	anchor := h.Anchor()

	half := newWMA(anchor, max(1, period/2))
	full := newWMA(anchor, period)
	raw := join2(half, full, func(a, b types.Value) types.Value {
		return a.Scale(decimal.NewFromInt(2)).Sub(b)
	})
	hull := newWMA(raw, max(1, int(math.Floor(math.Sqrt(float64(period))))))

	h.Own(half, full, raw, hull)
	h.Bind(hull.Value, Follow(input))

	return h
}
