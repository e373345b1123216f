package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// window keeps the last size values of a source ending at index end, together
// with running aggregates. Appending is O(1) amortized. Replacing the newest
// value is O(1) for the sums and O(size) for the extremes. Moving to any other
// index rebuilds the window from the source.
type window struct {
	size  int
	buf   []types.Value
	end   int
	count int

	sum     decimal.Decimal
	sumSq   decimal.Decimal
	missing int

	squares  bool
	extremes bool
	maxq     []int
	minq     []int
}

func newWindow(size int) *window {
	return &window{size: size, buf: make([]types.Value, size), end: -1}
}

func (w *window) withSquares() *window {
	w.squares = true

	return w
}

func (w *window) withExtremes() *window {
	w.extremes = true

	return w
}

// advance moves the window so that it ends at index, reading values with load.
func (w *window) advance(index int, load func(index int) types.Value) {
	switch {
	case w.count > 0 && index == w.end:
		w.replace(index, load(index))
	case index == w.end+1:
		w.push(index, load(index))
	default:
		w.reset()

		for i := max(0, index-w.size+1); i <= index; i++ {
			w.push(i, load(i))
		}
	}
}

func (w *window) at(index int) types.Value {
	return w.buf[index%w.size]
}

func (w *window) oldest() int {
	return w.end - w.count + 1
}

func (w *window) reset() {
	w.end = -1
	w.count = 0
	w.sum = decimal.Zero
	w.sumSq = decimal.Zero
	w.missing = 0
	w.maxq = w.maxq[:0]
	w.minq = w.minq[:0]
}

func (w *window) push(index int, v types.Value) {
	if w.count == w.size {
		w.evict()
	}

	w.buf[index%w.size] = v
	w.end = index
	w.count++
	w.include(v)

	if w.extremes {
		w.pushExtreme(index, v)
	}
}

func (w *window) evict() {
	oldest := w.oldest()
	w.exclude(w.at(oldest))
	w.count--

	if len(w.maxq) > 0 && w.maxq[0] == oldest {
		w.maxq = w.maxq[1:]
	}

	if len(w.minq) > 0 && w.minq[0] == oldest {
		w.minq = w.minq[1:]
	}
}

func (w *window) replace(index int, v types.Value) {
	w.exclude(w.at(index))
	w.buf[index%w.size] = v
	w.include(v)

	if w.extremes {
		w.maxq = w.maxq[:0]
		w.minq = w.minq[:0]

		for i := w.oldest(); i <= w.end; i++ {
			w.pushExtreme(i, w.at(i))
		}
	}
}

func (w *window) include(v types.Value) {
	d, ok := v.Decimal()
	if !ok {
		w.missing++

		return
	}

	w.sum = w.sum.Add(d)
	if w.squares {
		w.sumSq = w.sumSq.Add(d.Mul(d))
	}
}

func (w *window) exclude(v types.Value) {
	d, ok := v.Decimal()
	if !ok {
		w.missing--

		return
	}

	w.sum = w.sum.Sub(d)
	if w.squares {
		w.sumSq = w.sumSq.Sub(d.Mul(d))
	}
}

// pushExtreme keeps maxq decreasing and minq increasing by value.
func (w *window) pushExtreme(index int, v types.Value) {
	d, ok := v.Decimal()
	if !ok {
		return
	}

	for len(w.maxq) > 0 && w.at(w.maxq[len(w.maxq)-1]).Unwrap().LessThanOrEqual(d) {
		w.maxq = w.maxq[:len(w.maxq)-1]
	}

	w.maxq = append(w.maxq, index)

	for len(w.minq) > 0 && w.at(w.minq[len(w.minq)-1]).Unwrap().GreaterThanOrEqual(d) {
		w.minq = w.minq[:len(w.minq)-1]
	}

	w.minq = append(w.minq, index)
}

// ready reports whether the window can produce a value. Partial windows are
// accepted when warmUp is set. Any absent value in the window blocks output.
func (w *window) ready(warmUp bool) bool {
	if w.count == 0 || w.missing > 0 {
		return false
	}

	return warmUp || w.count == w.size
}

func (w *window) mean() decimal.Decimal {
	return w.sum.Div(decimal.NewFromInt(int64(w.count)))
}

// variance is the population variance of the window.
func (w *window) variance() decimal.Decimal {
	n := decimal.NewFromInt(int64(w.count))
	mean := w.sum.Div(n)

	v := w.sumSq.Div(n).Sub(mean.Mul(mean))
	if v.IsNegative() {
		return decimal.Zero
	}

	return v
}

func (w *window) highest() decimal.Decimal {
	return w.at(w.maxq[0]).Unwrap()
}

func (w *window) lowest() decimal.Decimal {
	return w.at(w.minq[0]).Unwrap()
}

// each visits the window from oldest to newest. k starts at 1 for the oldest.
func (w *window) each(f func(k int, v decimal.Decimal)) {
	k := 0
	for i := w.oldest(); i <= w.end; i++ {
		k++
		f(k, w.at(i).Unwrap())
	}
}
