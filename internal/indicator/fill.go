package indicator

import "github.com/rxtech-lab/argo-indicator/internal/types"

// NewGapFill forward-fills the last present value. It stays absent until the
// first present value appears.
func NewGapFill(input Series) *Node[types.Value] {
	n := newNode[types.Value]()
	n.calculate = func(index int) types.Value {
		if v := n.source[index]; v.IsSome() {
			return v
		}

		return n.Value(index - 1)
	}
	link(n, Follow(input))

	return n
}

// NewShift displaces a series forward: result[i] = source[i-bars].
func NewShift(input Series, bars int) (*Node[types.Value], error) {
	if bars < 0 {
		return nil, validatePeriod("shift", bars)
	}

	return newShift(input, bars), nil
}

func newShift(input Series, bars int) *Node[types.Value] {
	n := newNode[types.Value]()
	n.calculate = func(index int) types.Value {
		return sourceValue(n, index-bars)
	}
	link(n, Follow(input))

	return n
}

// NewRecurrence creates a node where result[i] = step(result[i-1], source[i]).
// Whenever the previous result is absent, result[i] = seed(source[i]).
func NewRecurrence(input Series, seed func(x types.Value) types.Value, step func(prev, x types.Value) types.Value) *Node[types.Value] {
	n := newNode[types.Value]()
	n.calculate = func(index int) types.Value {
		x := n.source[index]

		prev := n.Value(index - 1)
		if prev.IsNone() {
			return seed(x)
		}

		return step(prev, x)
	}
	link(n, Follow(input))

	return n
}
