package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

const (
	minJoinArity = 2
	maxJoinArity = 6
)

// Join combines several series. It has no source of its own: whenever any
// input changes at index i, it recomputes result[i] from the current input
// values. Inputs shorter than i read as absent.
type Join struct {
	base

	inputs    []Series
	calculate func(index int) types.Value
}

// NewJoin creates a join whose result is reducer applied to the input values
// at each index. The slice passed to reducer is reused between calls.
func NewJoin(reducer func(values []types.Value) types.Value, inputs ...Series) (*Join, error) {
	if err := checkArity(len(inputs)); err != nil {
		return nil, err
	}

	return newReducerJoin(reducer, inputs...), nil
}

// NewJoinAt creates a join whose result at index is calculate(index). The
// closure reads the inputs itself, which allows looking at previous indices.
func NewJoinAt(calculate func(index int) types.Value, inputs ...Series) (*Join, error) {
	if err := checkArity(len(inputs)); err != nil {
		return nil, err
	}

	return newJoin(calculate, inputs...), nil
}

func checkArity(n int) error {
	if n < minJoinArity || n > maxJoinArity {
		return errors.Newf(errors.ErrCodeInvalidArity,
			"join expects between %d and %d inputs, got %d", minJoinArity, maxJoinArity, n)
	}

	return nil
}

func newReducerJoin(reducer func(values []types.Value) types.Value, inputs ...Series) *Join {
	scratch := make([]types.Value, len(inputs))

	return newJoin(func(index int) types.Value {
		for k, input := range inputs {
			scratch[k] = input.Value(index)
		}

		return reducer(scratch)
	}, inputs...)
}

func newJoin(calculate func(index int) types.Value, inputs ...Series) *Join {
	j := &Join{inputs: inputs, calculate: calculate}

	length := 0
	for _, input := range inputs {
		length = max(length, input.Len())
	}

	for i := 0; i < length; i++ {
		j.update(i)
	}

	for _, input := range inputs {
		j.follow(input.Subscribe(func(index int, _ types.Value) {
			j.update(index)
		}))
	}

	return j
}

func (j *Join) update(index int) {
	for j.Len() < index {
		j.store(j.Len(), j.calculate(j.Len()))
	}

	j.store(index, j.calculate(index))
}

// join2 is the binary join used inside composites.
func join2(a, b Series, f func(a, b types.Value) types.Value) *Join {
	return newJoin(func(index int) types.Value {
		return f(a.Value(index), b.Value(index))
	}, a, b)
}

func join3(a, b, c Series, f func(a, b, c types.Value) types.Value) *Join {
	return newJoin(func(index int) types.Value {
		return f(a.Value(index), b.Value(index), c.Value(index))
	}, a, b, c)
}

func subtract(a, b types.Value) types.Value {
	return a.Sub(b)
}

func add(a, b types.Value) types.Value {
	return a.Add(b)
}
