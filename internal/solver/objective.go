package solver

import (
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// ObjectiveFunc adapts a function to an Objective with a fixed direction.
type ObjectiveFunc struct {
	Toward Direction
	Func   func(index int) Side
}

func (o ObjectiveFunc) Direction() Direction {
	return o.Toward
}

func (o ObjectiveFunc) Evaluate(index int) Side {
	return o.Func(index)
}

// compare maps v against level: beyond the level in the given direction is
// Over, equal is Exact and anything else, absent included, is Short.
func compare(v, level types.Value, direction Direction) Side {
	c, ok := v.Cmp(level)
	if !ok {
		return Short
	}

	if direction == Down {
		c = -c
	}

	switch {
	case c > 0:
		return Over
	case c == 0:
		return Exact
	default:
		return Short
	}
}

// CrossAbove is reached when series rises to level.
func CrossAbove(series indicator.Series, level types.Value) Objective {
	return ObjectiveFunc{Toward: Up, Func: func(index int) Side {
		return compare(series.Value(index), level, Up)
	}}
}

// CrossBelow is reached when series falls to level.
func CrossBelow(series indicator.Series, level types.Value) Objective {
	return ObjectiveFunc{Toward: Down, Func: func(index int) Side {
		return compare(series.Value(index), level, Down)
	}}
}

// VelocityAbove is reached when series[i] - series[i-1] rises to threshold.
func VelocityAbove(series indicator.Series, threshold types.Value) Objective {
	return ObjectiveFunc{Toward: Up, Func: func(index int) Side {
		velocity := series.Value(index).Sub(series.Value(index - 1))

		return compare(velocity, threshold, Up)
	}}
}

// ActionSource reports a categorical action per index, like the technical ratings.
type ActionSource interface {
	Len() int
	Action(index int) types.Action
}

type reachAction struct {
	source    ActionSource
	target    types.Action
	direction Direction
}

// ReachAction is reached when the action at the probed index moves to target
// or beyond it. The direction is taken from the action at construction, so a
// stronger buy than now is searched upward and a stronger sell downward.
// Reaching a category is never Exact, which makes the solver narrow down to
// the smallest price move that flips it.
func ReachAction(source ActionSource, target types.Action) Objective {
	direction := Up
	if source.Action(source.Len()-1) > target {
		direction = Down
	}

	return &reachAction{source: source, target: target, direction: direction}
}

func (r *reachAction) Direction() Direction {
	return r.direction
}

func (r *reachAction) Evaluate(index int) Side {
	current := r.source.Action(index)

	if r.direction == Up && current >= r.target {
		return Over
	}

	if r.direction == Down && current <= r.target {
		return Over
	}

	return Short
}
