// Package ratings reduces a fixed set of indicators over one instrument to a
// five level trading action.
package ratings

import (
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

// Group is the family a vote is averaged in.
type Group string

const (
	GroupMovingAverages Group = "moving_averages"
	GroupOscillators    Group = "oscillators"
)

// Vote is one indicator's opinion at an index: -1 sell, 0 neutral, +1 buy.
// Value is absent while the indicator has no value.
type Vote struct {
	Indicator types.IndicatorType
	Group     Group
	Value     types.Value
}

// Rating is the aggregated opinion at an index.
type Rating struct {
	MovingAverages types.Value
	Oscillators    types.Value
	Summary        types.Value
	Action         types.Action
}

type voter struct {
	name  types.IndicatorType
	group Group
	vote  func(index int) types.Value
}

// TechnicalRatings is a bar composite whose result is the summary score: the
// mean of the moving average group score and the oscillator group score.
// Group scores are means of the present votes. A group without any present
// vote does not take part in the summary.
type TechnicalRatings struct {
	*indicator.Composite[types.Bar]

	voters   []voter
	registry *indicator.RegistryV1
}

// New wires every rated indicator behind one bar anchor. A nil input creates
// a standalone composite fed through Add and Update.
func New(input indicator.Upstream[types.Bar], cfg Config) (*TechnicalRatings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &TechnicalRatings{
		Composite: indicator.NewComposite(func(bar types.Bar) types.Value {
			return types.ValueOf(bar.Close)
		}),
		registry: indicator.NewRegistry(),
	}

	if err := r.assemble(cfg); err != nil {
		r.Dispose()

		return nil, err
	}

	r.Bind(r.summary, input)

	return r, nil
}

// Indicators returns the registry of every rated indicator.
func (r *TechnicalRatings) Indicators() indicator.Registry {
	return r.registry
}

// Votes returns every indicator's vote at index.
func (r *TechnicalRatings) Votes(index int) []Vote {
	votes := make([]Vote, len(r.voters))
	for k, v := range r.voters {
		votes[k] = Vote{Indicator: v.name, Group: v.group, Value: v.vote(index)}
	}

	return votes
}

// Rating returns the group scores, summary score and action at index.
func (r *TechnicalRatings) Rating(index int) Rating {
	ma := r.groupScore(GroupMovingAverages, index)
	osc := r.groupScore(GroupOscillators, index)
	summary := mean(ma, osc)

	return Rating{
		MovingAverages: ma,
		Oscillators:    osc,
		Summary:        summary,
		Action:         types.ActionForValue(summary),
	}
}

// Action returns the action for the summary score at index.
func (r *TechnicalRatings) Action(index int) types.Action {
	return types.ActionForValue(r.Value(index))
}

func (r *TechnicalRatings) summary(index int) types.Value {
	return mean(r.groupScore(GroupMovingAverages, index), r.groupScore(GroupOscillators, index))
}

func (r *TechnicalRatings) groupScore(group Group, index int) types.Value {
	var votes []types.Value

	for _, v := range r.voters {
		if v.group == group {
			votes = append(votes, v.vote(index))
		}
	}

	return mean(votes...)
}

// mean averages the present values, absent when none is present.
func mean(values ...types.Value) types.Value {
	total := decimal.Zero
	count := 0

	for _, v := range values {
		if d, ok := v.Decimal(); ok {
			total = total.Add(d)
			count++
		}
	}

	if count == 0 {
		return types.None()
	}

	return types.ValueOf(total.Div(decimal.NewFromInt(int64(count))))
}
