package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
)

type sarState struct {
	sar     decimal.Decimal
	extreme decimal.Decimal
	factor  decimal.Decimal
	rising  bool
	valid   bool
}

// ParabolicSAR is Wilder's stop and reverse. The first bar is absent and the
// second bar picks the initial trend from the close. The SAR reads whole bars,
// so it has no internal subgraph and its anchor only mirrors the close.
type ParabolicSAR struct {
	*Composite[types.Bar]

	start     decimal.Decimal
	increment decimal.Decimal
	maximum   decimal.Decimal
	states    []sarState
}

// NewParabolicSAR creates a parabolic SAR, usually with 0.02, 0.02, 0.2.
func NewParabolicSAR(input Upstream[types.Bar], start, increment, maximum decimal.Decimal) (*ParabolicSAR, error) {
	for _, m := range []decimal.Decimal{start, increment, maximum} {
		if err := validateMultiplier("parabolic SAR", m); err != nil {
			return nil, err
		}
	}

	p := &ParabolicSAR{
		Composite: newBarComposite(),
		start:     start,
		increment: increment,
		maximum:   maximum,
	}
	p.Bind(p.step, input)

	return p, nil
}

// Rising reports whether the SAR is below price at index.
func (p *ParabolicSAR) Rising(index int) bool {
	return index >= 0 && index < len(p.states) && p.states[index].valid && p.states[index].rising
}

func (p *ParabolicSAR) step(index int) types.Value {
	for len(p.states) <= index {
		p.states = append(p.states, sarState{})
	}

	if index == 0 {
		p.states[0] = sarState{}

		return types.None()
	}

	bar := p.source[index]
	prevBar := p.source[index-1]
	prev := p.states[index-1]

	var s sarState
	if !prev.valid {
		s = sarState{factor: p.start, valid: true}
		if bar.Close.GreaterThan(prevBar.Close) {
			s.rising = true
			s.extreme = bar.High
			s.sar = prevBar.Low
		} else {
			s.extreme = bar.Low
			s.sar = prevBar.High
		}

		p.states[index] = s

		return types.ValueOf(s.sar)
	}

	s = prev
	s.sar = s.sar.Add(s.factor.Mul(s.extreme.Sub(s.sar)))
	reversed := false

	if s.rising && bar.Low.LessThan(s.sar) {
		reversed = true
		s.rising = false
		s.sar = decimal.Max(s.extreme, bar.High)
		s.extreme = bar.Low
		s.factor = p.start
	} else if !s.rising && bar.High.GreaterThan(s.sar) {
		reversed = true
		s.rising = true
		s.sar = decimal.Min(s.extreme, bar.Low)
		s.extreme = bar.High
		s.factor = p.start
	}

	if !reversed {
		if s.rising && bar.High.GreaterThan(s.extreme) {
			s.extreme = bar.High
			s.factor = decimal.Min(s.factor.Add(p.increment), p.maximum)
		} else if !s.rising && bar.Low.LessThan(s.extreme) {
			s.extreme = bar.Low
			s.factor = decimal.Min(s.factor.Add(p.increment), p.maximum)
		}

		// The SAR may not enter the previous two bars' range.
		if s.rising {
			s.sar = decimal.Min(s.sar, prevBar.Low)
			if index > 1 {
				s.sar = decimal.Min(s.sar, p.source[index-2].Low)
			}
		} else {
			s.sar = decimal.Max(s.sar, prevBar.High)
			if index > 1 {
				s.sar = decimal.Max(s.sar, p.source[index-2].High)
			}
		}
	}

	p.states[index] = s

	return types.ValueOf(s.sar)
}
