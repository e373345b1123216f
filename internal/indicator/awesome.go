package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// AwesomeOscillator is SMA(hl2, fast) - SMA(hl2, slow).
type AwesomeOscillator struct {
	*Composite[types.Bar]
}

// NewAwesomeOscillator creates an awesome oscillator, usually with 5 and 34.
func NewAwesomeOscillator(input Upstream[types.Bar], fast, slow int) (*AwesomeOscillator, error) {
	if err := validatePeriods("awesome oscillator", fast, slow); err != nil {
		return nil, err
	}

	if fast >= slow {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod,
			"awesome oscillator fast period %d must be shorter than slow period %d", fast, slow)
	}

	return newAwesomeOscillator(input, fast, slow), nil
}

func newAwesomeOscillator(input Upstream[types.Bar], fast, slow int) *AwesomeOscillator {
	a := &AwesomeOscillator{Composite: newBarComposite()}

	median := Project(a.Bars(), FieldHL2)
	fastSMA := newSMA(median, fast)
	slowSMA := newSMA(median, slow)
	ao := join2(fastSMA, slowSMA, subtract)

	a.Own(median, fastSMA, slowSMA, ao)
	a.Bind(ao.Value, input)

	return a
}
