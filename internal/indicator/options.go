package indicator

import (
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
)

type windowConfig struct {
	warmUp bool
}

// WindowOption configures a windowed aggregate.
type WindowOption func(*windowConfig)

// WithWarmUp makes a windowed aggregate emit values over partial windows
// starting at index 0 instead of waiting for a full window.
func WithWarmUp() WindowOption {
	return func(c *windowConfig) {
		c.warmUp = true
	}
}

func newWindowConfig(opts []WindowOption) windowConfig {
	var c windowConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func validatePeriod(name string, period int) error {
	if period < 1 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "%s period must be a positive integer, got %d", name, period)
	}

	return nil
}

func validatePeriods(name string, periods ...int) error {
	for _, p := range periods {
		if err := validatePeriod(name, p); err != nil {
			return err
		}
	}

	return nil
}

func validateMultiplier(name string, multiplier decimal.Decimal) error {
	if !multiplier.IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidMultiplier, "%s multiplier must be positive, got %s", name, multiplier)
	}

	return nil
}
