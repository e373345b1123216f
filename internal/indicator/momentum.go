package indicator

// NewMomentum creates price - price[period], usually with 10.
func NewMomentum(input Series, period int) (*Difference, error) {
	if err := validatePeriod("momentum", period); err != nil {
		return nil, err
	}

	return newDifference(input, period, differenceChange), nil
}
