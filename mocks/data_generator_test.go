package mocks

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BarGeneratorTestSuite struct {
	suite.Suite
}

func TestBarGeneratorSuite(t *testing.T) {
	suite.Run(t, new(BarGeneratorTestSuite))
}

func (suite *BarGeneratorTestSuite) TestGenerate() {
	config := DefaultGeneratorConfig()
	config.Count = 100

	bars := NewBarGenerator(42).Generate(config)
	suite.Len(bars, 100)

	for i, bar := range bars {
		suite.Equal(config.Symbol, bar.Symbol)
		suite.True(bar.Low.IsPositive(), "low at %d", i)
		suite.True(bar.High.GreaterThanOrEqual(bar.Low), "high < low at %d", i)
		suite.True(bar.High.GreaterThanOrEqual(bar.Close), "high < close at %d", i)
		suite.True(bar.Low.LessThanOrEqual(bar.Open), "low > open at %d", i)

		if i > 0 {
			suite.Equal(config.Interval, bar.Time.Sub(bars[i-1].Time))
		}
	}
}

func (suite *BarGeneratorTestSuite) TestReproducible() {
	first := GenerateBars(50)
	second := GenerateBars(50)

	for i := range first {
		suite.True(first[i].Close.Equal(second[i].Close), "close differs at %d", i)
	}
}

func (suite *BarGeneratorTestSuite) TestDifferentSeeds() {
	config := DefaultGeneratorConfig()
	config.Count = 10

	a := NewBarGenerator(1).Generate(config)
	b := NewBarGenerator(2).Generate(config)

	differs := false
	for i := range a {
		if !a[i].Close.Equal(b[i].Close) {
			differs = true
		}
	}

	suite.True(differs)
}
