package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BarTestSuite struct {
	suite.Suite
}

func TestBarSuite(t *testing.T) {
	suite.Run(t, new(BarTestSuite))
}

func newBar(high, low, close float64) Bar {
	return Bar{
		Symbol: "BTCUSDT",
		Open:   decimal.NewFromFloat(close),
		High:   decimal.NewFromFloat(high),
		Low:    decimal.NewFromFloat(low),
		Close:  decimal.NewFromFloat(close),
		Volume: decimal.NewFromInt(10),
	}
}

func (suite *BarTestSuite) TestWithCloseInsideRange() {
	bar := newBar(110, 90, 100).WithClose(decimal.NewFromInt(105))
	suite.True(bar.Close.Equal(decimal.NewFromInt(105)))
	suite.True(bar.High.Equal(decimal.NewFromInt(110)))
	suite.True(bar.Low.Equal(decimal.NewFromInt(90)))
}

func (suite *BarTestSuite) TestWithCloseWidensRange() {
	original := newBar(110, 90, 100)

	up := original.WithClose(decimal.NewFromInt(120))
	suite.True(up.High.Equal(decimal.NewFromInt(120)))
	suite.True(up.Low.Equal(decimal.NewFromInt(90)))

	down := original.WithClose(decimal.NewFromInt(80))
	suite.True(down.Low.Equal(decimal.NewFromInt(80)))
	suite.True(down.High.Equal(decimal.NewFromInt(110)))

	// the receiver is not modified
	suite.True(original.Close.Equal(decimal.NewFromInt(100)))
}

func (suite *BarTestSuite) TestTypicalPrices() {
	bar := newBar(12, 6, 9)
	suite.True(bar.HL2().Equal(decimal.NewFromInt(9)))
	suite.True(bar.HLC3().Equal(decimal.NewFromInt(9)))
}
