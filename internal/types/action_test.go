package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ActionTestSuite struct {
	suite.Suite
}

func TestActionSuite(t *testing.T) {
	suite.Run(t, new(ActionTestSuite))
}

func (suite *ActionTestSuite) TestActionForScore() {
	tests := []struct {
		score    string
		expected Action
	}{
		{"0", ActionNeutral},
		{"0.1", ActionNeutral},
		{"-0.1", ActionNeutral},
		{"0.11", ActionBuy},
		{"-0.11", ActionSell},
		{"0.5", ActionBuy},
		{"0.51", ActionStrongBuy},
		{"-0.51", ActionStrongSell},
		{"1", ActionStrongBuy},
		{"-1", ActionStrongSell},
	}

	for _, tt := range tests {
		suite.Run(tt.score, func() {
			suite.Equal(tt.expected, ActionForScore(decimal.RequireFromString(tt.score)))
		})
	}
}

func (suite *ActionTestSuite) TestActionForValue() {
	suite.Equal(ActionNeutral, ActionForValue(None()))
	suite.Equal(ActionStrongBuy, ActionForValue(NewValue(0.8)))
}

func (suite *ActionTestSuite) TestOrdering() {
	suite.True(ActionStrongSell < ActionSell)
	suite.True(ActionSell < ActionNeutral)
	suite.True(ActionNeutral < ActionBuy)
	suite.True(ActionBuy < ActionStrongBuy)
}

func (suite *ActionTestSuite) TestString() {
	suite.Equal("STRONG_BUY", ActionStrongBuy.String())
	suite.Equal("SELL", ActionSell.String())
	suite.Equal("NEUTRAL", ActionNeutral.String())
}

func (suite *ActionTestSuite) TestParseAction() {
	for a := ActionStrongSell; a <= ActionStrongBuy; a++ {
		parsed, err := ParseAction(a.String())
		suite.NoError(err)
		suite.Equal(a, parsed)
	}

	parsed, err := ParseAction("strong_buy")
	suite.NoError(err)
	suite.Equal(ActionStrongBuy, parsed)

	_, err = ParseAction("hold")
	suite.Error(err)
}
