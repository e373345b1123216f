package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeConstants() {
	suite.Equal(IndicatorType("rsi"), IndicatorTypeRSI)
	suite.Equal(IndicatorType("macd"), IndicatorTypeMACD)
	suite.Equal(IndicatorType("bollinger_bands"), IndicatorTypeBollingerBands)
	suite.Equal(IndicatorType("stochastic_oscillator"), IndicatorTypeStochasticOscillator)
	suite.Equal(IndicatorType("williams_r"), IndicatorTypeWilliamsR)
	suite.Equal(IndicatorType("adx"), IndicatorTypeADX)
	suite.Equal(IndicatorType("ao"), IndicatorTypeAO)
	suite.Equal(IndicatorType("atr"), IndicatorTypeATR)
}

func (suite *IndicatorTestSuite) TestNamed() {
	suite.Equal(IndicatorType("ema_20"), Named(IndicatorTypeEMA, 20))
	suite.Equal(IndicatorType("sma_200"), Named(IndicatorTypeSMA, 200))
}
