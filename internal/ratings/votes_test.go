package ratings

import (
	"testing"

	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/stretchr/testify/suite"
)

type VotesTestSuite struct {
	suite.Suite
}

func TestVotesSuite(t *testing.T) {
	suite.Run(t, new(VotesTestSuite))
}

func series(xs ...float64) *indicator.Node[types.Value] {
	n := indicator.NewIdentity(nil)
	for _, x := range xs {
		n.Add(types.NewValue(x))
	}

	return n
}

func (suite *VotesTestSuite) assertVote(expected, got types.Value) {
	suite.T().Helper()
	suite.True(expected.Equal(got), "expected %s, got %s", expected, got)
}

func (suite *VotesTestSuite) TestMean() {
	suite.True(mean().IsNone())
	suite.True(mean(types.None(), types.None()).IsNone())
	suite.InDelta(0.5, mean(types.None(), types.NewValue(0.5)).Float64(), 1e-12)
	suite.InDelta(0.0, mean(buy, sell).Float64(), 1e-12)
}

func (suite *VotesTestSuite) TestDirection() {
	suite.assertVote(buy, direction(types.NewValue(2), types.NewValue(1)))
	suite.assertVote(sell, direction(types.NewValue(1), types.NewValue(2)))
	suite.assertVote(neutral, direction(types.NewValue(1), types.NewValue(1)))
	suite.assertVote(types.None(), direction(types.None(), types.NewValue(1)))
}

func (suite *VotesTestSuite) TestThreshold() {
	suite.assertVote(buy, threshold(types.NewValue(71), 30, 70))
	suite.assertVote(sell, threshold(types.NewValue(29), 30, 70))
	suite.assertVote(neutral, threshold(types.NewValue(50), 30, 70))
	suite.assertVote(types.None(), threshold(types.None(), 30, 70))
}

func (suite *VotesTestSuite) TestBounded() {
	vote := bounded(series(25, 28, 75, 72, 50), 30, 70)

	suite.assertVote(types.None(), vote(0))
	suite.assertVote(buy, vote(1))
	suite.assertVote(neutral, vote(2))
	suite.assertVote(sell, vote(3))
	suite.assertVote(neutral, vote(4))
}

func (suite *VotesTestSuite) TestStochasticVote() {
	k := series(10, 90, 50)
	d := series(5, 95, 50)

	suite.assertVote(buy, stochasticVote(k, d, 0))
	suite.assertVote(sell, stochasticVote(k, d, 1))
	suite.assertVote(neutral, stochasticVote(k, d, 2))
	suite.assertVote(types.None(), stochasticVote(k, d, 3))
}

func (suite *VotesTestSuite) TestAwesomeVote() {
	ao := series(-1, 1, 0.5, 0.8, -0.2, -0.5, -0.3, -0.6)

	suite.assertVote(types.None(), awesomeVote(ao, 0))
	suite.assertVote(buy, awesomeVote(ao, 1))
	suite.assertVote(neutral, awesomeVote(ao, 2))
	suite.assertVote(buy, awesomeVote(ao, 3))
	suite.assertVote(sell, awesomeVote(ao, 4))
	suite.assertVote(neutral, awesomeVote(ao, 5))
	suite.assertVote(neutral, awesomeVote(ao, 6))
	suite.assertVote(sell, awesomeVote(ao, 7))
}

func (suite *VotesTestSuite) TestPriceAbove() {
	vote := priceAbove(series(10, 10), series(9, 11))

	suite.assertVote(buy, vote(0))
	suite.assertVote(sell, vote(1))
}
