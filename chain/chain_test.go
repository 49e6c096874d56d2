package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/TravisCasey/pyCHomP2/chain"
)

type ChainSuite struct {
	suite.Suite
}

func TestChainSuite(t *testing.T) {
	suite.Run(t, new(ChainSuite))
}

func (s *ChainSuite) TestEmptyIsIdentity() {
	require := require.New(s.T())

	var c chain.Chain
	require.Equal(0, c.Len())
	require.False(c.Has(3))

	c.Merge(chain.New())
	require.Equal(0, c.Len())
}

func (s *ChainSuite) TestAddTogglesMembership() {
	require := require.New(s.T())

	c := chain.New()
	c.Add(1)
	require.True(c.Has(1))
	require.Equal(1, c.Count(1))

	c.Add(1)
	require.False(c.Has(1))
	require.Equal(0, c.Len())
}

func (s *ChainSuite) TestMergeIsSymmetricDifference() {
	require := require.New(s.T())

	a := chain.New(1, 2, 3)
	b := chain.New(2, 3, 4)
	a.Merge(b)

	require.True(a.Has(1))
	require.False(a.Has(2))
	require.False(a.Has(3))
	require.True(a.Has(4))
	require.Equal(2, a.Len())
}

func (s *ChainSuite) TestMergeSelfCancels() {
	require := require.New(s.T())

	a := chain.New(1, 2, 3)
	b := a.Clone()
	a.Merge(b)
	require.Equal(0, a.Len())
}

func (s *ChainSuite) TestCloneIsIndependent() {
	require := require.New(s.T())

	a := chain.New(1, 2)
	b := a.Clone()
	b.Add(3)

	require.False(a.Has(3))
	require.True(b.Has(3))
}

func (s *ChainSuite) TestEqual() {
	require := require.New(s.T())

	a := chain.New(1, 2, 3)
	b := chain.New(3, 2, 1)
	require.True(a.Equal(b))

	b.Add(4)
	require.False(a.Equal(b))
}

func (s *ChainSuite) TestSum() {
	require := require.New(s.T())

	sum := chain.Sum(chain.New(1, 2), chain.New(2, 3), chain.New(3, 4))
	require.True(sum.Equal(chain.New(1, 4)))
}
