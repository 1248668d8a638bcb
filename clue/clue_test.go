package clue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clueroute/crs/clue"
)

func TestNew_Lowercases(t *testing.T) {
	c, err := clue.New("BANK", 100, 0)
	require.NoError(t, err)
	require.Equal(t, "bank", c.Keyword)
}

func TestNew_ValidationFailures(t *testing.T) {
	_, err := clue.New("", 100, 0)
	require.ErrorIs(t, err, clue.InvalidArgument)

	_, err = clue.New("bank", 0, 0)
	require.ErrorIs(t, err, clue.InvalidArgument)

	_, err = clue.New("bank", 100, 1.5)
	require.ErrorIs(t, err, clue.InvalidArgument)
}

func TestConfidenceInterval(t *testing.T) {
	c, err := clue.New("bank", 150, 0.5)
	require.NoError(t, err)
	require.Equal(t, 75.0, c.DMin())
	require.Equal(t, 225.0, c.DMax())
	require.True(t, c.IsWithinConfidenceInterval(100))
	require.False(t, c.IsWithinConfidenceInterval(10))
	require.Equal(t, 50.0, c.MatchingDistance(100))
}

func TestQuery_EmptyClues(t *testing.T) {
	_, err := clue.NewQuery(1, nil)
	require.ErrorIs(t, err, clue.InvalidArgument)
}

func TestQuery_PropagatesClueError(t *testing.T) {
	bad := clue.Clue{Keyword: "", Distance: 10, Epsilon: 0}
	_, err := clue.NewQuery(1, []clue.Clue{bad})
	require.ErrorIs(t, err, clue.InvalidArgument)
}
