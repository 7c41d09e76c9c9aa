package canon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimods/canon"
)

func TestIndex_PositionsAreDenseAndStable(t *testing.T) {
	ix := canon.NewIndex()

	p, err := ix.Add(canon.NodeKey("a"))
	require.NoError(t, err)
	require.Equal(t, 0, p)
	p, err = ix.Add(canon.NodeKey("b"))
	require.NoError(t, err)
	require.Equal(t, 1, p)

	// lookup and reverse lookup agree
	p, ok := ix.Pos(canon.NodeKey("b"))
	require.True(t, ok)
	require.Equal(t, 1, p)
	k, err := ix.Key(1)
	require.NoError(t, err)
	require.Equal(t, "b", k.A)

	require.Equal(t, 2, ix.Len())
}

func TestIndex_DuplicateAdd(t *testing.T) {
	ix := canon.NewIndex()
	_, err := ix.Add(canon.EdgeKey("a", "b"))
	require.NoError(t, err)
	_, err = ix.Add(canon.EdgeKey("a", "b"))
	require.ErrorIs(t, err, canon.ErrDuplicateKey)

	// Ensure is idempotent instead
	require.Equal(t, 0, ix.Ensure(canon.EdgeKey("a", "b")))
	require.Equal(t, 1, ix.Ensure(canon.EdgeKey("b", "a")))
}

func TestIndex_BadPosition(t *testing.T) {
	ix := canon.NewIndex()
	_, err := ix.Key(0)
	require.ErrorIs(t, err, canon.ErrBadPosition)
	_, err = ix.Key(-1)
	require.ErrorIs(t, err, canon.ErrBadPosition)
}

func TestKey_String(t *testing.T) {
	require.Equal(t, "a", canon.NodeKey("a").String())
	require.Equal(t, "a→b", canon.EdgeKey("a", "b").String())
}
