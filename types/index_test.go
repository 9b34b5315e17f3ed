package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/types"
)

func TestVIsSuper(t *testing.T) {
	require.True(t, types.V(0).IsSuper())
	require.True(t, types.V(1).IsSuper())
	require.True(t, types.V(2).IsSuper())
	require.False(t, types.V(3).IsSuper())
	require.False(t, types.NilV.IsSuper())
}

func TestVIsValid(t *testing.T) {
	require.True(t, types.V(0).IsValid())
	require.False(t, types.NilV.IsValid())
}

func TestTIsValid(t *testing.T) {
	require.True(t, types.T(0).IsValid())
	require.False(t, types.NilT.IsValid())
}

func TestSCcwCw(t *testing.T) {
	for s := types.S(0); s < 3; s++ {
		require.Equal(t, s, s.Ccw().Cw(), "Cw should undo Ccw for slot %d", s)
		require.Equal(t, s, s.Cw().Ccw(), "Ccw should undo Cw for slot %d", s)
	}

	require.Equal(t, types.S(1), types.S(0).Ccw())
	require.Equal(t, types.S(2), types.S(1).Ccw())
	require.Equal(t, types.S(0), types.S(2).Ccw())

	require.Equal(t, types.S(2), types.S(0).Cw())
	require.Equal(t, types.S(0), types.S(1).Cw())
	require.Equal(t, types.S(1), types.S(2).Cw())
}
