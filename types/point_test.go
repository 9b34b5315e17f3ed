package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/types"
)

func TestPointArithmetic(t *testing.T) {
	a := types.Point{X: 1, Y: 2}
	b := types.Point{X: 3, Y: -1}

	require.Equal(t, types.Point{X: 4, Y: 1}, a.Add(b))
	require.Equal(t, types.Point{X: -2, Y: 3}, a.Sub(b))
	require.Equal(t, types.Point{X: 2, Y: 4}, a.Scale(2))
}

func TestPointDist2(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 3, Y: 4}
	require.Equal(t, 25.0, a.Dist2(b))
}

func TestPointEqual(t *testing.T) {
	a := types.Point{X: 1.5, Y: -2.5}
	b := types.Point{X: 1.5, Y: -2.5}
	c := types.Point{X: 1.5, Y: -2.5000001}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestEpsilonValue(t *testing.T) {
	eps := types.Epsilon{Abs: 1e-6, Rel: 1e-3}
	require.InDelta(t, 1e-6+1e-3*100, eps.Value(100), 1e-12)
}

func TestEpsilonTolForPoints(t *testing.T) {
	eps := types.Epsilon{Abs: 1e-6, Rel: 1e-3}
	tol := eps.TolForPoints(types.Point{X: 1, Y: 2}, types.Point{X: -50, Y: 3})
	require.InDelta(t, eps.Value(50), tol, 1e-12)
}

func TestDefaultEpsilon(t *testing.T) {
	eps := types.DefaultEpsilon()
	require.Greater(t, eps.Abs, 0.0)
	require.Greater(t, eps.Rel, 0.0)
}
