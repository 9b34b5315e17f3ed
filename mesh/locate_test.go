package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/types"
)

func TestLocateClassifiesInsideOnEdgeOnVertexOutside(t *testing.T) {
	m, err := NewMesh(
		types.Point{X: 0, Y: 0},
		types.Point{X: 10, Y: 0},
		types.Point{X: 0, Y: 10},
	)
	require.NoError(t, err)

	inside := m.locate(0, types.Point{X: 1, Y: 1})
	require.Equal(t, InTriangle, inside.Kind)

	onVertex := m.locate(0, types.Point{X: 10, Y: 0})
	require.Equal(t, OnVertex, onVertex.Kind)

	onEdge := m.locate(0, types.Point{X: 5, Y: 0})
	require.Equal(t, OnEdge, onEdge.Kind)

	outside := m.locate(0, types.Point{X: -5, Y: -5})
	require.Equal(t, Outside, outside.Kind)
}

func TestLocateRecursiveFindsPointAfterInsertion(t *testing.T) {
	m, err := NewMesh(
		types.Point{X: -100, Y: -100},
		types.Point{X: 100, Y: -100},
		types.Point{X: 0, Y: 100},
	)
	require.NoError(t, err)
	budget := NewBudget(1024)

	target := types.Point{X: 3, Y: -7}
	_, err = m.Insert(target, budget)
	require.NoError(t, err)

	loc := m.LocateRecursive(target)
	require.Equal(t, OnVertex, loc.Kind)
}

func TestLocateRecursiveOutsideSuperTriangleIsUnknown(t *testing.T) {
	m, err := NewMesh(
		types.Point{X: -100, Y: -100},
		types.Point{X: 100, Y: -100},
		types.Point{X: 0, Y: 100},
	)
	require.NoError(t, err)

	loc := m.LocateRecursive(types.Point{X: 10000, Y: 10000})
	require.Equal(t, Unknown, loc.Kind)
}
