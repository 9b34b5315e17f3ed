package visibility_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
	"github.com/wrenfield/trimesh/visibility"
)

func buildQuadMesh(t *testing.T) (*mesh.Mesh, types.V, types.V, types.V, types.V, *mesh.Budget) {
	t.Helper()
	m, err := mesh.NewMesh(
		types.Point{X: -100, Y: -100},
		types.Point{X: 100, Y: -100},
		types.Point{X: 0, Y: 100},
		mesh.WithDebugInvariants(true),
	)
	require.NoError(t, err)

	budget := mesh.NewBudget(4096)
	a, err := m.Insert(types.Point{X: -10, Y: -10}, budget)
	require.NoError(t, err)
	b, err := m.Insert(types.Point{X: 10, Y: -10}, budget)
	require.NoError(t, err)
	c, err := m.Insert(types.Point{X: 10, Y: 10}, budget)
	require.NoError(t, err)
	d, err := m.Insert(types.Point{X: -10, Y: 10}, budget)
	require.NoError(t, err)
	return m, a, b, c, d, budget
}

func TestQueryUnboundedSeesWholeMesh(t *testing.T) {
	m, _, _, _, _, _ := buildQuadMesh(t)
	edges := mesh.NewEdgeSet()

	fan, ok := visibility.Query(m, edges, types.Point{X: 0, Y: 0}, false)
	require.True(t, ok)
	require.Equal(t, m.NumTriangles(), len(fan.Triangles))
	require.Empty(t, fan.Boundary)
}

func TestQueryStopsAtConstraint(t *testing.T) {
	m, a, b, c, d, budget := buildQuadMesh(t)

	// The diagonal (a,c) alone encloses nothing: the sweep would reach
	// its far side around it, through the triangles outside the square.
	// Constraining the square's four sides as well encloses the query
	// point.
	edges := mesh.NewEdgeSet()
	for _, e := range [][2]types.V{{a, c}, {a, b}, {b, c}, {c, d}, {d, a}} {
		require.NoError(t, m.ConstrainEdge(e[0], e[1], budget))
		edges.Add(e[0], e[1])
	}

	fan, ok := visibility.Query(m, edges, types.Point{X: -5, Y: -5}, false)
	require.True(t, ok)
	require.NotEmpty(t, fan.Boundary)
	require.Less(t, len(fan.Triangles), m.NumTriangles())
}

func TestQueryUnlocatablePointFails(t *testing.T) {
	m, _, _, _, _, _ := buildQuadMesh(t)
	edges := mesh.NewEdgeSet()

	_, ok := visibility.Query(m, edges, types.Point{X: 10000, Y: 10000}, false)
	require.False(t, ok)
}

func TestQueryBatchPreservesOrderAndMatchesSingleQuery(t *testing.T) {
	m, _, _, _, _, _ := buildQuadMesh(t)
	edges := mesh.NewEdgeSet()

	queries := []visibility.BatchQuery{
		{Point: types.Point{X: 0, Y: 0}},
		{Point: types.Point{X: -5, Y: -5}},
		{Point: types.Point{X: 5, Y: 5}},
	}

	results, err := visibility.QueryBatch(context.Background(), m, edges, queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		single, ok := visibility.Query(m, edges, q.Point, q.OutToIn)
		require.Equal(t, ok, results[i].Ok)
		require.ElementsMatch(t, single.Triangles, results[i].Fan.Triangles)
	}
}
