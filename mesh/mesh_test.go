package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
)

func superTriangle() (types.Point, types.Point, types.Point) {
	return types.Point{X: -100, Y: -100},
		types.Point{X: 100, Y: -100},
		types.Point{X: 0, Y: 100}
}

func newTestMesh(t *testing.T, opts ...mesh.Option) *mesh.Mesh {
	t.Helper()
	p0, p1, p2 := superTriangle()
	m, err := mesh.NewMesh(p0, p1, p2, opts...)
	require.NoError(t, err)
	return m
}

func TestNewMeshBootstraps(t *testing.T) {
	m := newTestMesh(t)
	require.Equal(t, 3, m.NumVertices())
	require.Equal(t, 1, m.NumTriangles())
}

func TestNewMeshNormalizesClockwiseInput(t *testing.T) {
	p0, p1, p2 := superTriangle()
	// Swap p1/p2 so the input is given clockwise; NewMesh should
	// normalize it back to CCW rather than rejecting it.
	m, err := mesh.NewMesh(p0, p2, p1)
	require.NoError(t, err)
	tri := m.Tri(0)
	require.NotEqual(t, p2, m.Vert(tri.V[1]))
}

func TestNewMeshRejectsCollinear(t *testing.T) {
	p0 := types.Point{X: 0, Y: 0}
	p1 := types.Point{X: 1, Y: 1}
	p2 := types.Point{X: 2, Y: 2}
	_, err := mesh.NewMesh(p0, p1, p2)
	require.Error(t, err)
	require.ErrorIs(t, err, &mesh.Error{Kind: mesh.BadInput})
}

func TestInsertInsideSplitsIntoThree(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(1024)

	v, err := m.Insert(types.Point{X: 0, Y: 0}, budget)
	require.NoError(t, err)
	require.True(t, v.IsValid())
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 3, m.NumTriangles())
}

func TestInsertOnExistingVertexReturnsSameIndex(t *testing.T) {
	m := newTestMesh(t)
	budget := mesh.NewBudget(1024)

	p := types.Point{X: 0, Y: 0}
	v1, err := m.Insert(p, budget)
	require.NoError(t, err)

	vertsBefore := m.NumVertices()
	trisBefore := m.NumTriangles()

	v2, err := m.Insert(p, budget)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.Equal(t, vertsBefore, m.NumVertices())
	require.Equal(t, trisBefore, m.NumTriangles())
}

func TestInsertOutsideSuperTriangleFails(t *testing.T) {
	m := newTestMesh(t)
	budget := mesh.NewBudget(1024)

	_, err := m.Insert(types.Point{X: 1000, Y: 1000}, budget)
	require.Error(t, err)
	require.ErrorIs(t, err, &mesh.Error{Kind: mesh.BadInput})
}

func TestInsertOnEdgeSplitsBoth(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(1024)

	_, err := m.Insert(types.Point{X: 0, Y: 0}, budget)
	require.NoError(t, err)
	require.Equal(t, 3, m.NumTriangles())

	// (0,0) is the apex inserted above; (50,-50) lies on one of the
	// three edges radiating from it toward a super vertex.
	mid := types.Point{X: 50, Y: -50}
	_, err = m.Insert(mid, budget)
	require.NoError(t, err)
	require.Equal(t, 5, m.NumTriangles())
}

func TestInsertRespectsZeroBudget(t *testing.T) {
	m := newTestMesh(t)
	budget := mesh.NewBudget(0)

	_, err := m.Insert(types.Point{X: 0, Y: 0}, budget)
	require.Error(t, err)
	require.ErrorIs(t, err, &mesh.Error{Kind: mesh.BudgetExhausted})
}

func TestEdgeDuelHullEdgeHasNoDuel(t *testing.T) {
	m := newTestMesh(t)
	for s := types.S(0); s < 3; s++ {
		_, ok := m.EdgeDuel(mesh.Edge{T: 0, S: s})
		require.False(t, ok, "single bootstrap triangle has no internal neighbors")
	}
}

func TestEdgeDuelRoundTrips(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(1024)
	_, err := m.Insert(types.Point{X: 0, Y: 0}, budget)
	require.NoError(t, err)

	tri := m.Tri(0)
	for s := types.S(0); s < 3; s++ {
		if tri.N[s] == types.NilT {
			continue
		}
		dual, ok := m.EdgeDuel(mesh.Edge{T: 0, S: s})
		require.True(t, ok)
		back, ok := m.EdgeDuel(dual)
		require.True(t, ok)
		require.Equal(t, types.T(0), back.T)
		require.Equal(t, s, back.S)
	}
}

func TestInsertManyPointsPreservesInvariants(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(4096)

	pts := []types.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
		{X: 5, Y: -5},
	}
	for i, p := range pts {
		_, err := m.Insert(p, budget)
		require.NoErrorf(t, err, "inserting point %d (%v)", i, p)
	}
	require.Equal(t, 3+len(pts), m.NumVertices())
}

func TestConstrainEdgeOnQuadDiagonal(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(4096)

	a, err := m.Insert(types.Point{X: -10, Y: -10}, budget)
	require.NoError(t, err)
	b, err := m.Insert(types.Point{X: 10, Y: -10}, budget)
	require.NoError(t, err)
	c, err := m.Insert(types.Point{X: 10, Y: 10}, budget)
	require.NoError(t, err)
	d, err := m.Insert(types.Point{X: -10, Y: 10}, budget)
	require.NoError(t, err)

	err = m.ConstrainEdge(a, c, budget)
	require.NoError(t, err)

	edges := mesh.NewEdgeSet()
	edges.Add(a, c)
	require.True(t, edges.Has(a, c))
	require.True(t, edges.Has(c, a))
	require.False(t, edges.Has(b, d))
}

func TestConstrainEdgeIsIdempotent(t *testing.T) {
	m := newTestMesh(t, mesh.WithDebugInvariants(true))
	budget := mesh.NewBudget(4096)

	a, err := m.Insert(types.Point{X: -10, Y: -10}, budget)
	require.NoError(t, err)
	c, err := m.Insert(types.Point{X: 10, Y: 10}, budget)
	require.NoError(t, err)
	_, err = m.Insert(types.Point{X: 10, Y: -10}, budget)
	require.NoError(t, err)
	_, err = m.Insert(types.Point{X: -10, Y: 10}, budget)
	require.NoError(t, err)

	require.NoError(t, m.ConstrainEdge(a, c, budget))
	trisAfterFirst := m.NumTriangles()

	require.NoError(t, m.ConstrainEdge(a, c, budget))
	require.Equal(t, trisAfterFirst, m.NumTriangles())
}

func TestConstrainEdgeRejectsSelfLoop(t *testing.T) {
	m := newTestMesh(t)
	budget := mesh.NewBudget(1024)
	v, err := m.Insert(types.Point{X: 0, Y: 0}, budget)
	require.NoError(t, err)

	err = m.ConstrainEdge(v, v, budget)
	require.Error(t, err)
	require.ErrorIs(t, err, &mesh.Error{Kind: mesh.BadInput})
}

func TestWithEpsilonIsStored(t *testing.T) {
	custom := types.Epsilon{Abs: 1e-3, Rel: 1e-6}
	m := newTestMesh(t, mesh.WithEpsilon(custom))
	require.Equal(t, custom, m.Epsilon())
}

func TestDefaultBudgetHonorsWithStepBudget(t *testing.T) {
	m := newTestMesh(t, mesh.WithStepBudget(7))
	require.Equal(t, 7, m.DefaultBudget().Remaining)
}
