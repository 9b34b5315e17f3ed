// Package visibility computes the region of a constrained Delaunay
// mesh reachable from a query point without crossing a constraint
// edge: a breadth-first flood fill outward from the point's containing
// triangle through every neighbor link except the ones the caller has
// marked as constraints. The sweep is not narrowed by line of sight: a
// triangle reachable around an obstacle is reported whether or not it
// is visible from the point, and no visible segments are computed.
package visibility

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
)

// Fan is the swept result of a visibility query: every triangle
// reachable from the query point without crossing a constraint, and
// the constraint edges that bounded the sweep.
type Fan struct {
	Triangles []types.T
	Boundary  []mesh.Edge
}

// Query sweeps outward from the triangle containing p, stopping at
// every edge present in edges (the caller-maintained constraint set)
// and at the convex hull. It reports false if p cannot be located in
// the mesh.
//
// When p lies exactly on a constraint edge, outToIn selects which
// side the sweep starts from: true starts on the side the edge's
// directed (T, S) view points into, false starts on the duel side.
// For any other location, outToIn has no effect.
func Query(m *mesh.Mesh, edges mesh.EdgeSet, p types.Point, outToIn bool) (Fan, bool) {
	loc := m.LocateRecursive(p)

	var start types.T
	switch loc.Kind {
	case mesh.InTriangle:
		start = loc.T
	case mesh.OnVertex:
		start = loc.T
	case mesh.OnEdge:
		from, to := edgeEndpoints(m, loc.T, loc.S)
		if !edges.Has(from, to) {
			start = loc.T
			break
		}
		if outToIn {
			start = loc.T
			break
		}
		if dual, ok := m.EdgeDuel(mesh.Edge{T: loc.T, S: loc.S}); ok {
			start = dual.T
		} else {
			start = loc.T
		}
	default:
		return Fan{}, false
	}

	visited := map[types.T]bool{start: true}
	queue := []types.T{start}
	var boundary []mesh.Edge
	maxNodes := m.NumTriangles() + 1

	for len(queue) > 0 && len(visited) <= maxNodes {
		cur := queue[0]
		queue = queue[1:]
		tri := m.Tri(cur)

		for s := types.S(0); s < 3; s++ {
			next := tri.N[s]
			from, to := edgeEndpoints(m, cur, s)
			if edges.Has(from, to) {
				boundary = append(boundary, mesh.Edge{T: cur, S: s})
				continue
			}
			if next == types.NilT {
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	triangles := make([]types.T, 0, len(visited))
	for t := range visited {
		triangles = append(triangles, t)
	}
	return Fan{Triangles: triangles, Boundary: boundary}, true
}

func edgeEndpoints(m *mesh.Mesh, t types.T, s types.S) (types.V, types.V) {
	e := mesh.Edge{T: t, S: s}
	return e.From(m), e.To(m)
}

// BatchQuery is one request in a QueryBatch call.
type BatchQuery struct {
	Point   types.Point
	OutToIn bool
}

// BatchResult is the outcome of one BatchQuery; QueryBatch stores it
// at the same index as its request.
type BatchResult struct {
	Fan Fan
	Ok  bool
}

// QueryBatch runs Query concurrently for every request, fanning out
// with an errgroup since the mesh and constraint set are read-only for
// the duration of the batch. The result slice preserves request order.
func QueryBatch(ctx context.Context, m *mesh.Mesh, edges mesh.EdgeSet, queries []BatchQuery) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))

	g, _ := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			fan, ok := Query(m, edges, q.Point, q.OutToIn)
			results[i] = BatchResult{Fan: fan, Ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
