// Package mesh implements an incremental constrained Delaunay
// triangulation: point location, Lawson-flip legalized insertion, and
// edge-constraint carving, over a dense, pointer-free triangle array.
package mesh

import (
	"github.com/wrenfield/trimesh/predicates"
	"github.com/wrenfield/trimesh/types"
)

// Mesh is a constrained Delaunay triangulation bootstrapped from a
// bounding super-triangle. Vertices and triangles are append-only:
// indices are never removed, though insertion splits, edge flips and
// constraint carving overwrite triangle slots in place.
type Mesh struct {
	verts []types.Point
	tris  []Triangle
	cfg   config

	// constraints mirrors every edge ConstrainEdge has ever forced in,
	// for checkDelaunayLocal's I5 exemption only. It is not the
	// caller-facing constraint bookkeeping (see EdgeSet); a caller that
	// needs to query "is this a constraint" maintains its own set.
	constraints EdgeSet
}

// NewMesh bootstraps a mesh from a single CCW (or CW, which is
// normalized) super-triangle covering the domain every subsequent
// Insert call will target. It fails if the three points are
// collinear.
func NewMesh(p0, p1, p2 types.Point, opts ...Option) (*Mesh, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	orient := predicates.Orient2D(p0, p1, p2)
	if orient == 0 {
		return nil, badInput("super-triangle vertices are collinear")
	}
	if orient < 0 {
		p1, p2 = p2, p1
	}

	m := &Mesh{
		verts:       []types.Point{p0, p1, p2},
		tris:        []Triangle{newTriangle(0, 1, 2)},
		cfg:         cfg,
		constraints: NewEdgeSet(),
	}
	return m, nil
}

// NumVertices returns the number of vertices in the mesh, including
// the three super-triangle vertices.
func (m *Mesh) NumVertices() int { return len(m.verts) }

// NumTriangles returns the number of triangle slots in the mesh.
// Because slots are append-only and reused rather than deleted, this
// never decreases.
func (m *Mesh) NumTriangles() int { return len(m.tris) }

// Vert returns the coordinates of vertex v.
func (m *Mesh) Vert(v types.V) types.Point { return m.verts[v] }

// Tri returns a copy of triangle t.
func (m *Mesh) Tri(t types.T) Triangle { return m.tris[t] }

// Centroid returns the arithmetic mean of triangle t's three corners.
func (m *Mesh) Centroid(t types.T) types.Point {
	tri := m.tris[t]
	a, b, c := m.verts[tri.V[0]], m.verts[tri.V[1]], m.verts[tri.V[2]]
	return types.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// Epsilon returns the tolerance configuration in effect for this mesh.
func (m *Mesh) Epsilon() types.Epsilon { return m.cfg.eps }

// EdgeDuel returns the opposing view (U, S') of edge e: the same
// undirected edge as seen from the triangle on the other side. It
// reports false if e is on the convex hull (no opposing triangle). It
// panics if the neighbor back-pointer doesn't round trip, which
// indicates an I2 violation.
func (m *Mesh) EdgeDuel(e Edge) (Edge, bool) {
	tri := m.tris[e.T]
	u := tri.N[e.S]
	if u == types.NilT {
		return Edge{}, false
	}
	a, b := tri.edgeVerts(e.S)
	utri := m.tris[u]
	for sp := types.S(0); sp < 3; sp++ {
		if utri.N[sp] != e.T {
			continue
		}
		ua, ub := utri.edgeVerts(sp)
		if ua == b && ub == a {
			return Edge{T: u, S: sp}, true
		}
	}
	panic(invariantViolation([]types.T{e.T, u}, "edge_duel: no reciprocal slot found, I2 violated"))
}

func (m *Mesh) allocTri() types.T {
	id := types.T(len(m.tris))
	m.tris = append(m.tris, Triangle{})
	return id
}

// linkInternal makes two triangles that both carry edge (a, b) into
// each other's neighbors across that edge.
func (m *Mesh) linkInternal(ta, tb types.T, a, b types.V) {
	sa, ok := m.tris[ta].edgeSlot(a, b)
	if !ok {
		panic(invariantViolation([]types.T{ta, tb}, "linkInternal: triangle %d has no edge (%d,%d)", ta, a, b))
	}
	sb, ok := m.tris[tb].edgeSlot(a, b)
	if !ok {
		panic(invariantViolation([]types.T{ta, tb}, "linkInternal: triangle %d has no edge (%d,%d)", tb, a, b))
	}
	m.tris[ta].N[sa] = tb
	m.tris[tb].N[sb] = ta
}

// attachExternal binds t's (a, b) edge to a pre-existing outer
// neighbor and patches that neighbor's back-pointer to t. Passing
// types.NilT marks a convex-hull edge.
func (m *Mesh) attachExternal(t types.T, a, b types.V, outer types.T) {
	s, ok := m.tris[t].edgeSlot(a, b)
	if !ok {
		panic(invariantViolation([]types.T{t}, "attachExternal: triangle %d has no edge (%d,%d)", t, a, b))
	}
	m.tris[t].N[s] = outer
	if outer == types.NilT {
		return
	}
	os, ok := m.tris[outer].edgeSlot(a, b)
	if !ok {
		panic(invariantViolation([]types.T{t, outer}, "attachExternal: outer neighbor %d has no edge (%d,%d), I2 violated", outer, a, b))
	}
	m.tris[outer].N[os] = t
}
