package mesh

import (
	"github.com/wrenfield/trimesh/predicates"
	"github.com/wrenfield/trimesh/types"
)

type edgeRef struct {
	t types.T
	s types.S
}

// legalize drains a worklist of candidate edges, flipping any that are
// illegal and pushing the newly exposed edges back on, until the
// worklist is empty or the budget runs out. It returns true if the
// budget was exhausted before the worklist drained.
func (m *Mesh) legalize(seed edgeRef, budget *Budget) (exhausted bool) {
	stack := []edgeRef{seed}
	for len(stack) > 0 {
		if !budget.take() {
			return true
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t1, t2, s1, s2, flipped := m.maybeSwap(top.t, top.s)
		if !flipped {
			continue
		}
		stack = append(stack,
			edgeRef{t1, s1.Ccw()}, edgeRef{t1, s1.Cw()},
			edgeRef{t2, s2.Ccw()}, edgeRef{t2, s2.Cw()},
		)
	}
	return false
}

// maybeSwap examines edge s of t. Writing p0, p1 for that edge's
// endpoints, p2 for t's apex (the corner not on the edge, V[s.Ccw()]),
// and p3 for the apex of the triangle across the edge, it flips the
// diagonal from (p0,p1) to (p2,p3) when doing so keeps the
// quadrilateral convex and either a super vertex forces it or the
// Delaunay incircle test asks for it. On a flip it returns the
// (possibly renumbered) triangle pair and the slot in each now holding
// the new diagonal.
func (m *Mesh) maybeSwap(t types.T, s types.S) (nt1, nt2 types.T, ns1, ns2 types.S, flipped bool) {
	tri := m.tris[t]
	u := tri.N[s]
	if u == types.NilT {
		return 0, 0, 0, 0, false
	}

	dual, ok := m.EdgeDuel(Edge{T: t, S: s})
	if !ok {
		panic(invariantViolation([]types.T{t, u}, "maybeSwap: edge_duel failed for an edge with a recorded neighbor"))
	}
	utri := m.tris[u]

	p0, p1 := tri.edgeVerts(s)
	p2 := tri.V[s.Ccw()]
	p3 := utri.V[dual.S.Ccw()]

	if !m.quadConvex(p2, p3, p0, p1) {
		return 0, 0, 0, 0, false
	}

	doFlip := false
	switch {
	case p0.IsSuper() || p1.IsSuper():
		doFlip = true
	case p2.IsSuper() || p3.IsSuper():
		doFlip = false
	default:
		doFlip = predicates.InCircle(m.verts[p0], m.verts[p1], m.verts[p2], m.verts[p3]) > 0
	}
	if !doFlip {
		return 0, 0, 0, 0, false
	}

	m.flip(t, u, p0, p1, p2, p3)

	s1, _ := m.tris[t].edgeSlot(p2, p3)
	s2, _ := m.tris[u].edgeSlot(p2, p3)
	return t, u, s1, s2, true
}

// quadConvex reports whether the quadrilateral p2,p0,p3,p1 is strictly
// convex: p2 and p3 lie strictly on opposite sides of (p0,p1), and
// replacing diagonal (p0,p1) with (p2,p3) yields two triangles that
// are both still CCW.
func (m *Mesh) quadConvex(p2, p3, p0, p1 types.V) bool {
	if predicates.Orient2D(m.verts[p0], m.verts[p1], m.verts[p2]) <= 0 {
		return false
	}
	if predicates.Orient2D(m.verts[p1], m.verts[p0], m.verts[p3]) <= 0 {
		return false
	}
	if predicates.Orient2D(m.verts[p2], m.verts[p3], m.verts[p1]) <= 0 {
		return false
	}
	if predicates.Orient2D(m.verts[p3], m.verts[p2], m.verts[p0]) <= 0 {
		return false
	}
	return true
}

// flip rewrites t and u in place to share the new diagonal (p2,p3)
// instead of (p0,p1), patching the four external neighbors whose
// back-pointers changed.
func (m *Mesh) flip(t, u types.T, p0, p1, p2, p3 types.V) {
	tri := m.tris[t]
	utri := m.tris[u]

	outerP2P0, _ := edgeNeighbor(tri, p2, p0)
	outerP1P2, _ := edgeNeighbor(tri, p1, p2)
	outerP3P1, _ := edgeNeighbor(utri, p3, p1)
	outerP0P3, _ := edgeNeighbor(utri, p0, p3)

	m.tris[t] = newTriangle(p2, p3, p1)
	m.tris[u] = newTriangle(p3, p2, p0)

	m.linkInternal(t, u, p2, p3)
	m.attachExternal(t, p1, p2, outerP1P2)
	m.attachExternal(t, p3, p1, outerP3P1)
	m.attachExternal(u, p2, p0, outerP2P0)
	m.attachExternal(u, p0, p3, outerP0P3)
}

func edgeNeighbor(tri Triangle, a, b types.V) (types.T, bool) {
	s, ok := tri.edgeSlot(a, b)
	if !ok {
		return types.NilT, false
	}
	return tri.N[s], true
}
