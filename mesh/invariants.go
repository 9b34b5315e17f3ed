package mesh

import (
	"github.com/wrenfield/trimesh/predicates"
	"github.com/wrenfield/trimesh/types"
)

// checkInvariants walks every triangle and verifies I1 (CCW
// ordering), I2 (neighbor symmetry), and I5 (the Delaunay property on
// every unconstrained, non-super edge). I3 (coverage) and I4 (super
// vertices stay on the hull) are not checked. It is expensive
// (O(triangles)) and is meant for debug builds and tests, gated by
// WithDebugInvariants.
func (m *Mesh) checkInvariants() error {
	for t := types.T(0); t < types.T(len(m.tris)); t++ {
		tri := m.tris[t]

		if predicates.Orient2D(m.verts[tri.V[0]], m.verts[tri.V[1]], m.verts[tri.V[2]]) <= 0 {
			return invariantViolation([]types.T{t}, "I1: triangle %d is not strictly CCW", t)
		}

		for s := types.S(0); s < 3; s++ {
			u := tri.N[s]
			if u == types.NilT {
				continue
			}
			if int(u) < 0 || int(u) >= len(m.tris) {
				return invariantViolation([]types.T{t}, "I2: triangle %d slot %d neighbor %d out of range", t, s, u)
			}
			a, b := tri.edgeVerts(s)
			utri := m.tris[u]
			us, ok := utri.edgeSlot(a, b)
			if !ok || utri.N[us] != t {
				return invariantViolation([]types.T{t, u}, "I2: triangle %d slot %d and neighbor %d are not mutually linked", t, s, u)
			}
		}

		if err := m.checkDelaunayLocal(t); err != nil {
			return err
		}
	}
	return nil
}

// checkDelaunayLocal verifies I5 for the three edges of t. An edge is
// exempt if either endpoint or apex is a super vertex (the
// super-triangle override in maybeSwap deliberately keeps those
// non-Delaunay to preserve the convex hull, I4) or if the edge itself
// has been forced in by ConstrainEdge: a carved edge is allowed to
// leave its quadrilateral non-empty-circumcircle, since it exists
// precisely because the Delaunay-optimal diagonal was rejected in
// favor of it.
func (m *Mesh) checkDelaunayLocal(t types.T) error {
	tri := m.tris[t]
	for s := types.S(0); s < 3; s++ {
		u := tri.N[s]
		if u == types.NilT {
			continue
		}
		p0, p1 := tri.edgeVerts(s)
		if m.constraints.Has(p0, p1) {
			continue
		}
		p2 := tri.V[s.Ccw()]
		if p0.IsSuper() || p1.IsSuper() || p2.IsSuper() {
			continue
		}
		dual, ok := m.EdgeDuel(Edge{T: t, S: s})
		if !ok {
			continue
		}
		p3 := m.tris[u].V[dual.S.Ccw()]
		if p3.IsSuper() {
			continue
		}
		if predicates.InCircle(m.verts[p0], m.verts[p1], m.verts[p2], m.verts[p3]) > 0 {
			return invariantViolation([]types.T{t, u}, "I5: triangle %d's edge %d is not locally Delaunay", t, s)
		}
	}
	return nil
}
