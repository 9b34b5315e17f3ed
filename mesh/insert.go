package mesh

import "github.com/wrenfield/trimesh/types"

// Insert adds p to the mesh, splitting whichever triangle or edge it
// lands in/on and legalizing the result via Lawson flips. If p
// exactly equals an existing vertex, that vertex is returned
// unchanged. It fails if budget is already exhausted or p lies
// outside the super-triangle.
//
// A BudgetExhausted error may be returned alongside a valid vertex: p
// was structurally inserted (I1-I4 still hold) but legalization ran
// out of steps before finishing, so I5 may be locally violated around
// the new vertex.
func (m *Mesh) Insert(p types.Point, budget *Budget) (types.V, error) {
	loc := m.LocateRecursive(p)

	switch loc.Kind {
	case OnVertex:
		return m.tris[loc.T].V[loc.S], nil
	case Outside, Unknown:
		return types.NilV, badInput("point lies outside the super-triangle or could not be located")
	}

	if !budget.take() {
		return types.NilV, budgetExhausted("no steps remaining before split")
	}

	var newV types.V
	var exhausted bool
	switch loc.Kind {
	case InTriangle:
		newV, exhausted = m.splitInTriangle(loc.T, p, budget)
	case OnEdge:
		newV, exhausted = m.splitOnEdge(loc.T, loc.S, p, budget)
	}

	if m.cfg.debugInvariants {
		if err := m.checkInvariants(); err != nil {
			return newV, err
		}
	}
	if exhausted {
		return newV, budgetExhausted("legalization did not complete for vertex %d", newV)
	}
	return newV, nil
}

// splitInTriangle performs the 1-to-3 split of t around a point
// strictly inside it.
func (m *Mesh) splitInTriangle(t types.T, p types.Point, budget *Budget) (types.V, bool) {
	tri := m.tris[t]
	v0, v1, v2 := tri.V[0], tri.V[1], tri.V[2]
	n0, n1, n2 := tri.N[0], tri.N[1], tri.N[2]

	newV := types.V(len(m.verts))
	m.verts = append(m.verts, p)

	t1 := m.allocTri()
	t2 := m.allocTri()

	m.tris[t] = newTriangle(v0, v1, newV)
	m.tris[t1] = newTriangle(v1, v2, newV)
	m.tris[t2] = newTriangle(v2, v0, newV)

	m.linkInternal(t, t1, v1, newV)
	m.linkInternal(t1, t2, v2, newV)
	m.linkInternal(t2, t, v0, newV)

	m.attachExternal(t1, v1, v2, n2)
	m.attachExternal(t2, v2, v0, n0)
	m.attachExternal(t, v0, v1, n1)

	exhausted := false
	for _, x := range [3]types.T{t, t1, t2} {
		if m.legalize(edgeRef{x, 1}, budget) {
			exhausted = true
		}
	}
	return newV, exhausted
}

// splitOnEdge handles a point landing exactly on edge s of t: a 2-to-4
// split if the edge has an opposing triangle, a 1-to-2 split if it's
// on the convex hull.
func (m *Mesh) splitOnEdge(t types.T, s types.S, p types.Point, budget *Budget) (types.V, bool) {
	tri := m.tris[t]
	u := tri.N[s]

	va, vb := tri.edgeVerts(s)
	vc := tri.V[s.Ccw()]
	nVbVc := tri.N[s.Ccw()]
	nVcVa := tri.N[s.Cw()]

	newV := types.V(len(m.verts))
	m.verts = append(m.verts, p)

	if u == types.NilT {
		t2 := m.allocTri()
		m.tris[t] = newTriangle(vc, va, newV)
		m.tris[t2] = newTriangle(vb, vc, newV)

		m.linkInternal(t, t2, vc, newV)
		m.attachExternal(t, vc, va, nVcVa)
		m.attachExternal(t2, vb, vc, nVbVc)

		exhausted := false
		for _, x := range [2]types.T{t, t2} {
			if m.legalize(edgeRef{x, 1}, budget) {
				exhausted = true
			}
		}
		return newV, exhausted
	}

	dual, ok := m.EdgeDuel(Edge{T: t, S: s})
	if !ok {
		panic(invariantViolation([]types.T{t, u}, "splitOnEdge: edge_duel failed for an edge with a recorded neighbor"))
	}
	utri := m.tris[u]
	vd := utri.V[dual.S.Ccw()]
	nVaVd := utri.N[dual.S.Ccw()]
	nVdVb := utri.N[dual.S.Cw()]

	t3 := m.allocTri()
	t4 := m.allocTri()

	m.tris[t] = newTriangle(vc, va, newV)
	m.tris[u] = newTriangle(vb, vc, newV)
	m.tris[t3] = newTriangle(vd, vb, newV)
	m.tris[t4] = newTriangle(va, vd, newV)

	m.linkInternal(t, t4, va, newV)
	m.linkInternal(t, u, vc, newV)
	m.linkInternal(u, t3, vb, newV)
	m.linkInternal(t3, t4, vd, newV)

	m.attachExternal(t, vc, va, nVcVa)
	m.attachExternal(u, vb, vc, nVbVc)
	m.attachExternal(t3, vd, vb, nVdVb)
	m.attachExternal(t4, va, vd, nVaVd)

	exhausted := false
	for _, x := range [4]types.T{t, u, t3, t4} {
		if m.legalize(edgeRef{x, 1}, budget) {
			exhausted = true
		}
	}
	return newV, exhausted
}
