package mesh

import (
	"github.com/wrenfield/trimesh/predicates"
	"github.com/wrenfield/trimesh/types"
)

// contourEdge is one boundary edge of a channel being carved, directed
// from the pivot closer to v_from to the pivot closer to v_to. outer
// is the triangle recorded, at compute time, on the far side of this
// edge from the channel; it may be types.NilT (hull) or may itself be
// one of the triangles the channel is about to overwrite.
type contourEdge struct {
	a, b  types.V
	outer types.T
}

// cutResult is the read-only product of walking from v_from to v_to:
// the triangles the channel passes through, and its two ordered
// boundary chains.
type cutResult struct {
	triangles  []types.T
	contourCW  []contourEdge
	contourCCW []contourEdge
}

// ConstrainEdge ensures the edge (vFrom, vTo) exists in the mesh,
// carving a channel through whichever triangles currently cross it
// and retriangulating each side with the Delaunay-optimal recursive
// subdivision. It is a no-op if the edge already exists. Callers that
// need to query "is this a constraint" still track that externally
// (see EdgeSet); internally the mesh also remembers every edge it has
// ever forced in, purely so checkDelaunayLocal can exempt it from I5.
func (m *Mesh) ConstrainEdge(vFrom, vTo types.V, budget *Budget) error {
	if vFrom == vTo {
		return badInput("constrain_edge: v_from and v_to are identical")
	}

	cr, err := m.cut(vFrom, vTo, budget)
	if err != nil {
		return err
	}
	if len(cr.triangles) == 0 {
		m.constraints.Add(vFrom, vTo)
		return nil
	}

	if !budget.take() {
		return budgetExhausted("no steps remaining before carving (vertex %d, %d)", vFrom, vTo)
	}

	if err := m.cutApply(vFrom, vTo, cr); err != nil {
		return err
	}
	m.constraints.Add(vFrom, vTo)
	if m.cfg.debugInvariants {
		return m.checkInvariants()
	}
	return nil
}

// cut walks from vFrom toward vTo, classifying each triangle the
// straight line passes through, and returns the ordered set of
// triangles pierced plus the two boundary chains of the resulting
// channel. It never mutates the mesh.
func (m *Mesh) cut(vFrom, vTo types.V, budget *Budget) (cutResult, error) {
	if _, ok := m.findDirectEdge(vFrom, vTo); ok {
		return cutResult{}, nil
	}

	pf, pt := m.Vert(vFrom), m.Vert(vTo)
	fan := m.vertexFan(vFrom)

	var entryT types.T
	var entryS types.S
	var grazeVertex types.V
	found := false
	graze := false

	for _, er := range fan {
		tri := m.tris[er.t]
		ccwV := tri.V[er.s.Ccw()]
		cwV := tri.V[er.s.Cw()]
		oA := predicates.Orient2D(pf, pt, m.Vert(ccwV))
		oB := predicates.Orient2D(pf, pt, m.Vert(cwV))

		if oA == 0 && cwDirected(pf, pt, m.Vert(ccwV)) {
			grazeVertex, graze, found = ccwV, true, true
			break
		}
		if oB == 0 && cwDirected(pf, pt, m.Vert(cwV)) {
			grazeVertex, graze, found = cwV, true, true
			break
		}
		if oA < 0 && oB > 0 {
			entryT, entryS, found = er.t, er.s, true
			break
		}
	}
	if !found {
		return cutResult{}, invariantViolation(nil, "cut: no entry triangle found in the vertex fan of %d", vFrom)
	}

	if graze {
		if !budget.take() {
			return cutResult{}, budgetExhausted("cut: budget exhausted restarting from grazed vertex %d", grazeVertex)
		}
		rest, err := m.cut(grazeVertex, vTo, budget)
		if err != nil {
			return cutResult{}, err
		}
		lead := contourEdge{a: vFrom, b: grazeVertex, outer: types.NilT}
		return cutResult{
			triangles:  rest.triangles,
			contourCCW: append([]contourEdge{lead}, rest.contourCCW...),
			contourCW:  append([]contourEdge{lead}, rest.contourCW...),
		}, nil
	}

	tri := m.tris[entryT]
	eA := tri.V[entryS.Cw()]
	eB := tri.V[entryS.Ccw()]

	var triangles []types.T
	var contourCCW, contourCW []contourEdge

	appendContour := func(edges *[]contourEdge, tri Triangle, from, to types.V) {
		s, _ := tri.edgeSlot(from, to)
		*edges = append(*edges, contourEdge{a: from, b: to, outer: tri.N[s]})
	}

	appendContour(&contourCCW, tri, vFrom, eA)
	appendContour(&contourCW, tri, vFrom, eB)

	triangles = append(triangles, entryT)
	exitSlot, _ := tri.edgeSlot(eA, eB)
	cur := tri.N[exitSlot]
	if cur == types.NilT {
		return cutResult{}, invariantViolation([]types.T{entryT}, "cut: channel walk exited through the convex hull")
	}
	triangles = append(triangles, cur)

	for {
		tri := m.tris[cur]
		var vFar types.V
		for s := types.S(0); s < 3; s++ {
			if v := tri.V[s]; v != eA && v != eB {
				vFar = v
				break
			}
		}

		if vFar == vTo {
			appendContour(&contourCCW, tri, eA, vTo)
			appendContour(&contourCW, tri, eB, vTo)
			return cutResult{triangles: triangles, contourCCW: contourCCW, contourCW: contourCW}, nil
		}

		oFar := predicates.Orient2D(pf, pt, m.Vert(vFar))

		if oFar == 0 {
			appendContour(&contourCCW, tri, eA, vFar)
			appendContour(&contourCW, tri, eB, vFar)
			if !budget.take() {
				return cutResult{}, budgetExhausted("cut: budget exhausted restarting from intermediate vertex %d", vFar)
			}
			rest, err := m.cut(vFar, vTo, budget)
			if err != nil {
				return cutResult{}, err
			}
			triangles = append(triangles, rest.triangles...)
			contourCCW = append(contourCCW, rest.contourCCW...)
			contourCW = append(contourCW, rest.contourCW...)
			return cutResult{triangles: triangles, contourCCW: contourCCW, contourCW: contourCW}, nil
		}

		var next types.T
		if oFar > 0 {
			appendContour(&contourCCW, tri, eA, vFar)
			slot, _ := tri.edgeSlot(vFar, eB)
			next = tri.N[slot]
			eA = vFar
		} else {
			appendContour(&contourCW, tri, eB, vFar)
			slot, _ := tri.edgeSlot(vFar, eA)
			next = tri.N[slot]
			eB = vFar
		}
		if next == types.NilT {
			return cutResult{}, invariantViolation([]types.T{cur}, "cut: channel walk exited through the convex hull")
		}
		cur = next
		triangles = append(triangles, cur)
	}
}

// cwDirected is a defensive guard against a ray that is collinear with
// an edge but points away from it (grazeVertex candidates must lie on
// the v_from -> v_to side, not behind v_from).
func cwDirected(pf, pt, cand types.Point) bool {
	dx, dy := pt.X-pf.X, pt.Y-pf.Y
	cx, cy := cand.X-pf.X, cand.Y-pf.Y
	return dx*cx+dy*cy > 0
}

// findDirectEdge reports the edge (vFrom, vTo) if it already exists.
func (m *Mesh) findDirectEdge(vFrom, vTo types.V) (Edge, bool) {
	for _, er := range m.vertexFan(vFrom) {
		tri := m.tris[er.t]
		if tri.V[er.s.Ccw()] == vTo || tri.V[er.s.Cw()] == vTo {
			s, _ := tri.edgeSlot(vFrom, vTo)
			return Edge{T: er.t, S: s}, true
		}
	}
	return Edge{}, false
}

// vertexFan returns, for each triangle incident to v, the (triangle,
// slot-of-v) pair, walking around v until it returns to the start (an
// interior vertex) or runs off the hull in both directions (a
// boundary vertex).
func (m *Mesh) vertexFan(v types.V) []edgeRef {
	start := m.LocateRecursive(m.Vert(v))
	t0, s0 := start.T, start.S

	fan := []edgeRef{{t0, s0}}
	cur, curS := t0, s0
	hitHull := false
	for {
		next := m.tris[cur].N[curS]
		if next == types.NilT {
			hitHull = true
			break
		}
		if next == t0 {
			break
		}
		nextS, _ := m.tris[next].slotOf(v)
		fan = append(fan, edgeRef{next, nextS})
		cur, curS = next, nextS
	}

	if hitHull {
		cur, curS = t0, s0
		for {
			next := m.tris[cur].N[curS.Ccw()]
			if next == types.NilT {
				break
			}
			nextS, _ := m.tris[next].slotOf(v)
			fan = append(fan, edgeRef{next, nextS})
			cur, curS = next, nextS
		}
	}
	return fan
}

type triple struct {
	a, b, c types.V
}

// subdivide implements the Delaunay-optimal recursive triangulation of
// a monotone chain slice[0..len-1]: pick the interior vertex whose
// circumcircle with the two endpoints contains no other candidate,
// make it the apex of one triangle, and recurse on the two halves it
// splits the chain into.
func (m *Mesh) subdivide(slice []types.V) []triple {
	l := len(slice)
	if l < 3 {
		return nil
	}
	pivot := 1
	for i := 2; i <= l-2; i++ {
		if predicates.InCircle(m.Vert(slice[0]), m.Vert(slice[pivot]), m.Vert(slice[l-1]), m.Vert(slice[i])) > 0 {
			pivot = i
		}
	}
	out := []triple{{slice[0], slice[pivot], slice[l-1]}}
	out = append(out, m.subdivide(slice[0:pivot+1])...)
	out = append(out, m.subdivide(slice[pivot:l])...)
	return out
}

// buildLoop assembles the full boundary of the channel as a single
// closed vertex sequence: v_from, along contour_cw to v_to, then back
// along contour_ccw (reversed) to just before v_from.
func buildLoop(vFrom, vTo types.V, cw, ccw []contourEdge) []types.V {
	loop := make([]types.V, 0, len(cw)+len(ccw)+1)
	loop = append(loop, vFrom)
	for _, e := range cw {
		loop = append(loop, e.b)
	}
	inner := make([]types.V, 0, len(ccw))
	for _, e := range ccw {
		inner = append(inner, e.b)
	}
	if len(inner) > 0 {
		inner = inner[:len(inner)-1] // drop the trailing v_to, already in loop
	}
	for i := len(inner) - 1; i >= 0; i-- {
		loop = append(loop, inner[i])
	}
	return loop
}

// splitAtColinear breaks a closed loop into the maximal runs between
// consecutive vertices that lie exactly on line(pf, pt); v_from and
// v_to always qualify, so this always yields at least the two sides
// (the cw half and the ccw half) of a simple channel.
func splitAtColinear(loop []types.V, pf, pt types.Point, at func(types.V) types.Point) [][]types.V {
	var breaks []int
	for i, v := range loop {
		if predicates.Orient2D(pf, pt, at(v)) == 0 {
			breaks = append(breaks, i)
		}
	}
	if len(breaks) < 2 {
		return nil
	}

	n := len(loop)
	sides := make([][]types.V, 0, len(breaks))
	for i := range breaks {
		start := breaks[i]
		end := breaks[(i+1)%len(breaks)]
		var seg []types.V
		if end > start {
			seg = append(seg, loop[start:end+1]...)
		} else {
			seg = append(seg, loop[start:n]...)
			seg = append(seg, loop[0:end+1]...)
		}
		sides = append(sides, seg)
	}
	return sides
}

// cutApply retriangulates the channel computed by cut, reusing the
// pierced triangles' slots for the replacement triangles and wiring
// every internal and external neighbor. It replaces the spec's
// explicit dirty-edge/LIFO slot bookkeeping with an equivalent
// generic pass: an edge shared by exactly two of the new triangles is
// linked internally regardless of which side of the channel produced
// it, and an edge claimed by exactly one is attached to its recorded
// outer neighbor. See DESIGN.md.
func (m *Mesh) cutApply(vFrom, vTo types.V, cr cutResult) error {
	loop := buildLoop(vFrom, vTo, cr.contourCW, cr.contourCCW)
	pf, pt := m.Vert(vFrom), m.Vert(vTo)

	sides := splitAtColinear(loop, pf, pt, m.Vert)
	if sides == nil {
		return invariantViolation(cr.triangles, "constrain_edge: channel loop has fewer than two collinear breaks")
	}

	var triples []triple
	for _, side := range sides {
		triples = append(triples, m.subdivide(side)...)
	}

	if len(triples) != len(cr.triangles) {
		return invariantViolation(cr.triangles, "constrain_edge: subdivision produced %d triangles for %d reused slots", len(triples), len(cr.triangles))
	}

	slots := append([]types.T{}, cr.triangles...)
	for i, tr := range triples {
		a, b, c := tr.a, tr.b, tr.c
		if predicates.Orient2D(m.Vert(a), m.Vert(b), m.Vert(c)) < 0 {
			b, c = c, b
		}
		m.tris[slots[i]] = newTriangle(a, b, c)
	}

	type occ struct {
		tri types.T
		s   types.S
	}
	edgeOcc := make(map[[2]types.V][]occ)
	for _, slot := range slots {
		tri := m.tris[slot]
		for s := types.S(0); s < 3; s++ {
			a, b := tri.edgeVerts(s)
			key := canonicalPair(a, b)
			edgeOcc[key] = append(edgeOcc[key], occ{slot, s})
		}
	}

	for key, occs := range edgeOcc {
		if len(occs) != 2 {
			continue
		}
		m.tris[occs[0].tri].N[occs[0].s] = occs[1].tri
		m.tris[occs[1].tri].N[occs[1].s] = occs[0].tri
		delete(edgeOcc, key)
	}

	allEdges := make([]contourEdge, 0, len(cr.contourCW)+len(cr.contourCCW))
	allEdges = append(allEdges, cr.contourCW...)
	allEdges = append(allEdges, cr.contourCCW...)

	for _, ce := range allEdges {
		key := canonicalPair(ce.a, ce.b)
		occs, ok := edgeOcc[key]
		if !ok {
			continue // resolved internally above (a pinched/dirty edge)
		}
		if len(occs) != 1 {
			return invariantViolation(cr.triangles, "constrain_edge: boundary edge (%d,%d) claimed by %d new triangles", ce.a, ce.b, len(occs))
		}
		m.attachExternal(occs[0].tri, ce.a, ce.b, ce.outer)
	}

	return nil
}
