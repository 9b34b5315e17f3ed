package mesh

import "github.com/wrenfield/trimesh/types"

// Triangle carries three CCW vertex slots and three neighbor slots.
// Slot k denotes the corner at V[k]; edge k runs from V[k.Cw()] to
// V[k] (so it ends at, rather than sits opposite, corner k), and N[k]
// is the triangle sharing that edge, or types.NilT if the edge is on
// the convex hull. The corner not on edge k is V[k.Ccw()].
type Triangle struct {
	V [3]types.V
	N [3]types.T
}

func newTriangle(a, b, c types.V) Triangle {
	return Triangle{
		V: [3]types.V{a, b, c},
		N: [3]types.T{types.NilT, types.NilT, types.NilT},
	}
}

// edgeVerts returns the (from, to) vertices of edge s: from V[s.Cw()]
// to V[s].
func (t Triangle) edgeVerts(s types.S) (types.V, types.V) {
	return t.V[s.Cw()], t.V[s]
}

// slotOf returns the slot holding vertex v, if t has one.
func (t Triangle) slotOf(v types.V) (types.S, bool) {
	for s := types.S(0); s < 3; s++ {
		if t.V[s] == v {
			return s, true
		}
	}
	return 0, false
}

// edgeSlot returns the slot whose edge is {a, b} (in either
// direction), if t has one.
func (t Triangle) edgeSlot(a, b types.V) (types.S, bool) {
	for s := types.S(0); s < 3; s++ {
		va, vb := t.edgeVerts(s)
		if (va == a && vb == b) || (va == b && vb == a) {
			return s, true
		}
	}
	return 0, false
}

// Edge names a directed edge of a mesh by the triangle that owns it
// and the slot it runs to.
type Edge struct {
	T types.T
	S types.S
}

// From returns the edge's start vertex.
func (e Edge) From(m *Mesh) types.V {
	v, _ := m.tris[e.T].edgeVerts(e.S)
	return v
}

// To returns the edge's end vertex.
func (e Edge) To(m *Mesh) types.V {
	_, v := m.tris[e.T].edgeVerts(e.S)
	return v
}
