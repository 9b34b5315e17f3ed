package mesh

import (
	"github.com/wrenfield/trimesh/predicates"
	"github.com/wrenfield/trimesh/types"
)

// LocationKind classifies the result of locating a point against the
// mesh.
type LocationKind int

const (
	// InTriangle means the point lies strictly inside T.
	InTriangle LocationKind = iota
	// OnVertex means the point exactly equals an existing vertex,
	// named by T and the corner slot S.
	OnVertex
	// OnEdge means the point lies exactly on edge S of T.
	OnEdge
	// Outside means the point is outside T, across edge S of T (the
	// first offending edge found).
	Outside
	// Unknown means the walk could not classify the point: it fell off
	// the convex hull, or landed on two collinear edges at once
	// without matching a vertex (an ambiguous degenerate case the
	// original implementation left as a todo!()).
	Unknown
)

// Location is the result of locating a point against the mesh. S is
// meaningful for OnVertex, OnEdge, and Outside; it is the zero value
// otherwise.
type Location struct {
	Kind LocationKind
	T    types.T
	S    types.S
}

// locate classifies p against a single triangle t by three
// orientation tests against its CCW edges.
func (m *Mesh) locate(t types.T, p types.Point) Location {
	tri := m.tris[t]

	for s := types.S(0); s < 3; s++ {
		if p.Equal(m.verts[tri.V[s]]) {
			return Location{Kind: OnVertex, T: t, S: s}
		}
	}

	var colinear []types.S
	var outside types.S
	haveOutside := false

	for s := types.S(0); s < 3; s++ {
		from, to := tri.edgeVerts(s)
		o := predicates.Orient2D(m.verts[from], m.verts[to], p)
		switch {
		case o == 0:
			colinear = append(colinear, s)
		case o < 0:
			if !haveOutside {
				outside = s
				haveOutside = true
			}
		}
	}

	if haveOutside {
		return Location{Kind: Outside, T: t, S: outside}
	}
	if len(colinear) == 1 {
		return Location{Kind: OnEdge, T: t, S: colinear[0]}
	}
	if len(colinear) >= 2 {
		return Location{Kind: Unknown}
	}
	return Location{Kind: InTriangle, T: t}
}

// LocateRecursive walks from triangle 0 toward p, crossing whichever
// edge the orientation tests say p is outside of, until it classifies
// p or falls off the mesh. The walk terminates because each step
// strictly advances toward p; maxSteps is a defensive bound in case
// that invariant is ever violated by a bug.
func (m *Mesh) LocateRecursive(p types.Point) Location {
	cur := types.T(0)
	maxSteps := len(m.tris)*4 + 16

	for step := 0; step < maxSteps; step++ {
		loc := m.locate(cur, p)
		if loc.Kind != Outside {
			return loc
		}
		next := m.tris[cur].N[loc.S]
		if next == types.NilT {
			return Location{Kind: Unknown}
		}
		cur = next
	}
	return Location{Kind: Unknown}
}
