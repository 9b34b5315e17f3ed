package mesh

import "github.com/wrenfield/trimesh/types"

// EdgeSet tracks which vertex pairs a caller has designated as
// constraints. The core triangulation does not embed a per-edge
// is-constraint bit; callers that need one (such as package
// visibility) maintain it externally through a set like this one,
// mirroring the teacher's EdgeKey-keyed map approach.
type EdgeSet map[[2]types.V]struct{}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet() EdgeSet {
	return make(EdgeSet)
}

func canonicalPair(a, b types.V) [2]types.V {
	if a <= b {
		return [2]types.V{a, b}
	}
	return [2]types.V{b, a}
}

// Add records (a, b) as a constraint edge.
func (s EdgeSet) Add(a, b types.V) {
	s[canonicalPair(a, b)] = struct{}{}
}

// Has reports whether (a, b) was recorded as a constraint edge.
func (s EdgeSet) Has(a, b types.V) bool {
	_, ok := s[canonicalPair(a, b)]
	return ok
}
