package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrenfield/trimesh/mesh"
	"github.com/wrenfield/trimesh/types"
)

func TestEdgeSetIsUndirected(t *testing.T) {
	s := mesh.NewEdgeSet()
	s.Add(types.V(2), types.V(5))

	require.True(t, s.Has(2, 5))
	require.True(t, s.Has(5, 2))
	require.False(t, s.Has(2, 6))
}

func TestEdgeSetEmptyHasNothing(t *testing.T) {
	s := mesh.NewEdgeSet()
	require.False(t, s.Has(0, 1))
}
