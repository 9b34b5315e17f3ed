package mesh

import "github.com/wrenfield/trimesh/types"

type config struct {
	eps             types.Epsilon
	debugInvariants bool
	defaultBudget   int
}

func newConfig() config {
	return config{
		eps:             types.DefaultEpsilon(),
		debugInvariants: false,
		defaultBudget:   4096,
	}
}
