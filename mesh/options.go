package mesh

import "github.com/wrenfield/trimesh/types"

// Option configures a Mesh at construction time, following the same
// functional-options shape the teacher repo uses for its mesh
// constructor.
type Option func(*config)

// WithEpsilon sets the tolerance that Mesh.Epsilon reports. The mesh's
// own checks do not read it: point equality is bitwise and the
// predicates derive their own error bounds.
func WithEpsilon(eps types.Epsilon) Option {
	return func(c *config) {
		c.eps = eps
	}
}

// WithDebugInvariants enables the post-mutation invariant sweep (I1,
// I2 and I5; see checkInvariants).
// It is off by default because it walks every triangle and is meant
// for tests and development, not hot-path inserts.
func WithDebugInvariants(enabled bool) Option {
	return func(c *config) {
		c.debugInvariants = enabled
	}
}

// WithStepBudget sets the step count of the Budget that DefaultBudget
// returns. Insert and ConstrainEdge always draw from the Budget passed
// to them; they do not fall back to this default.
func WithStepBudget(steps int) Option {
	return func(c *config) {
		c.defaultBudget = steps
	}
}
