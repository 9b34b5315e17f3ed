// Package predicates implements the exact geometric primitives the mesh
// core treats as external collaborators: signed orientation, the
// in-circle test, and line/segment intersection. Orient2D and InCircle
// evaluate a fast float64 path first and fall back to arbitrary
// precision arithmetic (math/big) only when the float64 result falls
// inside the rounding-error envelope of the inputs. SegmentIntersect
// builds on Orient2D and also falls back to math/big for near-parallel
// parameters; LineIntersect has no exact fallback and reports such
// lines as parallel.
package predicates

import (
	"math"
	"math/big"

	"github.com/wrenfield/trimesh/types"
)

// precision is the big.Float mantissa width carried through every
// exact fallback. It's generous relative to the two or three term
// products these predicates actually compute, so no intermediate
// rounds before the final Sign().
const precision = 256

// machineEps is the unit roundoff of float64: half the gap between 1
// and the next representable value. Error bounds are derived from it
// rather than from a fitted constant, so they scale with the actual
// precision of the arithmetic instead of an arbitrary tolerance.
const machineEps = 1.0 / (1 << 53)

// errorBound estimates how large a float64 determinant must be before
// it's trusted over the exact fallback. degree is the polynomial
// degree of the determinant in the input coordinates (2 for an
// orientation test, 4 for an in-circle test), so the bound grows as
// the degree-th power of the largest input magnitude.
func errorBound(degree int, terms ...float64) float64 {
	maxMag := 0.0
	for _, v := range terms {
		if a := math.Abs(v); a > maxMag {
			maxMag = a
		}
	}
	bound := math.Pow(maxMag, float64(degree)) * machineEps
	if bound < machineEps {
		bound = machineEps
	}
	return bound
}

// Orient2D returns the orientation of the ordered triple (a, b, c):
//
//	+1 if the points make a counter-clockwise turn
//	-1 if the points make a clockwise turn
//	 0 if the points are (near) collinear
func Orient2D(a, b, c types.Point) int {
	abx := b.X - a.X
	aby := b.Y - a.Y
	acx := c.X - a.X
	acy := c.Y - a.Y
	det := abx*acy - aby*acx

	eps := errorBound(2, abx, aby, acx, acy)
	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c types.Point) int {
	ab := newExactVec(a, b)
	ac := newExactVec(a, c)
	return ab.cross(ac).Sign()
}

// InCircle reports whether d lies inside (positive), outside
// (negative), or exactly on (zero) the circumcircle of (a, b, c).
// The sign convention assumes (a, b, c) are given in CCW order.
func InCircle(a, b, c, d types.Point) int {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	eps := errorBound(4, adx, ady, bdx, bdy, cdx, cdy)
	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d types.Point) int {
	da := newExactVec(d, a)
	db := newExactVec(d, b)
	dc := newExactVec(d, c)

	ad2 := da.dot(da)
	bd2 := db.dot(db)
	cd2 := dc.dot(dc)

	term1 := new(big.Float).Mul(ad2, db.cross(dc))
	term2 := new(big.Float).Mul(bd2, da.cross(dc))
	term3 := new(big.Float).Mul(cd2, da.cross(db))

	det := new(big.Float).Sub(term1, term2)
	det.Add(det, term3)
	return det.Sign()
}

// SegmentIntersect reports whether the closed segments [p,q] and [r,s]
// intersect. When they meet at a single point, t and u are the
// parametric coordinates of that point along pq and rs respectively,
// each in [0,1]. For a collinear overlap both parameters come back NaN.
func SegmentIntersect(p, q, r, s types.Point) (bool, float64, float64) {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := segmentParams(p, q, r, s)
		return true, t, u
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if overlapLength(p, q, r, s) > 1e-12 {
			return true, math.NaN(), math.NaN()
		}
	}

	if o1 == 0 && onSegment(p, q, r) {
		return true, paramOnSegment(p, q, r), 0
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true, paramOnSegment(p, q, s), 1
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true, 0, paramOnSegment(r, s, p)
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true, 1, paramOnSegment(r, s, q)
	}

	return false, math.NaN(), math.NaN()
}

// LineIntersect computes the intersection of the two infinite lines
// through (p1,p2) and (q1,q2). It reports false when the lines are
// parallel (including coincident).
func LineIntersect(p1, p2, q1, q2 types.Point) (types.Point, bool) {
	r := types.Point{X: p2.X - p1.X, Y: p2.Y - p1.Y}
	s := types.Point{X: q2.X - q1.X, Y: q2.Y - q1.Y}
	d := crossPoints(r, s)
	if nearZero(d, p1, p2, q1, q2) {
		return types.Point{}, false
	}
	diff := types.Point{X: q1.X - p1.X, Y: q1.Y - p1.Y}
	t := crossPoints(diff, s) / d
	return types.Point{X: p1.X + t*r.X, Y: p1.Y + t*r.Y}, true
}

func segmentParams(p, q, r, s types.Point) (float64, float64) {
	pq := types.Point{X: q.X - p.X, Y: q.Y - p.Y}
	rs := types.Point{X: s.X - r.X, Y: s.Y - r.Y}
	diff := types.Point{X: r.X - p.X, Y: r.Y - p.Y}

	den := crossPoints(pq, rs)
	if nearZero(den, p, q, r, s) {
		return segmentParamsExact(p, q, r, s)
	}
	t := crossPoints(diff, rs) / den
	u := crossPoints(diff, pq) / den
	return t, u
}

func segmentParamsExact(p, q, r, s types.Point) (float64, float64) {
	pq := newExactVec(p, q)
	rs := newExactVec(r, s)
	diff := newExactVec(p, r)

	den := pq.cross(rs)
	if den.Sign() == 0 {
		return math.NaN(), math.NaN()
	}
	t, _ := new(big.Float).Quo(diff.cross(rs), den).Float64()
	u, _ := new(big.Float).Quo(diff.cross(pq), den).Float64()
	return t, u
}

func onSegment(a, b, p types.Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-1e-12 && p.X <= maxX+1e-12 && p.Y >= minY-1e-12 && p.Y <= maxY+1e-12
}

func paramOnSegment(a, b, p types.Point) float64 {
	len2 := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	if len2 == 0 {
		return 0
	}
	return ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / len2
}

func overlapLength(a1, a2, b1, b2 types.Point) float64 {
	useX := math.Abs(a1.X-a2.X) >= math.Abs(a1.Y-a2.Y)
	coord := func(p types.Point) float64 {
		if useX {
			return p.X
		}
		return p.Y
	}
	aMin, aMax := minMax(coord(a1), coord(a2))
	bMin, bMax := minMax(coord(b1), coord(b2))
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func crossPoints(a, b types.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func nearZero(den float64, pts ...types.Point) bool {
	terms := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		terms = append(terms, p.X, p.Y)
	}
	return math.Abs(den) <= errorBound(2, terms...)
}

// exactVec is a 2D displacement carried as a pair of arbitrary
// precision big.Float components, so the cross and dot products built
// from it never lose bits to float64 cancellation.
type exactVec struct {
	x, y *big.Float
}

func newExactVec(from, to types.Point) exactVec {
	return exactVec{
		x: bigSub(to.X, from.X),
		y: bigSub(to.Y, from.Y),
	}
}

// cross returns the z-component of v × w.
func (v exactVec) cross(w exactVec) *big.Float {
	return new(big.Float).Sub(
		new(big.Float).Mul(v.x, w.y),
		new(big.Float).Mul(v.y, w.x),
	)
}

// dot returns v · w.
func (v exactVec) dot(w exactVec) *big.Float {
	return new(big.Float).Add(
		new(big.Float).Mul(v.x, w.x),
		new(big.Float).Mul(v.y, w.y),
	)
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(precision).SetFloat64(v)
}

func bigSub(a, b float64) *big.Float {
	return new(big.Float).Sub(bigFloat(a), bigFloat(b))
}
