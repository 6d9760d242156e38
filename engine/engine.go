// Package engine declares the shared group-law contract both the affine
// (engine/affine) and Jacobian (engine/jacobian) curve engines satisfy,
// so that scalarmul and encoding — and the cross-engine property tests —
// can be written once, generically, against either.
package engine

import (
	"io"

	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/point"
)

// Engine is the group-law contract of spec §4.3/§4.4, independent of
// which coordinate system backs it.
type Engine[T numeric.Elem[T]] interface {
	// Zero returns this engine's canonical representation of the point
	// at infinity.
	Zero() point.Point[T]
	// IsZero reports whether p is the identity.
	IsZero(p point.Point[T]) bool
	// OnCurve reports whether p satisfies the curve equation (or is the
	// identity).
	OnCurve(p point.Point[T]) bool
	// Negate returns -p.
	Negate(p point.Point[T]) point.Point[T]
	// Double returns p+p.
	Double(p point.Point[T]) point.Point[T]
	// Add returns p1+p2.
	Add(p1, p2 point.Point[T]) point.Point[T]
	// Equals performs curve-aware equality, comparing the affine points
	// the two values represent without necessarily normalizing either.
	Equals(p1, p2 point.Point[T]) bool
	// ToAffine returns a normalized copy of p with Z == 1.
	ToAffine(p point.Point[T]) point.Point[T]
	// PointFromX recovers a point with the given x coordinate and a y
	// whose parity matches yBit (0 or 1).
	PointFromX(x T, yBit uint) (point.Point[T], error)
	// PointFromXY trusts the caller's (x, y) pair without a membership
	// check (spec §5, "Supplemented Features").
	PointFromXY(x, y T) point.Point[T]
	// GenPoint draws a uniformly random point on the curve, reading
	// randomness from rand (crypto/rand.Reader if nil).
	GenPoint(rand io.Reader) (point.Point[T], error)
	// CalcOrder finds the order of p by successive addition; intended
	// only for test oracles on small curves (spec §4.4).
	CalcOrder(p point.Point[T]) (T, error)
	// Generator returns the curve's base point G.
	Generator() point.Point[T]
	Order() T
	Cofactor() T
	Prime() T
	CurveA() T
	CurveB() T
}
