// Package point defines the coordinate-system-tagged point value shared
// by every curve engine (spec §3/§4.2): a closed two-variant
// discriminant (affine or Jacobian) plus the three backend-generic
// coordinates.
package point

import (
	"encoding/hex"

	"github.com/cronokirby/weierstrass/numeric"
)

// System is the closed set of coordinate systems a Point can carry.
type System int

const (
	// Affine points store (x, y, 1); the identity is (0, 0, 1).
	Affine System = iota
	// Jacobian points store (X, Y, Z) representing affine (X/Z², Y/Z³);
	// the identity has Z = 0.
	Jacobian
)

func (s System) String() string {
	switch s {
	case Affine:
		return "affine"
	case Jacobian:
		return "jacobian"
	default:
		return "unknown"
	}
}

// Point is an immutable curve point value. Callers obtain one from a
// curve engine constructor or operation; engines never hand back a
// value whose System does not match their own coordinate system, except
// where the spec explicitly allows either identity representation.
type Point[T numeric.Elem[T]] struct {
	System System
	X, Y, Z T
}

// ZeroAffine returns the canonical affine identity, (0, 0, 1).
func ZeroAffine[T numeric.Elem[T]](f numeric.Factory[T]) Point[T] {
	return Point[T]{System: Affine, X: f.Zero(), Y: f.Zero(), Z: f.One()}
}

// ZeroJacobian returns the canonical Jacobian identity, (1, 1, 0), the
// arithmetic identity used internally by the Jacobian engine.
func ZeroJacobian[T numeric.Elem[T]](f numeric.Factory[T]) Point[T] {
	return Point[T]{System: Jacobian, X: f.One(), Y: f.One(), Z: f.Zero()}
}

// New constructs a finite point (x, y, 1) in the given coordinate
// system, without any curve-membership check.
func New[T numeric.Elem[T]](f numeric.Factory[T], sys System, x, y T) Point[T] {
	return Point[T]{System: sys, X: x, Y: y, Z: f.One()}
}

// IsZero reports whether p is the point at infinity. Per spec §4.2 this
// accepts either boundary representation: Z == 0, or (X == 0 && Y == 0)
// regardless of Z, since decode boundaries may hand the affine identity
// (0, 0, 1) to code that otherwise expects the canonical form for its
// coordinate system.
func (p Point[T]) IsZero() bool {
	if p.Z.IsZero() {
		return true
	}
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal performs a raw componentwise comparison. It is not curve-aware:
// two Jacobian points representing the same affine point under different
// Z can compare unequal here. Use the owning engine's Equals for
// curve-aware comparison (spec §4.3/§4.4).
func (p Point[T]) Equal(q Point[T]) bool {
	return p.System == q.System && p.X.Equal(q.X) && p.Y.Equal(q.Y) && p.Z.Equal(q.Z)
}

// String renders a point for debugging/test output, matching the
// reference implementation's EcpJ::print format.
func (p Point[T]) String() string {
	return "[" + hex.EncodeToString(p.X.Bytes()) +
		", " + hex.EncodeToString(p.Y.Bytes()) +
		", " + hex.EncodeToString(p.Z.Bytes()) + "]"
}
