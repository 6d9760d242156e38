// Package jacobian implements the Jacobian-projective group law (spec
// §4.4): X = x·Z², Y = y·Z³, with a single shared inversion deferred
// until ToAffine. This is the fast path real callers use; engine/affine
// exists to cross-check it.
package jacobian

import (
	"io"

	"github.com/cronokirby/weierstrass/curve"
	"github.com/cronokirby/weierstrass/ecerr"
	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/point"
)

// Engine holds the decoded curve constants for a single curve, under a
// single numeric backend T. It is immutable once constructed; every
// method returns a fresh point.Point[T].
type Engine[T numeric.Elem[T]] struct {
	f numeric.Factory[T]

	a, b, p, n, h T
	// aIsPMinus3 selects the fast doubling path (spec §4.4 "a = p-3").
	aIsPMinus3 bool
	g          point.Point[T]
	sqrt       numeric.SqrtParams[T]
}

// New decodes d's parameters into the T backend provided by f and
// returns a ready-to-use Jacobian engine.
func New[T numeric.Elem[T]](f numeric.Factory[T], d curve.Descriptor) (*Engine[T], error) {
	a, err := curve.A[T](f, d)
	if err != nil {
		return nil, err
	}
	b, err := curve.B[T](f, d)
	if err != nil {
		return nil, err
	}
	p, err := curve.Prime[T](f, d)
	if err != nil {
		return nil, err
	}
	n, err := curve.Order[T](f, d)
	if err != nil {
		return nil, err
	}
	h, err := curve.Cofactor[T](f, d)
	if err != nil {
		return nil, err
	}
	gx, err := curve.Gx[T](f, d)
	if err != nil {
		return nil, err
	}
	gy, err := curve.Gy[T](f, d)
	if err != nil {
		return nil, err
	}
	sp, err := curve.SqrtSetup[T](f, d)
	if err != nil {
		return nil, err
	}

	three := f.FromUint64(3)
	pMinus3 := p.Sub(three)

	return &Engine[T]{
		f:          f,
		a:          a,
		b:          b,
		p:          p,
		n:          n,
		h:          h,
		aIsPMinus3: a.Equal(pMinus3),
		g:          point.New(f, point.Jacobian, gx, gy),
		sqrt:       sp,
	}, nil
}

func (e *Engine[T]) Zero() point.Point[T]         { return point.ZeroJacobian(e.f) }
func (e *Engine[T]) IsZero(p point.Point[T]) bool { return p.Z.IsZero() }
func (e *Engine[T]) Generator() point.Point[T]    { return e.g }
func (e *Engine[T]) Order() T                     { return e.n }
func (e *Engine[T]) Cofactor() T                  { return e.h }
func (e *Engine[T]) Prime() T                     { return e.p }
func (e *Engine[T]) CurveA() T                    { return e.a }
func (e *Engine[T]) CurveB() T                    { return e.b }

// OnCurve reports whether p satisfies the curve equation, checked
// affinely. This always normalizes first (spec open question O1): the
// reference implementation's on_curve short-circuits to true whenever
// Z == 1 without checking X, Y at all, which wrongly accepts an
// arbitrary (X, Y, 1) that isn't on the curve. ToAffine is a no-op for
// an already-normalized point, so the fix costs nothing when Z is
// already 1.
func (e *Engine[T]) OnCurve(p point.Point[T]) bool {
	if p.Z.IsZero() {
		return true
	}
	aff := e.ToAffine(p)
	lhs := aff.Y.ModMul(aff.Y, e.p)
	rhs := aff.X.ModMul(aff.X, e.p).ModMul(aff.X, e.p)
	rhs = rhs.ModAdd(e.a.ModMul(aff.X, e.p), e.p)
	rhs = rhs.ModAdd(e.b, e.p)
	return lhs.Equal(rhs)
}

// Negate returns (X, -Y, Z); the identity maps to itself.
func (e *Engine[T]) Negate(p point.Point[T]) point.Point[T] {
	if p.Z.IsZero() {
		return e.Zero()
	}
	return point.Point[T]{System: point.Jacobian, X: p.X, Y: e.f.Zero().ModSub(p.Y, e.p), Z: p.Z}
}

// Double implements spec §4.4's Jacobian doubling, taking the
// specialized a = p-3 formula when applicable and falling back to the
// general one otherwise.
func (e *Engine[T]) Double(p point.Point[T]) point.Point[T] {
	if p.Z.IsZero() || p.Y.IsZero() {
		return e.Zero()
	}

	var m T
	if e.aIsPMinus3 {
		// M = 3(X - Z²)(X + Z²)
		zz := p.Z.ModMul(p.Z, e.p)
		m = p.X.ModSub(zz, e.p).ModMul(p.X.ModAdd(zz, e.p), e.p).ModMul(e.f.FromUint64(3), e.p)
	} else {
		// M = 3X² + a·Z⁴
		zz := p.Z.ModMul(p.Z, e.p)
		z4 := zz.ModMul(zz, e.p)
		m = p.X.ModMul(p.X, e.p).ModMul(e.f.FromUint64(3), e.p).ModAdd(e.a.ModMul(z4, e.p), e.p)
	}

	// S = 4·X·Y²
	yy := p.Y.ModMul(p.Y, e.p)
	s := e.f.FromUint64(4).ModMul(p.X, e.p).ModMul(yy, e.p)

	x3 := m.ModMul(m, e.p).ModSub(e.f.FromUint64(2).ModMul(s, e.p), e.p)
	// Y3 = M(S - X3) - 8·Y⁴
	y3 := m.ModMul(s.ModSub(x3, e.p), e.p).ModSub(e.f.FromUint64(8).ModMul(yy.ModMul(yy, e.p), e.p), e.p)
	// Z3 = 2·Y·Z
	z3 := e.f.FromUint64(2).ModMul(p.Y, e.p).ModMul(p.Z, e.p)

	return point.Point[T]{System: point.Jacobian, X: x3, Y: y3, Z: z3}
}

// Add implements general Jacobian addition using the H/I/J/r/V
// intermediates (H = U2-U1, I = 4H², J = H·I, r = 2(S2-S1), V = U1·I),
// falling back to Double when the two operands coincide.
func (e *Engine[T]) Add(p1, p2 point.Point[T]) point.Point[T] {
	if p1.Z.IsZero() {
		return p2
	}
	if p2.Z.IsZero() {
		return p1
	}

	z1z1 := p1.Z.ModMul(p1.Z, e.p)
	z2z2 := p2.Z.ModMul(p2.Z, e.p)
	u1 := p1.X.ModMul(z2z2, e.p)
	u2 := p2.X.ModMul(z1z1, e.p)
	s1 := p1.Y.ModMul(p2.Z, e.p).ModMul(z2z2, e.p)
	s2 := p2.Y.ModMul(p1.Z, e.p).ModMul(z1z1, e.p)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return e.Zero()
		}
		return e.Double(p1)
	}

	h := u2.ModSub(u1, e.p)
	i := e.f.FromUint64(4).ModMul(h, e.p).ModMul(h, e.p)
	j := h.ModMul(i, e.p)
	r := e.f.FromUint64(2).ModMul(s2.ModSub(s1, e.p), e.p)
	v := u1.ModMul(i, e.p)

	x3 := r.ModMul(r, e.p).ModSub(j, e.p).ModSub(e.f.FromUint64(2).ModMul(v, e.p), e.p)
	y3 := r.ModMul(v.ModSub(x3, e.p), e.p).ModSub(e.f.FromUint64(2).ModMul(s1, e.p).ModMul(j, e.p), e.p)
	z3 := p1.Z.ModAdd(p2.Z, e.p).ModMul(p1.Z.ModAdd(p2.Z, e.p), e.p).ModSub(z1z1, e.p).ModSub(z2z2, e.p).ModMul(h, e.p)

	return point.Point[T]{System: point.Jacobian, X: x3, Y: y3, Z: z3}
}

// Equals compares two Jacobian points by cross-multiplication, without
// normalizing either: p1 == p2 iff X1·Z2² == X2·Z1² and Y1·Z2³ ==
// Y2·Z1³.
func (e *Engine[T]) Equals(p1, p2 point.Point[T]) bool {
	if p1.Z.IsZero() || p2.Z.IsZero() {
		return p1.Z.IsZero() == p2.Z.IsZero()
	}
	z1z1 := p1.Z.ModMul(p1.Z, e.p)
	z2z2 := p2.Z.ModMul(p2.Z, e.p)
	if !p1.X.ModMul(z2z2, e.p).Equal(p2.X.ModMul(z1z1, e.p)) {
		return false
	}
	z1z1z1 := z1z1.ModMul(p1.Z, e.p)
	z2z2z2 := z2z2.ModMul(p2.Z, e.p)
	return p1.Y.ModMul(z2z2z2, e.p).Equal(p2.Y.ModMul(z1z1z1, e.p))
}

// ToAffine normalizes p to Z == 1, i.e. x = X/Z², y = Y/Z³. Spec open
// question O4: the reference implementation's normalize multiplies y
// by itself where y·z⁻³ belongs; this derives z⁻¹ once and applies it
// squared to x and cubed to y.
func (e *Engine[T]) ToAffine(p point.Point[T]) point.Point[T] {
	if p.Z.IsZero() {
		return point.ZeroAffine(e.f)
	}
	if p.Z.IsOne() {
		return point.Point[T]{System: point.Jacobian, X: p.X, Y: p.Y, Z: p.Z}
	}
	zInv, err := p.Z.ModInverse(e.p)
	if err != nil {
		panic("jacobian: unreachable modular inverse failure in ToAffine: " + err.Error())
	}
	zInv2 := zInv.ModMul(zInv, e.p)
	zInv3 := zInv2.ModMul(zInv, e.p)
	x := p.X.ModMul(zInv2, e.p)
	y := p.Y.ModMul(zInv3, e.p)
	return point.Point[T]{System: point.Jacobian, X: x, Y: y, Z: e.f.One()}
}

// PointFromX recovers y from x via mod_sqrt, choosing the root whose
// parity matches yBit, and returns a normalized (Z = 1) point.
func (e *Engine[T]) PointFromX(x T, yBit uint) (point.Point[T], error) {
	alpha := x.ModMul(x, e.p).ModMul(x, e.p).ModAdd(e.a.ModMul(x, e.p), e.p).ModAdd(e.b, e.p)
	y, err := numeric.ModSqrt[T](e.f, alpha, e.p, e.sqrt)
	if err != nil {
		return point.Point[T]{}, ecerr.New(ecerr.NotOnCurve, "x has no square root mod p")
	}
	wantOdd := yBit == 1
	if y.IsOdd() != wantOdd {
		y = e.f.Zero().ModSub(y, e.p)
	}
	return point.Point[T]{System: point.Jacobian, X: x, Y: y, Z: e.f.One()}, nil
}

// PointFromXY trusts the caller's pair without a membership check,
// returning a normalized (Z = 1) point.
func (e *Engine[T]) PointFromXY(x, y T) point.Point[T] {
	return point.Point[T]{System: point.Jacobian, X: x, Y: y, Z: e.f.One()}
}

// GenPoint draws x uniformly from [1, p-1] and retries point_from_x
// with an unconstrained y bit until the result is on the curve.
func (e *Engine[T]) GenPoint(rand io.Reader) (point.Point[T], error) {
	one := e.f.One()
	pMinus1 := e.p.Sub(one)
	for {
		x, err := numeric.RandRange[T](rand, e.f, one, pMinus1)
		if err != nil {
			return point.Point[T]{}, err
		}
		p, err := e.PointFromX(x, 0)
		if err != nil {
			continue
		}
		if e.OnCurve(p) {
			return p, nil
		}
	}
}

// CalcOrder finds the order of p by successive addition (spec §4.4);
// intended only for small test curves.
func (e *Engine[T]) CalcOrder(p point.Point[T]) (T, error) {
	q := e.Zero()
	m := e.f.One()
	limit := e.p.Add(e.f.One())
	for m.Cmp(limit) <= 0 {
		q = e.Add(q, p)
		if e.IsZero(q) {
			return m, nil
		}
		m = m.Add(e.f.One())
	}
	return e.f.Zero(), ecerr.New(ecerr.BackendFailure, "no finite order found for point")
}
