// Package affine implements the textbook affine group law (spec §4.3):
// one modular inverse per Add/Double. It exists mainly as the
// cross-check oracle for the Jacobian engine (spec §2), but is a
// complete, independently usable Engine on its own.
package affine

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
	g             point.Point[T]
	sqrt          numeric.SqrtParams[T]
}

// New decodes d's parameters into the T backend provided by f and
// returns a ready-to-use affine engine.
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

	return &Engine[T]{
		f:    f,
		a:    a,
		b:    b,
		p:    p,
		n:    n,
		h:    h,
		g:    point.New(f, point.Affine, gx, gy),
		sqrt: sp,
	}, nil
}

func (e *Engine[T]) Zero() point.Point[T]    { return point.ZeroAffine(e.f) }
func (e *Engine[T]) IsZero(p point.Point[T]) bool { return p.IsZero() }
func (e *Engine[T]) Generator() point.Point[T]    { return e.g }
func (e *Engine[T]) Order() T                     { return e.n }
func (e *Engine[T]) Cofactor() T                  { return e.h }
func (e *Engine[T]) Prime() T                     { return e.p }
func (e *Engine[T]) CurveA() T                    { return e.a }
func (e *Engine[T]) CurveB() T                    { return e.b }

// OnCurve reports whether p is the identity or satisfies y² ≡ x³+ax+b.
func (e *Engine[T]) OnCurve(p point.Point[T]) bool {
	if p.IsZero() {
		return true
	}
	lhs := p.Y.ModMul(p.Y, e.p)
	rhs := p.X.ModMul(p.X, e.p).ModMul(p.X, e.p)
	rhs = rhs.ModAdd(e.a.ModMul(p.X, e.p), e.p)
	rhs = rhs.ModAdd(e.b, e.p)
	return lhs.Equal(rhs)
}

// Negate returns (x, p-y, 1); the identity maps to itself.
func (e *Engine[T]) Negate(p point.Point[T]) point.Point[T] {
	if p.IsZero() {
		return e.Zero()
	}
	return point.New(e.f, point.Affine, p.X, e.f.Zero().ModSub(p.Y, e.p))
}

// Double implements spec §4.3's doubling formula.
func (e *Engine[T]) Double(p point.Point[T]) point.Point[T] {
	if p.IsZero() || p.Y.IsZero() {
		return e.Zero()
	}
	two := e.f.FromUint64(2)
	three := e.f.FromUint64(3)

	num := p.X.ModMul(p.X, e.p).ModMul(three, e.p).ModAdd(e.a, e.p)
	den := p.Y.ModMul(two, e.p)
	denInv, err := den.ModInverse(e.p)
	if err != nil {
		// den is zero exactly when p.Y == 0, already excluded above.
		panic("affine: unreachable modular inverse failure in Double: " + err.Error())
	}
	s := num.ModMul(denInv, e.p)

	x3 := s.ModMul(s, e.p).ModSub(p.X, e.p).ModSub(p.X, e.p)
	y3 := s.ModMul(p.X.ModSub(x3, e.p), e.p).ModSub(p.Y, e.p)
	return point.New(e.f, point.Affine, x3, y3)
}

// Add implements spec §4.3's addition formula.
func (e *Engine[T]) Add(p1, p2 point.Point[T]) point.Point[T] {
	if p1.IsZero() {
		return p2
	}
	if p2.IsZero() {
		return p1
	}
	if p1.X.Equal(p2.X) {
		if p1.Y.Equal(p2.Y) {
			return e.Double(p1)
		}
		return e.Zero()
	}

	num := p2.Y.ModSub(p1.Y, e.p)
	den := p2.X.ModSub(p1.X, e.p)
	denInv, err := den.ModInverse(e.p)
	if err != nil {
		panic("affine: unreachable modular inverse failure in Add: " + err.Error())
	}
	s := num.ModMul(denInv, e.p)

	x3 := s.ModMul(s, e.p).ModSub(p1.X, e.p).ModSub(p2.X, e.p)
	y3 := s.ModMul(p1.X.ModSub(x3, e.p), e.p).ModSub(p1.Y, e.p)
	return point.New(e.f, point.Affine, x3, y3)
}

// Equals compares affine coordinates directly after an identity check.
func (e *Engine[T]) Equals(p1, p2 point.Point[T]) bool {
	if p1.IsZero() || p2.IsZero() {
		return p1.IsZero() == p2.IsZero()
	}
	return p1.X.Equal(p2.X) && p1.Y.Equal(p2.Y)
}

// ToAffine is the identity for this engine: every point it produces is
// already affine.
func (e *Engine[T]) ToAffine(p point.Point[T]) point.Point[T] { return p }

// PointFromX recovers y from x via mod_sqrt, choosing the root whose
// parity matches yBit.
func (e *Engine[T]) PointFromX(x T, yBit uint) (point.Point[T], error) {
	alpha := x.ModMul(x, e.p).ModMul(x, e.p).ModAdd(e.a.ModMul(x, e.p), e.p).ModAdd(e.b, e.p)
	y, err := numeric.ModSqrt[T](e.f, alpha, e.p, e.sqrt)
	if err != nil {
		return point.Point[T]{}, ecerr.New(ecerr.NotOnCurve, "x has no square root mod p")
	}
	if boolToBit(y.IsOdd()) != yBit {
		y = e.f.Zero().ModSub(y, e.p)
	}
	return point.New(e.f, point.Affine, x, y), nil
}

// PointFromXY trusts the caller's pair without a membership check.
func (e *Engine[T]) PointFromXY(x, y T) point.Point[T] {
	return point.New(e.f, point.Affine, x, y)
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

func boolToBit(odd bool) uint {
	if odd {
		return 1
	}
	return 0
}
