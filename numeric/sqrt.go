package numeric

import "github.com/cronokirby/weierstrass/ecerr"

// SqrtParams holds the curve-specific constants a Tonelli-Shanks square
// root needs: p-1 = Q * 2^S with Q odd, a quadratic non-residue mod p,
// and the precomputed exponent (Q+1)/2 used on the p ≡ 3 (mod 4) fast
// path. These depend only on the field prime, so engines compute them
// once at construction time (see curve.SqrtSetup) instead of
// re-factoring p on every ModSqrt call.
type SqrtParams[T Elem[T]] struct {
	Q           T
	S           int
	NonResidue  T
	QPlus1Over2 T
}

// ModSqrt returns a square root of a modulo p, or ecerr.BackendFailure
// if a is a quadratic non-residue. It implements the general
// Tonelli-Shanks algorithm, with the classic p ≡ 3 (mod 4) shortcut
// (a^((p+1)/4) mod p) taken whenever S == 1, which covers secp256k1,
// secp160k1, secp160r1, secp192k1, secp384r1, and secp521r1 among this
// module's curves. The caller chooses which of the two roots it wants by
// comparing parity against the desired y bit; this function always
// returns the same (unspecified) one of the pair.
func ModSqrt[T Elem[T]](f Factory[T], a, p T, sp SqrtParams[T]) (T, error) {
	if a.IsZero() {
		return f.Zero(), nil
	}

	if sp.S == 1 {
		// p ≡ 3 (mod 4): Q = (p-1)/2, QPlus1Over2 = (p+1)/4.
		r := a.ModPow(sp.QPlus1Over2, p)
		if !r.ModMul(r, p).Equal(a) {
			return f.Zero(), ecerr.New(ecerr.BackendFailure, "no square root exists mod p")
		}
		return r, nil
	}

	// General Tonelli-Shanks.
	c := sp.NonResidue.ModPow(sp.Q, p)
	t := a.ModPow(sp.Q, p)
	r := a.ModPow(sp.QPlus1Over2, p)
	m := sp.S

	one := f.One()
	for !t.Equal(one) {
		if t.IsZero() {
			return f.Zero(), ecerr.New(ecerr.BackendFailure, "no square root exists mod p")
		}
		// Find the least i in (0, m) such that t^(2^i) == 1.
		i := 0
		tt := t
		for !tt.Equal(one) {
			i++
			if i >= m {
				return f.Zero(), ecerr.New(ecerr.BackendFailure, "no square root exists mod p")
			}
			tt = tt.ModMul(tt, p)
		}

		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.ModMul(b, p)
		}
		r = r.ModMul(b, p)
		c = b.ModMul(b, p)
		t = t.ModMul(c, p)
		m = i
	}

	if !r.ModMul(r, p).Equal(a) {
		return f.Zero(), ecerr.New(ecerr.BackendFailure, "no square root exists mod p")
	}
	return r, nil
}
