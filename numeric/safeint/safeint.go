// Package safeint implements numeric.Elem and numeric.Factory on top of
// github.com/cronokirby/safenum, the side-channel-hardened natural
// number type from this module's teacher package. It exists to exercise
// a second, independent numeric backend (spec §6.2's "an implementation
// MAY supply two backends... correctness must be independent of the
// choice") and to keep safenum itself a live, imported dependency
// rather than a stack-list fossil.
//
// safenum.Nat is unsigned and every modular operation takes an explicit
// *safenum.Modulus, which this package constructs on the fly from the
// T value passed in as the modulus argument. That is wasteful compared
// to caching a Modulus per curve, but this module's Non-goals
// explicitly exclude constant-time and performance guarantees, so the
// simpler, always-correct construction is preferred; see DESIGN.md.
package safeint

import (
	"math/big"
	"strings"

	"github.com/cronokirby/safenum"

	"github.com/cronokirby/weierstrass/ecerr"
)

// Int wraps *safenum.Nat to satisfy numeric.Elem[Int].
type Int struct {
	v *safenum.Nat
}

// Factory is the numeric.Factory[Int] implementation for this backend.
type Factory struct{}

func wrap(v *safenum.Nat) Int { return Int{v: v} }

func (Factory) Zero() Int               { return wrap(new(safenum.Nat)) }
func (Factory) One() Int                { return wrap(new(safenum.Nat).SetUint64(1)) }
func (Factory) FromUint64(v uint64) Int { return wrap(new(safenum.Nat).SetUint64(v)) }

func (Factory) FromHex(s string) (Int, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Int{}, ecerr.New(ecerr.BackendFailure, "malformed hex literal %q", s)
	}
	return wrap(new(safenum.Nat).SetBytes(b.Bytes())), nil
}

func (Factory) FromBytes(b []byte) Int { return wrap(new(safenum.Nat).SetBytes(b)) }

// modulusOf builds a *safenum.Modulus representing m's value. safenum
// requires the modulus to be odd for some internal fast paths but
// accepts arbitrary values through ModulusFromNat for the general
// Montgomery-free path used here.
func modulusOf(m Int) *safenum.Modulus {
	return safenum.ModulusFromNat(*m.v)
}

// toBig and fromBig round-trip through math/big only for the handful of
// operations (ordering, plain add/sub) that safenum deliberately does
// not expose as variable-time primitives, since this module's curve
// arithmetic is itself explicitly non-constant-time (see Non-goals).
func toBig(a Int) *big.Int { return new(big.Int).SetBytes(a.v.Bytes()) }

func (a Int) IsZero() bool { return a.v.EqZero() }
func (a Int) IsOne() bool  { return toBig(a).Cmp(big.NewInt(1)) == 0 }
func (a Int) IsOdd() bool {
	b := a.v.Bytes()
	if len(b) == 0 {
		return false
	}
	return b[len(b)-1]&1 == 1
}
func (a Int) Equal(b Int) bool { return toBig(a).Cmp(toBig(b)) == 0 }
func (a Int) Cmp(b Int) int    { return toBig(a).Cmp(toBig(b)) }

func (a Int) Add(b Int) Int {
	cap_ := toBig(a).BitLen() + toBig(b).BitLen() + 64
	return wrap(new(safenum.Nat).Add(a.v, b.v, cap_))
}

func (a Int) Sub(b Int) Int {
	// safenum.Nat has no signed representation; fall back to math/big
	// for the rare unreduced subtraction (interval arithmetic for
	// random sampling), matching the same escape hatch used by Cmp.
	r := new(big.Int).Sub(toBig(a), toBig(b))
	if r.Sign() < 0 {
		r.SetInt64(0)
	}
	return wrap(new(safenum.Nat).SetBytes(r.Bytes()))
}

func (a Int) ModAdd(b, m Int) Int { return wrap(new(safenum.Nat).ModAdd(a.v, b.v, modulusOf(m))) }
func (a Int) ModSub(b, m Int) Int { return wrap(new(safenum.Nat).ModSub(a.v, b.v, modulusOf(m))) }
func (a Int) ModMul(b, m Int) Int { return wrap(new(safenum.Nat).ModMul(a.v, b.v, modulusOf(m))) }

// ModCal is the identity for this backend: every ModAdd/ModSub/ModMul
// result is already reduced into [0, m) because safenum.Nat has no
// negative representation.
func (a Int) ModCal(Int) Int { return wrap(new(safenum.Nat).SetNat(a.v)) }

func (a Int) ModInverse(m Int) (Int, error) {
	mod := modulusOf(m)
	r := new(safenum.Nat).ModInverse(a.v, mod)
	// safenum returns an arbitrary Nat (not a sentinel) when the value
	// is not invertible; detect it the same way math/big callers would
	// have to without a direct gcd check, by verifying the inverse.
	check := new(safenum.Nat).ModMul(a.v, r, mod)
	one := new(safenum.Nat).SetUint64(1)
	if toBig(wrap(check)).Cmp(toBig(wrap(one))) != 0 {
		return Int{}, ecerr.New(ecerr.BackendFailure, "no inverse exists mod p")
	}
	return wrap(r), nil
}

func (a Int) ModPow(exp, m Int) Int {
	return wrap(new(safenum.Nat).Exp(a.v, exp.v, modulusOf(m)))
}

func (a Int) Bytes() []byte { return a.v.Bytes() }

func (a Int) String() string { return toBig(a).Text(16) }
