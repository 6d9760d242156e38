// Package bigint implements numeric.Elem and numeric.Factory on top of
// the standard library's math/big.Int. It is the default numeric
// backend: arbitrary precision, no fixed-size caps, the same type
// crypto/elliptic itself uses internally.
package bigint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cronokirby/weierstrass/ecerr"
)

// Int wraps *big.Int to satisfy numeric.Elem[Int]. Every method returns
// a freshly allocated Int; the receiver and argument are never mutated.
type Int struct {
	v *big.Int
}

// Factory is the numeric.Factory[Int] implementation for this backend.
type Factory struct{}

func wrap(v *big.Int) Int { return Int{v: v} }

// New wraps an existing *big.Int by value (the big.Int is copied).
func New(v *big.Int) Int { return Int{v: new(big.Int).Set(v)} }

// Big returns a copy of the underlying *big.Int, for interop with code
// outside this module.
func (a Int) Big() *big.Int { return new(big.Int).Set(a.v) }

func (Factory) Zero() Int         { return wrap(big.NewInt(0)) }
func (Factory) One() Int          { return wrap(big.NewInt(1)) }
func (Factory) FromUint64(v uint64) Int { return wrap(new(big.Int).SetUint64(v)) }

func (Factory) FromHex(s string) (Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 16)
	if !ok {
		return Int{}, ecerr.New(ecerr.BackendFailure, "malformed hex literal %q", s)
	}
	return wrap(v), nil
}

func (Factory) FromBytes(b []byte) Int { return wrap(new(big.Int).SetBytes(b)) }

func (a Int) IsZero() bool { return a.v.Sign() == 0 }
func (a Int) IsOne() bool  { return a.v.Cmp(big.NewInt(1)) == 0 }
func (a Int) IsOdd() bool  { return a.v.Bit(0) == 1 }
func (a Int) Equal(b Int) bool { return a.v.Cmp(b.v) == 0 }
func (a Int) Cmp(b Int) int    { return a.v.Cmp(b.v) }

func (a Int) Add(b Int) Int { return wrap(new(big.Int).Add(a.v, b.v)) }
func (a Int) Sub(b Int) Int { return wrap(new(big.Int).Sub(a.v, b.v)) }

func (a Int) ModAdd(b, m Int) Int {
	r := new(big.Int).Add(a.v, b.v)
	r.Mod(r, m.v)
	return wrap(r)
}

func (a Int) ModSub(b, m Int) Int {
	r := new(big.Int).Sub(a.v, b.v)
	r.Mod(r, m.v)
	return wrap(r)
}

func (a Int) ModMul(b, m Int) Int {
	r := new(big.Int).Mul(a.v, b.v)
	r.Mod(r, m.v)
	return wrap(r)
}

// ModCal normalizes a value that math/big's signed arithmetic may have
// left in (-m, m) into [0, m), mirroring the reference implementation's
// single conditional add.
func (a Int) ModCal(m Int) Int {
	if a.v.Sign() >= 0 && a.v.Cmp(m.v) < 0 {
		return wrap(new(big.Int).Set(a.v))
	}
	r := new(big.Int).Mod(a.v, m.v)
	return wrap(r)
}

func (a Int) ModInverse(m Int) (Int, error) {
	r := new(big.Int).ModInverse(a.v, m.v)
	if r == nil {
		return Int{}, ecerr.New(ecerr.BackendFailure, "no inverse of %s mod %s", a.v, m.v)
	}
	return wrap(r), nil
}

func (a Int) ModPow(exp, m Int) Int {
	return wrap(new(big.Int).Exp(a.v, exp.v, m.v))
}

func (a Int) Bytes() []byte { return a.v.Bytes() }

func (a Int) String() string { return fmt.Sprintf("%X", a.v) }
