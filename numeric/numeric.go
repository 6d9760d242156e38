// Package numeric declares the capability interface the curve engines
// require from their big-integer backend (spec §6.2). It is deliberately
// thin: every method here is something both the math/big-backed
// numeric/bigint package and the safenum-backed numeric/safeint package
// can implement, so that any curve engine written against Elem[T] works
// unchanged against either backend.
//
// The type parameter is F-bounded (Elem[T] requires T to itself satisfy
// Elem[T]) rather than a plain interface, since every arithmetic method
// needs to hand back a same-typed result; this is the Go analogue of the
// generic `Number` trait the reference implementation expresses in Rust.
package numeric

import (
	"crypto/rand"
	"errors"
	"io"
)

// Elem is a field element (or any other big integer) backed by one of
// this module's numeric backends. All arithmetic methods return a fresh
// value; none mutate the receiver or the argument.
type Elem[T any] interface {
	IsZero() bool
	IsOne() bool
	// IsOdd reports the parity of the value, used for SEC1 compression.
	IsOdd() bool
	Equal(other T) bool
	// Cmp returns -1, 0, or +1 as the receiver is less than, equal to,
	// or greater than other.
	Cmp(other T) int

	// Add and Sub are plain, unreduced arithmetic, used only where the
	// curve code is not working modulo p (constructing intervals for
	// random sampling, deriving n+1 for order bounds, and so on).
	Add(other T) T
	Sub(other T) T

	ModAdd(other, m T) T
	ModSub(other, m T) T
	ModMul(other, m T) T
	// ModCal normalizes a value that is at most one modulus away from
	// [0, m) into that range. It mirrors the reference implementation's
	// mod_cal: most arithmetic here already returns a reduced value via
	// ModAdd/ModSub/ModMul, so for a natively-unsigned backend ModCal is
	// the identity; for a signed backend it performs the single
	// conditional add the original relies on.
	ModCal(m T) T
	// ModInverse returns the multiplicative inverse of the receiver mod
	// m. Fails with ecerr.BackendFailure if gcd(receiver, m) != 1.
	ModInverse(m T) (T, error)
	// ModPow returns receiver^exp mod m.
	ModPow(exp, m T) T

	// Bytes returns the big-endian, minimal-length encoding of the
	// value (no leading zero bytes, empty slice for zero).
	Bytes() []byte
}

// Factory constructs values of a concrete Elem[T] implementation. Each
// numeric backend provides exactly one Factory implementation.
type Factory[T Elem[T]] interface {
	Zero() T
	One() T
	FromUint64(v uint64) T
	// FromHex parses an ASCII (upper- or lower-case) hex string, as
	// found in the static curve parameter table, into T.
	FromHex(s string) (T, error)
	// FromBytes parses a big-endian byte string into T.
	FromBytes(b []byte) T
}

// BitLen returns the bit length of x's big-endian encoding, i.e. the
// position of its highest set bit plus one (0 for the zero value). It is
// implemented purely in terms of Bytes so neither backend needs to
// expose its own bit-length primitive.
func BitLen[T Elem[T]](x T) int {
	b := x.Bytes()
	if len(b) == 0 {
		return 0
	}
	n := (len(b) - 1) * 8
	top := b[0]
	for top != 0 {
		n++
		top >>= 1
	}
	return n
}

// ErrEmptyRange is returned by RandRange when high < low.
var ErrEmptyRange = errors.New("numeric: invalid range, high < low")

// RandRange draws a uniform value in the closed interval [low, high]
// from r by rejection sampling, the gen_rand capability of spec §6.2.
// r defaults to crypto/rand.Reader when nil.
func RandRange[T Elem[T]](r io.Reader, f Factory[T], low, high T) (T, error) {
	if r == nil {
		r = rand.Reader
	}
	if high.Cmp(low) < 0 {
		var zero T
		return zero, ErrEmptyRange
	}
	span := high.Sub(low)
	byteLen := (BitLen(span) + 8) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			var zero T
			return zero, err
		}
		cand := f.FromBytes(buf)
		if cand.Cmp(span) <= 0 {
			return cand.Add(low), nil
		}
	}
}
