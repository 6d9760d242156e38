// Package scalarmul implements the two scalar-multiplication strategies
// of spec §4.5, written once against the engine.Engine[T] interface so
// either coordinate system, under either numeric backend, gets both for
// free.
package scalarmul

import (
	"github.com/cronokirby/weierstrass/engine"
	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/point"
)

// Binary computes k*p by left-to-right double-and-add over k's bits,
// most significant first.
func Binary[T numeric.Elem[T]](e engine.Engine[T], p point.Point[T], k T) point.Point[T] {
	bits := bitsOf(k)
	acc := e.Zero()
	for _, bit := range bits {
		acc = e.Double(acc)
		if bit {
			acc = e.Add(acc, p)
		}
	}
	return acc
}

// Window computes k*p using a fixed width-4 windowed method: it
// precomputes T[i] = i*p for i in [0, 16) and processes k four bits at
// a time, most significant nibble first.
func Window[T numeric.Elem[T]](e engine.Engine[T], p point.Point[T], k T) point.Point[T] {
	var table [16]point.Point[T]
	table[0] = e.Zero()
	table[1] = p
	for i := 2; i < 16; i++ {
		table[i] = e.Add(table[i-1], p)
	}

	nibbles := nibblesOf(k)
	acc := e.Zero()
	for _, nb := range nibbles {
		acc = e.Double(acc)
		acc = e.Double(acc)
		acc = e.Double(acc)
		acc = e.Double(acc)
		acc = e.Add(acc, table[nb])
	}
	return acc
}

// bitsOf returns k's bits, most significant first, with no leading
// zero bits (the zero value yields an empty slice, so Binary(e, p, 0)
// returns the identity without looping).
func bitsOf[T numeric.Elem[T]](k T) []bool {
	b := k.Bytes()
	bits := make([]bool, 0, len(b)*8)
	started := false
	for _, by := range b {
		for i := 7; i >= 0; i-- {
			bit := (by>>uint(i))&1 == 1
			if !bit && !started {
				continue
			}
			started = true
			bits = append(bits, bit)
		}
	}
	return bits
}

// nibblesOf returns k's 4-bit digits, most significant first, with no
// leading zero nibbles.
func nibblesOf[T numeric.Elem[T]](k T) []uint8 {
	bits := bitsOf(k)
	// Left-pad to a multiple of 4 so the bit stream splits evenly.
	if pad := (4 - len(bits)%4) % 4; pad != 0 {
		padded := make([]bool, pad, pad+len(bits))
		bits = append(padded, bits...)
	}
	nibbles := make([]uint8, 0, len(bits)/4)
	for i := 0; i < len(bits); i += 4 {
		var n uint8
		for j := 0; j < 4; j++ {
			n <<= 1
			if bits[i+j] {
				n |= 1
			}
		}
		nibbles = append(nibbles, n)
	}
	return nibbles
}
