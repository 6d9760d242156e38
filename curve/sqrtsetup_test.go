package curve_test

import (
	"testing"

	"github.com/cronokirby/weierstrass/curve"
	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/numeric/bigint"
)

func TestSqrtSetupProducesValidNonResidue(t *testing.T) {
	f := bigint.Factory{}
	for _, d := range curve.All() {
		sp, err := curve.SqrtSetup[bigint.Int](f, d)
		if err != nil {
			t.Fatalf("%s: SqrtSetup: %v", d.ID, err)
		}
		p, _ := curve.Prime[bigint.Int](f, d)

		// Q * 2^S should equal p-1.
		q := sp.Q
		for i := 0; i < sp.S; i++ {
			q = q.Add(q)
		}
		pMinus1 := p.Sub(f.One())
		if !q.Equal(pMinus1) {
			t.Errorf("%s: Q << S = %s, want p-1 = %s", d.ID, q.Big(), pMinus1.Big())
		}
	}
}

// TestSqrtParamsAgreeWithModSqrt is the real acceptance test for
// SqrtSetup: every curve's generator's y coordinate must be a valid
// square root of its own square, recovered through the params SqrtSetup
// produced.
func TestSqrtParamsAgreeWithModSqrt(t *testing.T) {
	f := bigint.Factory{}
	for _, d := range curve.All() {
		sp, err := curve.SqrtSetup[bigint.Int](f, d)
		if err != nil {
			t.Fatalf("%s: SqrtSetup: %v", d.ID, err)
		}
		p, _ := curve.Prime[bigint.Int](f, d)
		gy, _ := curve.Gy[bigint.Int](f, d)

		alpha := gy.ModMul(gy, p)
		root, err := numeric.ModSqrt[bigint.Int](f, alpha, p, sp)
		if err != nil {
			t.Fatalf("%s: ModSqrt: %v", d.ID, err)
		}
		square := root.ModMul(root, p)
		if !square.Equal(alpha) {
			t.Errorf("%s: recovered root doesn't square back to alpha", d.ID)
		}
	}
}
