// Package engine_test cross-checks the affine and Jacobian engines
// against each other, and the bigint and safeint numeric backends
// against each other, the way the reference implementation's test
// suite runs the same property checks against both its ibig and
// num_bigint backends.
package engine_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/cronokirby/weierstrass/curve"
	"github.com/cronokirby/weierstrass/engine/affine"
	"github.com/cronokirby/weierstrass/engine/jacobian"
	"github.com/cronokirby/weierstrass/internal/testrand"
	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/numeric/bigint"
	"github.com/cronokirby/weierstrass/numeric/safeint"
	"github.com/cronokirby/weierstrass/scalarmul"
)

func TestJacobianAgreesWithAffineAcrossCurves(t *testing.T) {
	f := bigint.Factory{}
	for _, d := range curve.All() {
		d := d
		t.Run(d.ID, func(t *testing.T) {
			aff, err := affine.New[bigint.Int](f, d)
			if err != nil {
				t.Fatalf("affine.New: %v", err)
			}
			jac, err := jacobian.New[bigint.Int](f, d)
			if err != nil {
				t.Fatalf("jacobian.New: %v", err)
			}

			r := testrand.NewReader(1)
			for i := 0; i < 5; i++ {
				k, err := numeric.RandRange[bigint.Int](r, f, f.One(), aff.Order())
				if err != nil {
					t.Fatalf("random scalar: %v", err)
				}

				affResult := scalarmul.Binary[bigint.Int](aff, aff.Generator(), k)
				jacResult := jac.ToAffine(scalarmul.Binary[bigint.Int](jac, jac.Generator(), k))

				if !affResult.X.Equal(jacResult.X) || (!affResult.IsZero() && !affResult.Y.Equal(jacResult.Y)) {
					t.Fatalf("affine/jacobian mismatch for k=%s:\naffine=%s\njacobian=%s",
						k.String(), spew.Sdump(affResult), spew.Sdump(jacResult))
				}
			}
		})
	}
}

func TestBigintAndSafeintAgreeOnSecp256k1(t *testing.T) {
	bf := bigint.Factory{}
	sf := safeint.Factory{}
	d := curve.Lookup("secp256k1")

	bigEngine, err := jacobian.New[bigint.Int](bf, d)
	if err != nil {
		t.Fatalf("jacobian.New(bigint): %v", err)
	}
	safeEngine, err := jacobian.New[safeint.Int](sf, d)
	if err != nil {
		t.Fatalf("jacobian.New(safeint): %v", err)
	}

	for k := 0; k < 16; k++ {
		bigK := bf.FromUint64(uint64(k))
		safeK := sf.FromUint64(uint64(k))

		bigResult := bigEngine.ToAffine(scalarmul.Binary[bigint.Int](bigEngine, bigEngine.Generator(), bigK))
		safeResult := safeEngine.ToAffine(scalarmul.Binary[safeint.Int](safeEngine, safeEngine.Generator(), safeK))

		if bigResult.IsZero() != safeResult.IsZero() {
			t.Fatalf("k=%d: identity mismatch between backends", k)
		}
		if bigResult.IsZero() {
			continue
		}
		if !hexEq(bigResult.X.Bytes(), safeResult.X.Bytes()) {
			t.Fatalf("k=%d: X mismatch between bigint and safeint backends", k)
		}
	}
}

func hexEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
