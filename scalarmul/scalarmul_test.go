package scalarmul_test

import (
	"testing"

	"github.com/cronokirby/weierstrass/curve"
	"github.com/cronokirby/weierstrass/engine/affine"
	"github.com/cronokirby/weierstrass/engine/jacobian"
	"github.com/cronokirby/weierstrass/numeric/bigint"
	"github.com/cronokirby/weierstrass/scalarmul"
)

var toyCurve = curve.Descriptor{
	ID: "toy97",
	A:  "02",
	B:  "03",
	P:  "61",
	G:  "040306",
	N:  "05",
	H:  "01",
}

func TestBinaryMatchesRepeatedAdditionAffine(t *testing.T) {
	f := bigint.Factory{}
	e, err := affine.New[bigint.Int](f, toyCurve)
	if err != nil {
		t.Fatal(err)
	}
	g := e.Generator()

	for k := 0; k < 6; k++ {
		kT := f.FromUint64(uint64(k))
		got := scalarmul.Binary[bigint.Int](e, g, kT)

		want := e.Zero()
		for i := 0; i < k; i++ {
			want = e.Add(want, g)
		}
		if !e.Equals(got, want) {
			t.Errorf("Binary(%d*g) mismatch", k)
		}
	}
}

func TestWindowMatchesBinaryJacobian(t *testing.T) {
	f := bigint.Factory{}
	e, err := jacobian.New[bigint.Int](f, toyCurve)
	if err != nil {
		t.Fatal(err)
	}
	g := e.Generator()

	for k := 0; k < 20; k++ {
		kT := f.FromUint64(uint64(k))
		binResult := scalarmul.Binary[bigint.Int](e, g, kT)
		winResult := scalarmul.Window[bigint.Int](e, g, kT)
		if !e.Equals(binResult, winResult) {
			t.Errorf("Window(%d*g) != Binary(%d*g)", k, k)
		}
	}
}

func TestScalarMulByZeroIsIdentity(t *testing.T) {
	f := bigint.Factory{}
	e, err := affine.New[bigint.Int](f, toyCurve)
	if err != nil {
		t.Fatal(err)
	}
	g := e.Generator()
	zero := f.Zero()
	if !e.IsZero(scalarmul.Binary[bigint.Int](e, g, zero)) {
		t.Fatal("0 * g should be the identity (Binary)")
	}
	if !e.IsZero(scalarmul.Window[bigint.Int](e, g, zero)) {
		t.Fatal("0 * g should be the identity (Window)")
	}
}

func TestScalarMulByOrderIsIdentity(t *testing.T) {
	f := bigint.Factory{}
	e, err := affine.New[bigint.Int](f, toyCurve)
	if err != nil {
		t.Fatal(err)
	}
	g := e.Generator()
	order, _ := f.FromHex("05")
	if !e.IsZero(scalarmul.Binary[bigint.Int](e, g, order)) {
		t.Fatal("order * g should be the identity")
	}
}
