package point_test

import (
	"testing"

	"github.com/cronokirby/weierstrass/numeric/bigint"
	"github.com/cronokirby/weierstrass/point"
)

func TestZeroAffineIsZero(t *testing.T) {
	f := bigint.Factory{}
	z := point.ZeroAffine[bigint.Int](f)
	if !z.IsZero() {
		t.Fatal("ZeroAffine should be zero")
	}
	if z.System != point.Affine {
		t.Fatalf("ZeroAffine system = %v, want Affine", z.System)
	}
}

func TestZeroJacobianIsZero(t *testing.T) {
	f := bigint.Factory{}
	z := point.ZeroJacobian[bigint.Int](f)
	if !z.IsZero() {
		t.Fatal("ZeroJacobian should be zero")
	}
	if z.System != point.Jacobian {
		t.Fatalf("ZeroJacobian system = %v, want Jacobian", z.System)
	}
}

func TestNewPointIsNotZero(t *testing.T) {
	f := bigint.Factory{}
	x, _ := f.FromHex("05")
	y, _ := f.FromHex("07")
	p := point.New(f, point.Affine, x, y)
	if p.IsZero() {
		t.Fatal("a finite point should not be zero")
	}
}

func TestEqualIsSystemSensitive(t *testing.T) {
	f := bigint.Factory{}
	x, _ := f.FromHex("05")
	y, _ := f.FromHex("07")
	a := point.New(f, point.Affine, x, y)
	b := point.New(f, point.Jacobian, x, y)
	if a.Equal(b) {
		t.Fatal("points in different systems should not compare equal")
	}
}

func TestSystemString(t *testing.T) {
	if point.Affine.String() != "affine" {
		t.Errorf("Affine.String() = %q", point.Affine.String())
	}
	if point.Jacobian.String() != "jacobian" {
		t.Errorf("Jacobian.String() = %q", point.Jacobian.String())
	}
}
