package safeint

import (
	"testing"

	"github.com/cronokirby/weierstrass/ecerr"
)

func TestModArithmetic(t *testing.T) {
	f := Factory{}
	p, _ := f.FromHex("11") // 17

	a, _ := f.FromHex("0D") // 13
	b, _ := f.FromHex("09") // 9

	sum := a.ModAdd(b, p)
	want, _ := f.FromHex("05") // (13+9) mod 17 = 5
	if !sum.Equal(want) {
		t.Fatalf("ModAdd = %s, want %s", sum.String(), want.String())
	}

	prod := a.ModMul(b, p)
	if prodVal := toBig(prod); prodVal.Int64() != (13*9)%17 {
		t.Fatalf("ModMul = %d, want %d", prodVal.Int64(), (13*9)%17)
	}
}

func TestModInverseRoundTrip(t *testing.T) {
	f := Factory{}
	p, _ := f.FromHex("11")
	a, _ := f.FromHex("07")

	inv, err := a.ModInverse(p)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	one := a.ModMul(inv, p)
	if !one.IsOne() {
		t.Fatalf("a * a^-1 mod p = %s, want 1", one.String())
	}
}

func TestModInverseOfZeroFails(t *testing.T) {
	f := Factory{}
	p, _ := f.FromHex("11")
	zero := f.Zero()

	_, err := zero.ModInverse(p)
	if err == nil {
		t.Fatal("expected error inverting zero")
	}
	e, ok := err.(*ecerr.Error)
	if !ok || e.Kind != ecerr.BackendFailure {
		t.Fatalf("expected BackendFailure, got %v", err)
	}
}

func TestCmpAndEqual(t *testing.T) {
	f := Factory{}
	a, _ := f.FromHex("0A")
	b, _ := f.FromHex("0B")

	if a.Cmp(b) >= 0 {
		t.Errorf("10 should be < 11")
	}
	if !a.Equal(a) {
		t.Errorf("a should equal itself")
	}
}

func TestSubSaturatesAtZero(t *testing.T) {
	f := Factory{}
	small, _ := f.FromHex("02")
	big_, _ := f.FromHex("05")

	if got := small.Sub(big_); !got.IsZero() {
		t.Fatalf("Sub should saturate to zero, got %s", got.String())
	}
}
