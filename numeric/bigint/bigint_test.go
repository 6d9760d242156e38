package bigint

import (
	"math/big"
	"testing"

	"github.com/cronokirby/weierstrass/ecerr"
)

func TestModArithmeticAgreesWithBig(t *testing.T) {
	f := Factory{}
	p, _ := f.FromHex("11") // 17, prime

	a, _ := f.FromHex("0D") // 13
	b, _ := f.FromHex("09") // 9

	got := a.ModAdd(b, p).Big()
	want := new(big.Int).Mod(new(big.Int).Add(big.NewInt(13), big.NewInt(9)), big.NewInt(17))
	if got.Cmp(want) != 0 {
		t.Fatalf("ModAdd = %s, want %s", got, want)
	}

	got = a.ModMul(b, p).Big()
	want = new(big.Int).Mod(new(big.Int).Mul(big.NewInt(13), big.NewInt(9)), big.NewInt(17))
	if got.Cmp(want) != 0 {
		t.Fatalf("ModMul = %s, want %s", got, want)
	}
}

func TestModInverse(t *testing.T) {
	f := Factory{}
	p, _ := f.FromHex("11")
	a, _ := f.FromHex("07")

	inv, err := a.ModInverse(p)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	one := a.ModMul(inv, p)
	if !one.IsOne() {
		t.Fatalf("a * a^-1 mod p = %s, want 1", one.Big())
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
	if !errorsIs(err, ecerr.BackendFailure) {
		t.Fatalf("expected BackendFailure, got %v", err)
	}
}

func errorsIs(err error, kind ecerr.Kind) bool {
	e, ok := err.(*ecerr.Error)
	return ok && e.Kind == kind
}

func TestIsOddMatchesLowBit(t *testing.T) {
	f := Factory{}
	odd, _ := f.FromHex("07")
	even, _ := f.FromHex("08")
	if !odd.IsOdd() {
		t.Error("7 should be odd")
	}
	if even.IsOdd() {
		t.Error("8 should be even")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := Factory{}
	x, _ := f.FromHex("DEADBEEF")
	back := f.FromBytes(x.Bytes())
	if !back.Equal(x) {
		t.Fatalf("round trip mismatch: %s != %s", back.Big(), x.Big())
	}
}
