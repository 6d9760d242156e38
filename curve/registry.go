// Package curve holds the static table of standardized short-Weierstrass
// curve parameters (spec §4.1/§6.3) and the generic helpers that decode
// a Descriptor's hex fields into a chosen numeric.Elem[T] backend.
package curve

import (
	"strings"

	"github.com/cronokirby/weierstrass/ecerr"
	"github.com/cronokirby/weierstrass/numeric"
)

// Descriptor is the static tuple (id, a, b, p, g, n, h) of spec §3: a, b,
// p, n, h are uppercase hex byte strings, g is 04 || X || Y in hex.
type Descriptor struct {
	ID string
	A  string
	B  string
	P  string
	G  string
	N  string
	H  string
}

// curveTable is the compatibility surface: any reader of encoded points
// produced against these descriptors expects these exact moduli.
// secp521r1's parameters also appear under the legacy id "secp512r1"
// (see DESIGN.md, spec open question O3): the source labeled this entry
// secp512r1 but its 521-bit modulus and generator are NIST P-521's.
var curveTable = []Descriptor{
	{
		ID: "secp160k1",
		A:  "0000000000000000000000000000000000000000",
		B:  "0000000000000000000000000000000000000007",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73",
		G:  "043B4C382CE37AA192A4019E763036F4F5DD4D7EBB938CF935318FDCED6BC28286531733C3F03C4FEE",
		N:  "0100000000000000000001B8FA16DFAB9ACA16B6B3",
		H:  "01",
	},
	{
		ID: "secp160r1",
		A:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7FFFFFFC",
		B:  "1C97BEFC54BD7A8B65ACF89F81D4D4ADC565FA45",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7FFFFFFF",
		G:  "044A96B5688EF573284664698968C38BB913CBFC8223A628553168947D59DCC912042351377AC5FB32",
		N:  "0100000000000000000001F4C8F927AED3CA752257",
		H:  "01",
	},
	{
		ID: "secp192k1",
		A:  "000000000000000000000000000000000000000000000000",
		B:  "000000000000000000000000000000000000000000000003",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFEE37",
		G:  "04DB4FF10EC057E9AE26B07D0280B7F4341DA5D1B1EAE06C7D9B2F2F6D9C5628A7844163D015BE86344082AA88D95E2F9D",
		N:  "FFFFFFFFFFFFFFFFFFFFFFFFFE26F2FC170F69466A74DEFD8D",
		H:  "01",
	},
	{
		ID: "secp224k1",
		A:  "00000000000000000000000000000000000000000000000000000000",
		B:  "00000000000000000000000000000000000000000000000000000005",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFE56D",
		G:  "04A1455B334DF099DF30FC28A169A467E9E47075A90F7E650EB6B7A45C7E089FED7FBA344282CAFBD6F7E319F7C0B0BD59E2CA4BDB556D61A5",
		N:  "010000000000000000000000000001DCE8D2EC6184CAF0A971769FB1F7",
		H:  "01",
	},
	{
		ID: "secp224r1",
		A:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFE",
		B:  "B4050A850C04B3ABF54132565044B0B7D7BFD8BA270B39432355FFB4",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF000000000000000000000001",
		G:  "04B70E0CBD6BB4BF7F321390B94A03C1D356C21122343280D6115C1D21BD376388B5F723FB4C22DFE6CD4375A05A07476444D5819985007E34",
		N:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFF16A2E0B8F03E13DD29455C5C2A3D",
		H:  "01",
	},
	{
		ID: "secp256k1",
		A:  "0000000000000000000000000000000000000000000000000000000000000000",
		B:  "0000000000000000000000000000000000000000000000000000000000000007",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		G:  "0479BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
		N:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		H:  "01",
	},
	{
		ID: "secp384r1",
		A:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFC",
		B:  "B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF",
		P:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF",
		G:  "04AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB73617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F",
		N:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973",
		H:  "01",
	},
	{
		ID: "secp521r1",
		A:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC",
		B:  "0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00",
		P:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
		G:  "0400C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650",
		N:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409",
		H:  "01",
	},
}

// legacyAliases maps an alternate id to the canonical id it should
// resolve to, preserving the source's (misspelled) label without
// duplicating the parameter row.
var legacyAliases = map[string]string{
	"secp512r1": "secp521r1",
}

// Lookup returns the descriptor whose id matches id. If none matches, it
// returns the first table entry (secp160k1) and does not signal an
// error; this preserves the reference implementation's observable
// behavior (spec §4.1, §9 "Lenient lookup"). Callers that need to
// reject unknown ids should use Contains or MustLookup instead.
func Lookup(id string) Descriptor {
	if canon, ok := legacyAliases[id]; ok {
		id = canon
	}
	for _, d := range curveTable {
		if d.ID == id {
			return d
		}
	}
	return curveTable[0]
}

// Contains reports whether id names a curve in the registry, including
// legacy aliases.
func Contains(id string) bool {
	if _, ok := legacyAliases[id]; ok {
		return true
	}
	for _, d := range curveTable {
		if d.ID == id {
			return true
		}
	}
	return false
}

// MustLookup is the strict counterpart to Lookup: it fails with
// ecerr.NoSuchCurve instead of silently substituting the first curve.
func MustLookup(id string) (Descriptor, error) {
	if !Contains(id) {
		return Descriptor{}, ecerr.New(ecerr.NoSuchCurve, "no curve named %q in registry", id)
	}
	return Lookup(id), nil
}

// All returns every descriptor in the registry, in table order.
func All() []Descriptor {
	out := make([]Descriptor, len(curveTable))
	copy(out, curveTable)
	return out
}

// Prime parses Descriptor.P into T.
func Prime[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) { return f.FromHex(d.P) }

// A parses Descriptor.A into T.
func A[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) { return f.FromHex(d.A) }

// B parses Descriptor.B into T.
func B[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) { return f.FromHex(d.B) }

// Order parses Descriptor.N into T.
func Order[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) { return f.FromHex(d.N) }

// Cofactor parses Descriptor.H into T.
func Cofactor[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) {
	return f.FromHex(d.H)
}

// Gx parses the first half of Descriptor.G (past the leading 04 byte)
// into T.
func Gx[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) {
	gx, _, err := splitG(d.G)
	if err != nil {
		return f.Zero(), err
	}
	return f.FromHex(gx)
}

// Gy parses the second half of Descriptor.G into T.
func Gy[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (T, error) {
	_, gy, err := splitG(d.G)
	if err != nil {
		return f.Zero(), err
	}
	return f.FromHex(gy)
}

func splitG(g string) (gx, gy string, err error) {
	if len(g) < 2 || !strings.EqualFold(g[:2], "04") {
		return "", "", ecerr.New(ecerr.BackendFailure, "malformed generator encoding %q", g)
	}
	rest := g[2:]
	if len(rest)%2 != 0 {
		return "", "", ecerr.New(ecerr.BackendFailure, "malformed generator encoding %q", g)
	}
	half := len(rest) / 2
	return rest[:half], rest[half:], nil
}

// FieldByteLen returns ceil(log2(p)/8), the byte width x and y are
// padded to for both compressed and uncompressed encoding.
func FieldByteLen[T numeric.Elem[T]](f numeric.Factory[T], d Descriptor) (int, error) {
	p, err := Prime[T](f, d)
	if err != nil {
		return 0, err
	}
	return (numeric.BitLen[T](p) + 7) / 8, nil
}
