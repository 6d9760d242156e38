// Package elliptic adapts this module's curve engines to the
// crypto/elliptic-shaped Curve interface: Params/IsOnCurve/Add/Double/
// ScalarMult/ScalarBaseMult plus Marshal/Unmarshal helpers, for callers
// that want to drop one of this module's curves into code written
// against that older, narrower API instead of importing engine/point
// directly.
package elliptic

import (
	"io"
	"math/big"
	"sync"

	"github.com/cronokirby/weierstrass/curve"
	"github.com/cronokirby/weierstrass/encoding"
	"github.com/cronokirby/weierstrass/engine"
	"github.com/cronokirby/weierstrass/engine/jacobian"
	"github.com/cronokirby/weierstrass/numeric/bigint"
	"github.com/cronokirby/weierstrass/point"
)

// Curve is the crypto/elliptic-shaped interface this package's curves
// satisfy. Unlike the standard library's, arithmetic here is not
// constant-time (this module's Non-goals exclude side-channel
// hardening); it exists for interop, not for use with secret scalars.
type Curve interface {
	Params() *CurveParams
	IsOnCurve(x, y *big.Int) bool
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int)
	Double(x1, y1 *big.Int) (x, y *big.Int)
	ScalarMult(x1, y1 *big.Int, k []byte) (x, y *big.Int)
	ScalarBaseMult(k []byte) (x, y *big.Int)
}

// CurveParams mirrors crypto/elliptic.CurveParams' public fields, so
// code that pattern-matches on them for serialization or logging keeps
// working against a curve from this package.
type CurveParams struct {
	P       *big.Int
	N       *big.Int
	B       *big.Int
	Gx, Gy  *big.Int
	BitSize int
	Name    string
}

// adaptedCurve wraps this module's Jacobian engine (under the bigint
// backend, since Curve's methods are expressed in terms of *big.Int)
// behind the Curve interface.
type adaptedCurve struct {
	params *CurveParams
	eng    *jacobian.Engine[bigint.Int]
	fbl    int
}

func newAdaptedCurve(id string) *adaptedCurve {
	f := bigint.Factory{}
	d, err := curve.MustLookup(id)
	if err != nil {
		panic("elliptic: " + err.Error())
	}
	eng, err := jacobian.New[bigint.Int](f, d)
	if err != nil {
		panic("elliptic: " + err.Error())
	}
	fbl, err := curve.FieldByteLen[bigint.Int](f, d)
	if err != nil {
		panic("elliptic: " + err.Error())
	}
	p := eng.Prime().Big()
	return &adaptedCurve{
		params: &CurveParams{
			P:       p,
			N:       eng.Order().Big(),
			B:       eng.CurveB().Big(),
			Gx:      eng.Generator().X.Big(),
			Gy:      eng.Generator().Y.Big(),
			BitSize: p.BitLen(),
			Name:    d.ID,
		},
		eng: eng,
		fbl: fbl,
	}
}

func (c *adaptedCurve) Params() *CurveParams { return c.params }

func (c *adaptedCurve) IsOnCurve(x, y *big.Int) bool {
	f := bigint.Factory{}
	p := point.New(f, point.Jacobian, bigint.New(x), bigint.New(y))
	return c.eng.OnCurve(p)
}

func (c *adaptedCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	f := bigint.Factory{}
	p1 := point.New(f, point.Jacobian, bigint.New(x1), bigint.New(y1))
	p2 := point.New(f, point.Jacobian, bigint.New(x2), bigint.New(y2))
	sum := c.eng.ToAffine(c.eng.Add(p1, p2))
	return affineBig(sum)
}

func (c *adaptedCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	f := bigint.Factory{}
	p1 := point.New(f, point.Jacobian, bigint.New(x1), bigint.New(y1))
	doubled := c.eng.ToAffine(c.eng.Double(p1))
	return affineBig(doubled)
}

func (c *adaptedCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	f := bigint.Factory{}
	p1 := point.New(f, point.Jacobian, bigint.New(x1), bigint.New(y1))
	result := c.eng.ToAffine(scalarMulBinary(c.eng, p1, f.FromBytes(k)))
	return affineBig(result)
}

func (c *adaptedCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	f := bigint.Factory{}
	result := c.eng.ToAffine(scalarMulBinary(c.eng, c.eng.Generator(), f.FromBytes(k)))
	return affineBig(result)
}

// scalarMulBinary is the same left-to-right double-and-add as
// scalarmul.Binary, inlined here to keep this package's sole
// dependency on the engine layer free of a direct import of
// scalarmul's generic signature (which would otherwise force every
// caller of this compatibility shim to also import the generic
// engine.Engine type).
func scalarMulBinary(e engine.Engine[bigint.Int], p point.Point[bigint.Int], k bigint.Int) point.Point[bigint.Int] {
	acc := e.Zero()
	started := false
	for _, b := range k.Bytes() {
		for i := 7; i >= 0; i-- {
			bit := (b>>uint(i))&1 == 1
			if !bit && !started {
				continue
			}
			started = true
			acc = e.Double(acc)
			if bit {
				acc = e.Add(acc, p)
			}
		}
	}
	return acc
}

func affineBig(p point.Point[bigint.Int]) (*big.Int, *big.Int) {
	if p.IsZero() {
		return new(big.Int), new(big.Int)
	}
	return p.X.Big(), p.Y.Big()
}

// Marshal converts a point on the curve into the uncompressed form
// specified in section 4.3.6 of ANSI X9.62, delegating to this
// module's encoding package.
func Marshal(c Curve, x, y *big.Int) []byte {
	ac, ok := c.(*adaptedCurve)
	if !ok {
		panic("elliptic: Marshal requires a curve from this package")
	}
	f := bigint.Factory{}
	p := point.New(f, point.Jacobian, bigint.New(x), bigint.New(y))
	return encoding.EncodeUncompressed[bigint.Int](ac.eng, p, ac.fbl)
}

// MarshalCompressed converts a point on the curve into the compressed
// form specified in section 4.3.6 of ANSI X9.62.
func MarshalCompressed(c Curve, x, y *big.Int) []byte {
	ac, ok := c.(*adaptedCurve)
	if !ok {
		panic("elliptic: MarshalCompressed requires a curve from this package")
	}
	f := bigint.Factory{}
	p := point.New(f, point.Jacobian, bigint.New(x), bigint.New(y))
	return encoding.Encode[bigint.Int](ac.eng, p, ac.fbl)
}

// Unmarshal converts a point serialized by Marshal into an (x, y)
// pair. It returns (nil, nil) if the encoding is malformed or the
// point fails curve membership.
func Unmarshal(c Curve, data []byte) (x, y *big.Int) {
	ac, ok := c.(*adaptedCurve)
	if !ok {
		return nil, nil
	}
	if len(data) == 0 || data[0] != 0x04 {
		return nil, nil
	}
	f := bigint.Factory{}
	p, err := encoding.Decode[bigint.Int](ac.eng, f, data, ac.fbl)
	if err != nil {
		return nil, nil
	}
	return affineBig(p)
}

// UnmarshalCompressed converts a point serialized by MarshalCompressed
// into an (x, y) pair, recovering y via the curve's point_from_x.
func UnmarshalCompressed(c Curve, data []byte) (x, y *big.Int) {
	ac, ok := c.(*adaptedCurve)
	if !ok {
		return nil, nil
	}
	if len(data) == 0 || (data[0] != 0x02 && data[0] != 0x03) {
		return nil, nil
	}
	f := bigint.Factory{}
	p, err := encoding.Decode[bigint.Int](ac.eng, f, data, ac.fbl)
	if err != nil {
		return nil, nil
	}
	return affineBig(p)
}

var mask = []byte{0xff, 0x1, 0x3, 0x7, 0xf, 0x1f, 0x3f, 0x7f}

// GenerateKey returns a public/private key pair, sampling the private
// scalar from rand and rejecting out-of-range draws the way the
// reference crypto/elliptic.GenerateKey does.
func GenerateKey(c Curve, rand io.Reader) (priv []byte, x, y *big.Int, err error) {
	n := c.Params().N
	bitSize := n.BitLen()
	byteLen := (bitSize + 7) / 8
	priv = make([]byte, byteLen)

	for x == nil {
		if _, err = io.ReadFull(rand, priv); err != nil {
			return
		}
		priv[0] &= mask[bitSize%8]
		priv[1] ^= 0x42

		if new(big.Int).SetBytes(priv).Cmp(n) >= 0 {
			continue
		}
		x, y = c.ScalarBaseMult(priv)
	}
	return
}

var (
	onceRegistry sync.Once
	registry     map[string]*adaptedCurve
)

func ensureRegistry() {
	onceRegistry.Do(func() {
		registry = make(map[string]*adaptedCurve)
		for _, d := range curve.All() {
			registry[d.ID] = newAdaptedCurve(d.ID)
		}
	})
}

// ByName returns the Curve for one of this module's registered curve
// ids (e.g. "secp256k1", "secp521r1"), constructing and caching it on
// first use. It panics if id is not in the registry; use
// curve.Contains to check first if the id comes from untrusted input.
func ByName(id string) Curve {
	ensureRegistry()
	c, ok := registry[id]
	if !ok && curve.Contains(id) {
		c, ok = registry[curve.Lookup(id).ID]
	}
	if !ok {
		panic("elliptic: no such curve " + id)
	}
	return c
}

// P256K1 returns a Curve implementing secp256k1, the curve used by
// Bitcoin and Ethereum. Multiple invocations return the same value.
func P256K1() Curve { return ByName("secp256k1") }

// P521 returns a Curve implementing secp521r1 (NIST P-521), also
// reachable under this module's legacy alias "secp512r1"
// (see DESIGN.md). Multiple invocations return the same value.
func P521() Curve { return ByName("secp521r1") }

// P384 returns a Curve implementing secp384r1 (NIST P-384). Multiple
// invocations return the same value.
func P384() Curve { return ByName("secp384r1") }
