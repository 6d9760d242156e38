// Package encoding implements the SEC1 point encodings of spec §6.3:
// the identity as a single 0x00 byte, compressed points as
// 0x02/0x03 || X, and uncompressed points as 0x04 || X || Y, with X and
// Y left-padded to the field's byte length.
package encoding

import (
	"github.com/cronokirby/weierstrass/ecerr"
	"github.com/cronokirby/weierstrass/engine"
	"github.com/cronokirby/weierstrass/numeric"
	"github.com/cronokirby/weierstrass/point"
)

// Encode produces the SEC1 compressed encoding of p: 0x00 for the
// identity, otherwise 0x02 or 0x03 (by the parity of y) followed by x,
// left-padded to fieldByteLen bytes. Spec open question O2: the
// reference implementation's get_encoded left-pads the *uncompressed*
// encoding's y but not x in the compressed case, so a field element
// whose encoding happens to be shorter than the field width silently
// produces an undersized output; this always pads to fieldByteLen.
func Encode[T numeric.Elem[T]](e engine.Engine[T], p point.Point[T], fieldByteLen int) []byte {
	if e.IsZero(p) {
		return []byte{0x00}
	}
	aff := e.ToAffine(p)
	prefix := byte(0x02)
	if aff.Y.IsOdd() {
		prefix = 0x03
	}
	out := make([]byte, 1+fieldByteLen)
	out[0] = prefix
	leftPad(out[1:], aff.X.Bytes())
	return out
}

// EncodeUncompressed produces 0x04 || X || Y, each coordinate
// left-padded to fieldByteLen bytes.
func EncodeUncompressed[T numeric.Elem[T]](e engine.Engine[T], p point.Point[T], fieldByteLen int) []byte {
	if e.IsZero(p) {
		return []byte{0x00}
	}
	aff := e.ToAffine(p)
	out := make([]byte, 1+2*fieldByteLen)
	out[0] = 0x04
	leftPad(out[1:1+fieldByteLen], aff.X.Bytes())
	leftPad(out[1+fieldByteLen:], aff.Y.Bytes())
	return out
}

// Decode parses a SEC1-encoded point (compressed or uncompressed) back
// into a curve point, recovering y from x via the engine's
// point_from_x when given a compressed encoding. It fails with
// ecerr.InvalidEncoding on an unrecognized prefix or malformed length,
// and with ecerr.NotOnCurve if x has no square root mod p.
func Decode[T numeric.Elem[T]](e engine.Engine[T], f numeric.Factory[T], data []byte, fieldByteLen int) (point.Point[T], error) {
	if len(data) == 0 {
		return point.Point[T]{}, ecerr.New(ecerr.InvalidEncoding, "empty input")
	}
	switch data[0] {
	case 0x00:
		if len(data) != 1 {
			return point.Point[T]{}, ecerr.New(ecerr.InvalidEncoding, "identity encoding must be exactly one byte")
		}
		return e.Zero(), nil
	case 0x02, 0x03:
		if len(data) != 1+fieldByteLen {
			return point.Point[T]{}, ecerr.New(ecerr.InvalidEncoding, "compressed encoding has wrong length")
		}
		x := f.FromBytes(data[1:])
		yBit := uint(0)
		if data[0] == 0x03 {
			yBit = 1
		}
		return e.PointFromX(x, yBit)
	case 0x04:
		if len(data) != 1+2*fieldByteLen {
			return point.Point[T]{}, ecerr.New(ecerr.InvalidEncoding, "uncompressed encoding has wrong length")
		}
		x := f.FromBytes(data[1 : 1+fieldByteLen])
		y := f.FromBytes(data[1+fieldByteLen:])
		pt := e.PointFromXY(x, y)
		if !e.OnCurve(pt) {
			return point.Point[T]{}, ecerr.New(ecerr.NotOnCurve, "decoded point fails curve membership")
		}
		return pt, nil
	default:
		return point.Point[T]{}, ecerr.New(ecerr.InvalidEncoding, "unrecognized prefix byte 0x%02x", data[0])
	}
}

// leftPad copies src into the tail of dst, zero-filling any leading
// bytes. It panics if src is longer than dst, which would indicate
// fieldByteLen was computed wrong for this curve.
func leftPad(dst, src []byte) {
	if len(src) > len(dst) {
		panic("encoding: field element longer than field byte length")
	}
	copy(dst[len(dst)-len(src):], src)
}
