// Package curve provides a validated secp256k1 point abstraction.
//
// Every Point obtained through this package's constructors is guaranteed to
// lie on the curve and to not be the point at infinity, so downstream code
// can treat a Point as a well-formed public key candidate without re-checking.
// The only exception is the distinguished infinity result of a scalar
// multiplication by a multiple of the group order, which is tagged and
// reports true from IsInfinity.
package curve

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CompressedPointSize is the length of a serialized compressed point.
const CompressedPointSize = 33

// Compressed point format bytes per SEC1 section 2.3.3.
const (
	formatCompressedEven = 0x02
	formatCompressedOdd  = 0x03
)

// Point is an affine point on the secp256k1 curve.
//
// The zero value is not usable; obtain instances through NewPoint,
// ParsePoint, ParseHex, FromX, Generator, or Mul. A Point is immutable
// after construction and safe for concurrent use.
type Point struct {
	x, y secp256k1.FieldVal
	inf  bool
}

// infinity returns the tagged point-at-infinity sentinel. It is only
// reachable through Mul with a scalar that is zero mod the group order.
func infinity() *Point {
	return &Point{inf: true}
}

// isOnCurve reports whether the normalized coordinates satisfy the curve
// equation y^2 = x^3 + 7 over the field.
func isOnCurve(x, y *secp256k1.FieldVal) bool {
	var y2, rhs secp256k1.FieldVal
	y2.SquareVal(y).Normalize()
	rhs.SquareVal(x).Mul(x).AddInt(7).Normalize()
	return y2.Equals(&rhs)
}

// fromFieldVals builds a validated Point from field element coordinates.
// Both internal construction paths (scalar multiplication results, the
// generator) and the public constructors funnel through this check, so an
// on-curve-unchecked Point can never escape.
func fromFieldVals(x, y *secp256k1.FieldVal) (*Point, error) {
	var p Point
	p.x.Set(x).Normalize()
	p.y.Set(y).Normalize()
	if p.x.IsZero() && p.y.IsZero() {
		return nil, pointError(ErrInvalidPoint, "point at infinity is not a valid point")
	}
	if !isOnCurve(&p.x, &p.y) {
		return nil, pointError(ErrInvalidPoint, "point is not on the secp256k1 curve")
	}
	return &p, nil
}

// fieldFromBig converts a non-negative big integer into a field element,
// rejecting values outside [0, p).
func fieldFromBig(v *big.Int, f *secp256k1.FieldVal) bool {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return false
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	overflow := f.SetByteSlice(buf[:])
	return !overflow
}

// NewPoint constructs a validated point from affine coordinates.
//
// The coordinates must both be present, reduced representable field
// elements, and satisfy the curve equation. Violations return an Error
// with kind ErrInvalidPoint.
func NewPoint(x, y *big.Int) (*Point, error) {
	if x == nil || y == nil {
		return nil, pointError(ErrInvalidPoint, "point coordinates are missing")
	}
	var fx, fy secp256k1.FieldVal
	if !fieldFromBig(x, &fx) {
		return nil, pointError(ErrInvalidPoint, "x coordinate is not a valid field element")
	}
	if !fieldFromBig(y, &fy) {
		return nil, pointError(ErrInvalidPoint, "y coordinate is not a valid field element")
	}
	return fromFieldVals(&fx, &fy)
}

// X returns the x coordinate as a fresh big integer in canonical form.
// It returns nil for the point at infinity, which has no coordinates.
func (p *Point) X() *big.Int {
	if p.inf {
		return nil
	}
	b := p.x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Y returns the y coordinate as a fresh big integer in canonical form.
// It returns nil for the point at infinity, which has no coordinates.
func (p *Point) Y() *big.Int {
	if p.inf {
		return nil
	}
	b := p.y.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// IsInfinity reports whether p is the point at infinity sentinel produced
// by Mul. It is always false for points built by the public constructors.
func (p *Point) IsInfinity() bool {
	return p.inf
}

// Validate re-checks the on-curve invariant. It returns an Error with kind
// ErrInvalidPoint when the point is at infinity or off the curve. Callers
// who received a point through a path they do not trust can use this as an
// explicit assertion.
func (p *Point) Validate() error {
	if p.inf {
		return pointError(ErrInvalidPoint, "point at infinity is not a valid point")
	}
	if !isOnCurve(&p.x, &p.y) {
		return pointError(ErrInvalidPoint, "point is not on the secp256k1 curve")
	}
	return nil
}

// Mul computes the scalar multiplication k*p.
//
// The scalar must be a non-nil big integer; a missing scalar returns an
// Error with kind ErrScalarType. The scalar is reduced mod the group order
// before use. When the reduced scalar is zero the result is the point at
// infinity, returned as the tagged sentinel for which IsInfinity reports
// true; any other result is re-validated like a freshly constructed point.
func (p *Point) Mul(k *big.Int) (*Point, error) {
	if p.inf {
		return nil, pointError(ErrInfinity, "cannot multiply the point at infinity")
	}
	if k == nil {
		return nil, pointError(ErrScalarType, "scalar must be a big integer")
	}

	reduced := new(big.Int).Mod(k, secp256k1.S256().N)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	var s secp256k1.ModNScalar
	s.SetBytes(&buf)
	if s.IsZero() {
		return infinity(), nil
	}

	var one secp256k1.FieldVal
	one.SetInt(1)
	point := secp256k1.MakeJacobianPoint(&p.x, &p.y, &one)
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s, &point, &result)
	if result.Z.Normalize().IsZero() {
		return infinity(), nil
	}
	result.ToAffine()
	return fromFieldVals(&result.X, &result.Y)
}

// SerializeCompressed serializes the point in the 33-byte SEC1 compressed
// format: a 0x02 (even y) or 0x03 (odd y) format byte followed by the
// 32-byte big-endian x coordinate. The point at infinity has no compressed
// form and returns an Error with kind ErrInfinity.
func (p *Point) SerializeCompressed() ([]byte, error) {
	if p.inf {
		return nil, pointError(ErrInfinity, "cannot serialize the point at infinity")
	}
	b := make([]byte, CompressedPointSize)
	b[0] = formatCompressedEven
	if p.y.IsOdd() {
		b[0] = formatCompressedOdd
	}
	xb := p.x.Bytes()
	copy(b[1:], xb[:])
	return b, nil
}

// Hex returns the lowercase hex encoding of the compressed serialization.
func (p *Point) Hex() (string, error) {
	b, err := p.SerializeCompressed()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ParsePoint deserializes a 33-byte compressed point. The y coordinate is
// recovered from the x coordinate and the format byte's parity, and the
// result passes the same validation as a directly constructed point.
func ParsePoint(serialized []byte) (*Point, error) {
	if len(serialized) != CompressedPointSize {
		str := fmt.Sprintf("malformed compressed point: invalid length: %d", len(serialized))
		return nil, pointError(ErrInvalidLength, str)
	}
	format := serialized[0]
	if format != formatCompressedEven && format != formatCompressedOdd {
		str := fmt.Sprintf("malformed compressed point: invalid format byte: %#02x", format)
		return nil, pointError(ErrInvalidPrefix, str)
	}

	var x secp256k1.FieldVal
	if overflow := x.SetByteSlice(serialized[1:]); overflow {
		return nil, pointError(ErrInvalidX, "x coordinate is not a valid field element")
	}
	return decompress(format == formatCompressedOdd, &x)
}

// ParseHex deserializes a hex-encoded compressed point.
func ParseHex(s string) (*Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, pointError(ErrInvalidHex, fmt.Sprintf("malformed point hex: %v", err))
	}
	return ParsePoint(b)
}

// FromX recovers the point with the given x coordinate and y parity. It
// returns an Error with kind ErrInvalidX when x is not a valid field
// element or no point on the curve has that x coordinate.
func FromX(odd bool, x *big.Int) (*Point, error) {
	if x == nil {
		return nil, pointError(ErrInvalidX, "x coordinate is missing")
	}
	var fx secp256k1.FieldVal
	if !fieldFromBig(x, &fx) {
		return nil, pointError(ErrInvalidX, "x coordinate is not a valid field element")
	}
	return decompress(odd, &fx)
}

// decompress solves the curve equation for y with the requested parity.
func decompress(odd bool, x *secp256k1.FieldVal) (*Point, error) {
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(x, odd, &y) {
		return nil, pointError(ErrInvalidX, "no point on the curve has the given x coordinate")
	}
	y.Normalize()
	return fromFieldVals(x, &y)
}

// generator is built once through the validating constructor. Points are
// immutable, so handing out the shared instance is safe.
var generator = func() *Point {
	params := secp256k1.S256().Params()
	g, err := NewPoint(params.Gx, params.Gy)
	if err != nil {
		panic(fmt.Sprintf("secp256k1 generator failed validation: %v", err))
	}
	return g
}()

// Generator returns the secp256k1 base point G.
func Generator() *Point {
	return generator
}

// N returns the order of the secp256k1 group as a fresh big integer.
func N() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

// P returns the secp256k1 field prime as a fresh big integer.
func P() *big.Int {
	return new(big.Int).Set(secp256k1.S256().P)
}
