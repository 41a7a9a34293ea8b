package easysecp

import (
	"bytes"
	"crypto/ecdsa"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// PointLen is the length of a compressed point encoding.
	PointLen = 33

	// UncompressedPointLen is the length of an uncompressed point encoding.
	UncompressedPointLen = 65

	pubKeyEven         = 0x02
	pubKeyOdd          = 0x03
	pubKeyUncompressed = 0x04
)

// Point is a secp256k1 public key: a point on the curve other than the point
// at infinity. It is stored in its compressed SEC encoding, so two points are
// equal (==) iff their compressed encodings are identical. The zero value is
// not a valid Point; use one of the constructors.
type Point struct {
	compressed [PointLen]byte
}

// AffinePoint is a curve-agnostic point given by its affine coordinates. The
// point at infinity is represented by nil or zero coordinates, following the
// crypto/elliptic convention.
type AffinePoint struct {
	X *big.Int
	Y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() AffinePoint {
	return AffinePoint{}
}

// IsInfinity reports whether ap is the point at infinity.
func (ap AffinePoint) IsInfinity() bool {
	isZero := func(v *big.Int) bool { return v == nil || v.Sign() == 0 }
	return isZero(ap.X) && isZero(ap.Y)
}

// ParsePoint parses a 33-byte compressed point: a 0x02 (even y) or 0x03 (odd
// y) prefix followed by the 32-byte x coordinate. ErrFormatInvalid is returned
// for any other length or prefix, or when x is not on the curve.
func ParsePoint(b []byte) (Point, error) {
	if len(b) != PointLen {
		return Point{}, makeError(ErrFormatInvalid, "compressed point must be 33 bytes")
	}
	if b[0] != pubKeyEven && b[0] != pubKeyOdd {
		return Point{}, makeError(ErrFormatInvalid, "invalid compressed point prefix")
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, wrapError(ErrFormatInvalid, "invalid compressed point", err)
	}
	return pointFromPubKey(pub), nil
}

// PointFromAffine converts generic coordinates to a Point. ErrCoordinatesInvalid
// is returned for the point at infinity and for coordinates that are not on
// the curve.
func PointFromAffine(ap AffinePoint) (Point, error) {
	if ap.IsInfinity() {
		return Point{}, makeError(ErrCoordinatesInvalid, "point at infinity has no coordinates")
	}
	var x, y [32]byte
	if !fillBytes32(ap.X, &x) || !fillBytes32(ap.Y, &y) {
		return Point{}, makeError(ErrCoordinatesInvalid, "coordinate does not fit in 32 bytes")
	}
	var uncompressed [UncompressedPointLen]byte
	uncompressed[0] = pubKeyUncompressed
	copy(uncompressed[1:33], x[:])
	copy(uncompressed[33:], y[:])
	pub, err := secp256k1.ParsePubKey(uncompressed[:])
	if err != nil {
		return Point{}, wrapError(ErrCoordinatesInvalid, "coordinates are not on the curve", err)
	}
	return pointFromPubKey(pub), nil
}

// PointFromECDSA converts a crypto/ecdsa public key on secp256k1 to a Point.
func PointFromECDSA(pub *ecdsa.PublicKey) (Point, error) {
	if pub == nil {
		return Point{}, makeError(ErrCoordinatesInvalid, "nil public key")
	}
	if pub.Curve != nil {
		params, want := pub.Curve.Params(), btcec.S256().Params()
		if params.P.Cmp(want.P) != 0 || params.N.Cmp(want.N) != 0 {
			return Point{}, makeError(ErrUnsupportedKeyType, "public key is not on secp256k1")
		}
	}
	return PointFromAffine(AffinePoint{X: pub.X, Y: pub.Y})
}

func pointFromPubKey(pub *secp256k1.PublicKey) Point {
	var p Point
	copy(p.compressed[:], pub.SerializeCompressed())
	return p
}

// pointFromAffineJacobian builds a Point from a Jacobian point already
// converted to affine coordinates.
func pointFromAffineJacobian(j *secp256k1.JacobianPoint) Point {
	return pointFromPubKey(secp256k1.NewPublicKey(&j.X, &j.Y))
}

// pubKey decodes the point for use with the curve library.
func (p *Point) pubKey() (*secp256k1.PublicKey, error) {
	return secp256k1.ParsePubKey(p.compressed[:])
}

// mustPubKey is pubKey for paths that cannot fail on a valid Point.
func (p *Point) mustPubKey() *secp256k1.PublicKey {
	pub, err := p.pubKey()
	if err != nil {
		invariant("point does not decode: " + err.Error())
	}
	return pub
}

// Bytes returns the 33-byte compressed encoding of the point. It panics with
// ErrInternalInvariant if p was not validly constructed.
func (p Point) Bytes() [PointLen]byte {
	if p.compressed[0] != pubKeyEven && p.compressed[0] != pubKeyOdd {
		invariant("compressed encoding of invalid point")
	}
	return p.compressed
}

// Uncompressed returns the 65-byte encoding 0x04 || x || y.
func (p Point) Uncompressed() [UncompressedPointLen]byte {
	var out [UncompressedPointLen]byte
	copy(out[:], p.mustPubKey().SerializeUncompressed())
	return out
}

// Affine returns the generic coordinates of the point.
func (p Point) Affine() AffinePoint {
	u := p.Uncompressed()
	return AffinePoint{
		X: new(big.Int).SetBytes(u[1:33]),
		Y: new(big.Int).SetBytes(u[33:]),
	}
}

// Equal returns true if both points have the same compressed encoding.
func (p Point) Equal(other Point) bool {
	return p.compressed == other.compressed
}

// EqualBytes returns true if the point equals the given compressed encoding.
func (p Point) EqualBytes(other []byte) bool {
	return bytes.Equal(p.compressed[:], other)
}

// ToECDSA returns the point as a crypto/ecdsa public key.
func (p Point) ToECDSA() *ecdsa.PublicKey {
	ap := p.Affine()
	return &ecdsa.PublicKey{Curve: btcec.S256(), X: ap.X, Y: ap.Y}
}

// BitcoinAddress returns the P2PKH Bitcoin address for the compressed point.
func (p Point) BitcoinAddress() string {
	compressed := p.Bytes()
	hash := Hash160(compressed[:])
	payload := append([]byte{0x00}, hash[:]...)
	checkSum := Hash256(payload)
	return base58.Encode(append(payload, checkSum[:4]...))
}

// EthereumAddress returns the checksummed Ethereum address for the point.
func (p Point) EthereumAddress() string {
	return crypto.PubkeyToAddress(*p.ToECDSA()).Hex()
}
