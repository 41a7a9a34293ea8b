package easysecp

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SharedSecretLen is the length of an ECDH shared secret.
const SharedSecretLen = 32

// SharedSecret derives an ECDH shared secret from a private scalar and a
// counterparty point. The secret is SHA-256 over the compressed encoding of
// s·P, i.e. the parity byte followed by the x coordinate. For Alice and Bob
// the secret is the same when derived from Alice's scalar and Bob's point or
// from Bob's scalar and Alice's point.
//
// ErrOutOfRange is returned if s or p is not a validly constructed value.
//
// See https://en.wikipedia.org/wiki/Elliptic-curve_Diffie%E2%80%93Hellman.
func (c *Context) SharedSecret(s Scalar, p Point) ([SharedSecretLen]byte, error) {
	k, ok := s.modN()
	defer k.Zero()
	if !ok {
		return [SharedSecretLen]byte{}, makeError(ErrOutOfRange, "ECDH scalar is not valid")
	}
	pub, err := p.pubKey()
	if err != nil {
		return [SharedSecretLen]byte{}, wrapError(ErrOutOfRange, "ECDH point is not valid", err)
	}

	var point, result secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&k, &point, &result)
	defer func() {
		result.X.Zero()
		result.Y.Zero()
		result.Z.Zero()
	}()
	if isInfinity(&result) {
		return [SharedSecretLen]byte{}, makeError(ErrOutOfRange, "ECDH produced the point at infinity")
	}
	result.ToAffine()

	var shared [1 + 32]byte
	defer zeroize(shared[:])
	shared[0] = pubKeyEven
	if result.Y.IsOdd() {
		shared[0] = pubKeyOdd
	}
	result.X.PutBytesUnchecked(shared[1:])
	return sha256.Sum256(shared[:]), nil
}
