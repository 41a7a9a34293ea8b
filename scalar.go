package easysecp

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// ScalarLen is the length of a serialized scalar.
	ScalarLen = 32

	PBKDF2_ITER = 16384
	PBKDF2_SIZE = ScalarLen
)

// Scalar is a secp256k1 private key: a 32-byte big-endian integer in the range
// [1, n-1], where n is the curve order. The zero value is not a valid Scalar;
// use one of the constructors.
type Scalar struct {
	key [ScalarLen]byte
}

// GenerateScalar creates a new random scalar using the context entropy source.
// Draws outside [1, n-1] are discarded and retried; only a failure to read
// entropy is returned.
func (c *Context) GenerateScalar() (Scalar, error) {
	var buf [ScalarLen]byte
	defer zeroize(buf[:])
	for attempt := 1; ; attempt++ {
		if _, err := io.ReadFull(c.entropy, buf[:]); err != nil {
			return Scalar{}, wrapError(ErrEntropy, "failed to read scalar entropy", err)
		}
		s, err := ScalarFromBytes(buf[:])
		if err == nil {
			return s, nil
		}
		c.logger.Debug(context.Background(), "random scalar out of range, retrying",
			"attempt", attempt)
	}
}

// ScalarFromInt creates a scalar from an integer. ErrOutOfRange is returned if
// the integer does not fit in 32 bytes or is outside [1, n-1].
func ScalarFromInt(n *big.Int) (Scalar, error) {
	var buf [ScalarLen]byte
	defer zeroize(buf[:])
	if !fillBytes32(n, &buf) {
		return Scalar{}, makeError(ErrOutOfRange, "integer does not fit in 32 bytes")
	}
	return ScalarFromBytes(buf[:])
}

// ScalarFromBytes creates a scalar from its 32-byte big-endian encoding.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarLen {
		return Scalar{}, makeError(ErrOutOfRange, "scalar must be 32 bytes")
	}
	var s Scalar
	copy(s.key[:], b)
	k, ok := s.modN()
	k.Zero()
	if !ok {
		s.Zero()
		return Scalar{}, makeError(ErrOutOfRange, "scalar is zero or not less than the curve order")
	}
	return s, nil
}

// ScalarFromPassword derives a scalar from password using the PBKDF2
// algorithm. See https://en.wikipedia.org/wiki/PBKDF2.
func ScalarFromPassword(password, salt []byte) (Scalar, error) {
	secret := pbkdf2.Key(password, salt, PBKDF2_ITER, PBKDF2_SIZE, sha256.New)
	defer zeroize(secret)
	return ScalarFromBytes(secret)
}

// ScalarFromMnemonic recovers a scalar from a BIP-39 mnemonic phrase produced
// by Scalar.Mnemonic.
func ScalarFromMnemonic(mnemonic string) (Scalar, error) {
	b, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return Scalar{}, err
	}
	defer zeroize(b)
	return ScalarFromBytes(b)
}

// modN returns the scalar as a ModNScalar and whether it is in [1, n-1].
// The caller must zero the returned value.
func (s *Scalar) modN() (secp256k1.ModNScalar, bool) {
	var k secp256k1.ModNScalar
	overflow := k.SetBytes(&s.key)
	return k, overflow == 0 && !k.IsZero()
}

// valid reports whether the scalar is in [1, n-1]. It is false for the zero
// value and after Zero.
func (s *Scalar) valid() bool {
	k, ok := s.modN()
	k.Zero()
	return ok
}

// PublicPoint derives the public point s·G. It panics with
// ErrInternalInvariant if s was not validly constructed.
func (c *Context) PublicPoint(s Scalar) Point {
	k, ok := s.modN()
	defer k.Zero()
	if !ok {
		invariant("public point derivation from invalid scalar")
	}
	var result secp256k1.JacobianPoint
	if !c.baseMult(&k, &result) {
		invariant("base point multiplication produced the point at infinity")
	}
	return pointFromAffineJacobian(&result)
}

// PrivateKeyECDSA returns the scalar as a crypto/ecdsa private key.
func (c *Context) PrivateKeyECDSA(s Scalar) *ecdsa.PrivateKey {
	return &ecdsa.PrivateKey{
		PublicKey: *c.PublicPoint(s).ToECDSA(),
		D:         s.Int(),
	}
}

// Bytes returns the 32-byte big-endian encoding of the scalar.
func (s Scalar) Bytes() [ScalarLen]byte {
	return s.key
}

// Int returns the scalar as an integer.
func (s Scalar) Int() *big.Int {
	return new(big.Int).SetBytes(s.key[:])
}

// Equal returns true if both scalars have the same value.
func (s Scalar) Equal(other Scalar) bool {
	return s.key == other.key
}

// Mnemonic returns a BIP-39 mnemonic phrase which can be used to recover the
// scalar.
func (s Scalar) Mnemonic() (string, error) {
	if !s.valid() {
		return "", makeError(ErrOutOfRange, "scalar is not valid")
	}
	return bip39.NewMnemonic(s.key[:])
}

// Zero overwrites the scalar with zeros. The scalar is invalid afterwards.
func (s *Scalar) Zero() {
	zeroize(s.key[:])
}
