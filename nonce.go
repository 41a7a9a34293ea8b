package easysecp

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// DigestLen is the length of a message digest accepted for signing.
	DigestLen = 32

	// NonceLen is the length of a derived nonce.
	NonceLen = 32
)

// Nonce deterministically derives a signing nonce from a message digest and a
// private key integer following RFC 6979 with HMAC-SHA256, without extra data
// or an algorithm identifier.
//
// counter selects the candidate in the RFC 6979 output stream and should
// start at 0. When the nonce cannot be used, because it is not a valid scalar
// or it produces r = 0 or s = 0, the caller retries with counter+1.
// ErrOutOfRange is returned when key does not fit in 32 bytes or the candidate
// is not a valid scalar.
//
// See https://www.rfc-editor.org/rfc/rfc6979.
func Nonce(digest []byte, key *big.Int, counter uint32) ([NonceLen]byte, error) {
	if len(digest) != DigestLen {
		return [NonceLen]byte{}, makeError(ErrDigestInvalid, "digest must be 32 bytes")
	}
	var keyBytes [ScalarLen]byte
	defer zeroize(keyBytes[:])
	if !fillBytes32(key, &keyBytes) {
		return [NonceLen]byte{}, makeError(ErrOutOfRange, "nonce key does not fit in 32 bytes")
	}
	k, err := nonceScalar(&keyBytes, digest, counter)
	if err != nil {
		return [NonceLen]byte{}, err
	}
	out := k.Bytes()
	k.Zero()
	return out, nil
}

// nonceScalar returns the RFC 6979 candidate for counter as a validated
// scalar. The caller must zero the result.
func nonceScalar(key *[ScalarLen]byte, digest []byte, counter uint32) (secp256k1.ModNScalar, error) {
	k := secp256k1.NonceRFC6979(key[:], digest, nil, nil, counter)
	candidate := Scalar{key: k.Bytes()}
	defer candidate.Zero()
	nonce, ok := candidate.modN()
	k.Zero()
	if !ok {
		return secp256k1.ModNScalar{}, makeError(ErrOutOfRange, "nonce candidate is not a valid scalar")
	}
	return nonce, nil
}
