package easysecp

import (
	"context"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// CompactSignatureLen is the length of a compact r || s signature.
const CompactSignatureLen = 64

// Signature represents an ECDSA signature as a generic (r, s) pair,
// independent of any wire format.
// See https://en.wikipedia.org/wiki/Elliptic_Curve_Digital_Signature_Algorithm
type Signature struct {
	R *big.Int
	S *big.Int
}

// ParseDERSignature parses a DER encoded ECDSA signature. The encoding must be
// strict: correct tags, minimal integer lengths and no trailing bytes, and both
// components must be in [1, n-1]. The signature is normalized to its compact
// form before being split into r and s. Every failure is reported as
// ErrSignatureInvalid.
func ParseDERSignature(der []byte) (Signature, error) {
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return Signature{}, wrapError(ErrSignatureInvalid, "malformed DER signature", err)
	}
	var compact [CompactSignatureLen]byte
	r, s := sig.R(), sig.S()
	r.PutBytesUnchecked(compact[:32])
	s.PutBytesUnchecked(compact[32:])
	return SignatureFromCompact(compact[:])
}

// SignatureFromCompact parses a 64-byte r || s signature.
func SignatureFromCompact(b []byte) (Signature, error) {
	if len(b) != CompactSignatureLen {
		return Signature{}, makeError(ErrSignatureInvalid, "compact signature must be 64 bytes")
	}
	sig := Signature{
		R: new(big.Int).SetBytes(b[:32]),
		S: new(big.Int).SetBytes(b[32:]),
	}
	if _, _, err := sig.scalars(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// scalars returns r and s as curve scalars, checking both are in [1, n-1].
func (sig Signature) scalars() (r, s secp256k1.ModNScalar, err error) {
	var buf [32]byte
	for _, c := range []struct {
		v    *big.Int
		dst  *secp256k1.ModNScalar
		name string
	}{{sig.R, &r, "r"}, {sig.S, &s, "s"}} {
		if !fillBytes32(c.v, &buf) {
			return r, s, makeError(ErrSignatureInvalid, "signature "+c.name+" does not fit in 32 bytes")
		}
		if overflow := c.dst.SetBytes(&buf); overflow != 0 || c.dst.IsZero() {
			return r, s, makeError(ErrSignatureInvalid, "signature "+c.name+" is not in [1, n-1]")
		}
	}
	return r, s, nil
}

// Compact returns the 64-byte r || s encoding of the signature.
func (sig Signature) Compact() ([CompactSignatureLen]byte, error) {
	var out [CompactSignatureLen]byte
	r, s, err := sig.scalars()
	if err != nil {
		return out, err
	}
	r.PutBytesUnchecked(out[:32])
	s.PutBytesUnchecked(out[32:])
	return out, nil
}

// SerializeDER returns the DER encoding of the signature. S is encoded in its
// canonical low form.
func (sig Signature) SerializeDER() ([]byte, error) {
	r, s, err := sig.scalars()
	if err != nil {
		return nil, err
	}
	return ecdsa.NewSignature(&r, &s).Serialize(), nil
}

// Verify verifies the signature of digest against the point.
func (sig Signature) Verify(p Point, digest []byte) bool {
	if len(digest) != DigestLen {
		return false
	}
	r, s, err := sig.scalars()
	if err != nil {
		return false
	}
	pub, err := p.pubKey()
	if err != nil {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, pub)
}

// Sign produces a deterministic ECDSA signature of a 32-byte digest. Nonces are
// derived with RFC 6979; a nonce that is not a valid scalar or that yields
// r = 0 or s = 0 is discarded and the next counter value is tried. S is
// normalized to the lower half of the curve order.
func (c *Context) Sign(key Scalar, digest []byte) (Signature, error) {
	if len(digest) != DigestLen {
		return Signature{}, makeError(ErrDigestInvalid, "digest must be 32 bytes")
	}
	d, ok := key.modN()
	defer d.Zero()
	if !ok {
		return Signature{}, makeError(ErrOutOfRange, "signing key is not valid")
	}
	keyBytes := key.Bytes()
	defer zeroize(keyBytes[:])

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)

	for counter := uint32(0); ; counter++ {
		k, err := nonceScalar(&keyBytes, digest, counter)
		if err != nil {
			c.logger.Debug(context.Background(), "nonce rejected, retrying",
				"counter", counter, "err", err)
			continue
		}
		r, s, ok := c.signWithNonce(&d, &e, &k)
		k.Zero()
		if !ok {
			c.logger.Debug(context.Background(), "degenerate signature, retrying",
				"counter", counter)
			continue
		}
		rb, sb := r.Bytes(), s.Bytes()
		return Signature{
			R: new(big.Int).SetBytes(rb[:]),
			S: new(big.Int).SetBytes(sb[:]),
		}, nil
	}
}

// signWithNonce computes r = (k·G).x mod n and s = k⁻¹(e + r·d) mod n. It
// reports false when r or s is zero.
func (c *Context) signWithNonce(d, e, k *secp256k1.ModNScalar) (r, s secp256k1.ModNScalar, ok bool) {
	var R secp256k1.JacobianPoint
	if !c.baseMult(k, &R) {
		return r, s, false
	}
	r.SetBytes(R.X.Bytes())
	if r.IsZero() {
		return r, s, false
	}

	var kInv secp256k1.ModNScalar
	kInv.InverseValNonConst(k)
	defer kInv.Zero()
	s.Mul2(d, &r).Add(e).Mul(&kInv)
	if s.IsZero() {
		return r, s, false
	}
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	return r, s, true
}
