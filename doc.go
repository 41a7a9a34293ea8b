/*
Package easysecp provides validated secp256k1 (the curve used by Bitcoin)
building blocks for signing and key agreement protocols.

The package is built around a few value types, each of which can only be
created through constructors that check its invariants:

-- Scalar, a private key in the range [1, n-1]

-- Point, a public key on the curve other than the point at infinity

-- Signature, a generic (r, s) pair

A Context holds the entropy source and randomization state used by every
operation that multiplies the base point. Create one with NewContext, or use
the process-wide DefaultContext.

Operations include:

-- Generating scalars and deriving their points

-- Encoding points in compressed and uncompressed form, and converting them to
and from generic affine coordinates

-- Deriving ECDH shared secrets, and encrypting data with them

-- Parsing strict DER signatures, signing and verifying

-- Deriving deterministic RFC 6979 nonces

-- Saving scalars to file, possibly passphrase-protected

Invalid input is reported with an error whose kind (ErrOutOfRange,
ErrFormatInvalid, ErrSignatureInvalid, ErrCoordinatesInvalid, ...) can be
checked with errors.Is. A failure that can only mean a defect in this package
or the curve library panics with an ErrInternalInvariant error instead.

See the examples for more information.
*/
package easysecp
