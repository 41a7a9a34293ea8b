package easysecp

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrOutOfRange is returned when a scalar, an integer input or a derived
	// nonce is outside the range [1, n-1], where n is the curve order.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrFormatInvalid is returned when a point encoding has the wrong
	// length, an unknown prefix, or does not describe a point on the curve.
	ErrFormatInvalid = ErrorKind("ErrFormatInvalid")

	// ErrSignatureInvalid is returned when a signature fails structural or
	// canonical validation.
	ErrSignatureInvalid = ErrorKind("ErrSignatureInvalid")

	// ErrCoordinatesInvalid is returned when an (x, y) pair does not describe
	// a non-identity point on the curve.
	ErrCoordinatesInvalid = ErrorKind("ErrCoordinatesInvalid")

	// ErrDigestInvalid is returned when a message digest is not 32 bytes.
	ErrDigestInvalid = ErrorKind("ErrDigestInvalid")

	// ErrEntropy is returned when the entropy source fails to supply bytes.
	ErrEntropy = ErrorKind("ErrEntropy")

	// ErrContextRandomize is returned when the context seed is rejected.
	ErrContextRandomize = ErrorKind("ErrContextRandomize")

	// ErrUnsupportedKeyType is returned when a stored key is not a secp256k1
	// EC key.
	ErrUnsupportedKeyType = ErrorKind("ErrUnsupportedKeyType")

	// ErrInternalInvariant signals a broken internal assumption: an operation
	// on validly constructed values that cannot fail has failed. It is never
	// returned; it is raised with panic.
	ErrInternalInvariant = ErrorKind("ErrInternalInvariant")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 keys, points and signatures.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error. When the
// error was caused by the curve library, Cause holds the original error.
type Error struct {
	Err         error
	Description string
	Cause       error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped errors.
func (e Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error of the given kind caused by err.
func wrapError(kind ErrorKind, desc string, err error) Error {
	return Error{Err: kind, Description: desc + ": " + err.Error(), Cause: err}
}

// invariant panics with an ErrInternalInvariant error.
func invariant(desc string) {
	panic(makeError(ErrInternalInvariant, desc))
}
