package easysecp

import (
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrOutOfRange, "ErrOutOfRange"},
		{ErrFormatInvalid, "ErrFormatInvalid"},
		{ErrSignatureInvalid, "ErrSignatureInvalid"},
		{ErrCoordinatesInvalid, "ErrCoordinatesInvalid"},
		{ErrDigestInvalid, "ErrDigestInvalid"},
		{ErrEntropy, "ErrEntropy"},
		{ErrContextRandomize, "ErrContextRandomize"},
		{ErrUnsupportedKeyType, "ErrUnsupportedKeyType"},
		{ErrInternalInvariant, "ErrInternalInvariant"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		wrapError(ErrFormatInvalid, "bad point", secp256k1.ErrPubKeyNotOnCurve),
		"bad point: ErrPubKeyNotOnCurve",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrOutOfRange == ErrOutOfRange",
		err:       ErrOutOfRange,
		target:    ErrOutOfRange,
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "Error.ErrOutOfRange == ErrOutOfRange",
		err:       makeError(ErrOutOfRange, ""),
		target:    ErrOutOfRange,
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "Error.ErrOutOfRange == Error.ErrOutOfRange",
		err:       makeError(ErrOutOfRange, ""),
		target:    makeError(ErrOutOfRange, ""),
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "ErrFormatInvalid != ErrOutOfRange",
		err:       ErrFormatInvalid,
		target:    ErrOutOfRange,
		wantMatch: false,
		wantAs:    ErrFormatInvalid,
	}, {
		name:      "Error.ErrFormatInvalid != Error.ErrOutOfRange",
		err:       makeError(ErrFormatInvalid, ""),
		target:    makeError(ErrOutOfRange, ""),
		wantMatch: false,
		wantAs:    ErrFormatInvalid,
	}, {
		name:      "wrapped Error.ErrFormatInvalid == cause",
		err:       wrapError(ErrFormatInvalid, "", secp256k1.ErrPubKeyNotOnCurve),
		target:    secp256k1.ErrPubKeyNotOnCurve,
		wantMatch: true,
		wantAs:    ErrFormatInvalid,
	}, {
		name:      "wrapped Error.ErrSignatureInvalid != ErrFormatInvalid",
		err:       wrapError(ErrSignatureInvalid, "", secp256k1.ErrPubKeyNotOnCurve),
		target:    ErrFormatInvalid,
		wantMatch: false,
		wantAs:    ErrSignatureInvalid,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error code can be unwrapped and is the expected
		// code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
