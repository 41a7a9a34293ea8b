package easysecp

import (
	"encoding/base64"
	"math/big"
	"runtime"
)

// zeroize overwrites buf with zeros. runtime.KeepAlive keeps the compiler
// from eliminating the stores.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// fillBytes32 encodes a non-negative integer as 32 big-endian bytes. It
// reports false when the integer is nil, negative or wider than 256 bits.
func fillBytes32(n *big.Int, out *[32]byte) bool {
	if n == nil || n.Sign() < 0 || n.BitLen() > 256 {
		return false
	}
	n.FillBytes(out[:])
	return true
}

// JWK uses Base64url encoding, which is Base64 encoding without padding.
func base64urlEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func base64urlDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
