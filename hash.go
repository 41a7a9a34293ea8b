package easysecp

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash256 does two rounds of SHA256 hashing.
func Hash256(data []byte) [32]byte {
	h := sha256.Sum256(data)
	return sha256.Sum256(h[:])
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(data []byte) [20]byte {
	h := sha256.Sum256(data)
	hasher := ripemd160.New()
	hasher.Write(h[:])
	var out [20]byte
	copy(out[:], hasher.Sum(nil))
	return out
}
