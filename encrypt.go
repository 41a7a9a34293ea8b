package easysecp

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-jose/go-jose/v3"
	"golang.org/x/crypto/scrypt"
)

const (
	// Key derivation parameters.
	deriveKey_N      = 16384
	deriveKey_r      = 8
	deriveKey_p      = 1
	deriveKey_keyLen = 32

	saltLen = 32

	// SealOverhead is the number of bytes Seal adds to the plaintext: the
	// GCM nonce and tag.
	SealOverhead = 12 + 16
)

// Seal encrypts plaintext for the owner of p using AES-256-GCM keyed with the
// ECDH shared secret of s and p. The owner of p opens it with Open, passing
// their own scalar and the point of s.
func (c *Context) Seal(s Scalar, p Point, plaintext []byte) ([]byte, error) {
	key, err := c.SharedSecret(s, p)
	if err != nil {
		return nil, err
	}
	defer zeroize(key[:])
	return encrypt(c.entropy, key[:], plaintext)
}

// Open decrypts a ciphertext produced by Seal.
func (c *Context) Open(s Scalar, p Point, ciphertext []byte) ([]byte, error) {
	key, err := c.SharedSecret(s, p)
	if err != nil {
		return nil, err
	}
	defer zeroize(key[:])
	return decrypt(key[:], ciphertext)
}

// PlaintextLen returns the plaintext length for a ciphertext of the given
// length produced by Seal.
func PlaintextLen(ciphertextLen int) int {
	if ciphertextLen < SealOverhead {
		return 0
	}
	return ciphertextLen - SealOverhead
}

// encrypt encrypts the content using AES256-GCM algorithm.
func encrypt(rand io.Reader, key []byte, content []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand, nonce); err != nil {
		return nil, wrapError(ErrEntropy, "failed to populate nonce", err)
	}

	return gcm.Seal(nonce, nonce, content, nil), nil
}

// decrypt decrypts the content using AES256-GCM algorithm.
func decrypt(key []byte, content []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(content) < nonceSize {
		return nil, fmt.Errorf("invalid content")
	}

	nonce, ciphertext := content[:nonceSize], content[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	c, err := aes.NewCipher(key[:32]) // The key must be 32 bytes long.
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// deriveKey creates a symmetric encryption key from password and salt.
// Key derivation algorithm is described in https://www.tarsnap.com/scrypt/scrypt.pdf.
func deriveKey(password, salt []byte) ([]byte, error) {
	return scrypt.Key(password, salt, deriveKey_N, deriveKey_r, deriveKey_p,
		deriveKey_keyLen)
}

func encryptJWE(key []byte, content []byte) (string, error) {
	encrypter, err := jose.NewEncrypter(jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key}, nil)
	if err != nil {
		return "", err
	}
	object, err := encrypter.Encrypt(content)
	if err != nil {
		return "", err
	}
	return object.FullSerialize(), nil
}

func decryptJWE(key []byte, content string) ([]byte, error) {
	object, err := jose.ParseEncrypted(content)
	if err != nil {
		return nil, err
	}
	return object.Decrypt(key)
}

// encryptWithPassphraseJWE wraps content in a JWE whose key is derived from
// passphrase. The salt travels in the "x-salt" member.
func (c *Context) encryptWithPassphraseJWE(passphrase string, content []byte) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(c.entropy, salt); err != nil {
		return "", wrapError(ErrEntropy, "failed to read salt", err)
	}
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return "", err
	}
	defer zeroize(key)
	s, err := encryptJWE(key, content)
	if err != nil {
		return "", err
	}

	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return "", err
	}
	m["x-salt"] = base64urlEncode(salt)
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decryptWithPassphraseJWE(passphrase string, content string) ([]byte, error) {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		return nil, err
	}
	saltStr, ok := m["x-salt"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid content")
	}
	salt, err := base64urlDecode(saltStr)
	if err != nil {
		return nil, fmt.Errorf("invalid content")
	}
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, err
	}
	defer zeroize(key)
	return decryptJWE(key, content)
}
