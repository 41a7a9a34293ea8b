package easysecp

import (
	"encoding/json"
	"fmt"
	"os"
)

const curveName = "secp256k1"

// scalarJSON is used when serializing scalars to JWK format.
type scalarJSON struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
	D   string `json:"d"`
}

// MarshalJWK returns the JWK representation of the scalar and its point,
// see https://www.rfc-editor.org/rfc/rfc7517.
func (c *Context) MarshalJWK(s Scalar) (string, error) {
	if !s.valid() {
		return "", makeError(ErrOutOfRange, "scalar is not valid")
	}
	u := c.PublicPoint(s).Uncompressed()
	b, err := json.Marshal(scalarJSON{
		Kty: "EC",
		Crv: curveName,
		X:   base64urlEncode(u[1:33]),
		Y:   base64urlEncode(u[33:]),
		D:   base64urlEncode(s.key[:]),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ScalarFromJWK parses a JWK-encoded secp256k1 private key. When the JWK
// carries the public coordinates they must match the scalar.
func (c *Context) ScalarFromJWK(data string) (Scalar, error) {
	var jwk scalarJSON
	if err := json.Unmarshal([]byte(data), &jwk); err != nil {
		return Scalar{}, err
	}
	if jwk.Kty != "EC" || jwk.Crv != curveName {
		return Scalar{}, makeError(ErrUnsupportedKeyType, "key is not a secp256k1 EC key")
	}
	d, err := base64urlDecode(jwk.D)
	if err != nil {
		return Scalar{}, err
	}
	defer zeroize(d)
	s, err := ScalarFromBytes(d)
	if err != nil {
		return Scalar{}, err
	}
	if jwk.X == "" && jwk.Y == "" {
		return s, nil
	}

	u := c.PublicPoint(s).Uncompressed()
	if jwk.X != base64urlEncode(u[1:33]) || jwk.Y != base64urlEncode(u[33:]) {
		s.Zero()
		return Scalar{}, makeError(ErrCoordinatesInvalid, "JWK coordinates do not match the private key")
	}
	return s, nil
}

// SaveScalar saves the scalar to the specified file. If passphrase is empty,
// the file will contain the key in JWK format. Otherwise, the file will contain
// the encrypted JWK key in JWE format.
func (c *Context) SaveScalar(s Scalar, fileName string, passphrase string) error {
	content, err := c.MarshalJWK(s)
	if err != nil {
		return err
	}
	if passphrase != "" {
		content, err = c.encryptWithPassphraseJWE(passphrase, []byte(content))
		if err != nil {
			return err
		}
	}
	return os.WriteFile(fileName, []byte(content), 0600)
}

// LoadScalar loads a scalar saved with SaveScalar. If no passphrase is given,
// the file is assumed to be in JWK format; otherwise in JWE format.
func (c *Context) LoadScalar(fileName string, passphrase string) (Scalar, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return Scalar{}, fmt.Errorf("failed to load private key: %w", err)
	}
	defer zeroize(data)

	jsonBytes := data
	if passphrase != "" {
		jsonBytes, err = decryptWithPassphraseJWE(passphrase, string(data))
		if err != nil {
			return Scalar{}, err
		}
		defer zeroize(jsonBytes)
	}
	return c.ScalarFromJWK(string(jsonBytes))
}
