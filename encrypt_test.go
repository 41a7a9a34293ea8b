package easysecp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encrypt_SealOpen(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(t)
	alice, err := ctx.GenerateScalar()
	require.NoError(t, err)
	bob, err := ctx.GenerateScalar()
	require.NoError(t, err)

	message := []byte("All that we are is the result of what we have thought")
	sealed, err := ctx.Seal(alice, ctx.PublicPoint(bob), message)
	assert.NoError(err)
	assert.Len(sealed, len(message)+SealOverhead)
	assert.Equal(len(message), PlaintextLen(len(sealed)))
	assert.Equal(0, PlaintextLen(SealOverhead-1))

	opened, err := ctx.Open(bob, ctx.PublicPoint(alice), sealed)
	assert.NoError(err)
	assert.Equal(message, opened)

	// Sealing twice uses fresh nonces.
	sealed1, err := ctx.Seal(alice, ctx.PublicPoint(bob), message)
	assert.NoError(err)
	assert.NotEqual(sealed, sealed1)
}

func Test_Encrypt_OpenErrors(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(t)
	alice, err := ctx.GenerateScalar()
	require.NoError(t, err)
	bob, err := ctx.GenerateScalar()
	require.NoError(t, err)
	eve, err := ctx.GenerateScalar()
	require.NoError(t, err)

	sealed, err := ctx.Seal(alice, ctx.PublicPoint(bob), []byte("Putin Huylo"))
	require.NoError(t, err)

	tampered := append([]byte{}, sealed...)
	tampered[len(tampered)-1] ^= 0x01
	_, err = ctx.Open(bob, ctx.PublicPoint(alice), tampered)
	assert.Error(err)

	_, err = ctx.Open(bob, ctx.PublicPoint(alice), sealed[:8])
	assert.Error(err)

	_, err = ctx.Open(eve, ctx.PublicPoint(alice), sealed)
	assert.Error(err)

	_, err = ctx.Seal(Scalar{}, ctx.PublicPoint(bob), []byte("message"))
	assert.ErrorIs(err, ErrOutOfRange)
}

func Test_Encrypt_Passphrase(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(t)
	content := []byte("super secret message")
	encrypted, err := ctx.encryptWithPassphraseJWE("my passphrase", content)
	assert.NoError(err)
	assert.Contains(encrypted, "x-salt")

	decrypted, err := decryptWithPassphraseJWE("my passphrase", encrypted)
	assert.NoError(err)
	assert.Equal(content, decrypted)

	_, err = decryptWithPassphraseJWE("other passphrase", encrypted)
	assert.Error(err)
	_, err = decryptWithPassphraseJWE("my passphrase", `{"protected": "e30"}`)
	assert.Error(err)
}
