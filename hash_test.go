package easysecp

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Hash256(t *testing.T) {
	assert := assert.New(t)

	h := Hash256(nil)
	assert.Equal("5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456", hex.EncodeToString(h[:]))
}

func Test_Hash160(t *testing.T) {
	assert := assert.New(t)

	h := Hash160(mustHex(t, generatorCompressed))
	assert.Equal("751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(h[:]))
}
