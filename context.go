package easysecp

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/regnull/easysecp/logging"
)

// SeedLen is the number of entropy bytes used to randomize a Context.
const SeedLen = 32

// Context holds the entropy source and the randomization state shared by all
// curve operations. Base point multiplications are blinded: k·G is computed
// as (k-b)·G + b·G, where b is derived from the seed drawn at construction.
//
// A Context is immutable once NewContext returns and is safe for concurrent
// use by multiple goroutines.
type Context struct {
	entropy io.Reader
	logger  logging.Logger

	blind      secp256k1.ModNScalar
	blindPoint secp256k1.JacobianPoint
}

// Option configures a Context.
type Option func(*Context)

// WithEntropy sets the source of randomness used for the context seed and
// scalar generation. The default is crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(c *Context) {
		c.entropy = r
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l logging.Logger) Option {
	return func(c *Context) {
		c.logger = l
	}
}

// NewContext creates a context for signing and verification and randomizes
// it with SeedLen bytes of entropy. A failure here means cryptographic
// operations cannot be performed safely.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.New(nil)
	}

	var seed [SeedLen]byte
	defer zeroize(seed[:])
	if _, err := io.ReadFull(c.entropy, seed[:]); err != nil {
		return nil, wrapError(ErrEntropy, "failed to read context seed", err)
	}
	if err := c.randomize(&seed); err != nil {
		return nil, err
	}
	c.logger.Info(context.Background(), "secp256k1 context randomized", logging.Redacted("seed"))
	return c, nil
}

// randomize derives the blinding scalar from seed and precomputes its point.
func (c *Context) randomize(seed *[SeedLen]byte) error {
	var b secp256k1.ModNScalar
	if overflow := b.SetBytes(seed); overflow != 0 || b.IsZero() {
		b.Zero()
		return makeError(ErrContextRandomize, "context seed rejected")
	}
	secp256k1.ScalarBaseMultNonConst(&b, &c.blindPoint)
	c.blindPoint.ToAffine()
	c.blind.Set(&b)
	b.Zero()
	return nil
}

// baseMult computes k·G using the context blinding. It reports false if the
// result is the point at infinity, which only happens for k = 0.
func (c *Context) baseMult(k *secp256k1.ModNScalar, result *secp256k1.JacobianPoint) bool {
	var t secp256k1.ModNScalar
	t.NegateVal(&c.blind).Add(k)
	defer t.Zero()

	var tG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&t, &tG)
	secp256k1.AddNonConst(&tG, &c.blindPoint, result)
	if isInfinity(result) {
		return false
	}
	result.ToAffine()
	return true
}

// isInfinity reports whether p is the point at infinity.
func isInfinity(p *secp256k1.JacobianPoint) bool {
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}

var (
	defaultContext     *Context
	defaultContextOnce sync.Once
)

// DefaultContext returns the process-wide context, creating it on first use.
// It panics if the context cannot be randomized.
func DefaultContext() *Context {
	defaultContextOnce.Do(func() {
		c, err := NewContext()
		if err != nil {
			panic(fmt.Sprintf("easysecp: cannot create default context: %v", err))
		}
		defaultContext = c
	})
	return defaultContext
}
