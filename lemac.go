// Package lemac implements the LeMac family of AES-round-based message
// authentication codes, and its two wide-lane variants LeMac-X2 and
// LeMac-X4, following "Fast AES-Based Universal Hash Functions and MACs"
// (ToSC) and its corrigendum.
//
// A Context is built once from a 16-byte key with Init and is safe for
// concurrent use by any number of goroutines: MAC reads only the Context
// and writes only its own local state, so no Context-level synchronization
// is needed. Computing a tag is a single pure function of (key, nonce,
// message); there is no streaming API, no truncation, and no key
// derivation beyond the fixed internal schedule. Tag verification is the
// caller's job — use Equal, not ==, to compare tags.
package lemac

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/lemac-go/lemac/internal/wide"
)

const (
	// KeySize is the length in bytes of a LeMac key.
	KeySize = 16
	// NonceSize is the length in bytes of a LeMac nonce.
	NonceSize = 16
	// TagSize is the length in bytes of a LeMac tag.
	TagSize = 16
)

// Degree selects which LeMac variant a Context runs: the number of AES
// lanes processed per round. It is fixed for the lifetime of a Context and
// is the sole domain separator between the three variants — an X2 tag is
// unrelated to an X1 tag for the same key, nonce and message.
type Degree int

const (
	// Degree1 is plain LeMac: one AES lane per round, 64-byte superblocks.
	Degree1 Degree = 1
	// Degree2 is LeMac-X2: two AES lanes per round, 128-byte superblocks.
	Degree2 Degree = 2
	// Degree4 is LeMac-X4: four AES lanes per round, 256-byte superblocks.
	Degree4 Degree = 4
)

func (d Degree) valid() bool {
	return d == Degree1 || d == Degree2 || d == Degree4
}

// BlockSize returns the absorption superblock size for this degree: 64*D
// bytes. Callers need not align messages to it.
func (d Degree) BlockSize() int {
	return 64 * int(d)
}

// Context is the immutable result of Init: the derived initial state, the
// 18 finalization subkeys, and the two auxiliary AES keys used to mix in
// the nonce and produce the final tag. A Context never mutates after
// construction and may be shared by any number of concurrent MAC calls.
type Context struct {
	degree      int
	initState   [9]wide.Block
	subkeys     [18]wide.Block
	nonceKey    cipher.Block
	finalizeKey cipher.Block
}

// Init derives a Context for the given degree from a 16-byte key. It is
// the only fallible operation in this package: it returns an error only
// when degree is not one of Degree1, Degree2 or Degree4. Init is pure and
// has no side effects.
func Init(degree Degree, key [KeySize]byte) (*Context, error) {
	if !degree.valid() {
		return nil, fmt.Errorf("lemac: unsupported degree %d", degree)
	}
	ek, err := aes.NewCipher(key[:])
	if err != nil {
		// crypto/aes.NewCipher only fails on bad key length, and key is
		// fixed at KeySize here, so this is unreachable in practice.
		return nil, fmt.Errorf("lemac: building key schedule: %w", err)
	}
	return buildContext(int(degree), ek)
}

// Parallelism returns the degree (lane count) this Context was built for.
func (c *Context) Parallelism() int {
	return c.degree
}

// BlockSize returns the absorption superblock size in bytes for this
// Context's degree.
func (c *Context) BlockSize() int {
	return 64 * c.degree
}
