package lemac

// MAC computes the tag for msg under nonce using this Context. It runs
// absorb then finalize, never mutates the Context, and is deterministic:
// equal (key, nonce, msg) always produce equal tags, and a Context may be
// reused — and shared across goroutines — for any number of MAC calls.
func (c *Context) MAC(msg []byte, nonce [NonceSize]byte) [TagSize]byte {
	st := absorb(c, msg)
	return finalize(c, st, nonce)
}

// NewX1 builds a Context for plain LeMac (Degree1). The degree is fixed and
// valid by construction, so unlike Init this constructor cannot fail.
func NewX1(key [KeySize]byte) *Context {
	ctx, err := Init(Degree1, key)
	if err != nil {
		panic(err)
	}
	return ctx
}

// NewX2 builds a Context for LeMac-X2 (Degree2).
func NewX2(key [KeySize]byte) *Context {
	ctx, err := Init(Degree2, key)
	if err != nil {
		panic(err)
	}
	return ctx
}

// NewX4 builds a Context for LeMac-X4 (Degree4).
func NewX4(key [KeySize]byte) *Context {
	ctx, err := Init(Degree4, key)
	if err != nil {
		panic(err)
	}
	return ctx
}

// MACVariant1 computes a plain LeMac (parallelism 1, 64-byte superblocks)
// tag in one call.
func MACVariant1(key [KeySize]byte, msg []byte, nonce [NonceSize]byte) [TagSize]byte {
	return NewX1(key).MAC(msg, nonce)
}

// MACVariant2 computes a LeMac-X2 (parallelism 2, 128-byte superblocks) tag
// in one call.
func MACVariant2(key [KeySize]byte, msg []byte, nonce [NonceSize]byte) [TagSize]byte {
	return NewX2(key).MAC(msg, nonce)
}

// MACVariant4 computes a LeMac-X4 (parallelism 4, 256-byte superblocks) tag
// in one call.
func MACVariant4(key [KeySize]byte, msg []byte, nonce [NonceSize]byte) [TagSize]byte {
	return NewX4(key).MAC(msg, nonce)
}
