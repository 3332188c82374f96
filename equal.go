package lemac

import "crypto/subtle"

// Equal reports whether a and b are the same tag, comparing them in
// constant time. Tag verification is outside this package's contract (spec
// §1, §7) — this is the routine callers should use instead of ==, which
// short-circuits on the first differing byte and can leak timing
// information to an attacker probing a verifier.
func Equal(a, b [TagSize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
