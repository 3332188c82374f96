package lemac

import "github.com/lemac-go/lemac/internal/wide"

// aesModified is the "modified AES" of spec §4.3: an initial XOR whitening
// with window[0], nine full AES rounds (MixColumns included) keyed by
// window[1..9], and a tenth full round keyed by an all-zero block instead
// of a subkey. It is not standard AES — the zero-keyed terminal round
// still runs MixColumns, which a stock AES-128 final round never does.
func aesModified(window []wide.Block, x wide.Block) wide.Block {
	y := x.Xor(window[0])
	for i := 1; i <= 9; i++ {
		y = y.Round(window[i])
	}
	return y.Round(wide.Zero(x.Degree))
}

// finalize collapses the post-absorption state into a tag (spec §4.3): nine
// overlapping aes_modified calls fold S into a single wide block, lane
// folding reduces that to 128 bits for D>1, and the nonce is mixed in
// before the final AES-128 encryption under finalize_key produces the tag.
func finalize(ctx *Context, st state, nonce [NonceSize]byte) [TagSize]byte {
	t := aesModified(ctx.subkeys[0:10], st.s[0])
	for i := 1; i <= 8; i++ {
		t = t.Xor(aesModified(ctx.subkeys[i:i+10], st.s[i]))
	}

	tag128 := t.Fold()

	var nonceEnc [NonceSize]byte
	ctx.nonceKey.Encrypt(nonceEnc[:], nonce[:])
	for i := range tag128 {
		tag128[i] ^= nonce[i] ^ nonceEnc[i]
	}

	var tag [TagSize]byte
	ctx.finalizeKey.Encrypt(tag[:], tag128[:])
	return tag
}
