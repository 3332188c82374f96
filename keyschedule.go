package lemac

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/lemac-go/lemac/internal/aesround"
	"github.com/lemac-go/lemac/internal/wide"
)

// domainInput builds the 128-bit little-endian integer encoding of
// (position, lane, degreeField) the key schedule encrypts under E_K (spec
// §4.1). For degree 1, or for the two auxiliary constants whose lane and
// degree fields are pinned to zero, callers simply pass lane=0,
// degreeField=0 and get back the plain little-endian encoding of position.
func domainInput(position uint64, lane, degreeField byte) [aesround.BlockSize]byte {
	var in [aesround.BlockSize]byte
	binary.LittleEndian.PutUint64(in[0:8], position)
	// in[8:14] stays zero.
	in[14] = lane
	in[15] = degreeField
	return in
}

// deriveScalar encrypts the domain-separated input for position under ek
// and returns the raw 16-byte result (used directly as the encoded input
// for raw_aux, or as one lane of a wide block elsewhere).
func deriveScalar(ek cipher.Block, position uint64, lane, degreeField byte) [aesround.BlockSize]byte {
	in := domainInput(position, lane, degreeField)
	var out [aesround.BlockSize]byte
	ek.Encrypt(out[:], in[:])
	return out
}

// deriveWide builds a degree-lane wide block for logical position,
// encrypting one domain-separated input per lane and packing the results
// lane 0 first.
func deriveWide(ek cipher.Block, position uint64, degree int) wide.Block {
	var buf [16 * wide.MaxDegree]byte
	for lane := 0; lane < degree; lane++ {
		enc := deriveScalar(ek, position, byte(lane), byte(degree-1))
		copy(buf[lane*16:lane*16+16], enc[:])
	}
	return wide.FromBytes(degree, buf[:16*degree])
}

// buildContext implements the key schedule of spec.md §4.1: it derives the
// nine init_state blocks, the eighteen finalization subkeys, and the two
// auxiliary AES-128 keys (nonce_key, finalize_key) from a single master
// key's AES-128 encryption schedule ek.
func buildContext(degree int, ek cipher.Block) (*Context, error) {
	ctx := &Context{degree: degree}

	for i := 0; i < 9; i++ {
		ctx.initState[i] = deriveWide(ek, uint64(i), degree)
	}
	for i := 0; i < 18; i++ {
		ctx.subkeys[i] = deriveWide(ek, uint64(i+9), degree)
	}

	// raw_aux: lane and degree fields are zero regardless of the actual
	// degree — these two constants are shared, unparameterized, across all
	// three variants (spec §9, "Open questions").
	rawAux0 := deriveScalar(ek, 27, 0, 0)
	rawAux1 := deriveScalar(ek, 28, 0, 0)

	nonceKey, err := aes.NewCipher(rawAux0[:])
	if err != nil {
		return nil, err
	}
	finalizeKey, err := aes.NewCipher(rawAux1[:])
	if err != nil {
		return nil, err
	}
	ctx.nonceKey = nonceKey
	ctx.finalizeKey = finalizeKey

	return ctx, nil
}
