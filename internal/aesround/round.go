package aesround

// BlockSize is the width of a single AES lane in bytes.
const BlockSize = 16

// Round applies one full AES round — SubBytes, then ShiftRows, then
// MixColumns, then AddRoundKey — to block under key (the same operation as
// an AESENC instruction). This is deliberately not standard AES encryption:
// MixColumns is applied on every round, including the ones a stock AES-128
// "final round" would omit it from. The round key is mixed in last, after
// MixColumns.
func Round(block, key [BlockSize]byte) [BlockSize]byte {
	state := block
	subBytes(&state)
	shiftRows(&state)
	mixColumns(&state)
	for i := range state {
		state[i] ^= key[i]
	}
	return state
}

func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

// shiftRows permutes the state treating it as a column-major 4x4 byte
// matrix: state[col*4+row]. Row 0 is untouched; row r is rotated left by r
// positions across the four columns.
func shiftRows(state *[BlockSize]byte) {
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

// mixColumns mixes each column of the state with the fixed matrix
// [2 3 1 1; 1 2 3 1; 1 1 2 3; 3 1 1 2] over GF(2^8).
func mixColumns(state *[BlockSize]byte) {
	for i := 0; i < 4; i++ {
		col := i * 4
		a0, a1, a2, a3 := state[col], state[col+1], state[col+2], state[col+3]
		state[col] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[col+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[col+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[col+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}
