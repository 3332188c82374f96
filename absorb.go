package lemac

import "github.com/lemac-go/lemac/internal/wide"

// state is the nine-block absorption automaton (spec §3, "State").
type state struct {
	s [9]wide.Block
}

// register is the four-element rolling FIFO feeding state position S[3]
// (spec §3, "Rolling register").
type register struct {
	rr, r0, r1, r2 wide.Block
}

// round runs one absorption round (spec §4.2). Every S[k] and register read
// on the right-hand side refers to the value from before this round's
// updates — t snapshots S[8] up front because S[0]'s new value depends on
// the pre-round S[8], and the register shift reads rr/r0/r1 before any of
// them are overwritten. Because wide.Block is a plain value type, ordinary
// Go assignment already takes that snapshot; the new* locals below just
// keep the read side and the write side from being interleaved.
func round(s *state, r *register, m0, m1, m2, m3 wide.Block) {
	t := s.s[8]

	newS8 := s.s[7].Round(m3)
	newS7 := s.s[6].Round(m1)
	newS6 := s.s[5].Round(m1)
	newS5 := s.s[4].Round(m0)
	newS4 := s.s[3].Round(m0)
	newS3 := s.s[2].Round(r.r1.Xor(r.r2))
	newS2 := s.s[1].Round(m3)
	newS1 := s.s[0].Round(m3)
	newS0 := s.s[0].Xor(t).Xor(m2)

	newR2 := r.r1
	newR1 := r.r0
	newR0 := r.rr.Xor(m1)
	newRR := m2

	s.s[0], s.s[1], s.s[2], s.s[3], s.s[4] = newS0, newS1, newS2, newS3, newS4
	s.s[5], s.s[6], s.s[7], s.s[8] = newS5, newS6, newS7, newS8
	r.rr, r.r0, r.r1, r.r2 = newRR, newR0, newR1, newR2
}

// absorb runs the absorption engine of spec §4.2 over msg and returns the
// resulting state. It consumes msg in 64*D-byte superblocks, pads the
// final partial superblock with a single 0x01 byte at the first unused
// position, and finishes with four blank rounds.
func absorb(ctx *Context, msg []byte) state {
	d := ctx.degree
	super := 64 * d

	var st state
	st.s = ctx.initState

	var reg register
	reg.rr, reg.r0, reg.r1, reg.r2 = wide.Zero(d), wide.Zero(d), wide.Zero(d), wide.Zero(d)

	remaining := msg
	for len(remaining) >= super {
		roundFromSuperblock(&st, &reg, remaining[:super], d)
		remaining = remaining[super:]
	}

	var padded [16 * wide.MaxDegree * 4]byte
	buf := padded[:super]
	copy(buf, remaining)
	buf[len(remaining)] = 0x01
	roundFromSuperblock(&st, &reg, buf, d)

	zero := wide.Zero(d)
	for i := 0; i < 4; i++ {
		round(&st, &reg, zero, zero, zero, zero)
	}

	return st
}

// roundFromSuperblock views a 64*D-byte superblock as four consecutive
// 16*D-byte wide blocks in file order and runs one absorption round over
// them.
func roundFromSuperblock(s *state, r *register, superblock []byte, degree int) {
	w := 16 * degree
	m0 := wide.FromBytes(degree, superblock[0*w:1*w])
	m1 := wide.FromBytes(degree, superblock[1*w:2*w])
	m2 := wide.FromBytes(degree, superblock[2*w:3*w])
	m3 := wide.FromBytes(degree, superblock[3*w:4*w])
	round(s, r, m0, m1, m2, m3)
}
