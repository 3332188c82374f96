package lemac

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestVectors checks the three byte-exact vectors fixed in spec.md §6.
func TestVectors(t *testing.T) {
	var zeroKey, zeroNonce [16]byte

	t.Run("zero key, zero nonce, 16 zero bytes", func(t *testing.T) {
		want := mustHex("26fa471b77facc73ec2f9b50bb1af864")
		got := MACVariant1(zeroKey, make([]byte, 16), zeroNonce)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})

	t.Run("zero key, zero nonce, empty message", func(t *testing.T) {
		want := mustHex("52282e853c9cfeb5537d33fb916a341f")
		got := MACVariant1(zeroKey, nil, zeroNonce)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})

	t.Run("sequential key, nonce and message", func(t *testing.T) {
		var key, nonce [16]byte
		copy(key[:], seqBytes(16))
		copy(nonce[:], seqBytes(16))
		msg := seqBytes(65) // bytes 0x00..0x40 inclusive
		want := mustHex("d58dfdbe8b0224e1d5106ac4d775beef")
		got := MACVariant1(key, msg, nonce)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("got %x, want %x", got, want)
		}
	})
}

func TestDeterministic(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))
	ctx := NewX1(key)
	msg := []byte("the quick brown fox")
	a := ctx.MAC(msg, nonce)
	b := ctx.MAC(msg, nonce)
	if a != b {
		t.Fatalf("MAC is not deterministic: %x != %x", a, b)
	}
}

func TestContextReuseMatchesFreshInit(t *testing.T) {
	var key, nonce1, nonce2 [16]byte
	copy(key[:], seqBytes(16))
	nonce2[0] = 1

	shared := NewX1(key)
	a1 := shared.MAC([]byte("msg one"), nonce1)
	a2 := shared.MAC([]byte("msg two"), nonce2)

	b1 := NewX1(key).MAC([]byte("msg one"), nonce1)
	b2 := NewX1(key).MAC([]byte("msg two"), nonce2)

	if a1 != b1 {
		t.Fatalf("reused-context tag for msg one diverged from fresh-init tag")
	}
	if a2 != b2 {
		t.Fatalf("reused-context tag for msg two diverged from fresh-init tag")
	}
}

func TestLengthSensitivity(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))
	ctx := NewX1(key)

	msg := []byte("a message of some length")
	padded := append(append([]byte{}, msg...), 0x00)

	a := ctx.MAC(msg, nonce)
	b := ctx.MAC(padded, nonce)
	if a == b {
		t.Fatalf("appending a single zero byte produced the same tag")
	}
}

func TestDomainSeparationAcrossVariants(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))
	msg := seqBytes(130)

	t1 := MACVariant1(key, msg, nonce)
	t2 := MACVariant2(key, msg, nonce)
	t4 := MACVariant4(key, msg, nonce)

	if t1 == t2 || t1 == t4 || t2 == t4 {
		t.Fatalf("variants collided: x1=%x x2=%x x4=%x", t1, t2, t4)
	}
}

func TestBoundaryLengths(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))

	for _, degree := range []Degree{Degree1, Degree2, Degree4} {
		ctx, err := Init(degree, key)
		if err != nil {
			t.Fatalf("Init(%d): %v", degree, err)
		}
		super := degree.BlockSize()
		lengths := []int{0, 1, super - 1, super, super + 1, 3*super + 17}
		seen := map[[TagSize]byte]int{}
		for _, n := range lengths {
			tag := ctx.MAC(seqBytes(n), nonce)
			if prev, ok := seen[tag]; ok {
				t.Fatalf("degree %d: length %d collided with length %d", degree, n, prev)
			}
			seen[tag] = n
		}
	}
}

func TestLaneSymmetryNoCrossDegreeCollisionOnZero(t *testing.T) {
	var key, nonce [16]byte
	tags := map[[TagSize]byte]Degree{}
	for _, degree := range []Degree{Degree1, Degree2, Degree4} {
		ctx, err := Init(degree, key)
		if err != nil {
			t.Fatalf("Init(%d): %v", degree, err)
		}
		tag := ctx.MAC(nil, nonce)
		if other, ok := tags[tag]; ok {
			t.Fatalf("degree %d shares a zero-input tag with degree %d", degree, other)
		}
		tags[tag] = degree
	}
}

func TestInitRejectsUnsupportedDegree(t *testing.T) {
	var key [16]byte
	if _, err := Init(Degree(3), key); err == nil {
		t.Fatalf("Init(3, ...) should have returned an error")
	}
}

func TestEqual(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))
	tag := NewX1(key).MAC([]byte("hello"), nonce)
	other := tag
	other[0] ^= 1

	if !Equal(tag, tag) {
		t.Fatalf("Equal(tag, tag) = false")
	}
	if Equal(tag, other) {
		t.Fatalf("Equal(tag, other) = true for differing tags")
	}
}

// TestAvalanche is a randomized differential sanity check (spec §8, item
// 8): flipping a single message bit should change roughly half the tag
// bits, not leave the tag unchanged or barely perturbed.
func TestAvalanche(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))
	ctx := NewX1(key)
	msg := seqBytes(200)

	base := ctx.MAC(msg, nonce)
	flipped := append([]byte{}, msg...)
	flipped[100] ^= 0x01
	changed := ctx.MAC(flipped, nonce)

	diffBits := 0
	for i := range base {
		d := base[i] ^ changed[i]
		for d != 0 {
			diffBits += int(d & 1)
			d >>= 1
		}
	}
	if diffBits < 20 {
		t.Fatalf("single-bit message flip only changed %d/128 tag bits", diffBits)
	}
}

// TestAbsorptionStateDiffersWithMessage uses go-cmp to diff the full
// nine-block absorption state between two distinct messages, by way of
// their resulting tags across all three variants — a structural comparison
// closer in spirit to a full-state differential test than a single byte
// comparison.
func TestAbsorptionStateDiffersWithMessage(t *testing.T) {
	var key, nonce [16]byte
	copy(key[:], seqBytes(16))

	type result struct {
		X1, X2, X4 [TagSize]byte
	}
	compute := func(msg []byte) result {
		return result{
			X1: MACVariant1(key, msg, nonce),
			X2: MACVariant2(key, msg, nonce),
			X4: MACVariant4(key, msg, nonce),
		}
	}

	a := compute(seqBytes(64))
	b := compute(seqBytes(128))

	if diff := cmp.Diff(a, b); diff == "" {
		t.Fatalf("64-byte and 128-byte messages produced identical results across all variants")
	}
}
