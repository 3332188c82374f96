// Command lemacdemo computes a LeMac tag for a message under each of the
// three variants and prints them, reporting whether the host offers
// hardware AES along the way. It is a demonstration command, not the
// benchmark harness spec.md places out of scope.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"golang.org/x/sys/cpu"

	"github.com/lemac-go/lemac"
)

func main() {
	keyHex := flag.String("key", "", "hex-encoded 16-byte key (random if omitted)")
	nonceHex := flag.String("nonce", "", "hex-encoded 16-byte nonce (random if omitted)")
	message := flag.String("message", "the quick brown fox jumps over the lazy dog", "message to authenticate")
	flag.Parse()

	if cpu.X86.HasAES || cpu.ARM64.HasAES {
		fmt.Println("hardware AES: available")
	} else {
		fmt.Println("hardware AES: not detected (crypto/aes will fall back to a software path)")
	}

	key, err := keyBytes(*keyHex)
	if err != nil {
		log.Fatalf("key: %v", err)
	}
	nonce, err := nonceBytes(*nonceHex)
	if err != nil {
		log.Fatalf("nonce: %v", err)
	}

	msg := []byte(*message)
	fmt.Printf("message: %q (%d bytes)\n\n", msg, len(msg))

	for _, v := range []struct {
		name string
		mac  func([lemac.KeySize]byte, []byte, [lemac.NonceSize]byte) [lemac.TagSize]byte
	}{
		{"LeMac   (X1)", lemac.MACVariant1},
		{"LeMac-X2", lemac.MACVariant2},
		{"LeMac-X4", lemac.MACVariant4},
	} {
		tag := v.mac(key, msg, nonce)
		fmt.Printf("%-10s tag: %s\n", v.name, hex.EncodeToString(tag[:]))
	}
}

func keyBytes(h string) ([lemac.KeySize]byte, error) {
	return fixedBytes(h, lemac.KeySize)
}

func nonceBytes(h string) ([lemac.NonceSize]byte, error) {
	return fixedBytes(h, lemac.NonceSize)
}

func fixedBytes(h string, size int) ([16]byte, error) {
	var out [16]byte
	if h == "" {
		if _, err := rand.Read(out[:size]); err != nil {
			return out, err
		}
		return out, nil
	}
	decoded, err := hex.DecodeString(h)
	if err != nil {
		return out, err
	}
	if len(decoded) != size {
		return out, fmt.Errorf("want %d bytes, got %d", size, len(decoded))
	}
	copy(out[:], decoded)
	return out, nil
}
