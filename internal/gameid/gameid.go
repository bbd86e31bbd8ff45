// Package gameid mints identifiers for individual games: a UUIDv7 payload
// rendered as 26 characters of Crockford base32, so ids sort by creation
// time and stay safe in log lines and filenames.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Crockford's base32 alphabet: no i, l, o or u.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail of an id. Tests inject one for
// stable output; nil means crypto/rand.
type RandSource interface {
	Intn(n int) int
}

// Generator mints ids with a configurable randomness source.
type Generator struct {
	rand RandSource
}

// NewGenerator creates a generator drawing randomness from rand.
func NewGenerator(rand RandSource) *Generator {
	return &Generator{rand: rand}
}

// Generate mints an id using crypto/rand randomness.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate mints an id: 48 bits of millisecond timestamp followed by 80
// random bits, with the UUID version and variant bits set to 7 and 10.
func (g *Generator) Generate() string {
	var id [16]byte

	now := time.Now().UnixMilli()
	id[0] = byte(now >> 40)
	id[1] = byte(now >> 32)
	id[2] = byte(now >> 24)
	id[3] = byte(now >> 16)
	id[4] = byte(now >> 8)
	id[5] = byte(now)

	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.Intn(256))
		}
	} else {
		if _, err := rand.Read(id[6:]); err != nil {
			panic("gameid: reading random bytes: " + err.Error())
		}
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encode(id)
}

// encode renders 128 bits as 26 base32 characters, five bits per character,
// reading most significant bit first and zero-padding past the end.
func encode(id [16]byte) string {
	var out [26]byte
	for i := range out {
		var v byte
		for j := 0; j < 5; j++ {
			v <<= 1
			bit := i*5 + j
			if bit < 128 {
				v |= id[bit/8] >> (7 - bit%8) & 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate reports malformed ids: anything but 26 alphabet characters, or a
// first character that would encode more than 128 bits.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("game id must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
