package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

var ErrLength = errors.New("wire: integer field must be 4 bytes")

// Plain32 decodes a big-endian 32-bit integer.
func Plain32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, errors.Wrapf(ErrLength, "got %d", len(b))
	}
	return binary.BigEndian.Uint32(b), nil
}

// Synchsafe32 decodes a 28-bit integer stored in the low 7 bits of 4 bytes.
// The high bit of each byte is masked off, not checked.
func Synchsafe32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, errors.Wrapf(ErrLength, "got %d", len(b))
	}
	return uint32(b[0]&0x7f)<<21 |
		uint32(b[1]&0x7f)<<14 |
		uint32(b[2]&0x7f)<<7 |
		uint32(b[3]&0x7f), nil
}

// PutPlain32 encodes v into b[:4].
func PutPlain32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// PutSynchsafe32 encodes v into b[:4]. Bits above MaxSynchsafe are an error.
func PutSynchsafe32(b []byte, v uint32) error {
	if v > MaxSynchsafe {
		return errors.Errorf("wire: %d does not fit in a synchsafe integer", v)
	}
	b[0] = byte(v>>21) & 0x7f
	b[1] = byte(v>>14) & 0x7f
	b[2] = byte(v>>7) & 0x7f
	b[3] = byte(v) & 0x7f
	return nil
}
