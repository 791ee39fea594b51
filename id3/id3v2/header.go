package id3v2

import (
	"io"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
	"ktkr.us/pkg/id3tags/id3/internal/wire"
)

const (
	Magic = "ID3"

	// HeaderSize is the size of the fixed tag header. The size field of
	// the header does not count it.
	HeaderSize = 10

	// Version is the only major version this package reads.
	Version = 3
)

const (
	flagUnsynchronisation = 1 << 7
	flagExtendedHeader    = 1 << 6
	flagExperimental      = 1 << 5
)

// Header is the ID3v2 tag header.
type Header struct {
	Major    uint8
	Revision uint8
	Flags    uint8

	// Size of the tag after the header, including the extended header,
	// frames and padding.
	Size uint32

	// ExtendedSize is the declared size of the extended header, which is
	// skipped without being interpreted. Zero when there is none.
	ExtendedSize uint32
}

func (h *Header) Unsynchronised() bool { return h.Flags&flagUnsynchronisation != 0 }
func (h *Header) Extended() bool       { return h.Flags&flagExtendedHeader != 0 }
func (h *Header) Experimental() bool   { return h.Flags&flagExperimental != 0 }

// DecodeHeader reads the tag header and skips the extended header if there
// is one. Anything other than an ID3v2.3 tag yields an error matching
// id3tags.ErrNotThisFormat.
func DecodeHeader(r io.Reader) (*Header, error) {
	return readHeader(wire.NewReader(r))
}

func readHeader(rr *wire.Reader) (*Header, error) {
	b, err := rr.ReadExact(len(Magic), "v2 identifier")
	if err != nil {
		return nil, err
	}
	if string(b) != Magic {
		return nil, errors.Wrapf(id3tags.ErrNotThisFormat, "identifier %q", b)
	}

	b, err = rr.ReadExact(3, "v2 version and flags")
	if err != nil {
		return nil, err
	}
	h := &Header{Major: b[0], Revision: b[1], Flags: b[2]}
	if h.Major != Version {
		return nil, errors.Wrapf(id3tags.ErrNotThisFormat, "version 2.%d", h.Major)
	}

	b, err = rr.ReadExact(4, "v2 tag size")
	if err != nil {
		return nil, err
	}
	h.Size, err = wire.Synchsafe32(b)
	if err != nil {
		return nil, err
	}
	if h.Size == 0 || !h.Extended() {
		return h, nil
	}

	b, err = rr.ReadExact(4, "extended header size")
	if err != nil {
		return nil, err
	}
	h.ExtendedSize, err = wire.Plain32(b)
	if err != nil {
		return nil, err
	}
	if int64(h.ExtendedSize)+4 > int64(h.Size) {
		return nil, errors.Wrapf(id3tags.ErrMalformedFrame,
			"extended header of %d bytes in a %d byte tag", h.ExtendedSize, h.Size)
	}
	if err := rr.Skip(int64(h.ExtendedSize), "extended header"); err != nil {
		return nil, err
	}
	return h, nil
}
