package id3tags

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSourceUnavailable is matched by every failure to open, seek or
	// read the byte source, including reads that end early.
	ErrSourceUnavailable = errors.New("id3tags: source unavailable")

	// ErrNotThisFormat means the data has no ID3v2.3 tag. It does not
	// indicate a failure to read.
	ErrNotThisFormat = errors.New("id3tags: not an ID3v2.3 tag")

	// ErrUnsupportedEncoding is matched by an *EncodingError.
	ErrUnsupportedEncoding = errors.New("id3tags: unsupported text encoding")

	// ErrMalformedFrame reports a frame that violates the tag's own bounds.
	ErrMalformedFrame = errors.New("id3tags: malformed frame")
)

// SourceError wraps an I/O failure of the underlying byte source.
type SourceError struct {
	Op  string // what was being read, e.g. "v1 marker"
	Err error
}

func (e *SourceError) Error() string {
	return "id3tags: " + e.Op + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// EncodingError is returned for a text encoding selector byte outside 0-3.
type EncodingError struct {
	Selector byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("id3tags: unknown text encoding 0x%02x", e.Selector)
}

func (e *EncodingError) Is(target error) bool { return target == ErrUnsupportedEncoding }
