// Package wire holds the byte level primitives shared by the ID3v1 and
// ID3v2 decoders: fixed width reads, the two 32-bit integer encodings and
// text decoding.
package wire

import (
	"io"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
)

// Reader reads fixed width fields from a sequential byte source and counts
// how many bytes it has consumed.
type Reader struct {
	r io.Reader
	n int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadExact returns exactly n bytes or an error matching
// id3tags.ErrSourceUnavailable. What names the field for the error message.
func (r *Reader) ReadExact(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, &id3tags.SourceError{Op: what, Err: errors.Errorf("negative length %d", n)}
	}
	buf := make([]byte, n)
	m, err := io.ReadFull(r.r, buf)
	r.n += int64(m)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &id3tags.SourceError{Op: what, Err: err}
	}
	return buf, nil
}

// Skip advances n bytes. Sources that implement io.Seeker are seeked,
// others are read and discarded.
func (r *Reader) Skip(n int64, what string) error {
	if n < 0 {
		return &id3tags.SourceError{Op: what, Err: errors.Errorf("negative skip %d", n)}
	}
	if n == 0 {
		return nil
	}
	if s, ok := r.r.(io.Seeker); ok {
		if _, err := s.Seek(n, io.SeekCurrent); err != nil {
			return &id3tags.SourceError{Op: what, Err: err}
		}
		r.n += n
		return nil
	}
	m, err := io.CopyN(io.Discard, r.r, n)
	r.n += m
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &id3tags.SourceError{Op: what, Err: err}
	}
	return nil
}

// Consumed returns the number of bytes read or skipped so far.
func (r *Reader) Consumed() int64 {
	return r.n
}
