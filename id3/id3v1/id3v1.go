// Package id3v1 reads the 128-byte ID3v1 and ID3v1.1 trailer at the end of
// a file.
package id3v1

import (
	"io"
	"strconv"

	"ktkr.us/pkg/id3tags"
	"ktkr.us/pkg/id3tags/id3/internal/wire"
)

// Size of the trailer.
const Size = 128

const Magic = "TAG"

func init() {
	id3tags.RegisterDecoder("id3v1", func(r io.Reader, size int64, _ *id3tags.Config) (*id3tags.TagSet, error) {
		return Decode(r, size)
	})
}

// Decode reads the trailer of a file of the given size. r must be
// positioned at the start of the file. A file without the "TAG" marker, or
// one too short to hold a trailer, yields an empty TagSet and no error.
func Decode(r io.Reader, size int64) (*id3tags.TagSet, error) {
	t := id3tags.NewTagSet()
	if size < Size {
		return t, nil
	}

	rr := wire.NewReader(r)
	if err := rr.Skip(size-Size, "seek to v1 trailer"); err != nil {
		return nil, err
	}

	b, err := rr.ReadExact(len(Magic), "v1 marker")
	if err != nil {
		return nil, err
	}
	if string(b) != Magic {
		return t, nil
	}

	// The remaining 125 bytes are read in one go and sliced at fixed offsets.
	b, err = rr.ReadExact(Size-len(Magic), "v1 trailer")
	if err != nil {
		return nil, err
	}
	var (
		title   = b[0:30]
		artist  = b[30:60]
		album   = b[60:90]
		year    = b[90:94]
		comment = b[94:124]
		genre   = b[124]
	)

	t.HasV1 = true
	t.Title = field(title)
	t.Artist = field(artist)
	t.Album = field(album)
	t.Year = parseYear(year)
	t.Comment, t.Track = parseComment(comment)
	t.Genre = Genre(genre)
	return t, nil
}

func field(b []byte) string {
	return wire.TrimNUL(wire.Latin1(b))
}

// parseYear returns 0 unless b is exactly four ASCII digits.
func parseYear(b []byte) int {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0
		}
	}
	year, err := strconv.Atoi(string(b))
	if err != nil {
		return 0
	}
	return year
}

// parseComment applies the ID3v1.1 convention: a zero in byte 28 followed by
// a non-zero byte 29 means bytes 0-27 are the comment and byte 29 is the
// track number.
func parseComment(b []byte) (comment string, track int) {
	if b[28] == 0 && b[29] != 0 {
		return field(b[:28]), int(b[29])
	}
	return field(b), 0
}
