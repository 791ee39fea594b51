// Package id3tags reads ID3 metadata from audio files: the 128-byte ID3v1
// trailer (including the v1.1 track number) and the ID3v2.3 tag at the start
// of the file.
//
// The tag formats live in sub-packages that register themselves with this
// package when imported:
//
//	import (
//		"ktkr.us/pkg/id3tags"
//		_ "ktkr.us/pkg/id3tags/id3/id3v1"
//		_ "ktkr.us/pkg/id3tags/id3/id3v2"
//	)
//
//	tags, err := id3tags.ReadFile("song.mp3")
package id3tags

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DecodeFunc reads one kind of tag from r, which is positioned at the start
// of a file of the given size. A decoder that finds no tag of its kind
// returns an error matching ErrNotThisFormat or an empty TagSet.
type DecodeFunc func(r io.Reader, size int64, c *Config) (*TagSet, error)

var decoders []decoder

type decoder struct {
	name   string
	decode DecodeFunc
}

// RegisterDecoder lets the package know how to read a kind of tag. It is
// meant to be called from init functions and is not safe for concurrent use
// with Read.
func RegisterDecoder(name string, decode DecodeFunc) {
	decoders = append(decoders, decoder{name, decode})
	sort.SliceStable(decoders, func(i, j int) bool { return decoders[i].name < decoders[j].name })
}

// Decoders returns the names of the registered decoders.
func Decoders() []string {
	names := make([]string, len(decoders))
	for i, d := range decoders {
		names[i] = d.name
	}
	return names
}

// Read runs every registered decoder over r and merges their results. Each
// decoder gets its own section reader, so the passes run concurrently and do
// not share a read position.
//
// A decoder that reports ErrNotThisFormat contributes nothing. If a decoder
// fails, Read still returns what the other decoders found together with the
// first error.
func Read(r io.ReaderAt, size int64, opts ...Option) (*TagSet, error) {
	c := NewConfig(opts...)

	var (
		g       errgroup.Group
		results = make([]*TagSet, len(decoders))
	)
	for i, d := range decoders {
		i, d := i, d
		g.Go(func() error {
			t, err := d.decode(io.NewSectionReader(r, 0, size), size, c)
			if errors.Is(err, ErrNotThisFormat) {
				return nil
			}
			results[i] = t
			return errors.Wrap(err, d.name)
		})
	}
	err := g.Wait()

	t := NewTagSet()
	for _, res := range results {
		t.Merge(res)
	}
	return t, err
}

// ReadFile opens path, reads its tags and closes it again.
func ReadFile(path string, opts ...Option) (*TagSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &SourceError{Op: "stat", Err: err}
	}
	return Read(f, fi.Size(), opts...)
}
