// Package id3v2 reads ID3v2.3 tags from the start of a file. Versions 2.2
// and 2.4 are reported as id3tags.ErrNotThisFormat.
package id3v2

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
	"ktkr.us/pkg/id3tags/id3/internal/wire"
)

// frameHeaderSize covers the id, size and flags of a frame.
const frameHeaderSize = 10

func init() {
	id3tags.RegisterDecoder("id3v2", func(r io.Reader, _ int64, c *id3tags.Config) (*id3tags.TagSet, error) {
		return Decode(r, c)
	})
}

// Decode reads an ID3v2.3 tag from r, which must be positioned at the start
// of the file. Frame iteration ends at padding, at the end of the declared
// tag size, or at the first frame id that is not an id3tags.FrameKey; none
// of these is an error.
//
// When an error is returned after the header was read, the TagSet holds
// the frames decoded before it. A nil Config means the defaults.
func Decode(r io.Reader, c *id3tags.Config) (*id3tags.TagSet, error) {
	if c == nil {
		c = id3tags.NewConfig()
	}
	rr := wire.NewReader(r)
	h, err := readHeader(rr)
	if err != nil {
		return nil, err
	}

	t := id3tags.NewTagSet()
	t.HasV2 = true
	if h.Size == 0 {
		return t, nil
	}

	d := &frameReader{r: rr, h: h, c: c, tags: t}
	for {
		s, err := d.next()
		if err != nil {
			return t, err
		}
		if s != stepNext {
			return t, nil
		}
	}
}

// step is the outcome of reading one frame.
type step int

const (
	stepNext    step = iota // frame stored or skipped, keep going
	stepEnd                 // padding or end of tag reached
	stepUnknown             // unrecognised frame id, stop here
)

type frameReader struct {
	r    *wire.Reader
	h    *Header
	c    *id3tags.Config
	tags *id3tags.TagSet
}

// remaining returns the number of tag bytes not yet consumed. The reader
// has consumed the 10-byte header, which Size does not count.
func (d *frameReader) remaining() int64 {
	return int64(d.h.Size) - (d.r.Consumed() - HeaderSize)
}

func (d *frameReader) next() (step, error) {
	left := d.remaining()
	if left < frameHeaderSize {
		return stepEnd, nil
	}

	b, err := d.r.ReadExact(4, "frame id")
	if err != nil {
		return 0, err
	}
	id := wire.Latin1(b)
	if strings.TrimFunc(id, isPadding) == "" {
		return stepEnd, nil
	}
	key, ok := id3tags.LookupFrameKey(id)
	if !ok {
		d.c.Logger.Printf("id3v2: stopping at unknown frame %q, %d bytes left in tag", id, left)
		return stepUnknown, nil
	}

	b, err = d.r.ReadExact(4, "frame size")
	if err != nil {
		return 0, err
	}
	size, err := wire.Plain32(b)
	if err != nil {
		return 0, err
	}
	// flags are not interpreted
	if _, err := d.r.ReadExact(2, "frame flags"); err != nil {
		return 0, err
	}
	if int64(size) > left-frameHeaderSize {
		return 0, errors.Wrapf(id3tags.ErrMalformedFrame,
			"%s declares %d bytes, %d left in tag", id, size, left-frameHeaderSize)
	}

	payload, err := d.r.ReadExact(int(size), id+" payload")
	if err != nil {
		return 0, err
	}

	s, err := ruleFor(key).decode(payload)
	if err != nil {
		if d.c.SkipUndecodableFrames && undecodable(err) {
			d.c.Logger.Print(errors.Wrapf(err, "id3v2: skipping %s", id))
			return stepNext, nil
		}
		return 0, errors.Wrap(err, id)
	}
	d.tags.Frames[key] = s
	return stepNext, nil
}

func undecodable(err error) bool {
	return errors.Is(err, id3tags.ErrUnsupportedEncoding) || errors.Is(err, id3tags.ErrMalformedFrame)
}

// isPadding matches the bytes treated as blank in a frame id.
func isPadding(r rune) bool {
	return r <= ' '
}
