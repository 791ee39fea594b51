package id3v2

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
	"ktkr.us/pkg/id3tags/id3/internal/wire"
)

// Frame is a text frame to be written by an Encoder.
type Frame struct {
	Key      id3tags.FrameKey
	Encoding byte // text encoding selector, ignored by URL frames
	Text     string
}

// Encoder writes ID3v2.3 tags. It writes only what Decode reads back: no
// extended header, no unsynchronisation and zero frame flags.
type Encoder struct {
	w io.Writer

	// Padding is the number of zero bytes written after the last frame.
	Padding int

	// Language is written into comment and lyrics frames. Defaults to "eng".
	Language string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, Language: "eng"}
}

// Encode writes a complete tag holding frames in order.
func (e *Encoder) Encode(frames []Frame) error {
	var body bytes.Buffer
	for _, f := range frames {
		b, err := e.encodeFrame(f)
		if err != nil {
			return errors.Wrap(err, f.Key.ID())
		}
		body.Write(b)
	}
	body.Write(make([]byte, e.Padding))

	header := make([]byte, HeaderSize)
	copy(header, Magic)
	header[3] = Version
	if err := wire.PutSynchsafe32(header[6:], uint32(body.Len())); err != nil {
		return err
	}
	if _, err := e.w.Write(header); err != nil {
		return err
	}
	_, err := e.w.Write(body.Bytes())
	return err
}

func (e *Encoder) encodeFrame(f Frame) ([]byte, error) {
	if f.Key.ID() == "" {
		return nil, errors.Errorf("id3v2: invalid frame key %d", f.Key)
	}
	payload, err := e.payload(f)
	if err != nil {
		return nil, err
	}
	b := make([]byte, frameHeaderSize, frameHeaderSize+len(payload))
	copy(b, f.Key.ID())
	wire.PutPlain32(b[4:8], uint32(len(payload)))
	return append(b, payload...), nil
}

func (e *Encoder) payload(f Frame) ([]byte, error) {
	lang := []byte(e.Language + "   ")[:3]

	switch ruleFor(f.Key) {
	case ruleComment:
		text, err := encodeBare(f.Encoding, f.Text)
		if err != nil {
			return nil, err
		}
		b := make([]byte, commentHeaderSize, commentHeaderSize+len(text))
		b[0] = f.Encoding
		copy(b[1:4], lang)
		return append(b, text...), nil

	case ruleLyrics:
		text, err := encodeBare(f.Encoding, f.Text)
		if err != nil {
			return nil, err
		}
		b := append([]byte{f.Encoding}, lang...)
		// empty content descriptor
		if f.Encoding == wire.EncUTF16 || f.Encoding == wire.EncUTF16BE {
			b = append(b, 0, 0)
		} else {
			b = append(b, 0)
		}
		return append(b, text...), nil

	case ruleLanguage:
		text, err := encodeBare(f.Encoding, f.Text)
		if err != nil {
			return nil, err
		}
		b := append([]byte{f.Encoding}, lang...)
		return append(b, text...), nil

	case ruleURL:
		b, err := wire.EncodeText(wire.EncLatin1, f.Text)
		if err != nil {
			return nil, err
		}
		return b[1:], nil

	case ruleOpaque:
		return nil, errors.Errorf("id3v2: cannot encode binary frame %s", f.Key.ID())
	}
	return wire.EncodeText(f.Encoding, f.Text)
}

// encodeBare encodes s without the leading selector byte.
func encodeBare(enc byte, s string) ([]byte, error) {
	b, err := wire.EncodeText(enc, s)
	if err != nil {
		return nil, err
	}
	return b[1:], nil
}
