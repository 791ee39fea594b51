package id3v2

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
	"ktkr.us/pkg/id3tags/id3/internal/wire"
)

// rule says how a frame payload becomes a string.
type rule uint8

const (
	// Selector byte followed by text. Used by every frame not in rules.
	ruleText rule = iota

	// Selector byte, then a fixed 8-byte sub-header (selector, language
	// and short content description), then text in the selected encoding.
	ruleComment

	// Selector byte, 3-byte language, terminated content descriptor, text.
	ruleLyrics

	// Selector byte, 3-byte language, text.
	ruleLanguage

	// Latin-1 text with no selector byte.
	ruleURL

	// Binary payload; replaced by a placeholder naming its size.
	ruleOpaque
)

// commentHeaderSize is the part of a COMM payload skipped before the text.
const commentHeaderSize = 8

var rules = map[id3tags.FrameKey]rule{
	id3tags.COMM: ruleComment,
	id3tags.USLT: ruleLyrics,
	id3tags.USER: ruleLanguage,

	id3tags.WCOM: ruleURL,
	id3tags.WCOP: ruleURL,
	id3tags.WOAF: ruleURL,
	id3tags.WOAR: ruleURL,
	id3tags.WOAS: ruleURL,
	id3tags.WORS: ruleURL,
	id3tags.WPAY: ruleURL,
	id3tags.WPUB: ruleURL,

	id3tags.APIC: ruleOpaque,
	id3tags.AENC: ruleOpaque,
	id3tags.ENCR: ruleOpaque,
	id3tags.EQUA: ruleOpaque,
	id3tags.ETCO: ruleOpaque,
	id3tags.GEOB: ruleOpaque,
	id3tags.GRID: ruleOpaque,
	id3tags.LINK: ruleOpaque,
	id3tags.MCDI: ruleOpaque,
	id3tags.MLLT: ruleOpaque,
	id3tags.PRIV: ruleOpaque,
	id3tags.PCNT: ruleOpaque,
	id3tags.POPM: ruleOpaque,
	id3tags.POSS: ruleOpaque,
	id3tags.RBUF: ruleOpaque,
	id3tags.RVAD: ruleOpaque,
	id3tags.RVRB: ruleOpaque,
	id3tags.SYLT: ruleOpaque,
	id3tags.SYTC: ruleOpaque,
	id3tags.UFID: ruleOpaque,
}

func ruleFor(k id3tags.FrameKey) rule {
	if r, ok := rules[k]; ok {
		return r
	}
	return ruleText
}

// Opaque is the value stored for frames with binary payloads.
func Opaque(n int) string {
	return fmt.Sprintf("<binary data, %d bytes>", n)
}

func (r rule) decode(b []byte) (string, error) {
	switch r {
	case ruleComment:
		if len(b) < commentHeaderSize {
			return "", errors.Wrapf(id3tags.ErrMalformedFrame, "comment of %d bytes", len(b))
		}
		return wire.DecodeWith(b[0], b[commentHeaderSize:])

	case ruleLyrics:
		if len(b) < 4 {
			return "", errors.Wrapf(id3tags.ErrMalformedFrame, "lyrics of %d bytes", len(b))
		}
		text, err := skipTerminated(b[0], b[4:])
		if err != nil {
			return "", err
		}
		return wire.DecodeWith(b[0], text)

	case ruleLanguage:
		if len(b) < 4 {
			return "", errors.Wrapf(id3tags.ErrMalformedFrame, "%d bytes", len(b))
		}
		return wire.DecodeWith(b[0], b[4:])

	case ruleURL:
		return wire.TrimNUL(wire.Latin1(b)), nil

	case ruleOpaque:
		return Opaque(len(b)), nil
	}
	return wire.DecodeText(b)
}

// skipTerminated returns b after its first NUL terminated string. The
// terminator is one zero byte for Latin-1 and UTF-8, and a zero code unit
// for UTF-16.
func skipTerminated(enc byte, b []byte) ([]byte, error) {
	switch enc {
	case wire.EncLatin1, wire.EncUTF8:
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			return nil, errors.Wrap(id3tags.ErrMalformedFrame, "unterminated descriptor")
		}
		return b[i+1:], nil
	case wire.EncUTF16, wire.EncUTF16BE:
		for i := 0; i+1 < len(b); i += 2 {
			if b[i] == 0 && b[i+1] == 0 {
				return b[i+2:], nil
			}
		}
		return nil, errors.Wrap(id3tags.ErrMalformedFrame, "unterminated descriptor")
	}
	return nil, &id3tags.EncodingError{Selector: enc}
}
