package wire

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"ktkr.us/pkg/id3tags"
)

// Text encoding selectors, the first byte of a text frame.
const (
	EncLatin1  byte = 0x00 // ISO-8859-1
	EncUTF16   byte = 0x01 // UTF-16 with byte order mark
	EncUTF16BE byte = 0x02 // UTF-16 big endian, no BOM
	EncUTF8    byte = 0x03
)

// Encoding resolves a selector byte.
func Encoding(sel byte) (encoding.Encoding, error) {
	switch sel {
	case EncLatin1:
		return charmap.ISO8859_1, nil
	case EncUTF16:
		// A missing BOM falls back to big endian.
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case EncUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case EncUTF8:
		return unicode.UTF8, nil
	}
	return nil, &id3tags.EncodingError{Selector: sel}
}

// DecodeText decodes a frame payload whose first byte selects the encoding
// of the rest.
func DecodeText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errors.Wrap(id3tags.ErrMalformedFrame, "empty text payload")
	}
	return DecodeWith(b[0], b[1:])
}

// DecodeWith decodes b under the encoding named by sel. Trailing NUL
// terminators are removed.
func DecodeWith(sel byte, b []byte) (string, error) {
	enc, err := Encoding(sel)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, "decode 0x%02x text", sel)
	}
	return TrimNUL(string(out)), nil
}

// EncodeText is the inverse of DecodeText: it returns the selector byte
// followed by s in that encoding.
func EncodeText(sel byte, s string) ([]byte, error) {
	enc, err := Encoding(sel)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "encode %q", s)
	}
	return append([]byte{sel}, out...), nil
}

// Latin1 decodes a fixed width field one byte per character. NUL padding is
// kept.
func Latin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}

// TrimNUL removes trailing NUL bytes.
func TrimNUL(s string) string {
	return strings.TrimRight(s, "\x00")
}
