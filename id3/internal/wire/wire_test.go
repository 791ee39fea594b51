package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"

	"ktkr.us/pkg/id3tags"
)

func TestSynchsafe32(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint32
	}{
		{[]byte{0x00, 0x00, 0x02, 0x01}, 257},
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7f}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x7f, 0x7f, 0x7f, 0x7f}, MaxSynchsafe},
		// high bits are masked, not rejected
		{[]byte{0x80, 0x80, 0x82, 0x81}, 257},
	}
	for _, test := range tests {
		got, err := Synchsafe32(test.in)
		if err != nil {
			t.Fatalf("% x: %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("Synchsafe32(% x) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestPlain32(t *testing.T) {
	got, err := Plain32([]byte{0x00, 0x00, 0x00, 0x0a})
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	got, _ = Plain32([]byte{0x00, 0x00, 0x02, 0x01})
	if got != 513 {
		t.Errorf("got %d, want 513", got)
	}
}

func TestIntLength(t *testing.T) {
	for _, b := range [][]byte{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		if _, err := Plain32(b); !errors.Is(err, ErrLength) {
			t.Errorf("Plain32(% x): got %v, want ErrLength", b, err)
		}
		if _, err := Synchsafe32(b); !errors.Is(err, ErrLength) {
			t.Errorf("Synchsafe32(% x): got %v, want ErrLength", b, err)
		}
	}
}

func TestSynchsafeRoundTrip(t *testing.T) {
	b := make([]byte, 4)
	for _, v := range []uint32{0, 1, 127, 128, 257, 16383, 16384, 1 << 20, MaxSynchsafe} {
		if err := PutSynchsafe32(b, v); err != nil {
			t.Fatal(err)
		}
		for _, c := range b {
			if c&0x80 != 0 {
				t.Fatalf("%d encoded with high bit set: % x", v, b)
			}
		}
		got, _ := Synchsafe32(b)
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
	if err := PutSynchsafe32(b, MaxSynchsafe+1); err == nil {
		t.Error("expected overflow error")
	}
}

func TestReaderReadExact(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("abcdef")))
	b, err := r.ReadExact(4, "head")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "abcd" {
		t.Errorf("got %q", b)
	}
	if r.Consumed() != 4 {
		t.Errorf("consumed %d, want 4", r.Consumed())
	}

	_, err = r.ReadExact(4, "tail")
	if !errors.Is(err, id3tags.ErrSourceUnavailable) {
		t.Fatalf("short read: got %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short read should wrap io.ErrUnexpectedEOF: %v", err)
	}
}

// onlyReader hides any Seek method of the underlying reader.
type onlyReader struct{ io.Reader }

func TestReaderSkip(t *testing.T) {
	for name, src := range map[string]func([]byte) io.Reader{
		"seeker": func(b []byte) io.Reader { return bytes.NewReader(b) },
		"reader": func(b []byte) io.Reader { return onlyReader{bytes.NewReader(b)} },
	} {
		r := NewReader(src([]byte("0123456789")))
		if err := r.Skip(6, "gap"); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b, err := r.ReadExact(2, "field")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if string(b) != "67" {
			t.Errorf("%s: got %q, want 67", name, b)
		}
		if r.Consumed() != 8 {
			t.Errorf("%s: consumed %d, want 8", name, r.Consumed())
		}
		if err := r.Skip(-1, "negative"); !errors.Is(err, id3tags.ErrSourceUnavailable) {
			t.Errorf("%s: negative skip: got %v", name, err)
		}
	}

	r := NewReader(onlyReader{bytes.NewReader([]byte("abc"))})
	if err := r.Skip(10, "past end"); !errors.Is(err, id3tags.ErrSourceUnavailable) {
		t.Errorf("skip past end: got %v", err)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"latin1", []byte{0x00, 'c', 'a', 'f', 0xe9}, "café"},
		{"utf16 le bom", []byte{0x01, 0xff, 0xfe, 'H', 0x00, 'i', 0x00}, "Hi"},
		{"utf16 be bom", []byte{0x01, 0xfe, 0xff, 0x00, 'H', 0x00, 'i'}, "Hi"},
		{"utf16 no bom", []byte{0x01, 0x00, 'H', 0x00, 'i'}, "Hi"},
		{"utf16be", []byte{0x02, 0x30, 0x42}, "あ"},
		{"utf8", append([]byte{0x03}, "Hello"...), "Hello"},
		{"utf8 terminated", append([]byte{0x03}, "Hello\x00"...), "Hello"},
		{"utf16 terminated", []byte{0x01, 0xff, 0xfe, 'A', 0x00, 0x00, 0x00}, "A"},
		{"selector only", []byte{0x03}, ""},
	}
	for _, test := range tests {
		got, err := DecodeText(test.in)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", test.name, got, test.want)
		}
	}
}

func TestDecodeTextErrors(t *testing.T) {
	for _, sel := range []byte{0x04, 0x10, 0xff} {
		_, err := DecodeText([]byte{sel, 'x'})
		if !errors.Is(err, id3tags.ErrUnsupportedEncoding) {
			t.Errorf("selector 0x%02x: got %v, want ErrUnsupportedEncoding", sel, err)
		}
		var encErr *id3tags.EncodingError
		if !errors.As(err, &encErr) || encErr.Selector != sel {
			t.Errorf("selector 0x%02x: want *EncodingError, got %#v", sel, err)
		}
	}
	if _, err := DecodeText(nil); !errors.Is(err, id3tags.ErrMalformedFrame) {
		t.Errorf("empty payload: got %v", err)
	}
}

func TestEncodeTextRoundTrip(t *testing.T) {
	for _, sel := range []byte{EncLatin1, EncUTF16, EncUTF16BE, EncUTF8} {
		s := "Mitch Murder - Montage"
		if sel != EncLatin1 {
			s = "東京 Montage"
		}
		b, err := EncodeText(sel, s)
		if err != nil {
			t.Fatalf("0x%02x: %v", sel, err)
		}
		if b[0] != sel {
			t.Errorf("0x%02x: selector byte is 0x%02x", sel, b[0])
		}
		got, err := DecodeText(b)
		if err != nil {
			t.Fatalf("0x%02x: %v", sel, err)
		}
		if got != s {
			t.Errorf("0x%02x: got %q, want %q", sel, got, s)
		}
	}
}

func TestLatin1KeepsPadding(t *testing.T) {
	raw := []byte{'T', 'i', 't', 'l', 0xe9, 0x00, 0x00}
	s := Latin1(raw)
	if s != "Titlé\x00\x00" {
		t.Errorf("got %q", s)
	}
	if len([]rune(s)) != len(raw) {
		t.Errorf("want one character per byte, got %d", len([]rune(s)))
	}
	if got := TrimNUL(s); got != "Titlé" {
		t.Errorf("TrimNUL: got %q", got)
	}
	if got := TrimNUL("a\x00b\x00"); got != "a\x00b" {
		t.Errorf("TrimNUL only trims the right: got %q", got)
	}
}
