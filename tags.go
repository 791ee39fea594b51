package id3tags

import "sort"

// TagSet is the merged result of reading the ID3v1 trailer and the ID3v2.3
// header of one file. Zero values mean absent.
type TagSet struct {
	// Fields from the 128-byte ID3v1 trailer.
	Title   string
	Artist  string
	Album   string
	Year    int // four digit year, 0 if absent or malformed
	Comment string
	Track   int // ID3v1.1 track number, 0 if absent
	Genre   string

	// Frames holds decoded ID3v2.3 frames. A frame id that occurs more than
	// once keeps the last value.
	Frames map[FrameKey]string

	HasV1 bool
	HasV2 bool
}

// NewTagSet returns an empty TagSet ready for decoding into.
func NewTagSet() *TagSet {
	return &TagSet{Frames: make(map[FrameKey]string)}
}

// Frame returns the decoded value of frame k.
func (t *TagSet) Frame(k FrameKey) (string, bool) {
	s, ok := t.Frames[k]
	return s, ok
}

// Keys returns the keys of all decoded frames in table order.
func (t *TagSet) Keys() []FrameKey {
	keys := make([]FrameKey, 0, len(t.Frames))
	for k := range t.Frames {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Merge copies the fields of o that are absent in t, and every frame of o.
// The v1 and v2 regions of a file never overlap, so the order in which
// partial results are merged does not matter.
func (t *TagSet) Merge(o *TagSet) {
	if o == nil {
		return
	}
	if t.Title == "" {
		t.Title = o.Title
	}
	if t.Artist == "" {
		t.Artist = o.Artist
	}
	if t.Album == "" {
		t.Album = o.Album
	}
	if t.Year == 0 {
		t.Year = o.Year
	}
	if t.Comment == "" {
		t.Comment = o.Comment
	}
	if t.Track == 0 {
		t.Track = o.Track
	}
	if t.Genre == "" {
		t.Genre = o.Genre
	}
	if t.Frames == nil {
		t.Frames = make(map[FrameKey]string, len(o.Frames))
	}
	for k, v := range o.Frames {
		t.Frames[k] = v
	}
	t.HasV1 = t.HasV1 || o.HasV1
	t.HasV2 = t.HasV2 || o.HasV2
}
