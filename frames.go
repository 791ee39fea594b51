package id3tags

import "strconv"

// FrameKey identifies an ID3v2.3 frame that this package knows how to
// decode. Frame ids outside the table are not representable as a FrameKey.
type FrameKey uint8

const (
	AENC FrameKey = iota
	APIC
	COMM
	COMR
	ENCR
	EQUA
	ETCO
	GEOB
	GRID
	IPLS
	LINK
	MCDI
	MLLT
	OWNE
	PRIV
	PCNT
	POPM
	POSS
	RBUF
	RVAD
	RVRB
	SYLT
	SYTC
	TALB
	TBPM
	TCOM
	TCON
	TCOP
	TDAT
	TDLY
	TENC
	TEXT
	TFLT
	TIME
	TIT1
	TIT2
	TIT3
	TKEY
	TLAN
	TLEN
	TMED
	TOAL
	TOFN
	TOLY
	TOPE
	TORY
	TOWN
	TPE1
	TPE2
	TPE3
	TPE4
	TPOS
	TPUB
	TRCK
	TRDA
	TRSN
	TRSO
	TSIZ
	TSRC
	TSSE
	TYER
	TXXX
	UFID
	USER
	USLT
	WCOM
	WCOP
	WOAF
	WOAR
	WOAS
	WORS
	WPAY
	WPUB
	WXXX

	numFrameKeys
)

var frameKeys = [numFrameKeys]struct {
	id   string
	desc string
}{
	AENC: {"AENC", "Audio encryption"},
	APIC: {"APIC", "Attached picture"},
	COMM: {"COMM", "Comments"},
	COMR: {"COMR", "Commercial frame"},
	ENCR: {"ENCR", "Encryption method registration"},
	EQUA: {"EQUA", "Equalization"},
	ETCO: {"ETCO", "Event timing codes"},
	GEOB: {"GEOB", "General encapsulated object"},
	GRID: {"GRID", "Group identification registration"},
	IPLS: {"IPLS", "Involved people list"},
	LINK: {"LINK", "Linked information"},
	MCDI: {"MCDI", "Music CD identifier"},
	MLLT: {"MLLT", "MPEG location lookup table"},
	OWNE: {"OWNE", "Ownership frame"},
	PRIV: {"PRIV", "Private frame"},
	PCNT: {"PCNT", "Play counter"},
	POPM: {"POPM", "Popularimeter"},
	POSS: {"POSS", "Position synchronisation frame"},
	RBUF: {"RBUF", "Recommended buffer size"},
	RVAD: {"RVAD", "Relative volume adjustment"},
	RVRB: {"RVRB", "Reverb"},
	SYLT: {"SYLT", "Synchronized lyric/text"},
	SYTC: {"SYTC", "Synchronized tempo codes"},
	TALB: {"TALB", "Album/Movie/Show title"},
	TBPM: {"TBPM", "BPM (beats per minute)"},
	TCOM: {"TCOM", "Composer"},
	TCON: {"TCON", "Content type"},
	TCOP: {"TCOP", "Copyright message"},
	TDAT: {"TDAT", "Date"},
	TDLY: {"TDLY", "Playlist delay"},
	TENC: {"TENC", "Encoded by"},
	TEXT: {"TEXT", "Lyricist/Text writer"},
	TFLT: {"TFLT", "File type"},
	TIME: {"TIME", "Time"},
	TIT1: {"TIT1", "Content group description"},
	TIT2: {"TIT2", "Title/songname/content description"},
	TIT3: {"TIT3", "Subtitle/Description refinement"},
	TKEY: {"TKEY", "Initial key"},
	TLAN: {"TLAN", "Language(s)"},
	TLEN: {"TLEN", "Length"},
	TMED: {"TMED", "Media type"},
	TOAL: {"TOAL", "Original album/movie/show title"},
	TOFN: {"TOFN", "Original filename"},
	TOLY: {"TOLY", "Original lyricist(s)/text writer(s)"},
	TOPE: {"TOPE", "Original artist(s)/performer(s)"},
	TORY: {"TORY", "Original release year"},
	TOWN: {"TOWN", "File owner/licensee"},
	TPE1: {"TPE1", "Lead performer(s)/Soloist(s)"},
	TPE2: {"TPE2", "Band/orchestra/accompaniment"},
	TPE3: {"TPE3", "Conductor/performer refinement"},
	TPE4: {"TPE4", "Interpreted, remixed, or otherwise modified by"},
	TPOS: {"TPOS", "Part of a set"},
	TPUB: {"TPUB", "Publisher"},
	TRCK: {"TRCK", "Track number/Position in set"},
	TRDA: {"TRDA", "Recording dates"},
	TRSN: {"TRSN", "Internet radio station name"},
	TRSO: {"TRSO", "Internet radio station owner"},
	TSIZ: {"TSIZ", "Size"},
	TSRC: {"TSRC", "ISRC (international standard recording code)"},
	TSSE: {"TSSE", "Software/Hardware and settings used for encoding"},
	TYER: {"TYER", "Year"},
	TXXX: {"TXXX", "User defined text information frame"},
	UFID: {"UFID", "Unique file identifier"},
	USER: {"USER", "Terms of use"},
	USLT: {"USLT", "Unsychronized lyric/text transcription"},
	WCOM: {"WCOM", "Commercial information"},
	WCOP: {"WCOP", "Copyright/Legal information"},
	WOAF: {"WOAF", "Official audio file webpage"},
	WOAR: {"WOAR", "Official artist/performer webpage"},
	WOAS: {"WOAS", "Official audio source webpage"},
	WORS: {"WORS", "Official internet radio station homepage"},
	WPAY: {"WPAY", "Payment"},
	WPUB: {"WPUB", "Publishers official webpage"},
	WXXX: {"WXXX", "User defined URL link frame"},
}

var keysByID = func() map[string]FrameKey {
	m := make(map[string]FrameKey, numFrameKeys)
	for k := FrameKey(0); k < numFrameKeys; k++ {
		m[frameKeys[k].id] = k
	}
	return m
}()

// LookupFrameKey resolves a 4-character frame id.
func LookupFrameKey(id string) (FrameKey, bool) {
	k, ok := keysByID[id]
	return k, ok
}

// FrameKeys returns every known key in table order.
func FrameKeys() []FrameKey {
	keys := make([]FrameKey, numFrameKeys)
	for i := range keys {
		keys[i] = FrameKey(i)
	}
	return keys
}

// ID returns the 4-character frame id, or "" for an invalid key.
func (k FrameKey) ID() string {
	if k >= numFrameKeys {
		return ""
	}
	return frameKeys[k].id
}

// Description returns the human readable name of the frame.
func (k FrameKey) Description() string {
	if k >= numFrameKeys {
		return ""
	}
	return frameKeys[k].desc
}

func (k FrameKey) String() string {
	if k >= numFrameKeys {
		return "FrameKey(" + strconv.Itoa(int(k)) + ")"
	}
	return frameKeys[k].id
}
