package id3

import (
	"fmt"
	"strings"
)

// Frame is one typed metadata record within a tag. The concrete types
// form a closed set: TextFrame, UserTextFrame, URLFrame, UserURLFrame,
// CommentFrame, LyricsFrame, PictureFrame, PopularimeterFrame,
// BinaryFrame, and PairedTextFrame.
type Frame interface {
	// FrameID returns the 4-character frame ID, e.g. "TIT2".
	FrameID() string

	// Key returns the dictionary key the frame is stored under. For
	// frames that may legally repeat with different identity it is a
	// composite, e.g. "COMM:description:language".
	Key() string

	// String returns a human-readable rendering of the frame value.
	String() string

	// writeData serializes the frame payload (without the frame
	// header) for the given tag version.
	writeData(version byte) ([]byte, error)
}

// PictureType classifies an APIC image.
type PictureType byte

const (
	PictureOther             PictureType = 0
	PictureFileIcon          PictureType = 1
	PictureOtherFileIcon     PictureType = 2
	PictureCoverFront        PictureType = 3
	PictureCoverBack         PictureType = 4
	PictureLeafletPage       PictureType = 5
	PictureMedia             PictureType = 6
	PictureLeadArtist        PictureType = 7
	PictureArtist            PictureType = 8
	PictureConductor         PictureType = 9
	PictureBand              PictureType = 10
	PictureComposer          PictureType = 11
	PictureLyricist          PictureType = 12
	PictureRecordingLocation PictureType = 13
	PictureDuringRecording   PictureType = 14
	PictureDuringPerformance PictureType = 15
	PictureMovieCapture      PictureType = 16
	PictureBrightFish        PictureType = 17
	PictureIllustration      PictureType = 18
	PictureBandLogo          PictureType = 19
	PicturePublisherLogo     PictureType = 20
)

// pictureTypeFromByte clamps out-of-range values to PictureOther.
func pictureTypeFromByte(b byte) PictureType {
	if b > 20 {
		return PictureOther
	}
	return PictureType(b)
}

// TextFrame is a standard text frame (TIT2, TPE1, TALB, TRCK, TCON,
// TDRC, ...). Text frames may carry multiple null-separated values.
type TextFrame struct {
	ID       string
	Encoding Encoding
	Text     []string
}

func (f *TextFrame) FrameID() string { return f.ID }
func (f *TextFrame) Key() string     { return f.ID }
func (f *TextFrame) String() string  { return strings.Join(f.Text, "/") }

func (f *TextFrame) writeData(version byte) ([]byte, error) {
	enc := effectiveEncoding(f.Encoding, version)
	data := []byte{byte(enc)}
	data = append(data, encodeText(strings.Join(f.Text, "\x00"), enc)...)
	return data, nil
}

// UserTextFrame is a user-defined text frame (TXXX).
type UserTextFrame struct {
	ID       string
	Encoding Encoding
	Desc     string
	Text     []string
}

func (f *UserTextFrame) FrameID() string { return f.ID }
func (f *UserTextFrame) Key() string     { return "TXXX:" + f.Desc }
func (f *UserTextFrame) String() string {
	return f.Desc + "=" + strings.Join(f.Text, "/")
}

func (f *UserTextFrame) writeData(version byte) ([]byte, error) {
	enc := effectiveEncoding(f.Encoding, version)
	data := []byte{byte(enc)}
	data = append(data, encodeText(f.Desc, enc)...)
	data = append(data, make([]byte, terminatorSize(enc))...)
	data = append(data, encodeText(strings.Join(f.Text, "\x00"), enc)...)
	return data, nil
}

// URLFrame is a URL link frame (WOAR, WOAS, WCOM, ...). URLs are always
// Latin-1 with no encoding byte.
type URLFrame struct {
	ID  string
	URL string
}

func (f *URLFrame) FrameID() string { return f.ID }
func (f *URLFrame) Key() string     { return f.ID }
func (f *URLFrame) String() string  { return f.URL }

func (f *URLFrame) writeData(byte) ([]byte, error) {
	return []byte(f.URL), nil
}

// UserURLFrame is a user-defined URL frame (WXXX).
type UserURLFrame struct {
	ID       string
	Encoding Encoding
	Desc     string
	URL      string
}

func (f *UserURLFrame) FrameID() string { return f.ID }
func (f *UserURLFrame) Key() string     { return "WXXX:" + f.Desc }
func (f *UserURLFrame) String() string  { return f.Desc + "=" + f.URL }

func (f *UserURLFrame) writeData(version byte) ([]byte, error) {
	enc := effectiveEncoding(f.Encoding, version)
	data := []byte{byte(enc)}
	data = append(data, encodeText(f.Desc, enc)...)
	data = append(data, make([]byte, terminatorSize(enc))...)
	data = append(data, f.URL...)
	return data, nil
}

// CommentFrame is a comment frame (COMM).
type CommentFrame struct {
	ID       string
	Encoding Encoding
	Lang     string // 3-byte ISO 639-2 code
	Desc     string
	Text     string
}

func (f *CommentFrame) FrameID() string { return f.ID }
func (f *CommentFrame) Key() string     { return "COMM:" + f.Desc + ":" + f.Lang }
func (f *CommentFrame) String() string  { return f.Text }

func (f *CommentFrame) writeData(version byte) ([]byte, error) {
	return writeLangDescText(f.Encoding, f.Lang, f.Desc, f.Text, version), nil
}

// LyricsFrame is an unsynchronised lyrics frame (USLT).
type LyricsFrame struct {
	ID       string
	Encoding Encoding
	Lang     string
	Desc     string
	Text     string
}

func (f *LyricsFrame) FrameID() string { return f.ID }
func (f *LyricsFrame) Key() string     { return "USLT:" + f.Desc + ":" + f.Lang }
func (f *LyricsFrame) String() string  { return f.Text }

func (f *LyricsFrame) writeData(version byte) ([]byte, error) {
	return writeLangDescText(f.Encoding, f.Lang, f.Desc, f.Text, version), nil
}

// PictureFrame is an attached picture frame (APIC).
type PictureFrame struct {
	ID       string
	Encoding Encoding
	MIME     string
	Type     PictureType
	Desc     string
	Data     []byte
}

func (f *PictureFrame) FrameID() string { return f.ID }
func (f *PictureFrame) Key() string     { return "APIC:" + f.Desc }
func (f *PictureFrame) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", f.Desc, f.MIME, len(f.Data))
}

func (f *PictureFrame) writeData(version byte) ([]byte, error) {
	enc := effectiveEncoding(f.Encoding, version)
	data := []byte{byte(enc)}
	data = append(data, f.MIME...)
	data = append(data, 0)
	data = append(data, byte(f.Type))
	data = append(data, encodeText(f.Desc, enc)...)
	data = append(data, make([]byte, terminatorSize(enc))...)
	data = append(data, f.Data...)
	return data, nil
}

// PopularimeterFrame is a rating/play-count frame (POPM).
type PopularimeterFrame struct {
	ID     string
	Email  string
	Rating byte
	Count  uint64
}

func (f *PopularimeterFrame) FrameID() string { return f.ID }
func (f *PopularimeterFrame) Key() string     { return "POPM:" + f.Email }
func (f *PopularimeterFrame) String() string {
	return fmt.Sprintf("%s=%d/%d", f.Email, f.Rating, f.Count)
}

func (f *PopularimeterFrame) writeData(byte) ([]byte, error) {
	data := make([]byte, 0, len(f.Email)+10)
	data = append(data, f.Email...)
	data = append(data, 0, f.Rating)

	// Counter is variable-length big-endian, omitted entirely at zero.
	if f.Count > 0 {
		var countBytes []byte
		for c := f.Count; c > 0; c >>= 8 {
			countBytes = append([]byte{byte(c)}, countBytes...)
		}
		data = append(data, countBytes...)
	}
	return data, nil
}

// BinaryFrame preserves the raw payload of frame types the engine does
// not interpret.
type BinaryFrame struct {
	ID   string
	Data []byte
}

func (f *BinaryFrame) FrameID() string { return f.ID }
func (f *BinaryFrame) Key() string     { return f.ID }
func (f *BinaryFrame) String() string  { return fmt.Sprintf("[%d bytes]", len(f.Data)) }

func (f *BinaryFrame) writeData(byte) ([]byte, error) {
	return f.Data, nil
}

// Credit is one role/name pair in a paired text frame.
type Credit struct {
	Role string
	Name string
}

// PairedTextFrame holds involvement credits (TIPL, TMCL, IPLS): a
// flattened list of alternating role/name strings.
type PairedTextFrame struct {
	ID       string
	Encoding Encoding
	People   []Credit
}

func (f *PairedTextFrame) FrameID() string { return f.ID }
func (f *PairedTextFrame) Key() string     { return f.ID }
func (f *PairedTextFrame) String() string {
	parts := make([]string, len(f.People))
	for i, p := range f.People {
		parts[i] = p.Role + "=" + p.Name
	}
	return strings.Join(parts, "/")
}

func (f *PairedTextFrame) writeData(version byte) ([]byte, error) {
	enc := effectiveEncoding(f.Encoding, version)
	parts := make([]string, 0, len(f.People)*2)
	for _, p := range f.People {
		parts = append(parts, p.Role, p.Name)
	}
	data := []byte{byte(enc)}
	data = append(data, encodeText(strings.Join(parts, "\x00"), enc)...)
	return data, nil
}

// effectiveEncoding downgrades UTF-8 to UTF-16 when writing tag
// versions below 2.4, where encoding byte 3 is not legal.
func effectiveEncoding(enc Encoding, version byte) Encoding {
	if version < 4 && enc == EncodingUTF8 {
		return EncodingUTF16
	}
	return enc
}

// writeLangDescText serializes the shared COMM/USLT layout: encoding
// byte, 3-byte language, null-terminated description, text.
func writeLangDescText(enc Encoding, lang, desc, text string, version byte) []byte {
	enc = effectiveEncoding(enc, version)
	data := []byte{byte(enc)}
	if len(lang) >= 3 {
		data = append(data, lang[:3]...)
	} else {
		data = append(data, "XXX"...)
	}
	data = append(data, encodeText(desc, enc)...)
	data = append(data, make([]byte, terminatorSize(enc))...)
	data = append(data, encodeText(text, enc)...)
	return data
}

// splitNullText splits a decoded multi-value text payload on null
// separators, dropping empty segments.
func splitNullText(s string) []string {
	if s == "" {
		return nil
	}
	if !strings.Contains(s, "\x00") {
		return []string{s}
	}
	var out []string
	for _, part := range strings.Split(s, "\x00") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseFrame decodes a frame payload, dispatching on the frame ID.
// Unrecognized IDs come back as a BinaryFrame carrying the raw bytes.
func ParseFrame(id string, data []byte) (Frame, error) {
	switch {
	case id == "TXXX":
		return parseUserTextFrame(id, data)
	case id == "WXXX":
		return parseUserURLFrame(id, data)
	case id == "COMM":
		return parseCommentFrame(id, data)
	case id == "USLT":
		return parseLyricsFrame(id, data)
	case id == "APIC":
		return parsePictureFrame(id, data)
	case id == "POPM":
		return parsePopularimeterFrame(id, data)
	case id == "TIPL" || id == "TMCL" || id == "IPLS":
		return parsePairedTextFrame(id, data)
	case strings.HasPrefix(id, "T"):
		return parseTextFrame(id, data)
	case strings.HasPrefix(id, "W"):
		return parseURLFrame(id, data)
	default:
		return &BinaryFrame{ID: id, Data: append([]byte(nil), data...)}, nil
	}
}

func parseTextFrame(id string, data []byte) (Frame, error) {
	if len(data) == 0 {
		return &TextFrame{ID: id, Encoding: EncodingLatin1}, nil
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}
	return &TextFrame{
		ID:       id,
		Encoding: enc,
		Text:     splitNullText(decodeText(data[1:], enc)),
	}, nil
}

func parseUserTextFrame(id string, data []byte) (Frame, error) {
	if len(data) == 0 {
		return nil, &FrameError{ID: id, Reason: "empty frame"}
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}
	desc, consumed := readEncodedText(data[1:], enc)
	return &UserTextFrame{
		ID:       id,
		Encoding: enc,
		Desc:     desc,
		Text:     splitNullText(decodeText(data[1+consumed:], enc)),
	}, nil
}

func parseURLFrame(id string, data []byte) (Frame, error) {
	url := strings.TrimRight(decodeText(data, EncodingLatin1), "\x00")
	return &URLFrame{ID: id, URL: url}, nil
}

func parseUserURLFrame(id string, data []byte) (Frame, error) {
	if len(data) == 0 {
		return nil, &FrameError{ID: id, Reason: "empty frame"}
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}
	desc, consumed := readEncodedText(data[1:], enc)
	url := strings.TrimRight(decodeText(data[1+consumed:], EncodingLatin1), "\x00")
	return &UserURLFrame{ID: id, Encoding: enc, Desc: desc, URL: url}, nil
}

func parseCommentFrame(id string, data []byte) (Frame, error) {
	enc, lang, desc, text, err := parseLangDescText(id, data)
	if err != nil {
		return nil, err
	}
	return &CommentFrame{ID: id, Encoding: enc, Lang: lang, Desc: desc, Text: text}, nil
}

func parseLyricsFrame(id string, data []byte) (Frame, error) {
	enc, lang, desc, text, err := parseLangDescText(id, data)
	if err != nil {
		return nil, err
	}
	return &LyricsFrame{ID: id, Encoding: enc, Lang: lang, Desc: desc, Text: text}, nil
}

func parseLangDescText(id string, data []byte) (Encoding, string, string, string, error) {
	if len(data) < 4 {
		return 0, "", "", "", &FrameError{ID: id, Reason: "frame too short"}
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return 0, "", "", "", err
	}
	lang := languageCode(data[1:4])
	desc, consumed := readEncodedText(data[4:], enc)
	text := strings.TrimRight(decodeText(data[4+consumed:], enc), "\x00")
	return enc, lang, desc, text, nil
}

// languageCode returns the 3-byte code as a string, or "XXX" when the
// bytes are not printable ASCII.
func languageCode(b []byte) string {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return "XXX"
		}
	}
	return string(b)
}

func parsePictureFrame(id string, data []byte) (Frame, error) {
	if len(data) == 0 {
		return nil, &FrameError{ID: id, Reason: "empty frame"}
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}
	rest := data[1:]

	// MIME type is always Latin-1 regardless of the frame encoding.
	mime, consumed := readLatin1Text(rest)
	rest = rest[consumed:]

	if len(rest) == 0 {
		return nil, &FrameError{ID: id, Reason: "frame too short"}
	}
	picType := pictureTypeFromByte(rest[0])
	rest = rest[1:]

	desc, consumed := readEncodedText(rest, enc)
	return &PictureFrame{
		ID:       id,
		Encoding: enc,
		MIME:     mime,
		Type:     picType,
		Desc:     desc,
		Data:     append([]byte(nil), rest[consumed:]...),
	}, nil
}

func parsePopularimeterFrame(id string, data []byte) (Frame, error) {
	email, consumed := readLatin1Text(data)
	rest := data[consumed:]

	var rating byte
	if len(rest) > 0 {
		rating = rest[0]
	}

	var count uint64
	if len(rest) > 1 {
		for _, b := range rest[1:] {
			count = count<<8 | uint64(b)
		}
	}

	return &PopularimeterFrame{ID: id, Email: email, Rating: rating, Count: count}, nil
}

func parsePairedTextFrame(id string, data []byte) (Frame, error) {
	if len(data) == 0 {
		return &PairedTextFrame{ID: id, Encoding: EncodingLatin1}, nil
	}
	enc, err := EncodingFromByte(data[0])
	if err != nil {
		return nil, err
	}

	parts := strings.Split(decodeText(data[1:], enc), "\x00")
	var people []Credit
	for i := 0; i+1 < len(parts); i += 2 {
		people = append(people, Credit{Role: parts[i], Name: parts[i+1]})
	}

	return &PairedTextFrame{ID: id, Encoding: enc, People: people}, nil
}
