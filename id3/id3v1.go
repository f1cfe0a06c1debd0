package id3

import (
	"bytes"
	"strconv"
	"strings"
)

// id3v1Size is the fixed length of a trailing ID3v1 tag.
const id3v1Size = 128

// FindID3v1 returns the offset of a trailing ID3v1 tag in data, or -1.
func FindID3v1(data []byte) int {
	if len(data) < id3v1Size {
		return -1
	}
	offset := len(data) - id3v1Size
	if !bytes.Equal(data[offset:offset+3], []byte("TAG")) {
		return -1
	}
	return offset
}

// ParseID3v1 decodes a 128-byte ID3v1 tag into the equivalent v2
// frames. Text fields are Latin-1, space- or null-padded. The v1.1
// track convention applies when the comment field's 29th byte is zero
// and the 30th is not.
func ParseID3v1(tag []byte) []Frame {
	if len(tag) < id3v1Size || !bytes.Equal(tag[0:3], []byte("TAG")) {
		return nil
	}

	var frames []Frame
	addText := func(id, text string) {
		if text != "" {
			frames = append(frames, &TextFrame{ID: id, Encoding: EncodingLatin1, Text: []string{text}})
		}
	}

	addText("TIT2", decodeV1String(tag[3:33]))
	addText("TPE1", decodeV1String(tag[33:63]))
	addText("TALB", decodeV1String(tag[63:93]))
	addText("TDRC", decodeV1String(tag[93:97]))

	comment := tag[97:127]
	if tag[125] == 0 && tag[126] != 0 {
		comment = tag[97:125]
		addText("TRCK", strconv.Itoa(int(tag[126])))
	}
	if text := decodeV1String(comment); text != "" {
		frames = append(frames, &CommentFrame{
			ID:       "COMM",
			Encoding: EncodingLatin1,
			Lang:     "XXX",
			Text:     text,
		})
	}

	if genre := tag[127]; int(genre) < len(Genres) {
		addText("TCON", Genres[genre])
	}

	return frames
}

// MakeID3v1 builds a 128-byte ID3v1 tag from frames, mapping the
// fields v1 can represent and ignoring the rest. Written as v1.1 when
// a track number is present.
func MakeID3v1(frames []Frame) []byte {
	tag := make([]byte, id3v1Size)
	copy(tag, "TAG")
	tag[127] = 255 // genre: none

	var comment string
	for _, f := range frames {
		switch fr := f.(type) {
		case *TextFrame:
			text := strings.Join(fr.Text, "/")
			switch fr.ID {
			case "TIT2":
				writeV1String(tag[3:33], text)
			case "TPE1":
				writeV1String(tag[33:63], text)
			case "TALB":
				writeV1String(tag[63:93], text)
			case "TDRC", "TYER":
				writeV1String(tag[93:97], text)
			case "TRCK":
				// Only the track part of "track/total" fits.
				num := text
				if i := strings.IndexByte(num, '/'); i >= 0 {
					num = num[:i]
				}
				if n, err := strconv.ParseUint(num, 10, 8); err == nil && n > 0 {
					tag[125] = 0
					tag[126] = byte(n)
				}
			case "TCON":
				for _, genre := range ParseGenre(text) {
					if idx := genreIndex(genre); idx >= 0 {
						tag[127] = byte(idx)
						break
					}
				}
			}
		case *CommentFrame:
			if comment == "" {
				comment = fr.Text
			}
		}
	}

	if tag[126] != 0 {
		writeV1String(tag[97:125], comment)
	} else {
		writeV1String(tag[97:127], comment)
	}

	return tag
}

func genreIndex(name string) int {
	for i, g := range Genres {
		if strings.EqualFold(g, name) {
			return i
		}
	}
	return -1
}

// decodeV1String reads a fixed-width v1 field: stop at the first null,
// decode as Latin-1, strip the space padding.
func decodeV1String(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return strings.TrimRight(decodeLatin1(field), " ")
}

// writeV1String fills a fixed-width field with the string's Latin-1
// bytes, truncating on overflow. Unmappable runes become '?'.
func writeV1String(field []byte, s string) {
	encoded := encodeText(s, EncodingLatin1)
	copy(field, encoded)
}
