package id3

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte used in ID3v2 frames.
type Encoding byte

const (
	EncodingLatin1  Encoding = 0
	EncodingUTF16   Encoding = 1 // BOM-prefixed, defaults to little-endian
	EncodingUTF16BE Encoding = 2
	EncodingUTF8    Encoding = 3
)

// EncodingFromByte validates and converts a frame's encoding byte.
func EncodingFromByte(b byte) (Encoding, error) {
	if b > 3 {
		return 0, fmt.Errorf("id3: invalid encoding byte: %d", b)
	}
	return Encoding(b), nil
}

// DefaultEncoding returns the preferred encoding for new frames in the
// given tag version. UTF-8 is only legal from v2.4 on.
func DefaultEncoding(version byte) Encoding {
	if version >= 4 {
		return EncodingUTF8
	}
	return EncodingUTF16
}

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	}
	return "unknown"
}

// decodeText converts raw frame bytes to a string. Decoding is lenient:
// malformed input yields replacement characters, never an error, which
// matches how real-world taggers behave.
func decodeText(data []byte, enc Encoding) string {
	if len(data) == 0 {
		return ""
	}

	switch enc {
	case EncodingUTF16:
		if len(data) < 2 {
			return ""
		}
		endian := unicode.LittleEndian
		start := 0
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			start = 2
		case data[0] == 0xFE && data[1] == 0xFF:
			endian = unicode.BigEndian
			start = 2
		}
		return decodeUTF16(data[start:], endian)

	case EncodingUTF16BE:
		return decodeUTF16(data, unicode.BigEndian)

	case EncodingUTF8:
		if utf8.Valid(data) {
			return string(data)
		}
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))

	default: // Latin-1, and unknown encodings treated as Latin-1
		return decodeLatin1(data)
	}
}

func decodeLatin1(data []byte) string {
	// Fast path: pure ASCII needs no conversion.
	ascii := true
	for _, b := range data {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(data)
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

func decodeUTF16(data []byte, endian unicode.Endianness) string {
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return ""
	}
	return string(out)
}

// encodeText converts a string to raw frame bytes in the given encoding.
// Latin-1 replaces unmappable runes with '?'; UTF-16 is written
// little-endian with a BOM.
func encodeText(s string, enc Encoding) []byte {
	switch enc {
	case EncodingUTF16:
		return encodeUTF16(s, unicode.LittleEndian, unicode.UseBOM)
	case EncodingUTF16BE:
		return encodeUTF16(s, unicode.BigEndian, unicode.IgnoreBOM)
	case EncodingUTF8:
		return []byte(s)
	default:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r <= 0xFF {
				out = append(out, byte(r))
			} else {
				out = append(out, '?')
			}
		}
		return out
	}
}

func encodeUTF16(s string, endian unicode.Endianness, bom unicode.BOMPolicy) []byte {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	out, err := unicode.UTF16(endian, bom).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return out
}

// findNullTerminator returns the index of the encoding's null terminator
// in data, or -1. UTF-16 terminators are two bytes and must be scanned
// on code-unit boundaries.
func findNullTerminator(data []byte, enc Encoding) int {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	default:
		return bytes.IndexByte(data, 0)
	}
}

// terminatorSize returns the byte width of the null terminator.
func terminatorSize(enc Encoding) int {
	if enc == EncodingUTF16 || enc == EncodingUTF16BE {
		return 2
	}
	return 1
}

// readEncodedText reads a null-terminated (or end-of-data) string,
// returning the text and the number of bytes consumed including the
// terminator.
func readEncodedText(data []byte, enc Encoding) (string, int) {
	if pos := findNullTerminator(data, enc); pos >= 0 {
		return decodeText(data[:pos], enc), pos + terminatorSize(enc)
	}
	return decodeText(data, enc), len(data)
}

// readLatin1Text reads a null-terminated Latin-1 string with no
// encoding-byte prefix, as used for MIME types and POPM emails.
func readLatin1Text(data []byte) (string, int) {
	if pos := bytes.IndexByte(data, 0); pos >= 0 {
		return decodeText(data[:pos], EncodingLatin1), pos + 1
	}
	return decodeText(data, EncodingLatin1), len(data)
}
