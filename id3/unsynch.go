package id3

// Unsynchronisation is a byte-stuffing scheme that prevents tag data
// from containing false MPEG frame-sync patterns: on encode a 0x00 is
// inserted after every 0xFF, on decode a 0x00 immediately following a
// 0xFF is dropped. Whole-tag unsynchronisation applies to v2.3 and
// earlier; v2.4 flags it per frame instead.

// DecodeUnsynch removes the stuffed 0x00 bytes after 0xFF bytes.
func DecodeUnsynch(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		out = append(out, data[i])
		if data[i] == 0xFF && i+1 < len(data) && data[i+1] == 0x00 {
			i += 2
		} else {
			i++
		}
	}
	return out
}

// EncodeUnsynch inserts a 0x00 after every 0xFF byte.
func EncodeUnsynch(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	out := make([]byte, 0, len(data)+len(data)/10)
	for _, b := range data {
		out = append(out, b)
		if b == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}
