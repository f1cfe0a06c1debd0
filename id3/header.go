package id3

// HeaderFlags holds the decoded flag bits of an ID3v2 header.
type HeaderFlags struct {
	Unsynchronisation bool // bit 7: whole-tag unsynch (v2.3 and earlier)
	Extended          bool // bit 6: extended header follows
	Experimental      bool // bit 5
	Footer            bool // bit 4: 10-byte footer after the frames (v2.4 only)
}

// Header is a parsed 10-byte ID3v2 tag header.
type Header struct {
	Version [2]byte // major, revision: {4, 0} for ID3v2.4.0
	Flags   HeaderFlags
	Size    uint32 // tag size excluding the 10-byte header
	Offset  int64  // byte offset of the header within the file
}

// ParseHeader decodes the 10-byte ID3v2 header at the start of data.
// offset records where in the file the header was found.
//
// Returns ErrNoHeader if the magic is absent or data is truncated, and
// *UnsupportedVersionError for majors outside 2–4.
func ParseHeader(data []byte, offset int64) (*Header, error) {
	if len(data) < 10 {
		return nil, ErrNoHeader
	}
	if string(data[0:3]) != "ID3" {
		return nil, ErrNoHeader
	}

	major, revision := data[3], data[4]
	if major < 2 || major > 4 {
		return nil, &UnsupportedVersionError{Major: major, Revision: revision}
	}

	flagByte := data[5]
	flags := HeaderFlags{
		Unsynchronisation: flagByte&0x80 != 0,
		Extended:          flagByte&0x40 != 0,
		Experimental:      flagByte&0x20 != 0,
		Footer:            major == 4 && flagByte&0x10 != 0,
	}

	return &Header{
		Version: [2]byte{major, revision},
		Flags:   flags,
		Size:    DecodeSyncsafe(data[6:10]),
		Offset:  offset,
	}, nil
}

// FullSize returns the total tag size including the 10-byte header and,
// when present, the 10-byte footer.
func (h *Header) FullSize() uint32 {
	s := h.Size + 10
	if h.Flags.Footer {
		s += 10
	}
	return s
}

// determineBPI resolves the bits-per-integer ambiguity in v2.4 frame
// sizes. Certain encoders (notably some iTunes versions) write them as
// plain 8-bit integers instead of syncsafe. Both interpretations are
// trial-parsed over the frame region; whichever validates at least as
// many frame boundaries wins, with syncsafe preferred on ties.
func determineBPI(data []byte, framesEnd int) uint {
	var syncsafeValid, normalValid int

	for pos := 0; framesEnd >= 10 && pos < framesEnd-10; {
		if data[pos] == 0 {
			break
		}
		if !validFrameID(data[pos : pos+4]) {
			break
		}
		size := int(DecodeSyncsafe(data[pos+4 : pos+8]))
		if size == 0 || pos+10+size > framesEnd {
			break
		}
		syncsafeValid++
		pos += 10 + size
	}

	for pos := 0; framesEnd >= 10 && pos < framesEnd-10; {
		if data[pos] == 0 {
			break
		}
		if !validFrameID(data[pos : pos+4]) {
			break
		}
		size := int(DecodeNormal(data[pos+4 : pos+8]))
		if size == 0 || pos+10+size > framesEnd {
			break
		}
		normalValid++
		pos += 10 + size
	}

	if syncsafeValid >= normalValid {
		return 7
	}
	return 8
}

// validFrameID reports whether every byte is an uppercase ASCII letter
// or digit, the only characters legal in frame IDs.
func validFrameID(id []byte) bool {
	for _, b := range id {
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}
