package id3

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

// cellState tracks which representation a lazyFrame currently holds.
type cellState uint8

const (
	cellDecoded cellState = iota // materialized Frame
	cellRaw                      // owned payload bytes awaiting parse
	cellSlice                    // offset/length into the tag's backing buffer
)

// lazyFrame is a deferred-decode cell. Frames read from a tag are not
// parsed until first access: the common no-flags case stores only the
// frame's position inside the tag's backing buffer, so loading a tag
// with a 200KB embedded picture costs no payload copy.
type lazyFrame struct {
	state cellState
	frame Frame  // decoded
	id    string // raw and slice
	data  []byte // raw
	off   uint32 // slice range into Tag.buf
	n     uint32
}

// decode materializes the cell in place. Idempotent: once decoded,
// repeated calls are no-ops. buf is the owning tag's backing buffer,
// needed only for slice cells.
func (lf *lazyFrame) decode(buf []byte) error {
	switch lf.state {
	case cellDecoded:
		return nil
	case cellRaw:
		f, err := ParseFrame(lf.id, lf.data)
		if err != nil {
			return err
		}
		lf.frame = f
		lf.data = nil
	case cellSlice:
		end := int(lf.off) + int(lf.n)
		if end > len(buf) {
			return &FrameError{ID: lf.id, Reason: "slice out of backing buffer range"}
		}
		f, err := ParseFrame(lf.id, buf[lf.off:end])
		if err != nil {
			return err
		}
		lf.frame = f
	}
	lf.state = cellDecoded
	return nil
}

// payload returns the serialized frame payload for rendering: decoded
// cells re-serialize, raw and slice cells pass their bytes through
// untouched.
func (lf *lazyFrame) payload(buf []byte, version byte) (string, []byte, error) {
	switch lf.state {
	case cellRaw:
		return lf.id, lf.data, nil
	case cellSlice:
		return lf.id, buf[lf.off : lf.off+lf.n], nil
	default:
		data, err := lf.frame.writeData(version)
		if err != nil {
			return "", nil, err
		}
		return lf.frame.FrameID(), data, nil
	}
}

// UnknownFrame is a frame the engine cannot interpret (unmapped v2.2
// ID, encrypted payload, failed inflate), preserved verbatim.
type UnknownFrame struct {
	ID   string
	Data []byte
}

type bucket struct {
	key   string
	cells []*lazyFrame
}

// Tag is a dictionary-like container of ID3v2 frames.
//
// Frames are grouped into buckets by hash key, in file order. Buckets
// are kept in a slice rather than a map: typical files carry fewer
// than 20 distinct keys, so a linear scan beats hashing and keeps
// render order deterministic.
//
// A Tag is single-owner: lookups decode lazy cells in place, so it
// must not be shared across goroutines while being read. Call Values
// once to force-decode everything before sharing read-only.
type Tag struct {
	buckets []bucket
	version [2]byte
	unknown []UnknownFrame
	buf     []byte // backing buffer for slice cells, owned by the tag
}

// NewTag creates an empty container, defaulting to version 2.4.
func NewTag() *Tag {
	return &Tag{version: [2]byte{4, 0}}
}

// Version returns the tag's major and revision version bytes.
func (t *Tag) Version() (major, revision byte) {
	return t.version[0], t.version[1]
}

func (t *Tag) bucketFor(key string) *bucket {
	for i := range t.buckets {
		if t.buckets[i].key == key {
			return &t.buckets[i]
		}
	}
	return nil
}

func (t *Tag) insert(key string, lf *lazyFrame) {
	if b := t.bucketFor(key); b != nil {
		b.cells = append(b.cells, lf)
		return
	}
	t.buckets = append(t.buckets, bucket{key: key, cells: []*lazyFrame{lf}})
}

// Add appends a decoded frame under its hash key.
func (t *Tag) Add(f Frame) {
	t.insert(f.Key(), &lazyFrame{state: cellDecoded, frame: f})
}

// AddRaw appends an undecoded frame payload. The hash key is computed
// with the quick-key extractor, without parsing the full payload.
func (t *Tag) AddRaw(id string, data []byte) {
	t.insert(quickKey(id, data), &lazyFrame{state: cellRaw, id: id, data: data})
}

// GetAll returns every frame stored under key, decoding as needed.
// Cells that fail to decode are skipped.
func (t *Tag) GetAll(key string) []Frame {
	b := t.bucketFor(key)
	if b == nil {
		return nil
	}
	frames := make([]Frame, 0, len(b.cells))
	for _, lf := range b.cells {
		if err := lf.decode(t.buf); err != nil {
			continue
		}
		frames = append(frames, lf.frame)
	}
	return frames
}

// Get returns the first frame stored under key, or nil.
func (t *Tag) Get(key string) Frame {
	frames := t.GetAll(key)
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}

// SetAll replaces the bucket for key with the given frames.
func (t *Tag) SetAll(key string, frames []Frame) {
	cells := make([]*lazyFrame, len(frames))
	for i, f := range frames {
		cells[i] = &lazyFrame{state: cellDecoded, frame: f}
	}
	if b := t.bucketFor(key); b != nil {
		b.cells = cells
		return
	}
	t.buckets = append(t.buckets, bucket{key: key, cells: cells})
}

// DelAll removes the bucket for key.
func (t *Tag) DelAll(key string) {
	for i := range t.buckets {
		if t.buckets[i].key == key {
			t.buckets = append(t.buckets[:i], t.buckets[i+1:]...)
			return
		}
	}
}

// Contains reports whether any frame is stored under key.
func (t *Tag) Contains(key string) bool {
	return t.bucketFor(key) != nil
}

// Keys returns all hash keys in insertion order.
func (t *Tag) Keys() []string {
	keys := make([]string, len(t.buckets))
	for i, b := range t.buckets {
		keys[i] = b.key
	}
	return keys
}

// Values decodes every frame and returns them as a flat list in
// insertion order. Cells that fail to decode are skipped.
func (t *Tag) Values() []Frame {
	var frames []Frame
	for i := range t.buckets {
		for _, lf := range t.buckets[i].cells {
			if err := lf.decode(t.buf); err != nil {
				continue
			}
			frames = append(frames, lf.frame)
		}
	}
	return frames
}

// Len returns the number of distinct hash keys.
func (t *Tag) Len() int {
	return len(t.buckets)
}

// UnknownFrames returns frames preserved opaquely: encrypted payloads,
// failed inflates, and unmapped v2.2 IDs.
func (t *Tag) UnknownFrames() []UnknownFrame {
	return t.unknown
}

// ReadFrames populates the container from a tag's frame region. data
// is the tag body after the 10-byte header (and after whole-tag
// unsynchronisation, if that applied); the tag takes an owned copy as
// the backing buffer for slice cells.
func (t *Tag) ReadFrames(data []byte, h *Header) error {
	version := h.Version[0]
	offset := 0

	if h.Flags.Extended && version >= 3 {
		if len(data) < 4 {
			return nil
		}
		if version == 4 {
			// v2.4 extended size is syncsafe and includes its own
			// length field.
			offset = int(DecodeSyncsafe(data[0:4]))
		} else {
			offset = int(binary.BigEndian.Uint32(data[0:4])) + 4
		}
		if offset >= len(data) {
			return nil
		}
	}

	bpi := uint(8)
	if version == 4 {
		bpi = determineBPI(data[offset:], len(data)-offset)
	}

	t.version = h.Version
	t.buf = bytes.Clone(data)

	if version == 2 {
		t.readV22Frames(t.buf, offset)
		return nil
	}
	return t.readV23V24Frames(t.buf, offset, version, bpi)
}

// readV22Frames reads v2.2 frames: 3-byte ID, 3-byte plain big-endian
// size, no flags field.
func (t *Tag) readV22Frames(data []byte, offset int) {
	for offset+6 <= len(data) {
		if data[offset] == 0 {
			break // padding
		}

		idBytes := data[offset : offset+3]
		if !validFrameID(idBytes) {
			break
		}

		size := int(data[offset+3])<<16 | int(data[offset+4])<<8 | int(data[offset+5])
		offset += 6

		if size == 0 || offset+size > len(data) {
			break
		}

		frameData := data[offset : offset+size]
		offset += size

		// PIC has its own layout and maps straight to a Picture frame.
		if string(idBytes) == "PIC" {
			if frame, err := parseV22Picture(frameData); err == nil {
				t.Add(frame)
			}
			continue
		}

		id := string(idBytes)
		v4ID, ok := convertV22FrameID(id)
		if !ok {
			t.unknown = append(t.unknown, UnknownFrame{ID: id, Data: bytes.Clone(frameData)})
			continue
		}

		t.AddRaw(v4ID, bytes.Clone(frameData))
	}
}

// readV23V24Frames reads v2.3/v2.4 frames: 4-byte ID, 4-byte size
// (width resolved by the BPI heuristic for v2.4), 2-byte flags.
func (t *Tag) readV23V24Frames(data []byte, offset int, version byte, bpi uint) error {
	for offset+10 <= len(data) {
		if data[offset] == 0 {
			break // padding
		}

		idBytes := data[offset : offset+4]
		if !validFrameID(idBytes) {
			break // malformed tail, treat as implicit padding
		}

		size := int(DecodeBitPadded(data[offset+4:offset+8], bpi))
		flags := binary.BigEndian.Uint16(data[offset+8 : offset+10])
		offset += 10

		if size == 0 || offset+size > len(data) {
			break
		}

		var compressed, encrypted, unsynchronised, hasDataLength bool
		if version == 4 {
			compressed = flags&0x0008 != 0
			encrypted = flags&0x0004 != 0
			unsynchronised = flags&0x0002 != 0
			hasDataLength = flags&0x0001 != 0
		} else {
			// v2.3 compression implies a 4-byte decompressed-size
			// field, so the same bit drives both behaviors.
			compressed = flags&0x0080 != 0
			encrypted = flags&0x0040 != 0
			hasDataLength = flags&0x0080 != 0
		}

		id := string(idBytes)

		// Fast path: no flags set. Store a slice cell referencing the
		// backing buffer; no payload copy, no parse.
		if !encrypted && !compressed && !unsynchronised && !hasDataLength {
			key := quickKey(id, data[offset:offset+size])
			t.insert(key, &lazyFrame{
				state: cellSlice,
				id:    id,
				off:   uint32(offset),
				n:     uint32(size),
			})
			offset += size
			continue
		}

		frameData := bytes.Clone(data[offset : offset+size])
		offset += size

		if encrypted {
			// No decryption support; preserve the payload opaquely.
			t.unknown = append(t.unknown, UnknownFrame{ID: id, Data: frameData})
			continue
		}

		if hasDataLength && len(frameData) >= 4 {
			frameData = frameData[4:]
		}

		if unsynchronised {
			frameData = DecodeUnsynch(frameData)
		}

		if compressed {
			inflated, err := inflate(frameData)
			if err != nil {
				t.unknown = append(t.unknown, UnknownFrame{ID: id, Data: frameData})
				continue
			}
			frameData = inflated
		}

		t.AddRaw(id, frameData)
	}
	return nil
}

// Render serializes all frames into the target version's frame-header
// format: syncsafe sizes for v2.4, plain big-endian for v2.3. Frame
// flags are always written as zero.
func (t *Tag) Render(version byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(4096)

	for i := range t.buckets {
		for _, lf := range t.buckets[i].cells {
			id, frameData, err := lf.payload(t.buf, version)
			if err != nil {
				return nil, err
			}

			out.WriteString(id)
			if version == 4 {
				out.Write(EncodeBitPadded(uint32(len(frameData)), 4, 7))
			} else {
				var size [4]byte
				binary.BigEndian.PutUint32(size[:], uint32(len(frameData)))
				out.Write(size[:])
			}
			out.Write([]byte{0, 0})
			out.Write(frameData)
		}
	}

	return out.Bytes(), nil
}

// quickKey extracts a frame's hash key from its raw payload without a
// full decode. For the composite-key frame types only the leading
// description/email fields are read; everything else keys on the bare
// ID. Keeps lazy storage cheap for large payloads.
func quickKey(id string, data []byte) string {
	switch id {
	case "TXXX", "WXXX":
		if len(data) == 0 {
			return id
		}
		enc, err := EncodingFromByte(data[0])
		if err != nil {
			return id
		}
		desc, _ := readEncodedText(data[1:], enc)
		return id + ":" + desc

	case "COMM", "USLT":
		if len(data) < 4 {
			return id
		}
		enc, err := EncodingFromByte(data[0])
		if err != nil {
			return id
		}
		lang := languageCode(data[1:4])
		desc, _ := readEncodedText(data[4:], enc)
		return id + ":" + desc + ":" + lang

	case "APIC":
		if len(data) == 0 {
			return id
		}
		enc, err := EncodingFromByte(data[0])
		if err != nil {
			return id
		}
		_, mimeConsumed := readLatin1Text(data[1:])
		afterType := 1 + mimeConsumed + 1 // skip picture-type byte
		if afterType >= len(data) {
			return id
		}
		desc, _ := readEncodedText(data[afterType:], enc)
		return id + ":" + desc

	case "POPM":
		email, _ := readLatin1Text(data)
		return id + ":" + email

	default:
		return id
	}
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCompressedData, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCompressedData, err)
	}
	return out, nil
}
