package id3

// tagPadding is appended after the rendered frames so small metadata
// edits can be written in place by other taggers without rewriting the
// whole file.
const tagPadding = 1024

// RenderTag serializes a complete ID3v2 tag: 10-byte header, frames in
// the target version's format, and trailing padding. The header size
// field is always syncsafe regardless of version. Header flags are
// written as zero; unsynchronisation and extended headers are never
// emitted.
func RenderTag(t *Tag, version byte) ([]byte, error) {
	if version != 3 && version != 4 {
		return nil, &UnsupportedVersionError{Major: version}
	}

	frames, err := t.Render(version)
	if err != nil {
		return nil, err
	}

	size := len(frames) + tagPadding
	out := make([]byte, 0, 10+size)
	out = append(out, 'I', 'D', '3', version, 0, 0)
	out = append(out, EncodeBitPadded(uint32(size), 4, 7)...)
	out = append(out, frames...)
	out = append(out, make([]byte, tagPadding)...)
	return out, nil
}
