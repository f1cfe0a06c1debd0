// Package id3 implements reading and writing of ID3v2.2, v2.3 and
// v2.4 tags, with ID3v1 fallback. Frames are decoded lazily: loading a
// tag parses the header and frame boundaries but defers payload
// decoding until a frame is accessed.
package id3

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/simonhull/id3kit/internal/binary"
)

// Load reads the tag from the file at path. A nil Header in the result
// means no ID3v2 tag was found and the frames, if any, came from a
// trailing ID3v1 tag.
func Load(path string) (*Tag, *Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("id3: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("id3: %w", err)
	}
	return LoadReader(f, stat.Size(), path)
}

// LoadBytes reads the tag from an in-memory file image.
func LoadBytes(data []byte) (*Tag, *Header, error) {
	return LoadReader(bytes.NewReader(data), int64(len(data)), "")
}

// LoadReader reads the tag from an io.ReaderAt of known size. Only the
// tag regions are read: the v2 tag at the front and the last 128 bytes
// for a v1 tag. The audio data in between is never touched. path is
// used in error messages.
//
// When both an ID3v2 and a trailing ID3v1 tag are present, v1 fields
// only fill keys the v2 tag does not already define.
func LoadReader(r io.ReaderAt, size int64, path string) (*Tag, *Header, error) {
	sr := binary.NewSafeReader(r, size, path)
	tag := NewTag()

	// A file too small for a v2 header may still carry other content;
	// fall through to the v1 probe in that case.
	var header *Header
	var head [10]byte
	if err := sr.ReadAt(head[:], 0, "tag header"); err == nil {
		h, err := ParseHeader(head[:], 0)
		if err != nil && !errors.Is(err, ErrNoHeader) {
			return nil, nil, err
		}
		header = h
	}

	if header == nil {
		mergeID3v1(sr, tag, false)
		return tag, nil, nil
	}

	frameData := make([]byte, min(int64(header.Size), size-10))
	if len(frameData) > 0 {
		if err := sr.ReadAt(frameData, 10, "frame data"); err != nil {
			return nil, nil, err
		}
	}

	// v2.4 moved unsynchronisation to the frame level; the whole-tag
	// flag only applies to earlier versions.
	if header.Flags.Unsynchronisation && header.Version[0] < 4 {
		frameData = DecodeUnsynch(frameData)
	}

	if err := tag.ReadFrames(frameData, header); err != nil {
		return nil, nil, err
	}

	mergeID3v1(sr, tag, true)
	return tag, header, nil
}

// mergeID3v1 folds a trailing v1 tag into the dictionary. With
// onlyGaps set, v1 fields are skipped when the key already exists.
func mergeID3v1(sr *binary.SafeReader, tag *Tag, onlyGaps bool) {
	if sr.Size() < id3v1Size {
		return
	}
	buf := make([]byte, id3v1Size)
	if err := sr.ReadAt(buf, sr.Size()-id3v1Size, "id3v1 tag"); err != nil {
		return
	}
	for _, f := range ParseID3v1(buf) {
		if onlyGaps && tag.Contains(f.Key()) {
			continue
		}
		tag.Add(f)
	}
}

// Save writes the tag to the file at path as the given version (3 or
// 4), replacing any existing ID3v2 tag and preserving the audio data
// and file mode. The file must already exist.
func Save(path string, t *Tag, version byte) error {
	rendered, err := RenderTag(t, version)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("id3: reading %s: %w", path, err)
	}

	var oldSize int
	if header, err := ParseHeader(data, 0); err == nil {
		oldSize = int(header.FullSize())
		if oldSize > len(data) {
			oldSize = len(data)
		}
	}

	out := make([]byte, 0, len(rendered)+len(data)-oldSize)
	out = append(out, rendered...)
	out = append(out, data[oldSize:]...)

	return writeFilePreserveMode(path, out)
}

// Delete removes all tags from the file at path: any leading ID3v2 tag
// and any trailing ID3v1 tag. Removing from an untagged file is a
// no-op.
func Delete(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("id3: reading %s: %w", path, err)
	}

	start := 0
	if header, err := ParseHeader(data, 0); err == nil {
		start = int(header.FullSize())
		if start > len(data) {
			start = len(data)
		}
	}

	end := len(data)
	if offset := FindID3v1(data); offset >= start {
		end = offset
	}

	if start == 0 && end == len(data) {
		return nil
	}
	return writeFilePreserveMode(path, data[start:end])
}

func writeFilePreserveMode(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("id3: writing %s: %w", path, err)
	}
	return nil
}
