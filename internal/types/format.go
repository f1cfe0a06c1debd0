// Package types contains shared types used across id3kit packages.
//
// This package exists to avoid circular dependencies: both the root
// package and the tag engine need Format, Warning, and the error
// types, so they live here.
package types

import (
	"fmt"
	"io"
	"strings"
)

// Format represents a detected container format.
type Format string

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = "Unknown"

	// FormatMP3 covers MPEG audio streams and bare ID3 tag streams.
	FormatMP3 Format = "MP3"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// DetectFormat identifies the container format of a file.
//
// Detection is content-based: the file extension is only used as a
// tie-breaker when the leading bytes are ambiguous (for example an
// MPEG stream that starts mid-frame).
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 3 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small to identify",
		}
	}

	buf := make([]byte, 10)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("read file header: %w", err)
	}
	buf = buf[:n]

	// ID3v2 tag prefix
	if len(buf) >= 3 && string(buf[0:3]) == "ID3" {
		return FormatMP3, nil
	}

	// MPEG frame sync: 11 set bits
	if len(buf) >= 2 && buf[0] == 0xFF && buf[1]&0xE0 == 0xE0 {
		return FormatMP3, nil
	}

	// Trailing ID3v1 tag only
	if size >= 128 {
		tail := make([]byte, 3)
		if _, err := r.ReadAt(tail, size-128); err == nil && string(tail) == "TAG" {
			return FormatMP3, nil
		}
	}

	if strings.HasSuffix(strings.ToLower(path), ".mp3") {
		return FormatMP3, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "no ID3 tag or MPEG sync found",
	}
}
