package id3

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader indicates the data does not start with an ID3v2 header.
	// Callers typically fall back to the trailing ID3v1 tag.
	ErrNoHeader = errors.New("id3: no ID3v2 header found")

	// ErrBadUnsynchData indicates unsynchronised data could not be decoded.
	ErrBadUnsynchData = errors.New("id3: bad unsynchronised data")

	// ErrBadCompressedData indicates a compressed frame failed to inflate.
	ErrBadCompressedData = errors.New("id3: bad compressed frame data")
)

// UnsupportedVersionError is returned for tags whose major version is
// outside the 2.2–2.4 range. The tag cannot be interpreted at all.
type UnsupportedVersionError struct {
	Major    byte
	Revision byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("id3: unsupported version ID3v2.%d.%d", e.Major, e.Revision)
}

// FrameError describes a structural problem inside a single frame.
type FrameError struct {
	ID     string
	Reason string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("id3: frame %s: %s", e.ID, e.Reason)
}
