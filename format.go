package id3kit

import (
	"io"

	"github.com/simonhull/id3kit/internal/types"
)

// Format is an alias to types.Format.
// Re-exported from internal/types to keep one definition.
type Format = types.Format

// Re-export format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
)

// DetectFormat is a wrapper around types.DetectFormat.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
