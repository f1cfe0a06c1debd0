package id3kit

import (
	"github.com/simonhull/id3kit/id3"
	"github.com/simonhull/id3kit/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exported from internal/types to keep one definition.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// UnsupportedVersionError is an alias to id3.UnsupportedVersionError.
type UnsupportedVersionError = id3.UnsupportedVersionError

// FrameError is an alias to id3.FrameError.
type FrameError = id3.FrameError
