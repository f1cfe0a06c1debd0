package id3kit

import (
	"fmt"
	"strings"

	"github.com/simonhull/id3kit/id3"
	"github.com/simonhull/id3kit/internal/types"
)

// Artwork is an alias to types.Artwork.
// Re-exported from internal/types to keep one definition.
type Artwork = types.Artwork

// ArtworkType is an alias to types.ArtworkType.
type ArtworkType = types.ArtworkType

// Re-export all artwork type constants.
const (
	ArtworkOther             = types.ArtworkOther
	ArtworkIcon              = types.ArtworkIcon
	ArtworkOtherIcon         = types.ArtworkOtherIcon
	ArtworkFrontCover        = types.ArtworkFrontCover
	ArtworkBackCover         = types.ArtworkBackCover
	ArtworkLeaflet           = types.ArtworkLeaflet
	ArtworkMedia             = types.ArtworkMedia
	ArtworkLeadArtist        = types.ArtworkLeadArtist
	ArtworkArtist            = types.ArtworkArtist
	ArtworkConductor         = types.ArtworkConductor
	ArtworkBand              = types.ArtworkBand
	ArtworkComposer          = types.ArtworkComposer
	ArtworkLyricist          = types.ArtworkLyricist
	ArtworkRecordingLocation = types.ArtworkRecordingLocation
	ArtworkDuringRecording   = types.ArtworkDuringRecording
	ArtworkDuringPerformance = types.ArtworkDuringPerformance
	ArtworkVideoCapture      = types.ArtworkVideoCapture
	ArtworkBrightFish        = types.ArtworkBrightFish
	ArtworkIllustration      = types.ArtworkIllustration
	ArtworkBandLogotype      = types.ArtworkBandLogotype
	ArtworkPublisherLogotype = types.ArtworkPublisherLogotype
)

// ExtractArtwork extracts embedded pictures from the file.
//
// Artwork is lazily loaded: picture payloads are not decoded during
// Open. The first call decodes and caches them; subsequent calls
// return the cached slice.
//
// Returns an empty slice if the file contains no pictures.
func (f *File) ExtractArtwork() ([]Artwork, error) {
	if f.artwork != nil {
		return f.artwork, nil
	}

	limit := 0
	if f.options != nil {
		limit = f.options.maxArtworkSize
	}

	var artwork []Artwork
	for _, key := range f.Tag.Keys() {
		if !strings.HasPrefix(key, "APIC") {
			continue
		}
		for _, frame := range f.Tag.GetAll(key) {
			pic, ok := frame.(*id3.PictureFrame)
			if !ok {
				continue
			}
			if limit > 0 && len(pic.Data) > limit {
				f.Warnings = append(f.Warnings, Warning{
					Stage:   "artwork",
					Message: fmt.Sprintf("picture %q skipped: %d bytes exceeds limit of %d", pic.Desc, len(pic.Data), limit),
				})
				continue
			}
			artwork = append(artwork, Artwork{
				Data:        pic.Data,
				MIMEType:    pic.MIME,
				Type:        ArtworkType(pic.Type),
				Description: pic.Desc,
			})
		}
	}

	if artwork == nil {
		artwork = []Artwork{}
	}
	f.artwork = artwork
	return artwork, nil
}
