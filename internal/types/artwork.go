package types

// ArtworkType identifies the role of an embedded image, matching the
// ID3v2 APIC picture type table.
type ArtworkType byte

const (
	ArtworkOther             ArtworkType = 0
	ArtworkIcon              ArtworkType = 1
	ArtworkOtherIcon         ArtworkType = 2
	ArtworkFrontCover        ArtworkType = 3
	ArtworkBackCover         ArtworkType = 4
	ArtworkLeaflet           ArtworkType = 5
	ArtworkMedia             ArtworkType = 6
	ArtworkLeadArtist        ArtworkType = 7
	ArtworkArtist            ArtworkType = 8
	ArtworkConductor         ArtworkType = 9
	ArtworkBand              ArtworkType = 10
	ArtworkComposer          ArtworkType = 11
	ArtworkLyricist          ArtworkType = 12
	ArtworkRecordingLocation ArtworkType = 13
	ArtworkDuringRecording   ArtworkType = 14
	ArtworkDuringPerformance ArtworkType = 15
	ArtworkVideoCapture      ArtworkType = 16
	ArtworkBrightFish        ArtworkType = 17
	ArtworkIllustration      ArtworkType = 18
	ArtworkBandLogotype      ArtworkType = 19
	ArtworkPublisherLogotype ArtworkType = 20
)

// String returns a human-readable name for the artwork type.
func (t ArtworkType) String() string {
	names := map[ArtworkType]string{
		ArtworkOther:             "Other",
		ArtworkIcon:              "Icon",
		ArtworkOtherIcon:         "Other Icon",
		ArtworkFrontCover:        "Front Cover",
		ArtworkBackCover:         "Back Cover",
		ArtworkLeaflet:           "Leaflet",
		ArtworkMedia:             "Media",
		ArtworkLeadArtist:        "Lead Artist",
		ArtworkArtist:            "Artist",
		ArtworkConductor:         "Conductor",
		ArtworkBand:              "Band",
		ArtworkComposer:          "Composer",
		ArtworkLyricist:          "Lyricist",
		ArtworkRecordingLocation: "Recording Location",
		ArtworkDuringRecording:   "During Recording",
		ArtworkDuringPerformance: "During Performance",
		ArtworkVideoCapture:      "Video Capture",
		ArtworkBrightFish:        "Bright Fish",
		ArtworkIllustration:      "Illustration",
		ArtworkBandLogotype:      "Band Logotype",
		ArtworkPublisherLogotype: "Publisher Logotype",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "Other"
}

// Artwork represents an embedded image extracted from a tag.
type Artwork struct {
	// Raw image data
	Data []byte

	// MIME type, e.g. "image/jpeg"
	MIMEType string

	// Role of the image (front cover, back cover, ...)
	Type ArtworkType

	// Free-form description from the tag
	Description string
}
