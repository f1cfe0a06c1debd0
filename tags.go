package id3kit

import (
	"strconv"
	"strings"

	"github.com/simonhull/id3kit/id3"
	"github.com/simonhull/id3kit/internal/types"
)

// Tags is an alias to types.Tags.
// Re-exported from internal/types to keep one definition.
type Tags = types.Tags

// mapTags flattens the frame dictionary into the convenience view.
// Every decodable frame also lands in the raw map under its hash key.
// Picture buckets are skipped so their payloads stay undecoded until
// ExtractArtwork asks for them.
func mapTags(tag *id3.Tag) Tags {
	var t Tags

	for _, f := range textValues(tag) {
		switch fr := f.(type) {
		case *id3.TextFrame:
			text := strings.Join(fr.Text, "/")
			switch fr.ID {
			case "TIT2":
				t.Title = text
			case "TIT3":
				t.Subtitle = text
			case "TPE1":
				t.Artist = text
			case "TPE2":
				t.AlbumArtist = text
			case "TALB":
				t.Album = text
			case "TCOM":
				t.Composers = fr.Text
			case "TCON":
				for _, v := range fr.Text {
					t.Genres = append(t.Genres, id3.ParseGenre(v)...)
				}
			case "TDRC", "TYER":
				if t.Year == 0 {
					t.Year = parseYear(text)
				}
			case "TRCK":
				t.TrackNumber, t.TrackTotal = parseNumberPair(text)
			case "TPOS":
				t.DiscNumber, t.DiscTotal = parseNumberPair(text)
			case "TPUB":
				t.Publisher = text
			case "TCOP":
				t.Copyright = text
			}
			t.Set(f.Key(), fr.Text...)

		case *id3.CommentFrame:
			if t.Comment == "" {
				t.Comment = fr.Text
			}
			t.Set(f.Key(), fr.Text)

		case *id3.LyricsFrame:
			if t.Lyrics == "" {
				t.Lyrics = fr.Text
			}
			t.Set(f.Key(), fr.Text)

		case *id3.UserTextFrame:
			t.Set(f.Key(), fr.Text...)

		case *id3.URLFrame:
			t.Set(f.Key(), fr.URL)

		case *id3.UserURLFrame:
			t.Set(f.Key(), fr.URL)

		case *id3.PopularimeterFrame:
			t.Set(f.Key(), f.String())
		}
	}

	return t
}

// textValues decodes every non-picture frame in dictionary order.
func textValues(tag *id3.Tag) []id3.Frame {
	var frames []id3.Frame
	for _, key := range tag.Keys() {
		if strings.HasPrefix(key, "APIC") {
			continue
		}
		frames = append(frames, tag.GetAll(key)...)
	}
	return frames
}

// parseYear extracts the leading year from a date string, which may be
// a bare "1999" or a v2.4 timestamp like "1999-04-02T10:00".
func parseYear(s string) int {
	if len(s) > 4 {
		s = s[:4]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return year
}

// parseNumberPair splits "3/12" style track and disc fields.
func parseNumberPair(s string) (number, total int) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		total, _ = strconv.Atoi(s[i+1:])
		s = s[:i]
	}
	number, _ = strconv.Atoi(s)
	return number, total
}
