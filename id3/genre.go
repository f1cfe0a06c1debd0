package id3

import (
	"fmt"
	"strconv"
	"strings"
)

// Genres is the ID3v1 genre table, indexed by the genre byte. The first
// 80 entries are from the ID3v1 spec, the rest are the Winamp
// extensions that taggers treat as standard.
var Genres = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native American", "Cabaret", "New Wave",
	"Psychedelic", "Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal",
	"Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll",
	"Hard Rock", "Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion",
	"Bebop", "Latin", "Revival", "Celtic", "Bluegrass", "Avantgarde",
	"Gothic Rock", "Progressive Rock", "Psychedelic Rock", "Symphonic Rock",
	"Slow Rock", "Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour",
	"Speech", "Chanson", "Opera", "Chamber Music", "Sonata", "Symphony",
	"Booty Bass", "Primus", "Porn Groove", "Satire", "Slow Jam", "Club",
	"Tango", "Samba", "Folklore", "Ballad", "Power Ballad", "Rhythmic Soul",
	"Freestyle", "Duet", "Punk Rock", "Drum Solo", "A capella", "Euro-House",
	"Dance Hall", "Goa", "Drum & Bass", "Club-House", "Hardcore Techno",
	"Terror", "Indie", "BritPop", "Negerpunk", "Polsk Punk", "Beat",
	"Christian Gangsta Rap", "Heavy Metal", "Black Metal", "Crossover",
	"Contemporary Christian", "Christian Rock", "Merengue", "Salsa",
	"Thrash Metal", "Anime", "Jpop", "Synthpop", "Abstract", "Art Rock",
	"Baroque", "Bhangra", "Big Beat", "Breakbeat", "Chillout", "Downtempo",
	"Dub", "EBM", "Eclectic", "Electro", "Electroclash", "Emo", "Experimental",
	"Garage", "Global", "IDM", "Illbient", "Industro-Goth", "Jam Band",
	"Krautrock", "Leftfield", "Lounge", "Math Rock", "New Romantic",
	"Nu-Breakz", "Post-Punk", "Post-Rock", "Psytrance", "Shoegaze",
	"Space Rock", "Trop Rock", "World Music", "Neoclassical", "Audiobook",
	"Audio Theatre", "Neue Deutsche Welle", "Podcast", "Indie Rock",
	"G-Funk", "Dubstep", "Garage Rock", "Psybient",
}

// ParseGenre interprets a TCON value, handling the legacy reference
// formats that accumulated across tag versions: bare numeric indexes
// ("17"), parenthesized indexes ("(17)", "(17)Rock"), the special
// "(RX)" remix and "(CR)" cover codes, and null-separated multi-genre
// lists from v2.4.
func ParseGenre(text string) []string {
	var genres []string
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	remaining := trimmed
	for remaining != "" {
		if strings.HasPrefix(remaining, "(") {
			end := strings.IndexByte(remaining, ')')
			if end < 0 {
				genres = append(genres, remaining)
				break
			}
			inner := remaining[1:end]
			remaining = remaining[end+1:]

			switch {
			case inner == "RX":
				genres = append(genres, "Remix")
			case inner == "CR":
				genres = append(genres, "Cover")
			default:
				if num, err := strconv.Atoi(inner); err == nil && num >= 0 {
					if num < len(Genres) {
						genres = append(genres, Genres[num])
					} else {
						genres = append(genres, fmt.Sprintf("Unknown(%d)", num))
					}
				} else {
					genres = append(genres, inner)
				}
			}
			continue
		}

		if num, err := strconv.Atoi(remaining); err == nil && num >= 0 && num < len(Genres) {
			genres = append(genres, Genres[num])
			break
		}

		// Null-separated list (v2.4 convention); entries may still be
		// bare numeric references.
		for _, part := range strings.Split(remaining, "\x00") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if num, err := strconv.Atoi(part); err == nil && num >= 0 && num < len(Genres) {
				genres = append(genres, Genres[num])
			} else {
				genres = append(genres, part)
			}
		}
		break
	}

	if len(genres) == 0 {
		genres = append(genres, trimmed)
	}
	return genres
}
