package types

import (
	"iter"
	"slices"
)

// Tags is a flattened, convenience view of a file's metadata.
//
// The standard fields cover the frames almost every tagged file
// carries. Everything else is reachable through the raw map, keyed by
// frame hash key ("TIT2", "TXXX:replaygain", "COMM::eng", ...).
type Tags struct {
	raw map[string][]string

	Title       string
	Subtitle    string
	Artist      string
	AlbumArtist string
	Album       string
	Comment     string
	Lyrics      string
	Publisher   string
	Copyright   string
	Composers   []string
	Genres      []string
	Year        int
	TrackNumber int
	TrackTotal  int
	DiscNumber  int
	DiscTotal   int
}

// All returns an iterator over all raw tags. Values are string slices
// since frames can carry multiple values.
//
//	for key, values := range file.Tags.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for key, values := range t.raw {
			if !yield(key, values) {
				return
			}
		}
	}
}

// Get retrieves all values for a raw tag key. Returns a copy.
func (t *Tags) Get(key string) []string {
	values := t.raw[key]
	if values == nil {
		return nil
	}
	return slices.Clone(values)
}

// GetFirst retrieves the first value for a raw tag key, or "".
func (t *Tags) GetFirst(key string) string {
	if values := t.raw[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Set stores a raw tag value in the in-memory view. An empty value
// list removes the key. This does not touch the underlying frame
// dictionary; it exists so mappers and tests can build Tags values.
func (t *Tags) Set(key string, values ...string) {
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	if len(values) == 0 {
		delete(t.raw, key)
		return
	}
	t.raw[key] = slices.Clone(values)
}
