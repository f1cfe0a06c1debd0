// Package id3kit reads and writes ID3 tags in MP3 files.
//
// id3kit supports ID3v2.2, v2.3 and v2.4 tags with a unified API, and
// falls back to trailing ID3v1 tags when no v2 tag is present.
//
// # Quick Start
//
// Reading metadata from a file:
//
//	file, err := id3kit.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
//
// # Two Views of the Tag
//
// File.Tags is a flattened struct covering the fields almost every
// tagged file carries (title, artist, album, year, track, ...).
//
// File.Tag is the full frame dictionary: every frame under its hash
// key, lazily decoded, editable. Frames that may legally repeat with
// different identity use composite keys ("COMM:description:language",
// "TXXX:description", "APIC:description").
//
//	file.Tag.SetAll("TIT2", []id3.Frame{
//		&id3.TextFrame{ID: "TIT2", Encoding: id3.EncodingUTF8, Text: []string{"New Title"}},
//	})
//	err := file.Save()
//
// # Graceful Degradation
//
// Corrupted or unusual input produces partial data plus warnings, not
// errors. Encrypted frames, failed decompression, and unmapped v2.2
// frame IDs are preserved opaquely and reported in File.Warnings.
// Non-conforming v2.4 frame sizes written by old encoders are detected
// heuristically and parsed anyway.
//
// # Writing
//
// Save rewrites the tag in place atomically, preserving the audio
// bytes. Tags are written as ID3v2.4 by default; WithVersion(3)
// selects v2.3 (UTF-8 text is transparently downgraded to UTF-16),
// and WithID3v1 appends a trailing v1 tag for legacy players.
//
//	err := file.Save(
//	    id3kit.WithBackup(".bak"),
//	    id3kit.WithVersion(3),
//	    id3kit.WithID3v1(),
//	)
//
// # Concurrency
//
// OpenMany parses files in parallel:
//
//	files, err := id3kit.OpenMany(ctx, paths...)
//
// A File (and its Tag) is not safe for concurrent use: reads decode
// frames in place.
package id3kit
