package id3kit

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3kit/id3"
)

// File represents an opened MP3 file with parsed metadata.
//
// File gives two views of the same metadata: Tags, a flattened
// convenience struct for the common fields, and Tag, the full frame
// dictionary for everything else (editing, custom frames, pictures).
//
// Opening a file is lazy: frame boundaries are indexed but payloads
// are not decoded until accessed, and artwork bytes are not extracted
// until ExtractArtwork is called.
//
// Always call Close when done to release the file handle:
//
//	file, err := id3kit.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path to the audio file
	Path string

	// Detected format
	Format Format

	// File size in bytes
	Size int64

	// Flattened metadata view
	Tags Tags

	// Full frame dictionary
	Tag *id3.Tag

	// Parsed ID3v2 header, nil when the file has no v2 tag (metadata
	// may still come from a trailing ID3v1 tag)
	Header *id3.Header

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning

	reader  io.ReaderAt
	artwork []Artwork // cached, nil until ExtractArtwork
	options *openOptions
}

// Open opens an MP3 file and reads its metadata.
//
// If the file has no ID3v2 tag, a trailing ID3v1 tag is used as
// fallback; if it has both, v1 fields fill only the gaps v2 leaves.
//
// Options customize parsing behavior:
//
//	file, err := id3kit.Open("song.mp3",
//	    id3kit.WithStrictParsing(),
//	    id3kit.WithArtworkPreload(),
//	)
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Keep the handle for lazy operations and for Save.
	file.reader = f

	if options.strictParsing && len(file.Warnings) > 0 {
		f.Close()
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}

	if options.preloadArtwork {
		if _, err := file.ExtractArtwork(); err != nil {
			file.Warnings = append(file.Warnings, Warning{
				Stage:   "artwork",
				Message: fmt.Sprintf("preload artwork failed: %v", err),
			})
		}
	}

	return file, nil
}

// OpenBytes reads metadata from an in-memory file image. The returned
// File holds no OS handle; Close is a no-op and Save only supports
// SaveAs to a new path.
func OpenBytes(data []byte, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	r := readerAt(data)
	file, err := openReader(r, int64(len(data)), "", options)
	if err != nil {
		return nil, err
	}
	file.reader = r
	return file, nil
}

type readerAt []byte

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(r)) {
		return 0, io.EOF
	}
	n := copy(p, r[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	tag, header, err := id3.LoadReader(r, size, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	file := &File{
		Path:    path,
		Format:  format,
		Size:    size,
		Tag:     tag,
		Header:  header,
		Tags:    mapTags(tag),
		options: options,
	}

	for _, unknown := range tag.UnknownFrames() {
		file.Warnings = append(file.Warnings, Warning{
			Stage:   "frames",
			Message: fmt.Sprintf("frame %s preserved but not decoded (%d bytes)", unknown.ID, len(unknown.Data)),
		})
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Close releases resources held by the file.
//
// After Close is called, the File should not be used.
func (f *File) Close() error {
	if closer, ok := f.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open that checks the context before
// starting; parsing itself is fast enough not to need checkpoints.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently, up to runtime.NumCPU()
// at a time. Results are returned in input order. If any file fails,
// all successfully opened files are closed and an error is returned.
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
