package id3kit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simonhull/id3kit/id3"
)

// Save writes modified metadata back to the original file.
//
// This is an atomic operation: the tag and audio are written to a
// temporary file first, then renamed over the original path. If any
// step fails, the original file remains unchanged.
//
//	err := file.Save(
//	    id3kit.WithBackup(".bak"),
//	    id3kit.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	if f.Path == "" {
		return fmt.Errorf("file has no path, use SaveAs")
	}
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file, with its current in-memory tag, to a new
// location. The audio data is copied from the original reader, so the
// File must not be closed yet.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if f.reader == nil {
		return fmt.Errorf("file not open: reader is nil")
	}

	rendered, err := id3.RenderTag(f.Tag, options.version)
	if err != nil {
		return fmt.Errorf("render tag: %w", err)
	}

	// The audio region is everything after the old v2 tag. A trailing
	// v1 tag is part of it unless we are rewriting that too.
	audioStart := int64(0)
	if f.Header != nil {
		audioStart = min(int64(f.Header.FullSize()), f.Size)
	}
	audioEnd := f.Size
	if options.writeID3v1 && f.hasTrailingID3v1() {
		audioEnd -= 128
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(f.Path); err == nil {
			origInfo = info
		}
	}

	// Temp file in the output directory so the final rename is atomic.
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".id3kit-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(rendered); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}

	audio := io.NewSectionReader(f.reader, audioStart, audioEnd-audioStart)
	if _, err := io.Copy(tempFile, audio); err != nil {
		return fmt.Errorf("copy audio: %w", err)
	}

	if options.writeID3v1 {
		if _, err := tempFile.Write(id3.MakeID3v1(f.Tag.Values())); err != nil {
			return fmt.Errorf("write id3v1: %w", err)
		}
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if options.preserveModTime && origInfo != nil {
		os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// hasTrailingID3v1 reports whether the last 128 bytes of the open file
// are an ID3v1 tag.
func (f *File) hasTrailingID3v1() bool {
	if f.Size < 128 {
		return false
	}
	var buf [3]byte
	if _, err := f.reader.ReadAt(buf[:], f.Size-128); err != nil {
		return false
	}
	return string(buf[:]) == "TAG"
}

// validateWrittenFile re-opens the file and compares key metadata
// fields against the in-memory tag.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer written.Close()

	want := mapTags(f.Tag)
	if written.Tags.Title != want.Title {
		return fmt.Errorf("title mismatch: got %q, want %q", written.Tags.Title, want.Title)
	}
	if written.Tags.Artist != want.Artist {
		return fmt.Errorf("artist mismatch: got %q, want %q", written.Tags.Artist, want.Artist)
	}
	if written.Tags.Album != want.Album {
		return fmt.Errorf("album mismatch: got %q, want %q", written.Tags.Album, want.Album)
	}
	return nil
}

// Strip removes all tags from the file at path: any leading ID3v2 tag
// and any trailing ID3v1 tag. The audio data is left untouched.
func Strip(path string) error {
	return id3.Delete(path)
}
