package id3kit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/id3kit"
	"github.com/simonhull/id3kit/id3"
)

// createBenchmarkMP3 writes a tagged MP3 with a realistic frame mix.
func createBenchmarkMP3(b *testing.B) string {
	b.Helper()

	tag := id3.NewTag()
	tag.Add(&id3.TextFrame{ID: "TIT2", Encoding: id3.EncodingUTF8, Text: []string{"Benchmark Title"}})
	tag.Add(&id3.TextFrame{ID: "TPE1", Encoding: id3.EncodingUTF8, Text: []string{"Benchmark Artist"}})
	tag.Add(&id3.TextFrame{ID: "TALB", Encoding: id3.EncodingUTF8, Text: []string{"Benchmark Album"}})
	tag.Add(&id3.CommentFrame{ID: "COMM", Encoding: id3.EncodingUTF8, Lang: "eng", Text: "a comment"})
	tag.Add(&id3.PictureFrame{
		ID:       "APIC",
		Encoding: id3.EncodingUTF8,
		MIME:     "image/jpeg",
		Type:     id3.PictureCoverFront,
		Data:     make([]byte, 64*1024),
	})

	rendered, err := id3.RenderTag(tag, 4)
	if err != nil {
		b.Fatal(err)
	}

	data := append(rendered, make([]byte, 256*1024)...) // fake audio
	data[len(rendered)] = 0xFF
	data[len(rendered)+1] = 0xFB

	path := filepath.Join(b.TempDir(), "bench.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.Fatal(err)
	}
	return path
}

// BenchmarkOpen measures opening and lazy-indexing a tagged file. The
// 64KB picture payload should not be decoded.
func BenchmarkOpen(b *testing.B) {
	path := createBenchmarkMP3(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		file, err := id3kit.Open(path)
		if err != nil {
			b.Fatal(err)
		}
		file.Close()
	}
}

// BenchmarkOpenMany measures concurrent parsing throughput.
func BenchmarkOpenMany(b *testing.B) {
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = createBenchmarkMP3(b)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		files, err := id3kit.OpenMany(context.Background(), paths...)
		if err != nil {
			b.Fatal(err)
		}
		for _, f := range files {
			f.Close()
		}
	}
}
