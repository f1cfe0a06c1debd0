package id3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var mp3Audio = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x01, 0x02, 0x03}

func writeTestFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func taggedFile(t *testing.T, frames ...Frame) string {
	t.Helper()
	tag := NewTag()
	for _, f := range frames {
		tag.Add(f)
	}
	rendered, err := RenderTag(tag, 4)
	require.NoError(t, err)
	return writeTestFile(t, append(rendered, mp3Audio...))
}

func TestLoadBytes(t *testing.T) {
	t.Parallel()

	t.Run("v2 tag", func(t *testing.T) {
		tag := NewTag()
		tag.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"Title"}})
		rendered, err := RenderTag(tag, 4)
		require.NoError(t, err)

		loaded, header, err := LoadBytes(append(rendered, mp3Audio...))
		require.NoError(t, err)
		require.NotNil(t, header)
		require.Equal(t, [2]byte{4, 0}, header.Version)
		require.Equal(t, "Title", loaded.Get("TIT2").String())
	})

	t.Run("no tag", func(t *testing.T) {
		tag, header, err := LoadBytes(mp3Audio)
		require.NoError(t, err)
		require.Nil(t, header)
		require.Zero(t, tag.Len())
	})

	t.Run("v1 only", func(t *testing.T) {
		v1 := buildV1("V1 Title", "V1 Artist", "", "", "", 0, 255)
		tag, header, err := LoadBytes(append(append([]byte{}, mp3Audio...), v1...))
		require.NoError(t, err)
		require.Nil(t, header)
		require.Equal(t, "V1 Title", tag.Get("TIT2").String())
		require.Equal(t, "V1 Artist", tag.Get("TPE1").String())
	})

	t.Run("v1 fills gaps only", func(t *testing.T) {
		v2 := NewTag()
		v2.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"V2 Title"}})
		rendered, err := RenderTag(v2, 4)
		require.NoError(t, err)

		data := append(rendered, mp3Audio...)
		data = append(data, buildV1("V1 Title", "V1 Artist", "", "", "", 0, 255)...)

		tag, header, err := LoadBytes(data)
		require.NoError(t, err)
		require.NotNil(t, header)
		require.Equal(t, "V2 Title", tag.Get("TIT2").String())
		require.Equal(t, "V1 Artist", tag.Get("TPE1").String())
	})

	t.Run("whole tag unsynch v3", func(t *testing.T) {
		inner := NewTag()
		inner.Add(&TextFrame{ID: "TIT2", Encoding: EncodingLatin1, Text: []string{"ÿes"}})
		frames, err := inner.Render(3)
		require.NoError(t, err)

		stuffed := EncodeUnsynch(frames)
		data := []byte{'I', 'D', '3', 3, 0, 0x80}
		data = append(data, EncodeBitPadded(uint32(len(stuffed)), 4, 7)...)
		data = append(data, stuffed...)

		tag, _, err := LoadBytes(data)
		require.NoError(t, err)
		require.Equal(t, "ÿes", tag.Get("TIT2").String())
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := taggedFile(t, &TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"From Disk"}})

	tag, header, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, header)
	require.Equal(t, "From Disk", tag.Get("TIT2").String())

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
}

func TestLoadReader(t *testing.T) {
	t.Parallel()

	path := taggedFile(t, &TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"Via Reader"}})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)

	tag, _, err := LoadReader(f, info.Size(), path)
	require.NoError(t, err)
	require.Equal(t, "Via Reader", tag.Get("TIT2").String())
}

func TestSave(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing tag", func(t *testing.T) {
		path := taggedFile(t, &TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"Old"}})

		tag := NewTag()
		tag.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"New"}})
		require.NoError(t, Save(path, tag, 4))

		loaded, _, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "New", loaded.Get("TIT2").String())
		require.Len(t, loaded.GetAll("TIT2"), 1)

		// Audio survives untouched after the tag.
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, data[len(data)-len(mp3Audio):])
	})

	t.Run("tags an untagged file", func(t *testing.T) {
		path := writeTestFile(t, mp3Audio)

		tag := NewTag()
		tag.Add(&TextFrame{ID: "TPE1", Encoding: EncodingUTF8, Text: []string{"Artist"}})
		require.NoError(t, Save(path, tag, 4))

		loaded, header, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, header)
		require.Equal(t, "Artist", loaded.Get("TPE1").String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, data[len(data)-len(mp3Audio):])
	})

	t.Run("save as v3", func(t *testing.T) {
		path := writeTestFile(t, mp3Audio)

		tag := NewTag()
		tag.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"v3 file"}})
		require.NoError(t, Save(path, tag, 3))

		loaded, header, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, byte(3), header.Version[0])
		require.Equal(t, "v3 file", loaded.Get("TIT2").String())
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		path := writeTestFile(t, mp3Audio)
		err := Save(path, NewTag(), 2)
		var verr *UnsupportedVersionError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("preserves file mode", func(t *testing.T) {
		path := taggedFile(t, &TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"x"}})
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, Save(path, NewTag(), 4))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := taggedFile(t,
		&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"Keep Me"}},
		&CommentFrame{ID: "COMM", Encoding: EncodingUTF8, Lang: "eng", Desc: "d", Text: "note"},
	)

	tag, _, err := Load(path)
	require.NoError(t, err)

	tag.Add(&TextFrame{ID: "TALB", Encoding: EncodingUTF8, Text: []string{"New Album"}})
	require.NoError(t, Save(path, tag, 4))

	reloaded, _, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Keep Me", reloaded.Get("TIT2").String())
	require.Equal(t, "note", reloaded.Get("COMM:d:eng").String())
	require.Equal(t, "New Album", reloaded.Get("TALB").String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, mp3Audio, data[len(data)-len(mp3Audio):])
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("strips v2 tag", func(t *testing.T) {
		path := taggedFile(t, &TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"x"}})

		require.NoError(t, Delete(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, data)
	})

	t.Run("strips trailing v1 without v2", func(t *testing.T) {
		data := append(append([]byte{}, mp3Audio...), buildV1("t", "", "", "", "", 0, 255)...)
		path := writeTestFile(t, data)

		require.NoError(t, Delete(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, got)
	})

	t.Run("strips both", func(t *testing.T) {
		tag := NewTag()
		tag.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"x"}})
		rendered, err := RenderTag(tag, 4)
		require.NoError(t, err)

		data := append(rendered, mp3Audio...)
		data = append(data, buildV1("t", "", "", "", "", 0, 255)...)
		path := writeTestFile(t, data)

		require.NoError(t, Delete(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, got)
	})

	t.Run("untagged file untouched", func(t *testing.T) {
		path := writeTestFile(t, mp3Audio)
		require.NoError(t, Delete(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, mp3Audio, got)
	})
}

func TestRenderTag(t *testing.T) {
	t.Parallel()

	tag := NewTag()
	tag.Add(&TextFrame{ID: "TIT2", Encoding: EncodingUTF8, Text: []string{"Title"}})

	out, err := RenderTag(tag, 4)
	require.NoError(t, err)

	require.Equal(t, "ID3", string(out[0:3]))
	require.Equal(t, byte(4), out[3])
	require.Zero(t, out[5]) // no header flags

	size := DecodeSyncsafe(out[6:10])
	require.Equal(t, len(out), int(size)+10)

	// Padding after the frames is zeroed.
	require.Equal(t, make([]byte, tagPadding), out[len(out)-tagPadding:])
}
