package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingFromByte(t *testing.T) {
	t.Parallel()

	for b := byte(0); b <= 3; b++ {
		enc, err := EncodingFromByte(b)
		require.NoError(t, err)
		require.Equal(t, Encoding(b), enc)
	}

	_, err := EncodingFromByte(4)
	require.Error(t, err)
}

func TestDefaultEncoding(t *testing.T) {
	t.Parallel()

	require.Equal(t, EncodingUTF16, DefaultEncoding(3))
	require.Equal(t, EncodingUTF8, DefaultEncoding(4))
}

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		enc  Encoding
		want string
	}{
		{"latin1 ascii", []byte("hello"), EncodingLatin1, "hello"},
		{"latin1 high bytes", []byte{'c', 'a', 'f', 0xE9}, EncodingLatin1, "café"},
		{"utf16 le bom", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, EncodingUTF16, "hi"},
		{"utf16 be bom", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, EncodingUTF16, "hi"},
		{"utf16 no bom defaults le", []byte{'h', 0, 'i', 0}, EncodingUTF16, "hi"},
		{"utf16be", []byte{0, 'h', 0, 'i'}, EncodingUTF16BE, "hi"},
		{"utf8", []byte("héllo"), EncodingUTF8, "héllo"},
		{"empty", nil, EncodingUTF8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, decodeText(tt.data, tt.enc))
		})
	}
}

func TestEncodeText(t *testing.T) {
	t.Parallel()

	t.Run("latin1 replaces unmappable", func(t *testing.T) {
		require.Equal(t, []byte("?x"), encodeText("世x", EncodingLatin1))
	})

	t.Run("utf16 carries bom", func(t *testing.T) {
		out := encodeText("hi", EncodingUTF16)
		require.Equal(t, []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, out)
	})

	t.Run("utf16be no bom", func(t *testing.T) {
		out := encodeText("hi", EncodingUTF16BE)
		require.Equal(t, []byte{0, 'h', 0, 'i'}, out)
	})

	t.Run("round trips", func(t *testing.T) {
		for _, enc := range []Encoding{EncodingLatin1, EncodingUTF16, EncodingUTF16BE, EncodingUTF8} {
			require.Equal(t, "café", decodeText(encodeText("café", enc), enc), enc.String())
		}
	})
}

func TestReadEncodedText(t *testing.T) {
	t.Parallel()

	t.Run("terminated", func(t *testing.T) {
		text, n := readEncodedText([]byte("abc\x00rest"), EncodingLatin1)
		require.Equal(t, "abc", text)
		require.Equal(t, 4, n)
	})

	t.Run("unterminated consumes all", func(t *testing.T) {
		text, n := readEncodedText([]byte("abc"), EncodingLatin1)
		require.Equal(t, "abc", text)
		require.Equal(t, 3, n)
	})

	t.Run("utf16 double null on boundary", func(t *testing.T) {
		// "a" in UTF-16LE is {0x61, 0x00}; the terminator scan must not
		// mistake the code unit's high byte plus the terminator's first
		// byte for the terminator.
		data := []byte{'a', 0, 0, 0, 'b', 0}
		text, n := readEncodedText(data, EncodingUTF16)
		require.Equal(t, "a", text)
		require.Equal(t, 4, n)
	})
}

func TestReadLatin1Text(t *testing.T) {
	t.Parallel()

	text, n := readLatin1Text([]byte("image/png\x00xyz"))
	require.Equal(t, "image/png", text)
	require.Equal(t, 10, n)
}
