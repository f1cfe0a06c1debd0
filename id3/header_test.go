package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	t.Run("v4 with flags", func(t *testing.T) {
		data := []byte{'I', 'D', '3', 4, 0, 0xB0, 0, 0, 2, 1}
		h, err := ParseHeader(data, 0)
		require.NoError(t, err)
		require.Equal(t, [2]byte{4, 0}, h.Version)
		require.True(t, h.Flags.Unsynchronisation)
		require.False(t, h.Flags.Extended)
		require.True(t, h.Flags.Experimental)
		require.True(t, h.Flags.Footer)
		require.Equal(t, uint32(257), h.Size)
	})

	t.Run("footer flag ignored below v4", func(t *testing.T) {
		data := []byte{'I', 'D', '3', 3, 0, 0x10, 0, 0, 0, 0}
		h, err := ParseHeader(data, 0)
		require.NoError(t, err)
		require.False(t, h.Flags.Footer)
	})

	t.Run("no magic", func(t *testing.T) {
		_, err := ParseHeader([]byte("XXXXXXXXXX"), 0)
		require.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := ParseHeader([]byte("ID3"), 0)
		require.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("unsupported version", func(t *testing.T) {
		data := []byte{'I', 'D', '3', 5, 0, 0, 0, 0, 0, 0}
		_, err := ParseHeader(data, 0)
		var verr *UnsupportedVersionError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, byte(5), verr.Major)
	})

	t.Run("offset recorded", func(t *testing.T) {
		data := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 10}
		h, err := ParseHeader(data, 42)
		require.NoError(t, err)
		require.Equal(t, int64(42), h.Offset)
	})
}

func TestHeaderFullSize(t *testing.T) {
	t.Parallel()

	h := &Header{Size: 100}
	require.Equal(t, uint32(110), h.FullSize())

	h.Flags.Footer = true
	require.Equal(t, uint32(120), h.FullSize())
}

// buildFrame assembles a v2.3/v2.4-shaped frame header plus payload,
// with the size field encoded at the given bits-per-byte.
func buildFrame(id string, payload []byte, bits uint) []byte {
	out := []byte(id)
	out = append(out, EncodeBitPadded(uint32(len(payload)), 4, bits)...)
	out = append(out, 0, 0)
	return append(out, payload...)
}

func TestDetermineBPI(t *testing.T) {
	t.Parallel()

	t.Run("syncsafe preferred on ties", func(t *testing.T) {
		// A payload shorter than 128 bytes encodes identically either
		// way; the tie must resolve to syncsafe.
		data := buildFrame("TIT2", []byte{3, 'h', 'i'}, 7)
		require.Equal(t, uint(7), determineBPI(data, len(data)))
	})

	t.Run("normal sizes detected", func(t *testing.T) {
		// A 300-byte payload: the plain encoding {0,0,1,44} reads as
		// 172 when decoded syncsafe, desyncing the syncsafe walk.
		payload := make([]byte, 300)
		payload[1] = 'x'
		data := buildFrame("APIC", payload, 8)
		data = append(data, buildFrame("TIT2", []byte{3, 'h', 'i'}, 8)...)
		require.Equal(t, uint(8), determineBPI(data, len(data)))
	})

	t.Run("syncsafe sizes detected", func(t *testing.T) {
		payload := make([]byte, 300)
		payload[1] = 'x'
		data := buildFrame("APIC", payload, 7)
		data = append(data, buildFrame("TIT2", []byte{3, 'h', 'i'}, 7)...)
		require.Equal(t, uint(7), determineBPI(data, len(data)))
	})

	t.Run("empty region", func(t *testing.T) {
		require.Equal(t, uint(7), determineBPI(nil, 0))
	})
}

func TestValidFrameID(t *testing.T) {
	t.Parallel()

	require.True(t, validFrameID([]byte("TIT2")))
	require.True(t, validFrameID([]byte("PIC")))
	require.False(t, validFrameID([]byte("ti t")))
	require.False(t, validFrameID([]byte{0, 0, 0, 0}))
}
