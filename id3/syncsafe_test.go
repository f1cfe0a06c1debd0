package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBitPadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		bits uint
		want uint32
	}{
		{"syncsafe zero", []byte{0, 0, 0, 0}, 7, 0},
		{"syncsafe 257", []byte{0, 0, 2, 1}, 7, 257},
		{"syncsafe max", []byte{0x7F, 0x7F, 0x7F, 0x7F}, 7, 0x0FFFFFFF},
		{"syncsafe ignores high bit", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 7, 0x0FFFFFFF},
		{"normal 257", []byte{0, 0, 1, 1}, 8, 257},
		{"normal max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 8, 0xFFFFFFFF},
		{"three byte normal", []byte{0x01, 0x00, 0x00}, 8, 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeBitPadded(tt.data, tt.bits))
		})
	}
}

func TestEncodeBitPadded(t *testing.T) {
	t.Parallel()

	require.Equal(t, []byte{0, 0, 2, 1}, EncodeBitPadded(257, 4, 7))
	require.Equal(t, []byte{0, 0, 1, 1}, EncodeBitPadded(257, 4, 8))
	require.Equal(t, []byte{0x7F, 0x7F, 0x7F, 0x7F}, EncodeBitPadded(0x0FFFFFFF, 4, 7))
}

func TestBitPaddedRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []uint32{0, 1, 127, 128, 257, 0xFFFF, 0x0FFFFFFF} {
		require.Equal(t, v, DecodeSyncsafe(EncodeBitPadded(v, 4, 7)))
		require.Equal(t, v, DecodeNormal(EncodeBitPadded(v, 4, 8)))
	}
}
