package id3

// Syncsafe ("bit-padded") integers appear throughout ID3v2: the header
// size is always syncsafe (7 significant bits per byte, high bit clear),
// while frame sizes are syncsafe in v2.4 and plain big-endian in v2.3.
// Both widths share one codec parameterised on bits-per-byte.

// DecodeBitPadded decodes a big-endian integer where each byte
// contributes its low `bits` bits. Use 7 for syncsafe, 8 for normal.
func DecodeBitPadded(data []byte, bits uint) uint32 {
	mask := uint32(1)<<bits - 1
	var v uint32
	for _, b := range data {
		v = v<<bits | uint32(b)&mask
	}
	return v
}

// DecodeSyncsafe decodes a standard syncsafe integer (7 bits per byte).
func DecodeSyncsafe(data []byte) uint32 {
	return DecodeBitPadded(data, 7)
}

// DecodeNormal decodes a plain big-endian integer (8 bits per byte).
func DecodeNormal(data []byte) uint32 {
	return DecodeBitPadded(data, 8)
}

// EncodeBitPadded encodes value into width bytes, `bits` bits per byte.
func EncodeBitPadded(value uint32, width int, bits uint) []byte {
	mask := uint32(1)<<bits - 1
	out := make([]byte, width)
	v := value
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v & mask)
		v >>= bits
	}
	return out
}
