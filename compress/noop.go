package compress

// NoOpCodec is the codec for NRRD's uncompressed encodings (raw, ascii, hex).
//
// Performance characteristics:
//   - Compression: 0 ns/byte (returns the input slice, no copy)
//   - Decompression: 0 ns/byte (returns the input slice, no copy)
//   - Compression ratio: 1.0 (no size reduction)
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that passes data through unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
