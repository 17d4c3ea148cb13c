package compress

import "fmt"

// Compressor compresses a byte stream.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte stream produced by the matching Compressor.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the input is corrupted or was produced by a
	// different compression format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given Kind.
func CreateCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCodec(), nil
	case KindGzip:
		return NewGzipCodec(), nil
	case KindBzip2:
		return NewBzip2Codec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid kind: %s", kind)
	}
}

var builtinCodecs = map[Kind]Codec{
	KindNone:  NewNoOpCodec(),
	KindGzip:  NewGzipCodec(),
	KindBzip2: NewBzip2Codec(),
}

// GetCodec retrieves a built-in Codec for the specified Kind.
func GetCodec(kind Kind) (Codec, error) {
	if codec, ok := builtinCodecs[kind]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported kind: %s", kind)
}

// CreateCodecLevel is CreateCodec with an explicit compression level; it
// has no effect on KindNone.
func CreateCodecLevel(kind Kind, level int) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCodec(), nil
	case KindGzip:
		return NewGzipCodecLevel(level), nil
	case KindBzip2:
		return NewBzip2CodecLevel(level), nil
	default:
		return nil, fmt.Errorf("compress: invalid kind: %s", kind)
	}
}
