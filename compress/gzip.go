package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements the `gzip`/`gz` NRRD encoding: a gzip-framed DEFLATE
// stream wrapped around the raw payload bytes.
//
// Uses klauspost/compress's gzip implementation, a drop-in replacement for
// the standard library package with a faster decoder.
type GzipCodec struct {
	level int
}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a gzip codec using the default compression level.
func NewGzipCodec() GzipCodec {
	return GzipCodec{level: gzip.DefaultCompression}
}

// NewGzipCodecLevel creates a gzip codec using the given compression level,
// per gzip.NewWriterLevel's accepted range.
func NewGzipCodecLevel(level int) GzipCodec {
	return GzipCodec{level: level}
}

// Compress gzip-compresses data at the codec's configured level.
func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a gzip stream produced by Compress (or any conforming
// gzip writer).
func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
