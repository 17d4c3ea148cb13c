package compress

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Bzip2Codec implements the `bzip2`/`bz2` NRRD encoding.
//
// The standard library only ships a bzip2 reader, so this wraps
// dsnet/compress/bzip2, which provides both directions.
type Bzip2Codec struct {
	level int
}

var _ Codec = (*Bzip2Codec)(nil)

// NewBzip2Codec creates a bzip2 codec using the default compression level.
func NewBzip2Codec() Bzip2Codec {
	return Bzip2Codec{level: 6}
}

// NewBzip2CodecLevel creates a bzip2 codec using the given compression
// level (1-9).
func NewBzip2CodecLevel(level int) Bzip2Codec {
	return Bzip2Codec{level: level}
}

// Compress bzip2-compresses data at the codec's configured level.
func (c Bzip2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: c.level})
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

// Decompress inflates a bzip2 stream produced by Compress (or any conforming
// bzip2 writer, including the reference C implementation's).
func (c Bzip2Codec) Decompress(data []byte) ([]byte, error) {
	r, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
