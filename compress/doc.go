// Package compress provides the gzip and bzip2 stream codecs NRRD's
// `encoding` field can select, plus a no-op codec for the uncompressed
// encodings (raw, ascii, hex).
//
// # Overview
//
// NRRD's `encoding` header field names both the byte layout and, for two of
// its values, a wrapping compression stream applied over the raw byte
// layout:
//
//   - raw, ascii/txt/text, hex: no compression, handled by a NoOpCodec.
//   - gzip/gz: DEFLATE via gzip framing.
//   - bzip2/bz2: the bzip2 block-sorting stream.
//
// The package defines three small interfaces so the payload codec can treat
// all five encodings uniformly after dispatching on the enum:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.KindGzip)
//	compressed, err := codec.Compress(rawBytes)
//	original, err := codec.Decompress(compressed)
package compress
