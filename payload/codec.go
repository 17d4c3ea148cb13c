// Package payload implements the NRRD payload byte stream: locating its
// source bytes (attached tail, single sibling file, or an ordered list of
// sibling files), the line-skip/byte-skip pre-skip rules, the five
// encodings, and the optional per-file checksum report for multi-file
// detached reads.
package payload

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/nrrdgo/nrrd/compress"
	"github.com/nrrdgo/nrrd/endian"
	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/internal/pool"
	"github.com/nrrdgo/nrrd/scalar"
)

// DecodeElements turns encoded payload bytes into a tightly packed,
// host-native-endian buffer of exactly elementCount*elemSize bytes. The
// caller reinterprets the result according to typ (e.g. via encoding/binary
// or a slice conversion); DecodeElements stays at the byte level so it has
// no dependency on which Go numeric type the caller wants.
func DecodeElements(encoded []byte, enc scalar.Encoding, typ scalar.Type, elemSize int, elementCount int64, fileEngine endian.EndianEngine) ([]byte, error) {
	var raw []byte
	var err error

	switch enc {
	case scalar.Raw:
		raw = encoded
	case scalar.ASCII:
		raw, err = decodeASCII(encoded, typ, elemSize, elementCount)
	case scalar.Hex:
		raw, err = decodeHex(encoded)
	case scalar.Gzip, scalar.Bzip2:
		codec, cerr := compress.GetCodec(compressKindFor(enc))
		if cerr != nil {
			return nil, errs.New(errs.KindEncodingError, errs.ErrDecompressionFailed, cerr.Error())
		}
		raw, err = codec.Decompress(encoded)
	default:
		return nil, errs.New(errs.KindUnsupportedType, errs.ErrUnknownEncoding, "unrecognized encoding")
	}
	if err != nil {
		return nil, errs.New(errs.KindEncodingError, errs.ErrDecompressionFailed, err.Error())
	}

	want := elementCount * int64(elemSize)
	if int64(len(raw)) != want {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrShortRead, "decoded payload length does not match element count times element size")
	}

	// ASCII is decimal text with no endian-dependent byte layout; raw, hex
	// (which decodes to the raw byte layout) and the compressed streams
	// (which wrap a raw byte layout) need a possible swap.
	if enc != scalar.ASCII && typ.IsMultiByte() && !endian.CompareNativeEndian(fileEngine) {
		out := make([]byte, len(raw))
		copy(out, raw)
		endian.SwapInPlace(out, elemSize)
		return out, nil
	}

	return raw, nil
}

// EncodeElements is DecodeElements's inverse: it takes a tightly packed,
// host-native-endian buffer and produces the bytes written to the payload
// stream for the requested encoding. Raw output is always written in the
// host's native endianness, per this implementation's write policy. The
// default compression level is used for gzip/bzip2; see
// EncodeElementsLevel to override it.
func EncodeElements(hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize int) ([]byte, error) {
	return EncodeElementsLevel(hostData, enc, typ, elemSize, 0)
}

// EncodeElementsLevel is EncodeElements with an explicit gzip/bzip2
// compression level; level 0 uses each codec's own default and has no
// effect on the uncompressed encodings.
func EncodeElementsLevel(hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize, level int) ([]byte, error) {
	switch enc {
	case scalar.Raw:
		out := make([]byte, len(hostData))
		copy(out, hostData)
		return out, nil
	case scalar.ASCII:
		return encodeASCII(hostData, typ, elemSize)
	case scalar.Hex:
		return []byte(hex.EncodeToString(hostData)), nil
	case scalar.Gzip, scalar.Bzip2:
		codec, err := codecFor(enc, level)
		if err != nil {
			return nil, errs.New(errs.KindEncodingError, errs.ErrDecompressionFailed, err.Error())
		}
		return codec.Compress(hostData)
	default:
		return nil, errs.New(errs.KindUnsupportedType, errs.ErrUnknownEncoding, "unrecognized encoding")
	}
}

func codecFor(enc scalar.Encoding, level int) (compress.Codec, error) {
	kind := compressKindFor(enc)
	if level == 0 {
		return compress.GetCodec(kind)
	}
	return compress.CreateCodecLevel(kind, level)
}

func compressKindFor(e scalar.Encoding) compress.Kind {
	if e == scalar.Bzip2 {
		return compress.KindBzip2
	}
	return compress.KindGzip
}

// decodeASCII parses whitespace-separated decimal tokens, one per element,
// and packs them into host-native-endian bytes.
func decodeASCII(text []byte, typ scalar.Type, elemSize int, elementCount int64) ([]byte, error) {
	fields := strings.Fields(string(text))
	if int64(len(fields)) != elementCount {
		return nil, errs.New(errs.KindEncodingError, errs.ErrTokenCountMismatch, "ascii token count does not match element count")
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	tmp := make([]byte, elemSize)
	isFloat := typ == scalar.Float32 || typ == scalar.Float64

	for _, tok := range fields {
		if isFloat {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errs.New(errs.KindEncodingError, errs.ErrBadDouble, err.Error())
			}
			putFloat(tmp, typ, v)
		} else {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, errs.New(errs.KindEncodingError, errs.ErrBadInteger, err.Error())
			}
			putInt(tmp, typ, v)
		}
		buf.MustWrite(tmp)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func encodeASCII(hostData []byte, typ scalar.Type, elemSize int) ([]byte, error) {
	if elemSize == 0 || len(hostData)%elemSize != 0 {
		return nil, errs.New(errs.KindEncodingError, errs.ErrShortRead, "host buffer length is not a multiple of the element size")
	}

	n := len(hostData) / elemSize
	parts, cleanup := pool.GetStringSlice(n)
	defer cleanup()
	isFloat := typ == scalar.Float32 || typ == scalar.Float64

	for i := 0; i < n; i++ {
		chunk := hostData[i*elemSize : (i+1)*elemSize]
		if isFloat {
			parts[i] = strconv.FormatFloat(getFloat(chunk, typ), 'g', -1, 64)
		} else {
			parts[i] = strconv.FormatInt(getInt(chunk, typ), 10)
		}
	}

	return []byte(strings.Join(parts, " ")), nil
}

func decodeHex(text []byte) ([]byte, error) {
	clean := make([]byte, 0, len(text))
	for _, b := range text {
		switch {
		case b == ' ' || b == '\n' || b == '\r' || b == '\t':
			continue
		default:
			clean = append(clean, b)
		}
	}

	out, err := hex.DecodeString(string(clean))
	if err != nil {
		return nil, errs.New(errs.KindEncodingError, errs.ErrDecompressionFailed, err.Error())
	}
	return out, nil
}

func hostEngine() endian.EndianEngine {
	if endian.IsNativeBigEndian() {
		return endian.GetBigEndianEngine()
	}
	return endian.GetLittleEndianEngine()
}

func putInt(dst []byte, typ scalar.Type, v int64) {
	eng := hostEngine()
	switch typ.Size() {
	case 1:
		dst[0] = byte(v)
	case 2:
		eng.PutUint16(dst, uint16(v))
	case 4:
		eng.PutUint32(dst, uint32(v))
	case 8:
		eng.PutUint64(dst, uint64(v))
	}
}

func putFloat(dst []byte, typ scalar.Type, v float64) {
	eng := hostEngine()
	if typ == scalar.Float32 {
		eng.PutUint32(dst, math.Float32bits(float32(v)))
		return
	}
	eng.PutUint64(dst, math.Float64bits(v))
}

func getInt(src []byte, typ scalar.Type) int64 {
	eng := hostEngine()
	switch typ {
	case scalar.Int8:
		return int64(int8(src[0]))
	case scalar.Uint8:
		return int64(src[0])
	case scalar.Int16:
		return int64(int16(eng.Uint16(src)))
	case scalar.Uint16:
		return int64(eng.Uint16(src))
	case scalar.Int32:
		return int64(int32(eng.Uint32(src)))
	case scalar.Uint32:
		return int64(eng.Uint32(src))
	case scalar.Int64:
		return int64(eng.Uint64(src))
	case scalar.Uint64:
		return int64(eng.Uint64(src))
	default:
		return 0
	}
}

func getFloat(src []byte, typ scalar.Type) float64 {
	eng := hostEngine()
	if typ == scalar.Float32 {
		return float64(math.Float32frombits(eng.Uint32(src)))
	}
	return math.Float64frombits(eng.Uint64(src))
}
