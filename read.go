package nrrd

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/nrrdgo/nrrd/endian"
	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/geometry"
	"github.com/nrrdgo/nrrd/header"
	"github.com/nrrdgo/nrrd/integrity"
	"github.com/nrrdgo/nrrd/payload"
	"github.com/nrrdgo/nrrd/scalar"
)

// coreFields is what this package itself needs out of a parsed Header to
// locate and decode the payload; everything else in Header.Entries passes
// through untouched for the caller to consult.
type coreFields struct {
	typ        scalar.Type
	sizes      []int64
	encoding   scalar.Encoding
	engine     endian.EndianEngine
	lineSkip   int64
	byteSkip   int64
	blockSize  int64
	dataFile   string
	hasDataFile bool
}

func extractCoreFields(h *header.Header) (coreFields, error) {
	var cf coreFields

	typVal, ok := h.Get("type")
	if !ok {
		return cf, errs.New(errs.KindMalformedHeader, errs.ErrMissingMagic, "header has no type field")
	}
	typ, ok := scalar.Parse(typVal.Str())
	if !ok {
		return cf, errs.NewField(errs.KindUnsupportedType, errs.ErrUnknownScalarType, "type", "unrecognized scalar type name")
	}
	cf.typ = typ

	dimVal, hasDim := h.Get("dimension")
	sizesVal, hasSizes := h.Get("sizes")
	if !hasSizes {
		return cf, errs.New(errs.KindMalformedHeader, errs.ErrDimensionMismatch, "header has no sizes field")
	}
	cf.sizes = sizesVal.IntSeq()
	if hasDim && int(dimVal.Int()) != len(cf.sizes) {
		return cf, errs.New(errs.KindInvariantViolation, errs.ErrDimensionMismatch, "dimension does not match length of sizes")
	}
	if err := geometry.CheckSizes(cf.sizes); err != nil {
		return cf, err
	}

	if typ == scalar.Block {
		bsVal, ok := h.Get("block size")
		if !ok {
			return cf, errs.New(errs.KindInvariantViolation, errs.ErrUnsupportedScalarType, "block type requires a block size field")
		}
		cf.blockSize = bsVal.Int()
	}

	encVal, ok := h.Get("encoding")
	if !ok {
		return cf, errs.New(errs.KindMalformedHeader, errs.ErrUnknownEncoding, "header has no encoding field")
	}
	enc, ok := scalar.ParseEncoding(encVal.Str())
	if !ok {
		return cf, errs.NewField(errs.KindEncodingError, errs.ErrUnknownEncoding, "encoding", "unrecognized encoding name")
	}
	cf.encoding = enc

	cf.engine = endian.GetLittleEndianEngine()
	if engVal, ok := h.Get("endian"); ok {
		switch engVal.Str() {
		case "little":
			cf.engine = endian.GetLittleEndianEngine()
		case "big":
			cf.engine = endian.GetBigEndianEngine()
		default:
			return cf, errs.NewField(errs.KindInvariantViolation, errs.ErrInvalidEndianValue, "endian", "must be little or big")
		}
	} else if typ.IsMultiByte() && enc == scalar.Raw {
		return cf, errs.New(errs.KindInvariantViolation, errs.ErrMissingEndian, "endian field required for multi-byte scalar type with raw encoding")
	}

	if v, ok := h.Get("line skip"); ok {
		cf.lineSkip = v.Int()
	}
	cf.byteSkip = 0
	if v, ok := h.Get("byte skip"); ok {
		cf.byteSkip = v.Int()
	}

	if v, ok := h.Get("data file"); ok {
		cf.dataFile = v.Str()
		cf.hasDataFile = true
	}

	return cf, nil
}

func (cf coreFields) elemSize() int {
	if cf.typ == scalar.Block {
		return int(cf.blockSize)
	}
	return cf.typ.Size()
}

// Read parses an attached NRRD stream: header followed immediately by its
// payload in the same reader. It returns an error if the header declares a
// `data file` field, since resolving sibling paths requires the directory
// ReadFile is given.
func Read(r io.Reader, cfg Config) (*Volume, error) {
	br := bufio.NewReader(r)

	h, err := header.Parse(br, cfg.headerConfig())
	if err != nil {
		return nil, err
	}

	cf, err := extractCoreFields(h)
	if err != nil {
		return nil, err
	}
	if cf.hasDataFile {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrUnsupportedDataFile, "use ReadFile to resolve a detached data file field")
	}

	rawBytes, err := payload.ReadAttached(br, cf.lineSkip, cf.byteSkip)
	if err != nil {
		return nil, err
	}

	return decodeVolume(h, cf, rawBytes, nil, cfg)
}

// ReadFile parses a header from path and resolves its payload, whether
// attached (no `data file` field) or detached (one or more sibling files
// named relative to path's own directory).
func ReadFile(path string, cfg Config) (*Volume, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)

	h, err := header.Parse(br, cfg.headerConfig())
	if err != nil {
		return nil, err
	}

	cf, err := extractCoreFields(h)
	if err != nil {
		return nil, err
	}

	if !cf.hasDataFile {
		rawBytes, err := payload.ReadAttached(br, cf.lineSkip, cf.byteSkip)
		if err != nil {
			return nil, err
		}
		return decodeVolume(h, cf, rawBytes, nil, cfg)
	}

	headerDir := filepath.Dir(path)
	files, err := payload.ResolveDataFiles(cf.dataFile, headerDir)
	if err != nil {
		return nil, err
	}

	var acc *integrity.Accumulator
	if cfg.ReportChecksums {
		acc = integrity.NewAccumulator()
	}

	totalBytes := geometry.ElementCount(cf.sizes) * int64(cf.elemSize())
	perFile := splitAcrossFiles(totalBytes, len(files), cf.encoding)

	rawBytes, err := payload.ReadDetached(files, cf.lineSkip, cf.byteSkip, cf.encoding, perFile, acc)
	if err != nil {
		return nil, err
	}

	var report *payload.ReadReport
	if acc != nil {
		report = &payload.ReadReport{FileChecksums: acc.Checksums()}
	}

	return decodeVolume(h, cf, rawBytes, report, cfg)
}

// splitAcrossFiles reports the expected raw-encoded byte length of each
// detached sibling file. Uncompressed encodings split the total evenly
// across files (templated ranges always produce same-shaped siblings);
// compressed encodings can't be sized up front, so each entry is left at 0.
// source.go's perFileExpectation returns these entries as-is; they are only
// used for a byte skip of -1, which is accepted for raw encoding only.
func splitAcrossFiles(totalElementBytes int64, n int, enc scalar.Encoding) []int64 {
	out := make([]int64, n)
	if enc.IsCompressed() || n == 0 {
		return out
	}
	per := totalElementBytes / int64(n)
	for i := range out {
		out[i] = per
	}
	return out
}

func decodeVolume(h *header.Header, cf coreFields, rawBytes []byte, report *payload.ReadReport, cfg Config) (*Volume, error) {
	elemSize := cf.elemSize()
	elementCount := geometry.ElementCount(cf.sizes)

	hostData, err := payload.DecodeElements(rawBytes, cf.encoding, cf.typ, elemSize, elementCount, cf.engine)
	if err != nil {
		return nil, err
	}

	ordered, err := geometry.Reorder(hostData, cf.sizes, cfg.indexOrder(), elemSize)
	if err != nil {
		return nil, err
	}

	return &Volume{
		Header:   h,
		Type:     cf.typ,
		Sizes:    cf.sizes,
		Encoding: cf.encoding,
		Data:     ordered,
		Report:   report,
	}, nil
}
