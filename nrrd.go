// Package nrrd reads and writes the NRRD (Nearly Raw Raster Data)
// scientific file format: a short ASCII header describing an N-dimensional
// array of scalar elements, followed by the array's raw bytes, either
// appended to the same stream (attached) or stored in one or more sibling
// files (detached).
//
// # Basic Usage
//
// Reading an attached file:
//
//	import "github.com/nrrdgo/nrrd"
//
//	f, _ := os.Open("volume.nrrd")
//	defer f.Close()
//
//	vol, err := nrrd.Read(f, nrrd.Config{})
//	if err != nil {
//	    // vol is nil; err is an *errs.Error with a Kind to branch on
//	}
//	fmt.Println(vol.Type, vol.Sizes)
//
// Reading a detached header, whose `data file` field names one or more
// sibling files relative to the header's own directory:
//
//	vol, err := nrrd.ReadFile("volume.nhdr", nrrd.Config{})
//
// Writing an attached file:
//
//	err := nrrd.Write(w, nrrd.NewVolume(scalar.Float32, []int64{256, 256, 124}, scalar.Gzip, data), nrrd.Config{})
//
// # Package Structure
//
// This package is a thin orchestrator over five lower-level packages, each
// usable on its own for callers that need finer control:
//
//   - scalar: the closed Type and Encoding enumerations.
//   - field: the header value shapes (Value/Kind) and their parse/format rules.
//   - header: the header line grammar, duplicate-field policy, and canonical write order.
//   - geometry: the index_order reshape between on-disk and caller buffer layout.
//   - payload: byte-source resolution, pre-skip, the five encodings, and detached multi-file assembly.
package nrrd

import (
	"log/slog"

	"github.com/nrrdgo/nrrd/field"
	"github.com/nrrdgo/nrrd/geometry"
	"github.com/nrrdgo/nrrd/header"
	"github.com/nrrdgo/nrrd/payload"
	"github.com/nrrdgo/nrrd/scalar"
)

// Config controls both reading and writing.
type Config struct {
	// IndexOrder selects how Volume.Data is arranged relative to Sizes.
	// Defaults to geometry.FastestFirst, matching the on-disk order.
	IndexOrder geometry.IndexOrder

	// AllowDuplicateField, CustomFieldMap, SpaceDirectionsAsVectorList,
	// and Logger are forwarded to header.Config verbatim; see its docs.
	AllowDuplicateField         bool
	CustomFieldMap              map[string]field.Kind
	SpaceDirectionsAsVectorList bool
	Logger                      *slog.Logger

	// ReportChecksums, when true and the payload is a detached read (one or
	// more sibling files), populates Volume.Report with one checksum per
	// sibling file.
	ReportChecksums bool

	// CompressionLevel, when nonzero, overrides the default compression
	// level used for gzip/bzip2 encoding on write.
	CompressionLevel int
}

func (c Config) indexOrder() geometry.IndexOrder {
	if c.IndexOrder == 0 {
		return geometry.FastestFirst
	}
	return c.IndexOrder
}

func (c Config) headerConfig() header.Config {
	return header.Config{
		AllowDuplicateField:         c.AllowDuplicateField,
		CustomFieldMap:              c.CustomFieldMap,
		SpaceDirectionsAsVectorList: c.SpaceDirectionsAsVectorList,
		Logger:                      c.Logger,
	}
}

// Volume is a decoded (or to-be-encoded) NRRD array plus the parsed header
// it came from or will be derived from.
type Volume struct {
	// Header is the full set of parsed fields, including any beyond the
	// core type/dimension/sizes/encoding this package interprets itself.
	// Nil on a freshly built Volume until it has been read or written.
	Header *header.Header

	Type  scalar.Type
	Sizes []int64

	// Encoding selects the payload encoding to write. Left at its zero
	// value, gzip is used, matching this package's write default.
	Encoding scalar.Encoding

	// Data holds the decoded elements as tightly packed, host-native-endian
	// bytes, arranged per Config.IndexOrder.
	Data []byte

	// Report carries per-file checksums when Config.ReportChecksums was
	// set and the payload came from a detached read (one or more files).
	Report *payload.ReadReport
}

// NewVolume builds a Volume ready to be passed to Write or WriteDetached.
func NewVolume(typ scalar.Type, sizes []int64, encoding scalar.Encoding, data []byte) *Volume {
	return &Volume{Type: typ, Sizes: sizes, Encoding: encoding, Data: data}
}

// elementSize returns the byte width of one scalar element, Type.Size().
// It is 0 for Block; a block's width is taken from the header's "block
// size" field only on read.
func (v *Volume) elementSize() int {
	return v.Type.Size()
}

// encoding resolves the Encoding to write: v.Encoding verbatim, or gzip
// when the caller left it unset (the zero value, since scalar.Raw is 1).
func (v *Volume) encoding() scalar.Encoding {
	if v.Encoding == 0 {
		return scalar.Gzip
	}
	return v.Encoding
}
