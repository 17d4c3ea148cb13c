package nrrd

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/nrrdgo/nrrd/endian"
	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/field"
	"github.com/nrrdgo/nrrd/geometry"
	"github.com/nrrdgo/nrrd/header"
	"github.com/nrrdgo/nrrd/payload"
	"github.com/nrrdgo/nrrd/scalar"
)

// Write validates v and writes it as an attached stream: header, a blank
// line, then the encoded payload, all to w.
func Write(w io.Writer, v *Volume, cfg Config) error {
	hostData, h, err := prepareForWrite(v, cfg, "")
	if err != nil {
		return err
	}

	if err := header.Write(w, h); err != nil {
		return err
	}
	return payload.WriteAttachedLevel(w, hostData, v.encoding(), v.Type, v.elementSize(), cfg.CompressionLevel)
}

// WriteDetached writes v as a detached header/data pair derived from path.
//
// If path has extension ".nhdr", the payload goes to a sibling file in the
// same directory named after path's base name, with an extension chosen
// from v's encoding (".raw", ".raw.gz", ".raw.bz2", or ".txt" for ascii);
// the header's `data file` field records that sibling's basename. If path
// has extension ".nrrd", the header is written to "<base>.nhdr" and the
// payload to "<base>.nrrd" instead, so both files share path's base name.
// Any other extension is treated as a header path, the same as ".nhdr".
//
// Only a single detached file is produced; the templated multi-file range
// form is a read-only feature of this package (see payload.WriteDetached).
func WriteDetached(path string, v *Volume, cfg Config) error {
	headerPath, dataPath := detachedPaths(path, v.encoding())

	rel, err := filepath.Rel(filepath.Dir(headerPath), dataPath)
	if err != nil {
		return errs.New(errs.KindIOError, err, err.Error())
	}

	hostData, h, err := prepareForWrite(v, cfg, rel)
	if err != nil {
		return err
	}

	hf, err := createFile(headerPath)
	if err != nil {
		return err
	}
	defer hf.Close()
	if err := header.Write(hf, h); err != nil {
		return err
	}

	return payload.WriteDetachedLevel(dataPath, hostData, v.encoding(), v.Type, v.elementSize(), cfg.CompressionLevel)
}

// detachedPaths derives the header and data file paths WriteDetached writes
// to, per this package's detached layout policy.
func detachedPaths(path string, enc scalar.Encoding) (headerPath, dataPath string) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	if ext == ".nrrd" {
		return base + ".nhdr", base + ".nrrd"
	}
	return path, base + dataExtension(enc)
}

// dataExtension picks the sibling data file's extension for enc. hex has
// no extension named in this package's layout policy and falls back to
// ".raw", same as an unrecognized encoding.
func dataExtension(enc scalar.Encoding) string {
	switch enc {
	case scalar.Gzip:
		return ".raw.gz"
	case scalar.Bzip2:
		return ".raw.bz2"
	case scalar.ASCII:
		return ".txt"
	default:
		return ".raw"
	}
}

// prepareForWrite validates v, reorders its Data back to on-disk
// (FastestFirst) order, and builds the Header to write. dataFileRel is the
// `data file` field's value, or "" for an attached write.
func prepareForWrite(v *Volume, cfg Config, dataFileRel string) (hostData []byte, h *header.Header, err error) {
	if err := geometry.CheckSizes(v.Sizes); err != nil {
		return nil, nil, err
	}
	elemSize := v.elementSize()
	if err := geometry.ValidateBufferShape(len(v.Data), v.Sizes, elemSize); err != nil {
		return nil, nil, err
	}

	hostData, err = geometry.ToDiskOrder(v.Data, v.Sizes, cfg.indexOrder(), elemSize)
	if err != nil {
		return nil, nil, err
	}

	h = buildHeaderForWrite(v, dataFileRel)
	return hostData, h, nil
}

// buildHeaderForWrite derives the core fields (type, dimension, sizes,
// encoding, endian, data file) from v, then carries over any additional
// entries the caller pre-populated on v.Header (space, units, content, and
// so on) so a read-modify-write round trip doesn't lose them.
func buildHeaderForWrite(v *Volume, dataFileRel string) *header.Header {
	h := header.New(4)

	h.Set("type", field.NewString(v.Type.String()))
	h.Set("dimension", field.NewInt(int64(len(v.Sizes))))
	h.Set("sizes", field.NewIntSeq(v.Sizes))
	h.Set("encoding", field.NewString(v.encoding().String()))

	if v.Type.IsMultiByte() {
		name := "little"
		if endian.IsNativeBigEndian() {
			name = "big"
		}
		h.Set("endian", field.NewString(name))
	}

	if dataFileRel != "" {
		h.Set("data file", field.NewString(dataFileRel))
	}

	if v.Header != nil {
		for _, e := range v.Header.Entries {
			switch e.Name {
			case "type", "dimension", "sizes", "encoding", "endian", "data file":
				continue
			}
			if e.KeyVal {
				h.SetKeyValue(e.Name, e.Value)
			} else {
				h.Set(e.Name, e.Value)
			}
		}
	}

	return h
}
