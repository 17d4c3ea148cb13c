package payload

import (
	"bufio"
	"io"
	"os"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/scalar"
)

// WriteAttached encodes hostData per enc/typ and writes it to w, intended
// to follow immediately after the header's blank-line terminator.
func WriteAttached(w io.Writer, hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize int) error {
	return WriteAttachedLevel(w, hostData, enc, typ, elemSize, 0)
}

// WriteAttachedLevel is WriteAttached with an explicit gzip/bzip2
// compression level.
func WriteAttachedLevel(w io.Writer, hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize, level int) error {
	encoded, err := EncodeElementsLevel(hostData, enc, typ, elemSize, level)
	if err != nil {
		return err
	}
	if _, err := w.Write(encoded); err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}
	return nil
}

// WriteDetached encodes hostData and writes it to a single sibling data
// file at path. Multi-file templated writes are not implemented: nothing
// in this implementation's scope needs to re-split a single in-memory
// buffer across a caller-chosen file count, so callers that want multiple
// sibling files write one FileSpec's worth via WriteDetached per file.
func WriteDetached(path string, hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize int) error {
	return WriteDetachedLevel(path, hostData, enc, typ, elemSize, 0)
}

// WriteDetachedLevel is WriteDetached with an explicit gzip/bzip2
// compression level.
func WriteDetachedLevel(path string, hostData []byte, enc scalar.Encoding, typ scalar.Type, elemSize, level int) error {
	encoded, err := EncodeElementsLevel(hostData, enc, typ, elemSize, level)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(encoded); err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}
	if err := bw.Flush(); err != nil {
		return errs.New(errs.KindIOError, nil, err.Error())
	}
	return nil
}
