package payload

import (
	"bufio"
	"io"
	"os"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/integrity"
	"github.com/nrrdgo/nrrd/scalar"
)

// ReadAttached reads the payload from the tail of the header stream
// itself, applying line skip and byte skip before returning the remaining
// bytes.
func ReadAttached(r io.Reader, lineSkip, byteSkip int64) ([]byte, error) {
	br := bufio.NewReader(r)
	if err := SkipLines(br, lineSkip); err != nil {
		return nil, err
	}
	if byteSkip == -1 {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrInvalidByteSkip, "byte skip of -1 requires a seekable detached data file")
	}
	if err := DiscardBytes(br, byteSkip); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, errs.New(errs.KindIOError, errs.ErrShortRead, err.Error())
	}
	return data, nil
}

// ReadDetached reads and concatenates the payload from an ordered list of
// sibling files, applying line skip and byte skip to each in turn. When
// acc is non-nil, each file's contribution is hashed and recorded for the
// caller's checksum report.
//
// expectedPerFileBytes is only consulted when byteSkip is -1, which this
// implementation only supports for a single detached data file: with
// several sibling files there is no single unambiguous "end" to skip back
// from.
func ReadDetached(files []FileSpec, lineSkip, byteSkip int64, enc scalar.Encoding, expectedPerFileBytes []int64, acc *integrity.Accumulator) ([]byte, error) {
	if byteSkip == -1 && len(files) != 1 {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrInvalidByteSkip, "byte skip of -1 is only supported for a single detached data file")
	}

	var out []byte
	for i, fs := range files {
		data, err := readOneDetachedFile(fs, lineSkip, byteSkip, enc, perFileExpectation(expectedPerFileBytes, i), acc)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}

	return out, nil
}

func perFileExpectation(expected []int64, i int) int64 {
	if i < len(expected) {
		return expected[i]
	}
	return 0
}

func readOneDetachedFile(fs FileSpec, lineSkip, byteSkip int64, enc scalar.Encoding, expectedBytes int64, acc *integrity.Accumulator) ([]byte, error) {
	f, err := os.Open(fs.Path)
	if err != nil {
		return nil, errs.New(errs.KindIOError, nil, err.Error())
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if err := SkipLines(br, lineSkip); err != nil {
		return nil, err
	}

	effSkip := byteSkip
	if byteSkip == -1 {
		info, serr := f.Stat()
		if serr != nil {
			return nil, errs.New(errs.KindIOError, nil, serr.Error())
		}
		effSkip, err = ResolveByteSkip(byteSkip, enc, info.Size(), expectedBytes)
		if err != nil {
			return nil, err
		}
	}
	if err := DiscardBytes(br, effSkip); err != nil {
		return nil, err
	}

	if acc != nil {
		acc.Begin(fs.Path)
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, errs.New(errs.KindIOError, errs.ErrShortRead, err.Error())
	}

	if acc != nil {
		acc.Write(data)
		acc.End()
	}

	return data, nil
}
