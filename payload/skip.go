package payload

import (
	"bufio"
	"io"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/scalar"
)

// SkipLines consumes lineSkip newline-terminated lines from r before the
// element stream begins.
func SkipLines(r *bufio.Reader, lineSkip int64) error {
	for i := int64(0); i < lineSkip; i++ {
		if _, err := r.ReadString('\n'); err != nil {
			return errs.New(errs.KindIOError, errs.ErrShortRead, "line skip ran past end of input")
		}
	}
	return nil
}

// ResolveByteSkip resolves the effective number of leading bytes to
// discard. A byteSkip of -1 means "position so exactly expectedPayloadBytes
// trailing bytes remain", valid only for raw encoding against a source of
// known total size.
func ResolveByteSkip(byteSkip int64, enc scalar.Encoding, sourceSize, expectedPayloadBytes int64) (int64, error) {
	if byteSkip >= 0 {
		return byteSkip, nil
	}
	if byteSkip != -1 {
		return 0, errs.New(errs.KindInvariantViolation, errs.ErrInvalidByteSkip, "byte skip must be non-negative, or exactly -1")
	}
	if enc != scalar.Raw {
		return 0, errs.New(errs.KindInvariantViolation, errs.ErrInvalidByteSkip, "byte skip of -1 is only legal with raw encoding")
	}

	skip := sourceSize - expectedPayloadBytes
	if skip < 0 {
		return 0, errs.New(errs.KindInvariantViolation, errs.ErrShortRead, "source is smaller than the expected raw payload size")
	}
	return skip, nil
}

// DiscardBytes reads and discards n leading bytes from r.
func DiscardBytes(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return errs.New(errs.KindIOError, errs.ErrShortRead, "byte skip ran past end of input")
	}
	return nil
}
