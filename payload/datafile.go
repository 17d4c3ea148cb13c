package payload

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nrrdgo/nrrd/errs"
)

// FileSpec names one sibling file contributing payload bytes, in the
// order its bytes are concatenated into the element stream.
type FileSpec struct {
	Path string
}

// ResolveDataFiles interprets a header's `data file` field value into an
// ordered list of sibling paths relative to headerDir.
//
// Two forms are supported: a single bare filename, and the templated
// range form "<format> <min> <max> <step>" (e.g. "slice.%04d.raw 0 99 1"),
// which expands to one file per value of i from min to max stepping by
// step, in that order. The "LIST" manifest form (filenames listed one per
// subsequent header line) is a recognized NRRD feature this implementation
// does not support, since it would require the header reader to keep
// consuming lines past the field grammar this package's tokenizer expects.
func ResolveDataFiles(value, headerDir string) ([]FileSpec, error) {
	value = strings.TrimSpace(value)

	if value == "LIST" || strings.HasPrefix(value, "LIST ") {
		return nil, errs.New(errs.KindUnsupportedType, errs.ErrUnsupportedDataFile, "the LIST data-file manifest form is not supported")
	}

	fields := strings.Fields(value)
	if len(fields) == 1 {
		return []FileSpec{{Path: filepath.Join(headerDir, fields[0])}}, nil
	}
	if len(fields) < 4 {
		return nil, errs.New(errs.KindMalformedHeader, errs.ErrMalformedLine, "templated data file needs <format> <min> <max> <step>")
	}

	format := fields[0]
	min, e1 := strconv.Atoi(fields[1])
	max, e2 := strconv.Atoi(fields[2])
	step, e3 := strconv.Atoi(fields[3])
	if e1 != nil || e2 != nil || e3 != nil || step == 0 {
		return nil, errs.New(errs.KindMalformedHeader, errs.ErrMalformedLine, "templated data file min/max/step must be integers and step must be nonzero")
	}

	var specs []FileSpec
	if step > 0 {
		for i := min; i <= max; i += step {
			specs = append(specs, FileSpec{Path: filepath.Join(headerDir, fmt.Sprintf(format, i))})
		}
	} else {
		for i := min; i >= max; i += step {
			specs = append(specs, FileSpec{Path: filepath.Join(headerDir, fmt.Sprintf(format, i))})
		}
	}

	return specs, nil
}
