package header

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/field"
)

const (
	magicPrefix = "NRRD"
	minVersion  = 1
	maxVersion  = 5
)

// Parse reads a textual header from r: the magic/version line, field and
// comment lines, and the terminating blank line. The blank line itself is
// consumed; r is left positioned at the first byte of the payload.
//
// r must be a *bufio.Reader, not a plain io.Reader, specifically so that
// property holds: a bufio.Scanner (or any reader that pulls ahead in
// chunks) would buffer past the blank line into the payload with no way
// to hand those bytes back, corrupting an attached read. Reading
// line-by-line via ReadString off the same *bufio.Reader the caller keeps
// consumes exactly the header and nothing more.
func Parse(r *bufio.Reader, cfg Config) (*Header, error) {
	magicLine, err := readLine(r)
	if err != nil && magicLine == "" {
		return nil, errs.New(errs.KindMalformedHeader, errs.ErrMissingMagic, "input is empty")
	}

	version, err := parseMagicLine(magicLine)
	if err != nil {
		return nil, err
	}

	registry := field.NewRegistry(cfg.spaceDirectionsShape(), cfg.CustomFieldMap)
	h := New(version)
	seen := make(map[string]bool)

	for {
		line, err := readLine(r)
		if err == io.EOF && line == "" {
			break
		}
		if err != nil && err != io.EOF {
			return nil, errs.New(errs.KindIOError, nil, err.Error())
		}

		if line == "" {
			return h, nil
		}
		if strings.HasPrefix(line, "#") {
			if err == io.EOF {
				break
			}
			continue
		}

		name, text, isKeyValue, ferr := splitFieldLine(line)
		if ferr != nil {
			return nil, ferr
		}
		canon := field.CanonicalName(name)

		kind, ok := registry.Lookup(canon)
		if !ok {
			if !isKeyValue {
				return nil, errs.NewField(errs.KindUnknownField, errs.ErrUnknownField, canon, "field name not in registry and no custom field map entry")
			}
			kind = field.String
		}

		if seen[canon] {
			// Custom key/value fields are unique per file by policy;
			// AllowDuplicateField relaxes only standard fields.
			if isKeyValue || !cfg.AllowDuplicateField {
				return nil, errs.NewField(errs.KindDuplicateField, errs.ErrDuplicateField, canon, "field appears more than once in header")
			}
			cfg.logger().Warn("duplicate header field ignored, keeping first occurrence", "field", canon)
			if err == io.EOF {
				break
			}
			continue
		}
		seen[canon] = true

		val, perr := field.Parse(kind, canon, text)
		if perr != nil {
			return nil, perr
		}

		if isKeyValue {
			h.SetKeyValue(canon, val)
		} else {
			h.Set(canon, val)
		}

		if err == io.EOF {
			break
		}
	}

	return nil, errs.New(errs.KindMalformedHeader, errs.ErrUnterminatedHeader, "reached end of input before the blank line that terminates the header")
}

// readLine reads up to and including the next '\n', returning the line
// with any trailing '\r\n' or '\n' stripped. A final line with no
// trailing newline is returned together with io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, err
}

// parseMagicLine validates the first header line, "NRRD" followed by a
// one-to-four digit decimal version (e.g. "NRRD1" and "NRRD0004" are both
// legal), and returns the version number.
func parseMagicLine(line string) (int, error) {
	if !strings.HasPrefix(line, magicPrefix) {
		return 0, errs.New(errs.KindMalformedHeader, errs.ErrMissingMagic, fmt.Sprintf("first line %q is not a valid NRRDxxxx magic", line))
	}
	suffix := line[len(magicPrefix):]
	if len(suffix) == 0 || len(suffix) > 4 {
		return 0, errs.New(errs.KindMalformedHeader, errs.ErrMissingMagic, fmt.Sprintf("first line %q is not a valid NRRDxxxx magic", line))
	}

	v, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, errs.New(errs.KindMalformedHeader, errs.ErrBadVersion, "magic version suffix is not numeric")
	}
	if v < minVersion || v > maxVersion {
		return 0, errs.New(errs.KindMalformedHeader, errs.ErrBadVersion, fmt.Sprintf("version %d is outside the supported range %d-%d", v, minVersion, maxVersion))
	}

	return v, nil
}

// splitFieldLine splits a non-blank, non-comment header line into its
// field name and value text. Standard fields use "name: value"; custom
// fields use the key/value form "name:=value".
func splitFieldLine(line string) (name, text string, isKeyValue bool, err error) {
	if idx := strings.Index(line, ":="); idx >= 0 {
		return line[:idx], line[idx+2:], true, nil
	}
	if idx := strings.Index(line, ": "); idx >= 0 {
		return line[:idx], line[idx+2:], false, nil
	}

	return "", "", false, errs.New(errs.KindMalformedHeader, errs.ErrMalformedLine, fmt.Sprintf("line matches none of comment, field, or blank grammar: %q", line))
}
