package scalar

import "strings"

// Encoding is the closed set of NRRD payload encodings.
type Encoding uint8

const (
	Raw Encoding = iota + 1
	ASCII
	Hex
	Gzip
	Bzip2
)

func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case ASCII:
		return "ascii"
	case Hex:
		return "hex"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// IsCompressed reports whether the encoding wraps the raw byte layout in a
// compression stream.
func (e Encoding) IsCompressed() bool {
	return e == Gzip || e == Bzip2
}

var encodingAliases = map[string]Encoding{
	"raw": Raw,

	"ascii": ASCII,
	"txt":   ASCII,
	"text":  ASCII,

	"hex": Hex,

	"gzip": Gzip,
	"gz":   Gzip,

	"bzip2": Bzip2,
	"bz2":   Bzip2,
}

// ParseEncoding resolves a (case-insensitive) encoding name, including the
// legacy spellings, to its canonical Encoding.
func ParseEncoding(name string) (e Encoding, ok bool) {
	e, ok = encodingAliases[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}
