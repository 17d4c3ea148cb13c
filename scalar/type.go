// Package scalar defines the two closed enumerations NRRD's header grammar
// names by string: the array element Type and the payload Encoding.
//
// Both follow the same shape as the teacher corpus's format.EncodingType/
// format.CompressionType pair: a small uint8 enum, a canonical String(),
// and a name-to-value parser that accepts the format's documented aliases.
package scalar

import "strings"

// Type is the closed set of NRRD scalar element types.
type Type uint8

const (
	Int8 Type = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	Block // opaque; requires a `block size` field, decodes to raw bytes only
)

// Size returns the element's on-disk size in bytes, or 0 for Block, whose
// size is declared out-of-band by the `block size` field.
func (t Type) Size() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IsMultiByte reports whether the type requires an `endian` field.
func (t Type) IsMultiByte() bool {
	return t.Size() > 1
}

func (t Type) String() string {
	switch t {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// typeAliases maps every accepted spelling (already lowercased) to its
// canonical Type.
var typeAliases = map[string]Type{
	"signed char": Int8,
	"int8":        Int8,
	"int8_t":      Int8,

	"uchar":         Uint8,
	"unsigned char": Uint8,
	"uint8":         Uint8,
	"uint8_t":       Uint8,

	"short":    Int16,
	"int16":    Int16,
	"int16_t":  Int16,
	"ushort":   Uint16,
	"uint16":   Uint16,
	"uint16_t": Uint16,

	"int":     Int32,
	"int32":   Int32,
	"int32_t": Int32,
	"uint":    Uint32,
	"uint32":  Uint32,
	"uint32_t": Uint32,

	"longlong":  Int64,
	"long long": Int64,
	"int64":     Int64,
	"int64_t":   Int64,
	"ulonglong":  Uint64,
	"unsigned long long": Uint64,
	"uint64":     Uint64,
	"uint64_t":   Uint64,

	"float": Float32,

	"double": Float64,

	"block": Block,
}

// Parse resolves a (case-insensitive) scalar type name or alias to its
// canonical Type. ok is false if the name is not recognized.
func Parse(name string) (t Type, ok bool) {
	t, ok = typeAliases[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
