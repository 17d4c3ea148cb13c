package field

import "strings"

// aliases maps a field name's alternate (no-space) spelling to the
// canonical spaced name used internally and in this implementation's own
// writer output. Readers must accept both; per the format's documented
// duplicate-field rule, a header pairing both spellings of the same field
// (e.g. "line skip" and "lineskip") is a duplicate, not two fields.
var aliases = map[string]string{
	"datafile": "data file",
	"lineskip": "line skip",
	"byteskip": "byte skip",
	"oldmin":   "old min",
	"oldmax":   "old max",
	"axismins": "axis mins",
	"axismaxs": "axis maxs",
}

// CanonicalName lowercases, trims, and resolves the alternate spellings of
// a raw header field name to its canonical form.
func CanonicalName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := aliases[lower]; ok {
		return canon
	}
	return lower
}

// standardFields is the shape dispatch table for every standard field name
// this implementation recognizes, keyed by canonical name. "space
// directions" is deliberately absent: its shape depends on the registry's
// configured SpaceDirectionsShape, since a header may describe a gradient
// table either as a matrix of row vectors or as a vector list with
// per-axis "none" entries for non-spatial axes.
var standardFields = map[string]Kind{
	"type":      String,
	"dimension": Int,

	"space":           String,
	"space dimension": Int,

	"sizes":  IntSeq,
	"kinds":  StringSeq,
	"labels": QuotedStringSeq,
	"units":  QuotedStringSeq,

	"endian":   String,
	"encoding": String,
	"content":  String,

	"min":     Double,
	"max":     Double,
	"old min": Double,
	"old max": Double,

	"spacings":     DoubleSeq,
	"thicknesses":  DoubleSeq,
	"axis mins":    DoubleSeq,
	"axis maxs":    DoubleSeq,
	"centerings":   StringSeq,
	"sample units": QuotedStringSeq,
	"space units":  QuotedStringSeq,

	"space origin":      DoubleVector,
	"measurement frame": DoubleMatrix,

	"data file": String,
	"line skip": Int,
	"byte skip": Int,

	"block size": Int,
}

// Registry resolves a canonical field name to the Kind its value must be
// parsed/formatted as, accounting for the one field whose shape is
// configurable and any per-call custom field names.
type Registry struct {
	spaceDirectionsShape Kind
	custom               map[string]Kind
}

// NewRegistry builds a Registry. spaceDirectionsShape selects how "space
// directions" is parsed: DoubleMatrix (one row vector per axis, "none" rows
// for non-spatial axes) or DoubleVectorList (equivalent, spelled with
// explicit null entries instead of all-NaN rows). custom extends or
// overrides the standard table with caller-supplied field names, for
// NRRD's documented custom-field extension mechanism; it may be nil.
func NewRegistry(spaceDirectionsShape Kind, custom map[string]Kind) *Registry {
	if spaceDirectionsShape != DoubleMatrix && spaceDirectionsShape != DoubleVectorList {
		spaceDirectionsShape = DoubleMatrix
	}
	return &Registry{spaceDirectionsShape: spaceDirectionsShape, custom: custom}
}

// Lookup resolves a canonical field name to its Kind. ok is false if the
// name is neither a standard field nor present in the registry's custom
// field map.
func (r *Registry) Lookup(canonicalName string) (Kind, bool) {
	if canonicalName == "space directions" {
		return r.spaceDirectionsShape, true
	}
	if r.custom != nil {
		if k, ok := r.custom[canonicalName]; ok {
			return k, true
		}
	}
	k, ok := standardFields[canonicalName]
	return k, ok
}
