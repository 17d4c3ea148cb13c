// Package header implements the textual NRRD header: its line grammar,
// the ordered collection of parsed fields, duplicate-field policy, and the
// canonical field order used when writing.
package header

import (
	"log/slog"

	"github.com/nrrdgo/nrrd/field"
)

// Config controls header parsing and writing behavior.
type Config struct {
	// AllowDuplicateField, when true, keeps the first occurrence of a
	// repeated standard field and logs the rest instead of failing the
	// read. The default (false) treats any repeated field as fatal. A
	// repeated custom key:=value pair is fatal either way.
	AllowDuplicateField bool

	// CustomFieldMap extends the standard field registry with
	// caller-defined field names and their expected value shape, for
	// fields outside NRRD's standard set.
	CustomFieldMap map[string]field.Kind

	// SpaceDirectionsAsVectorList selects the "space directions" field's
	// shape: a DoubleMatrix (default) with all-NaN rows for non-spatial
	// axes, or a DoubleVectorList with explicit null entries for the same
	// thing.
	SpaceDirectionsAsVectorList bool

	// Logger receives the duplicate-field warning. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
}

func (c Config) spaceDirectionsShape() field.Kind {
	if c.SpaceDirectionsAsVectorList {
		return field.DoubleVectorList
	}
	return field.DoubleMatrix
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
