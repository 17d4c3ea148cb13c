package nrrd

import (
	"log/slog"

	"github.com/nrrdgo/nrrd/field"
	"github.com/nrrdgo/nrrd/geometry"
	"github.com/nrrdgo/nrrd/internal/options"
)

// Option represents a functional option for configuring a Config.
// This is a type alias for the generic Option interface specialized for
// Config, the same pattern the teacher corpus uses for its encoder
// configs.
type Option = options.Option[*Config]

// DefaultConfig is the zero-value Config: FastestFirst index order,
// duplicate fields fatal, space directions as a DoubleMatrix, no checksum
// reporting, default compression level.
var DefaultConfig = Config{}

// NewConfig builds a Config from DefaultConfig plus any options, for
// callers that prefer the functional-option construction style over a
// struct literal.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithIndexOrder sets how Volume.Data is arranged relative to Sizes.
func WithIndexOrder(order geometry.IndexOrder) Option {
	return options.NoError(func(c *Config) {
		c.IndexOrder = order
	})
}

// WithAllowDuplicateField toggles the header's duplicate-field policy.
func WithAllowDuplicateField(allow bool) Option {
	return options.NoError(func(c *Config) {
		c.AllowDuplicateField = allow
	})
}

// WithCustomFieldMap extends the standard field registry for one call.
func WithCustomFieldMap(m map[string]field.Kind) Option {
	return options.NoError(func(c *Config) {
		c.CustomFieldMap = m
	})
}

// WithSpaceDirectionsAsVectorList selects the DoubleVectorList shape for
// the "space directions" field instead of the default DoubleMatrix.
func WithSpaceDirectionsAsVectorList(asVectorList bool) Option {
	return options.NoError(func(c *Config) {
		c.SpaceDirectionsAsVectorList = asVectorList
	})
}

// WithLogger sets the logger that receives duplicate-field warnings.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.Logger = logger
	})
}

// WithReportChecksums enables the per-file checksum report on detached
// reads (one or more sibling files).
func WithReportChecksums(report bool) Option {
	return options.NoError(func(c *Config) {
		c.ReportChecksums = report
	})
}

// WithCompressionLevel overrides the gzip/bzip2 compression level used on
// write.
func WithCompressionLevel(level int) Option {
	return options.New(func(c *Config) error {
		c.CompressionLevel = level
		return nil
	})
}
