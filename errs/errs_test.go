package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error_WithField(t *testing.T) {
	err := NewField(KindTypeMismatch, ErrBadInteger, "dimension", "not an integer")
	require.Equal(t, `nrrd: TypeMismatch: field "dimension": not an integer`, err.Error())
}

func TestError_Error_WithoutField(t *testing.T) {
	err := New(KindMalformedHeader, ErrMissingMagic, "no magic line found")
	require.Equal(t, "nrrd: MalformedHeader: no magic line found", err.Error())
}

func TestError_UnwrapAndIs(t *testing.T) {
	err := New(KindInvariantViolation, ErrDimensionMismatch, "dimension=2 sizes=[1,2,3]")

	require.True(t, errors.Is(err, ErrDimensionMismatch))
	require.False(t, errors.Is(err, ErrNegativeSize))
}

func TestError_As(t *testing.T) {
	err := NewField(KindUnknownField, ErrUnknownField, "foo bar", "no registry entry")

	var target *Error
	require.True(t, errors.As(err, &target))
	require.Equal(t, KindUnknownField, target.Kind)
	require.Equal(t, "foo bar", target.Field)
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindMalformedHeader:    "MalformedHeader",
		KindUnknownField:       "UnknownField",
		KindDuplicateField:     "DuplicateField",
		KindTypeMismatch:       "TypeMismatch",
		KindInvariantViolation: "InvariantViolation",
		KindEncodingError:      "EncodingError",
		KindIOError:            "IOError",
		KindUnsupportedType:    "UnsupportedType",
		Kind(0xFF):             "Unknown",
	}

	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}

func TestSentinelsAreDistinctValues(t *testing.T) {
	require.NotEqual(t, ErrBadInteger, ErrBadDouble)
	require.False(t, errors.Is(ErrBadInteger, ErrBadDouble))
}
