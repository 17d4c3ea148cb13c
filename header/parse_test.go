package header

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestParse_MinimalAttachedHeader(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"dimension: 3\n" +
		"sizes: 10 20 30\n" +
		"encoding: raw\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{})
	require.NoError(t, err)
	require.Equal(t, 4, h.Version)

	typ, ok := h.Get("type")
	require.True(t, ok)
	require.Equal(t, "float", typ.Str())

	sizes, ok := h.Get("sizes")
	require.True(t, ok)
	require.Equal(t, []int64{10, 20, 30}, sizes.IntSeq())
}

func TestParse_CommentLinesAreSkipped(t *testing.T) {
	raw := "NRRD0004\n" +
		"# a comment\n" +
		"type: float\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{})
	require.NoError(t, err)
	require.Len(t, h.Entries, 4)
}

func TestParse_CustomKeyValueField(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"acquisition date:=2024-01-01\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{})
	require.NoError(t, err)

	v, ok := h.Get("acquisition date")
	require.True(t, ok)
	require.Equal(t, "2024-01-01", v.Str())
}

func TestParse_UnknownStandardFieldErrors(t *testing.T) {
	raw := "NRRD0004\n" +
		"bogus field: 1\n" +
		"\n"

	_, err := Parse(newReader(raw), Config{})
	require.Error(t, err)
}

func TestParse_DuplicateFieldFatalByDefault(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"type: double\n" +
		"\n"

	_, err := Parse(newReader(raw), Config{})
	require.Error(t, err)
}

func TestParse_DuplicateFieldAllowedKeepsFirst(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"type: double\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{AllowDuplicateField: true})
	require.NoError(t, err)

	v, ok := h.Get("type")
	require.True(t, ok)
	require.Equal(t, "float", v.Str())
}

func TestParse_DuplicateCustomFieldAlwaysFatal(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"acquisition date:=2024-01-01\n" +
		"acquisition date:=2024-01-02\n" +
		"\n"

	_, err := Parse(newReader(raw), Config{AllowDuplicateField: true})
	require.Error(t, err)
}

func TestParse_ShortMagicVersionAccepted(t *testing.T) {
	raw := "NRRD1\n" +
		"type: float\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{})
	require.NoError(t, err)
	require.Equal(t, 1, h.Version)
}

func TestParse_MissingMagicErrors(t *testing.T) {
	_, err := Parse(newReader("not a magic line\n\n"), Config{})
	require.Error(t, err)
}

func TestParse_BadVersionErrors(t *testing.T) {
	_, err := Parse(newReader("NRRD0099\n\n"), Config{})
	require.Error(t, err)
}

func TestParse_UnterminatedHeaderErrors(t *testing.T) {
	raw := "NRRD0004\ntype: float\n"
	_, err := Parse(newReader(raw), Config{})
	require.Error(t, err)
}

func TestParse_MalformedLineErrors(t *testing.T) {
	raw := "NRRD0004\nthis has no delimiter\n\n"
	_, err := Parse(newReader(raw), Config{})
	require.Error(t, err)
}

func TestParse_SpaceDirectionsAsVectorList(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"dimension: 3\n" +
		"sizes: 4 4 4\n" +
		"encoding: raw\n" +
		"space directions: (1,0,0) none (0,0,1)\n" +
		"\n"

	h, err := Parse(newReader(raw), Config{SpaceDirectionsAsVectorList: true})
	require.NoError(t, err)

	v, ok := h.Get("space directions")
	require.True(t, ok)
	entries := v.DoubleVectorList()
	require.True(t, entries[1].Null)
}
