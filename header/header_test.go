package header

import (
	"testing"

	"github.com/nrrdgo/nrrd/field"
	"github.com/stretchr/testify/require"
)

func TestHeader_SetAndGetResolveAliases(t *testing.T) {
	h := New(4)
	h.Set("line skip", field.NewInt(2))

	v, ok := h.Get("lineskip")
	require.True(t, ok)
	require.Equal(t, int64(2), v.Int())
}

func TestHeader_SetReplacesExisting(t *testing.T) {
	h := New(4)
	h.Set("dimension", field.NewInt(2))
	h.Set("dimension", field.NewInt(3))

	require.Len(t, h.Entries, 1)
	v, _ := h.Get("dimension")
	require.Equal(t, int64(3), v.Int())
}

func TestHeader_Has(t *testing.T) {
	h := New(4)
	require.False(t, h.Has("type"))
	h.Set("type", field.NewString("float"))
	require.True(t, h.Has("type"))
}

func TestHeader_SetKeyValue(t *testing.T) {
	h := New(4)
	h.SetKeyValue("acquisition date", field.NewString("2024-01-01"))

	require.Len(t, h.Entries, 1)
	require.True(t, h.Entries[0].KeyVal)
}
