package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_CanonicalAndAliases(t *testing.T) {
	cases := map[string]Type{
		"int8":           Int8,
		"signed char":    Int8,
		"INT8_T":         Int8,
		"uchar":          Uint8,
		"unsigned char":  Uint8,
		"uint8":          Uint8,
		"short":          Int16,
		"int16_t":        Int16,
		"ushort":         Uint16,
		"int":            Int32,
		"int32":          Int32,
		"uint":           Uint32,
		"longlong":       Int64,
		"int64_t":        Int64,
		"ulonglong":      Uint64,
		"float":          Float32,
		"double":         Float64,
		"block":          Block,
	}

	for name, want := range cases {
		got, ok := Parse(name)
		require.True(t, ok, "name=%q", name)
		require.Equal(t, want, got, "name=%q", name)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, ok := Parse("complex128")
	require.False(t, ok)
}

func TestType_Size(t *testing.T) {
	require.Equal(t, 1, Int8.Size())
	require.Equal(t, 1, Uint8.Size())
	require.Equal(t, 2, Int16.Size())
	require.Equal(t, 4, Int32.Size())
	require.Equal(t, 4, Float32.Size())
	require.Equal(t, 8, Int64.Size())
	require.Equal(t, 8, Float64.Size())
	require.Equal(t, 0, Block.Size())
}

func TestType_IsMultiByte(t *testing.T) {
	require.False(t, Int8.IsMultiByte())
	require.False(t, Uint8.IsMultiByte())
	require.True(t, Int16.IsMultiByte())
	require.True(t, Float64.IsMultiByte())
}

func TestType_String_CanonicalSpellings(t *testing.T) {
	require.Equal(t, "int8", Int8.String())
	require.Equal(t, "uint8", Uint8.String())
	require.Equal(t, "int16", Int16.String())
	require.Equal(t, "uint16", Uint16.String())
	require.Equal(t, "int32", Int32.String())
	require.Equal(t, "uint32", Uint32.String())
	require.Equal(t, "int64", Int64.String())
	require.Equal(t, "uint64", Uint64.String())
	require.Equal(t, "float", Float32.String())
	require.Equal(t, "double", Float64.String())
	require.Equal(t, "block", Block.String())
	require.Equal(t, "unknown", Type(0xFF).String())
}
