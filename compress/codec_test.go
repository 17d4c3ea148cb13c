package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleData() []byte {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 7)
	}

	return data
}

func TestNoOpCodec_RoundTrip(t *testing.T) {
	codec := NewNoOpCodec()
	data := sampleData()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	original, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestGzipCodec_RoundTrip(t *testing.T) {
	codec := NewGzipCodec()
	data := sampleData()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.NotEqual(t, data, compressed)

	original, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestGzipCodec_EmptyInput(t *testing.T) {
	codec := NewGzipCodec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)

	original, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, original)
}

func TestGzipCodec_DecompressInvalidStream(t *testing.T) {
	codec := NewGzipCodec()

	_, err := codec.Decompress([]byte("not a gzip stream"))
	require.Error(t, err)
}

func TestBzip2Codec_RoundTrip(t *testing.T) {
	codec := NewBzip2Codec()
	data := sampleData()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.NotEqual(t, data, compressed)

	original, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, original)
}

func TestBzip2Codec_DecompressInvalidStream(t *testing.T) {
	codec := NewBzip2Codec()

	_, err := codec.Decompress([]byte("not a bzip2 stream"))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		kind    Kind
		wantErr bool
	}{
		{KindNone, false},
		{KindGzip, false},
		{KindBzip2, false},
		{Kind(0xFF), true},
	}

	for _, tt := range tests {
		codec, err := CreateCodec(tt.kind)
		if tt.wantErr {
			require.Error(t, err)
			require.Nil(t, codec)

			continue
		}

		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(KindGzip)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(Kind(0xFF))
	require.Error(t, err)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "None", KindNone.String())
	require.Equal(t, "Gzip", KindGzip.String())
	require.Equal(t, "Bzip2", KindBzip2.String())
	require.Equal(t, "Unknown", Kind(0xFF).String())
}
