package nrrd

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrrdgo/nrrd/errs"
	"github.com/nrrdgo/nrrd/field"
	"github.com/nrrdgo/nrrd/geometry"
	"github.com/nrrdgo/nrrd/scalar"
)

func float32Bytes(values ...float32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func TestReadWrite_AttachedRawRoundTrip(t *testing.T) {
	data := float32Bytes(1, 2, 3, 4, 5, 6)
	vol := NewVolume(scalar.Float32, []int64{2, 3}, scalar.Raw, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, Config{}))

	got, err := Read(bytes.NewReader(buf.Bytes()), Config{})
	require.NoError(t, err)
	require.Equal(t, scalar.Float32, got.Type)
	require.Equal(t, []int64{2, 3}, got.Sizes)
	require.Equal(t, data, got.Data)
}

func TestReadWrite_AttachedGzipRoundTrip(t *testing.T) {
	data := float32Bytes(10, 20, 30, 40)
	vol := NewVolume(scalar.Float32, []int64{2, 2}, scalar.Gzip, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, Config{}))

	got, err := Read(bytes.NewReader(buf.Bytes()), Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestReadWrite_SlowestFirstIndexOrderRoundTrips(t *testing.T) {
	data := float32Bytes(1, 2, 3, 4, 5, 6)
	cfg := Config{IndexOrder: geometry.SlowestFirst}
	vol := NewVolume(scalar.Float32, []int64{2, 3}, scalar.Raw, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, cfg))

	got, err := Read(bytes.NewReader(buf.Bytes()), cfg)
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestRead_AttachedHeaderWithDataFileFieldErrors(t *testing.T) {
	raw := "NRRD0004\n" +
		"type: float\n" +
		"dimension: 1\n" +
		"sizes: 4\n" +
		"encoding: raw\n" +
		"endian: little\n" +
		"data file: slice.raw\n" +
		"\n"

	_, err := Read(bytes.NewReader([]byte(raw)), Config{})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnsupportedDataFile)
}

func TestReadFile_AttachedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volume.nrrd")

	data := float32Bytes(7, 8, 9)
	vol := NewVolume(scalar.Float32, []int64{3}, scalar.Raw, data)

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Write(f, vol, Config{}))
	require.NoError(t, f.Close())

	got, err := ReadFile(path, Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestWriteDetachedReadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "volume.nhdr")

	data := float32Bytes(1, 2, 3, 4, 5, 6, 7, 8)
	vol := NewVolume(scalar.Float32, []int64{2, 4}, scalar.Raw, data)

	require.NoError(t, WriteDetached(headerPath, vol, Config{}))

	got, err := ReadFile(headerPath, Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)

	v, ok := got.Header.Get("data file")
	require.True(t, ok)
	require.Equal(t, "volume.raw", v.Str())
}

func TestWriteDetached_DerivesSiblingExtensionFromEncoding(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "volume.nhdr")

	data := float32Bytes(1, 2, 3, 4)
	vol := NewVolume(scalar.Float32, []int64{4}, scalar.Gzip, data)

	require.NoError(t, WriteDetached(headerPath, vol, Config{}))

	_, err := os.Stat(filepath.Join(dir, "volume.raw.gz"))
	require.NoError(t, err)

	got, err := ReadFile(headerPath, Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestWriteDetached_NrrdExtensionSplitsHeaderAndData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volume.nrrd")

	data := float32Bytes(1, 2, 3, 4)
	vol := NewVolume(scalar.Float32, []int64{4}, scalar.Raw, data)

	require.NoError(t, WriteDetached(path, vol, Config{}))

	_, err := os.Stat(filepath.Join(dir, "volume.nhdr"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "volume.nrrd"))
	require.NoError(t, err)

	got, err := ReadFile(filepath.Join(dir, "volume.nhdr"), Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestWriteDetachedReadFile_ChecksumReport(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "volume.nhdr")

	data := float32Bytes(1, 2, 3, 4)
	vol := NewVolume(scalar.Float32, []int64{4}, scalar.Raw, data)

	require.NoError(t, WriteDetached(headerPath, vol, Config{}))

	got, err := ReadFile(headerPath, Config{ReportChecksums: true})
	require.NoError(t, err)
	require.NotNil(t, got.Report)
	require.Len(t, got.Report.FileChecksums, 1)
	require.Equal(t, filepath.Join(dir, "volume.raw"), got.Report.FileChecksums[0].Path)
}

func TestNewConfig_AppliesOptionsOverDefault(t *testing.T) {
	cfg, err := NewConfig(
		WithIndexOrder(geometry.SlowestFirst),
		WithReportChecksums(true),
		WithCompressionLevel(9),
	)
	require.NoError(t, err)
	require.Equal(t, geometry.SlowestFirst, cfg.IndexOrder)
	require.True(t, cfg.ReportChecksums)
	require.Equal(t, 9, cfg.CompressionLevel)
}

func TestReadWrite_CompressionLevelRoundTrips(t *testing.T) {
	data := float32Bytes(1, 2, 3, 4, 5, 6, 7, 8)
	vol := NewVolume(scalar.Float32, []int64{8}, scalar.Gzip, data)

	cfg, err := NewConfig(WithCompressionLevel(9))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, cfg))

	got, err := Read(bytes.NewReader(buf.Bytes()), Config{})
	require.NoError(t, err)
	require.Equal(t, data, got.Data)
}

func TestWrite_DefaultsToGzipWhenEncodingUnset(t *testing.T) {
	data := float32Bytes(1, 2, 3, 4)
	vol := NewVolume(scalar.Float32, []int64{4}, 0, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, Config{}))

	got, err := Read(bytes.NewReader(buf.Bytes()), Config{})
	require.NoError(t, err)
	require.Equal(t, scalar.Gzip, got.Encoding)
	require.Equal(t, data, got.Data)
}

func TestReadWrite_PreservesAdditionalHeaderFieldsAcrossRoundTrip(t *testing.T) {
	data := float32Bytes(1, 2)
	vol := NewVolume(scalar.Float32, []int64{2}, scalar.Raw, data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vol, Config{}))

	read1, err := Read(bytes.NewReader(buf.Bytes()), Config{})
	require.NoError(t, err)

	read1.Header.Set("content", field.NewString("exported"))
	vol2 := NewVolume(read1.Type, read1.Sizes, read1.Encoding, read1.Data)
	vol2.Header = read1.Header

	var buf2 bytes.Buffer
	require.NoError(t, Write(&buf2, vol2, Config{}))

	read2, err := Read(bytes.NewReader(buf2.Bytes()), Config{})
	require.NoError(t, err)
	v, ok := read2.Header.Get("content")
	require.True(t, ok)
	require.Equal(t, "exported", v.Str())
}
