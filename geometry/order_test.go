package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementCount(t *testing.T) {
	require.Equal(t, int64(24), ElementCount([]int64{2, 3, 4}))
}

func TestCheckSizes_RejectsNonPositive(t *testing.T) {
	require.NoError(t, CheckSizes([]int64{1, 2, 3}))
	require.Error(t, CheckSizes([]int64{1, 0, 3}))
	require.Error(t, CheckSizes([]int64{1, -2, 3}))
}

func TestReorder_FastestFirstIsIdentityCopy(t *testing.T) {
	src := []int64{1, 2, 3, 4, 5, 6}
	dst, err := Reorder(src, []int64{2, 3}, FastestFirst, 1)
	require.NoError(t, err)
	require.Equal(t, src, dst)

	// confirm it's a copy, not an alias
	dst[0] = 99
	require.Equal(t, int64(1), src[0])
}

func TestReorder_SlowestFirstTransposes2D(t *testing.T) {
	// sizes = [2,3] (fastest-first: axis0 varies fastest within each
	// group of 2). On-disk element order for a 2x3 grid:
	//   idx: 0 1 2 3 4 5
	//   (a0,a1): (0,0)(1,0)(0,1)(1,1)(0,2)(1,2)
	src := []int64{10, 11, 20, 21, 30, 31}

	dst, err := Reorder(src, []int64{2, 3}, SlowestFirst, 1)
	require.NoError(t, err)

	// slowest-first: axis1 (size 3) varies fastest of the two in the
	// output ordering, i.e. output is grouped by axis0:
	//   a0=0: (0,0)(0,1)(0,2) -> 10 20 30
	//   a0=1: (1,0)(1,1)(1,2) -> 11 21 31
	require.Equal(t, []int64{10, 20, 30, 11, 21, 31}, dst)
}

func TestReorder_LengthMismatchErrors(t *testing.T) {
	_, err := Reorder([]int64{1, 2, 3}, []int64{2, 3}, SlowestFirst, 1)
	require.Error(t, err)
}

func TestReorder_UnknownOrderErrors(t *testing.T) {
	_, err := Reorder([]int64{1, 2}, []int64{2}, IndexOrder(0xFF), 1)
	require.Error(t, err)
}

func TestValidateBufferShape(t *testing.T) {
	require.NoError(t, ValidateBufferShape(6, []int64{2, 3}, 1))
	require.Error(t, ValidateBufferShape(5, []int64{2, 3}, 1))
}

func TestToDiskOrder_InvertsReorder(t *testing.T) {
	src := []int64{10, 11, 20, 21, 30, 31}
	sizes := []int64{2, 3}

	slow, err := Reorder(src, sizes, SlowestFirst, 1)
	require.NoError(t, err)

	back, err := ToDiskOrder(slow, sizes, SlowestFirst, 1)
	require.NoError(t, err)
	require.Equal(t, src, back)
}

func TestToDiskOrder_FastestFirstIsIdentityCopy(t *testing.T) {
	src := []int64{1, 2, 3, 4}
	dst, err := ToDiskOrder(src, []int64{2, 2}, FastestFirst, 1)
	require.NoError(t, err)
	require.Equal(t, src, dst)
}

func TestIndexOrder_String(t *testing.T) {
	require.Equal(t, "FastestFirst", FastestFirst.String())
	require.Equal(t, "SlowestFirst", SlowestFirst.String())
	require.Equal(t, "Unknown", IndexOrder(0xFF).String())
}
