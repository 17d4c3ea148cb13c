// Package geometry reconciles the two axis orderings a caller's in-memory
// buffer can use against the header's fixed on-disk ordering: the `sizes`
// field, and therefore the raw element stream, is always fastest-axis-first
// regardless of which index_order the caller's buffer is declared to use.
package geometry

import "github.com/nrrdgo/nrrd/errs"

// IndexOrder selects how a caller's buffer arranges multi-dimensional
// elements relative to the `sizes` field's axis list.
type IndexOrder uint8

const (
	// FastestFirst lays the buffer out exactly as the on-disk element
	// stream is ordered: sizes[0] varies fastest.
	FastestFirst IndexOrder = iota + 1
	// SlowestFirst lays the buffer out with sizes[len(sizes)-1] varying
	// fastest, i.e. the reverse of the on-disk order (C-order for the
	// dimensions as listed).
	SlowestFirst
)

func (o IndexOrder) String() string {
	switch o {
	case FastestFirst:
		return "FastestFirst"
	case SlowestFirst:
		return "SlowestFirst"
	default:
		return "Unknown"
	}
}

// ElementCount returns the product of sizes, the total number of scalar
// elements (or blocks, for Type Block) the payload holds.
func ElementCount(sizes []int64) int64 {
	n := int64(1)
	for _, s := range sizes {
		n *= s
	}
	return n
}

// CheckSizes validates that every entry of sizes is a positive integer, as
// required regardless of index order.
func CheckSizes(sizes []int64) error {
	for _, s := range sizes {
		if s < 1 {
			return errs.New(errs.KindInvariantViolation, errs.ErrNegativeSize, "every sizes entry must be at least 1")
		}
	}
	return nil
}

// stridesFor returns, for each axis, the number of elements between
// consecutive values of that axis when the array is linearized per order:
// axis 0 fastest for FastestFirst, axis len(sizes)-1 fastest for
// SlowestFirst.
func stridesFor(sizes []int64, order IndexOrder) []int64 {
	s := make([]int64, len(sizes))
	acc := int64(1)

	if order == SlowestFirst {
		for i := len(sizes) - 1; i >= 0; i-- {
			s[i] = acc
			acc *= sizes[i]
		}
		return s
	}

	for i := range sizes {
		s[i] = acc
		acc *= sizes[i]
	}
	return s
}

// axisByDecreasingStride returns axis indices sorted so the axis with the
// largest stride (the most significant component of a linear index) comes
// first, letting decode peel off components highest-first regardless of
// which order produced those strides.
func axisByDecreasingStride(strides []int64) []int {
	order := make([]int, len(strides))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && strides[order[j-1]] < strides[order[j]]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	return order
}

// convert reshapes src, linearized per fromOrder, into a new slice
// linearized per toOrder. elemLen is the number of T per logical element
// (1 for scalar types, larger for e.g. a vector-valued element).
func convert[T any](src []T, sizes []int64, fromOrder, toOrder IndexOrder, elemLen int) ([]T, error) {
	if fromOrder == toOrder {
		dst := make([]T, len(src))
		copy(dst, src)
		return dst, nil
	}

	n := int(ElementCount(sizes))
	if len(src) != n*elemLen {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrIndexOrderMismatch, "buffer length does not match sizes product")
	}

	fromStrides := stridesFor(sizes, fromOrder)
	toStrides := stridesFor(sizes, toOrder)
	decodeAxes := axisByDecreasingStride(toStrides)

	dst := make([]T, len(src))
	coord := make([]int64, len(sizes))

	for toIdx := 0; toIdx < n; toIdx++ {
		rem := int64(toIdx)
		for _, a := range decodeAxes {
			coord[a] = rem / toStrides[a]
			rem %= toStrides[a]
		}

		var fromIdx int64
		for a := range sizes {
			fromIdx += coord[a] * fromStrides[a]
		}

		copy(dst[toIdx*elemLen:(toIdx+1)*elemLen], src[int(fromIdx)*elemLen:(int(fromIdx)+1)*elemLen])
	}

	return dst, nil
}

// Reorder copies src, which is laid out on disk (FastestFirst per sizes),
// into a newly allocated slice arranged for the requested IndexOrder. Used
// on read, after the element stream has been decoded in its fixed on-disk
// order. elemLen is the number of T per element (1 for scalar types).
func Reorder[T any](src []T, sizes []int64, order IndexOrder, elemLen int) ([]T, error) {
	if order != FastestFirst && order != SlowestFirst {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrIndexOrderMismatch, "unrecognized index order")
	}
	return convert(src, sizes, FastestFirst, order, elemLen)
}

// ToDiskOrder is Reorder's inverse: it takes src arranged per the given
// IndexOrder and returns a copy arranged FastestFirst, ready for the
// on-disk element stream. Used on write.
func ToDiskOrder[T any](src []T, sizes []int64, order IndexOrder, elemLen int) ([]T, error) {
	if order != FastestFirst && order != SlowestFirst {
		return nil, errs.New(errs.KindInvariantViolation, errs.ErrIndexOrderMismatch, "unrecognized index order")
	}
	return convert(src, sizes, order, FastestFirst, elemLen)
}

// ValidateBufferShape checks that a caller-supplied buffer's element count
// matches sizes's product, surfacing the mismatch as the same invariant
// violation Reorder/ToDiskOrder would hit downstream.
func ValidateBufferShape(bufLen int, sizes []int64, elemLen int) error {
	want := int(ElementCount(sizes)) * elemLen
	if bufLen != want {
		return errs.New(errs.KindInvariantViolation, errs.ErrIndexOrderMismatch, "buffer element count does not match the product of sizes")
	}
	return nil
}
