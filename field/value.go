// Package field implements NRRD's field-type registry: the closed set of
// value shapes a header field can hold, the name-to-shape dispatch table,
// and the parse/format rules for each shape.
//
// The shapes mirror the teacher corpus's closed-enum-with-String() pattern
// (see scalar.Type/scalar.Encoding), scaled up to a tagged union since a
// header value's in-memory representation genuinely varies by shape.
package field

import "fmt"

// Kind is the closed set of value shapes a header field can hold.
type Kind uint8

const (
	Int Kind = iota + 1
	Double
	String
	IntSeq
	DoubleSeq
	StringSeq
	QuotedStringSeq
	IntVector
	DoubleVector
	IntMatrix
	DoubleMatrix
	IntVectorList
	DoubleVectorList
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Double:
		return "Double"
	case String:
		return "String"
	case IntSeq:
		return "IntSeq"
	case DoubleSeq:
		return "DoubleSeq"
	case StringSeq:
		return "StringSeq"
	case QuotedStringSeq:
		return "QuotedStringSeq"
	case IntVector:
		return "IntVector"
	case DoubleVector:
		return "DoubleVector"
	case IntMatrix:
		return "IntMatrix"
	case DoubleMatrix:
		return "DoubleMatrix"
	case IntVectorList:
		return "IntVectorList"
	case DoubleVectorList:
		return "DoubleVectorList"
	default:
		return "Unknown"
	}
}

// IntEntry is one row of an IntVectorList: either a vector of ints, or an
// explicit null (the "none" token).
type IntEntry struct {
	Null   bool
	Values []int64
}

// DoubleEntry is one row of a DoubleVectorList: either a vector of doubles,
// or an explicit null (the "none" token).
type DoubleEntry struct {
	Null   bool
	Values []float64
}

// Value is the tagged union every parsed or to-be-written field value is
// held in. Exactly one field group is meaningful, selected by Kind; callers
// that already know a field's Kind should read the matching field directly
// rather than branch on Kind themselves, which is why each accessor below
// is a method instead of free functions: it keeps the "read the wrong
// field" mistake out of the call site.
type Value struct {
	Kind Kind

	i int64
	d float64
	s string

	iSeq  []int64
	dSeq  []float64
	sSeq  []string
	qsSeq []string

	iVec []int64
	dVec []float64

	iMat [][]int64
	dMat [][]float64 // a row whose entries are all NaN represents "none"

	iVecList []IntEntry
	dVecList []DoubleEntry
}

func NewInt(v int64) Value                    { return Value{Kind: Int, i: v} }
func NewDouble(v float64) Value               { return Value{Kind: Double, d: v} }
func NewString(v string) Value                { return Value{Kind: String, s: v} }
func NewIntSeq(v []int64) Value               { return Value{Kind: IntSeq, iSeq: v} }
func NewDoubleSeq(v []float64) Value          { return Value{Kind: DoubleSeq, dSeq: v} }
func NewStringSeq(v []string) Value           { return Value{Kind: StringSeq, sSeq: v} }
func NewQuotedStringSeq(v []string) Value     { return Value{Kind: QuotedStringSeq, qsSeq: v} }
func NewIntVector(v []int64) Value            { return Value{Kind: IntVector, iVec: v} }
func NewDoubleVector(v []float64) Value       { return Value{Kind: DoubleVector, dVec: v} }
func NewIntMatrix(v [][]int64) Value          { return Value{Kind: IntMatrix, iMat: v} }
func NewDoubleMatrix(v [][]float64) Value     { return Value{Kind: DoubleMatrix, dMat: v} }
func NewIntVectorList(v []IntEntry) Value     { return Value{Kind: IntVectorList, iVecList: v} }
func NewDoubleVectorList(v []DoubleEntry) Value {
	return Value{Kind: DoubleVectorList, dVecList: v}
}

// Int returns the value as an int64. Panics if Kind != Int.
func (v Value) Int() int64 {
	v.mustBe(Int)
	return v.i
}

// Double returns the value as a float64. Panics if Kind != Double.
func (v Value) Double() float64 {
	v.mustBe(Double)
	return v.d
}

// Str returns the value as a string. Panics if Kind != String.
//
// Named Str rather than String to avoid accidentally satisfying
// fmt.Stringer: a Value of any other Kind would then panic the moment it
// was passed to a %v/%s format verb.
func (v Value) Str() string {
	v.mustBe(String)
	return v.s
}

// IntSeq returns the value as []int64. Panics if Kind != IntSeq.
func (v Value) IntSeq() []int64 {
	v.mustBe(IntSeq)
	return v.iSeq
}

// DoubleSeq returns the value as []float64. Panics if Kind != DoubleSeq.
func (v Value) DoubleSeq() []float64 {
	v.mustBe(DoubleSeq)
	return v.dSeq
}

// StringSeq returns the value as []string. Panics if Kind != StringSeq.
func (v Value) StringSeq() []string {
	v.mustBe(StringSeq)
	return v.sSeq
}

// QuotedStringSeq returns the value as []string. Panics if Kind != QuotedStringSeq.
func (v Value) QuotedStringSeq() []string {
	v.mustBe(QuotedStringSeq)
	return v.qsSeq
}

// IntVector returns the value as []int64. Panics if Kind != IntVector.
func (v Value) IntVector() []int64 {
	v.mustBe(IntVector)
	return v.iVec
}

// DoubleVector returns the value as []float64. Panics if Kind != DoubleVector.
func (v Value) DoubleVector() []float64 {
	v.mustBe(DoubleVector)
	return v.dVec
}

// IntMatrix returns the value as [][]int64. Panics if Kind != IntMatrix.
func (v Value) IntMatrix() [][]int64 {
	v.mustBe(IntMatrix)
	return v.iMat
}

// DoubleMatrix returns the value as [][]float64. Panics if Kind != DoubleMatrix.
func (v Value) DoubleMatrix() [][]float64 {
	v.mustBe(DoubleMatrix)
	return v.dMat
}

// IntVectorList returns the value as []IntEntry. Panics if Kind != IntVectorList.
func (v Value) IntVectorList() []IntEntry {
	v.mustBe(IntVectorList)
	return v.iVecList
}

// DoubleVectorList returns the value as []DoubleEntry. Panics if Kind != DoubleVectorList.
func (v Value) DoubleVectorList() []DoubleEntry {
	v.mustBe(DoubleVectorList)
	return v.dVecList
}

func (v Value) mustBe(k Kind) {
	if v.Kind != k {
		panic(fmt.Sprintf("field: accessor for %s called on a %s value", k, v.Kind))
	}
}
