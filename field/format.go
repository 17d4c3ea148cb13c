package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nrrdgo/nrrd/errs"
)

// Format renders a Value back to the text that follows a field's delimiter
// in a written header line. The formatter always omits the space after a
// comma inside vector literals that the parser tolerates on read.
func Format(v Value) (string, error) {
	switch v.Kind {
	case Int:
		return formatInt(v.i), nil
	case Double:
		return formatDouble(v.d), nil
	case String:
		return v.s, nil
	case IntSeq:
		return formatIntSeq(v.iSeq), nil
	case DoubleSeq:
		return formatDoubleSeq(v.dSeq), nil
	case StringSeq:
		return strings.Join(v.sSeq, " "), nil
	case QuotedStringSeq:
		return formatQuotedStringSeq(v.qsSeq), nil
	case IntVector:
		return formatIntVector(v.iVec), nil
	case DoubleVector:
		return formatDoubleVector(v.dVec), nil
	case IntMatrix:
		return formatIntMatrix(v.iMat), nil
	case DoubleMatrix:
		return formatDoubleMatrix(v.dMat), nil
	case IntVectorList:
		return formatIntVectorList(v.iVecList), nil
	case DoubleVectorList:
		return formatDoubleVectorList(v.dVecList), nil
	default:
		return "", errs.New(errs.KindInvariantViolation, errs.ErrMalformedLine, "unhandled field kind")
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatDouble renders a double using the shortest representation that
// round-trips, with the lowercase "nan" literal in place of strconv's "NaN";
// parseDouble reads that literal back as NaN.
func formatDouble(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatIntSeq(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatInt(v)
	}
	return strings.Join(parts, " ")
}

func formatDoubleSeq(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatDouble(v)
	}
	return strings.Join(parts, " ")
}

func formatQuotedStringSeq(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(parts, " ")
}

func formatIntVector(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatInt(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func formatDoubleVector(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// formatIntMatrix has no "none" row, unlike formatDoubleMatrix: see
// parseIntMatrix for why that convention doesn't apply to int matrices.
func formatIntMatrix(rows [][]int64) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = formatIntVector(row)
	}
	return strings.Join(parts, " ")
}

func formatDoubleMatrix(rows [][]float64) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		if IsNoneRow(row) {
			parts[i] = noneToken
			continue
		}
		parts[i] = formatDoubleVector(row)
	}
	return strings.Join(parts, " ")
}

func formatIntVectorList(entries []IntEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Null {
			parts[i] = noneToken
			continue
		}
		parts[i] = formatIntVector(e.Values)
	}
	return strings.Join(parts, " ")
}

func formatDoubleVectorList(entries []DoubleEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Null {
			parts[i] = noneToken
			continue
		}
		parts[i] = formatDoubleVector(e.Values)
	}
	return strings.Join(parts, " ")
}
