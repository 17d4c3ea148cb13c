package field

import (
	"math"
	"strconv"
	"strings"

	"github.com/nrrdgo/nrrd/errs"
)

// noneToken is the literal that stands in for a missing row in a matrix or
// vector list (e.g. a non-spatial axis's entry in "space directions").
const noneToken = "none"

// Parse parses the raw text following a field's delimiter (already
// separated from the field name) into a Value of the given Kind.
func Parse(kind Kind, fieldName, text string) (Value, error) {
	text = strings.TrimSpace(text)

	switch kind {
	case Int:
		v, err := parseInt(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrBadInteger, fieldName, err.Error())
		}
		return NewInt(v), nil

	case Double:
		v, err := parseDouble(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrBadDouble, fieldName, err.Error())
		}
		return NewDouble(v), nil

	case String:
		return NewString(text), nil

	case IntSeq:
		vals, err := parseIntSeq(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrBadInteger, fieldName, err.Error())
		}
		return NewIntSeq(vals), nil

	case DoubleSeq:
		vals, err := parseDoubleSeq(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrBadDouble, fieldName, err.Error())
		}
		return NewDoubleSeq(vals), nil

	case StringSeq:
		return NewStringSeq(strings.Fields(text)), nil

	case QuotedStringSeq:
		vals, err := parseQuotedStringSeq(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrMalformedLine, fieldName, err.Error())
		}
		return NewQuotedStringSeq(vals), nil

	case IntVector:
		vals, err := parseIntVector(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrUnclosedVector, fieldName, err.Error())
		}
		return NewIntVector(vals), nil

	case DoubleVector:
		vals, err := parseDoubleVector(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrUnclosedVector, fieldName, err.Error())
		}
		return NewDoubleVector(vals), nil

	case IntMatrix:
		rows, err := parseIntMatrix(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrRaggedShape, fieldName, err.Error())
		}
		return NewIntMatrix(rows), nil

	case DoubleMatrix:
		rows, err := parseDoubleMatrix(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrRaggedShape, fieldName, err.Error())
		}
		return NewDoubleMatrix(rows), nil

	case IntVectorList:
		entries, err := parseIntVectorList(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrRaggedShape, fieldName, err.Error())
		}
		return NewIntVectorList(entries), nil

	case DoubleVectorList:
		entries, err := parseDoubleVectorList(text)
		if err != nil {
			return Value{}, errs.NewField(errs.KindMalformedHeader, errs.ErrRaggedShape, fieldName, err.Error())
		}
		return NewDoubleVectorList(entries), nil

	default:
		return Value{}, errs.NewField(errs.KindInvariantViolation, errs.ErrMalformedLine, fieldName, "unhandled field kind")
	}
}

func parseInt(tok string) (int64, error) {
	return strconv.ParseInt(tok, 10, 64)
}

func parseDouble(tok string) (float64, error) {
	if strings.EqualFold(tok, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(tok, 64)
}

func parseIntSeq(text string) ([]int64, error) {
	fields := strings.Fields(text)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseDoubleSeq(text string) ([]float64, error) {
	fields := strings.Fields(text)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseDouble(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseQuotedStringSeq splits a sequence of double-quoted tokens, e.g.
// `"x label" "y label" "z label"`. Embedded escaped quotes are not part of
// the format; a literal `"` inside a label cannot be represented.
func parseQuotedStringSeq(text string) ([]string, error) {
	var out []string
	i := 0
	for i < len(text) {
		for i < len(text) && text[i] == ' ' {
			i++
		}
		if i >= len(text) {
			break
		}
		if text[i] != '"' {
			return nil, errs.ErrMalformedLine
		}
		start := i + 1
		end := strings.IndexByte(text[start:], '"')
		if end < 0 {
			return nil, errs.ErrMalformedLine
		}
		out = append(out, text[start:start+end])
		i = start + end + 1
	}
	return out, nil
}

// scanTokens splits text on whitespace outside of parentheses, so a vector
// literal like "(1, 0, 0)" (space after comma tolerated on read) counts as
// a single token rather than three.
func scanTokens(text string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			depth--
			cur.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func splitVectorComponents(tok string) (string, error) {
	if len(tok) < 2 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return "", errs.ErrUnclosedVector
	}
	return tok[1 : len(tok)-1], nil
}

func parseIntVector(tok string) ([]int64, error) {
	inner, err := splitVectorComponents(tok)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(inner, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := parseInt(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseDoubleVector(tok string) ([]float64, error) {
	inner, err := splitVectorComponents(tok)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(inner, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parseDouble(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseIntMatrix parses a sequence of row vectors. Unlike parseDoubleMatrix,
// it has no "none" row: that convention exists for "space directions"
// non-spatial axes, which are always double-valued, so an int matrix field
// has no legal use for it and a "none" token here is simply malformed.
func parseIntMatrix(text string) ([][]int64, error) {
	tokens := scanTokens(text)
	rows := make([][]int64, len(tokens))
	width := -1
	for i, tok := range tokens {
		row, err := parseIntVector(tok)
		if err != nil {
			return nil, err
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errs.ErrRaggedShape
		}
		rows[i] = row
	}
	return rows, nil
}

// parseDoubleMatrix parses a sequence of row vectors, representing a
// "none" row as a slice of NaN of the matrix's established width so every
// row in the returned matrix has the same length.
func parseDoubleMatrix(text string) ([][]float64, error) {
	tokens := scanTokens(text)
	rows := make([][]float64, len(tokens))
	none := make([]bool, len(tokens))
	width := -1

	for i, tok := range tokens {
		if strings.EqualFold(tok, noneToken) {
			none[i] = true
			continue
		}
		row, err := parseDoubleVector(tok)
		if err != nil {
			return nil, err
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errs.ErrRaggedShape
		}
		rows[i] = row
	}
	if width == -1 {
		width = 0
	}
	for i := range rows {
		if none[i] {
			nanRow := make([]float64, width)
			for j := range nanRow {
				nanRow[j] = math.NaN()
			}
			rows[i] = nanRow
		}
	}
	return rows, nil
}

func parseIntVectorList(text string) ([]IntEntry, error) {
	tokens := scanTokens(text)
	out := make([]IntEntry, len(tokens))
	for i, tok := range tokens {
		if strings.EqualFold(tok, noneToken) {
			out[i] = IntEntry{Null: true}
			continue
		}
		row, err := parseIntVector(tok)
		if err != nil {
			return nil, err
		}
		out[i] = IntEntry{Values: row}
	}
	return out, nil
}

func parseDoubleVectorList(text string) ([]DoubleEntry, error) {
	tokens := scanTokens(text)
	out := make([]DoubleEntry, len(tokens))
	for i, tok := range tokens {
		if strings.EqualFold(tok, noneToken) {
			out[i] = DoubleEntry{Null: true}
			continue
		}
		row, err := parseDoubleVector(tok)
		if err != nil {
			return nil, err
		}
		out[i] = DoubleEntry{Values: row}
	}
	return out, nil
}

// IsNoneRow reports whether a DoubleMatrix row represents a "none" entry:
// every component is NaN, and the row is non-empty.
func IsNoneRow(row []float64) bool {
	if len(row) == 0 {
		return false
	}
	for _, v := range row {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
