/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: describe.go
Description: Column aggregation and table description. The variant of a column's first
cell selects the algorithm: two-pass float32 moments for numbers, single-pass tallies
for booleans, and unique/most-frequent tracking for text.
*/

package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/kleascm/statust/pkg/frame"
	"github.com/kleascm/statust/pkg/types"
)

var (
	// ErrUnknownColumn means no header entry has the requested name
	ErrUnknownColumn = errors.New("unknown column")
	// ErrEmptyColumn means the column has no rows or starts with an absent cell
	ErrEmptyColumn = errors.New("column has no describable values")
)

// Aggregate computes the result for one column. The first value decides
// the shape; false means the column is empty or starts absent and has no
// result.
func Aggregate(values []types.Value, name string) (Result, bool) {
	if len(values) == 0 {
		return nil, false
	}

	dtype := values[0].Kind()
	switch {
	case dtype == types.KindBool:
		return aggregateBoolean(values, name), true
	case dtype.IsNumeric():
		return aggregateNumeric(values, name, dtype), true
	case dtype == types.KindText:
		return aggregateCategorical(values, name), true
	default:
		return nil, false
	}
}

// Describe aggregates every column in header order. A later column with
// the same name replaces the earlier result. A row too short for a column
// fails the whole description with frame.ErrRowArity.
func Describe(t *frame.Table) (*Report, error) {
	report := NewReport()
	for i, name := range t.Header() {
		col, err := t.Col(i)
		if err != nil {
			return nil, fmt.Errorf("failed to extract column %q: %w", name, err)
		}
		if res, ok := Aggregate(col, name); ok {
			report.Put(res)
		}
	}
	return report, nil
}

// DescribeColumn aggregates the column called name
func DescribeColumn(t *frame.Table, name string) (Result, error) {
	i, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	col, err := t.Col(i)
	if err != nil {
		return nil, fmt.Errorf("failed to extract column %q: %w", name, err)
	}

	res, ok := Aggregate(col, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEmptyColumn, name)
	}
	return res, nil
}

func aggregateBoolean(values []types.Value, name string) *BooleanResult {
	res := &BooleanResult{Name: name, DType: types.KindBool}
	for _, v := range values {
		b, ok := v.AsBool()
		if !ok {
			continue
		}
		if b {
			res.TrueCount++
		} else {
			res.FalseCount++
		}
	}
	return res
}

func aggregateNumeric(values []types.Value, name string, dtype types.Kind) *NumericResult {
	res := &NumericResult{
		Name:  name,
		DType: dtype,
		Min:   math.MaxFloat32,
		Max:   -math.MaxFloat32,
	}

	// Pass 1: range, sum and nulls. Non-numeric cells project to NaN.
	var sum float32
	for _, v := range values {
		x := v.Numeric()
		if isNaN(x) {
			res.NullCount++
			continue
		}
		if x < res.Min {
			res.Min = x
		}
		if x > res.Max {
			res.Max = x
		}
		sum += x
	}

	count := float32(len(values) - res.NullCount)
	res.Mean = sum / count
	// Rounding in the float32 sum can land a constant column just outside
	// its own range.
	if res.Mean < res.Min {
		res.Mean = res.Min
	}
	if res.Mean > res.Max {
		res.Mean = res.Max
	}

	// Pass 2: population variance around the final mean.
	var squares float32
	for _, v := range values {
		x := v.Numeric()
		if isNaN(x) {
			continue
		}
		d := x - res.Mean
		squares += d * d
	}
	res.Std = float32(math.Sqrt(float64(squares / count)))

	return res
}

func aggregateCategorical(values []types.Value, name string) *CategoricalResult {
	res := &CategoricalResult{
		Name:         name,
		DType:        types.KindText,
		UniqueValues: []string{},
	}

	seen := make(map[string]struct{})
	for _, v := range values {
		s, ok := v.AsText()
		if !ok {
			continue
		}
		if s == "" {
			res.NullCount++
			continue
		}

		if _, dup := seen[s]; !dup {
			seen[s] = struct{}{}
			res.UniqueValues = append(res.UniqueValues, s)
			res.UniqueCount++
		}

		// Single candidate: the first value seen, counted only on exact repeats.
		if res.MostFreqCount < 1 {
			res.MostFreqValue = s
			res.MostFreqCount = 1
		} else if res.MostFreqValue == s {
			res.MostFreqCount++
		}
	}
	return res
}
