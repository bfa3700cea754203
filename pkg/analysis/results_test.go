/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results_test.go
Description: Tests for result blocks, approximate equality and report ordering.
*/

package analysis_test

import (
	"math"
	"testing"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNumericBlock(t *testing.T) {
	res := &analysis.NumericResult{Name: "sepal.length", Min: 4.3, Max: 7.9, Mean: 5.5, Std: 0.25}
	assert.Equal(t, "sepal.length:\n\tNull Count: 0\n\tMin: 4.3\n\tMax: 7.9\n\tMean: 5.5\n\tStd: 0.25", res.Block())
}

func TestCategoricalBlock(t *testing.T) {
	res := &analysis.CategoricalResult{
		Name:          "variety",
		NullCount:     1,
		UniqueCount:   2,
		UniqueValues:  []string{"Setosa", "Virginica"},
		MostFreqValue: "Setosa",
		MostFreqCount: 4,
	}
	assert.Equal(t, "variety:\n\tNull Count: 1\n\tUnique Count: 2\n\tUnique Values: [Setosa, Virginica]\n\tMost Freq Value: Setosa\n\tMost Freq Count: 4", res.Block())
}

func TestBooleanBlock(t *testing.T) {
	res := &analysis.BooleanResult{Name: "active", TrueCount: 3, FalseCount: 1}
	assert.Equal(t, "active:\n\tNull Count: 0\n\tTrue Count: 3\n\tFalse Count: 1", res.Block())
}

func TestApproxEqualIsSymmetric(t *testing.T) {
	assert.True(t, analysis.ApproxEqual(1.0, 1.005))
	assert.True(t, analysis.ApproxEqual(1.005, 1.0))
	assert.False(t, analysis.ApproxEqual(1.0, 1.5))
	assert.False(t, analysis.ApproxEqual(1.5, 1.0))

	nan := float32(math.NaN())
	assert.True(t, analysis.ApproxEqual(nan, nan))
	assert.False(t, analysis.ApproxEqual(nan, 1))

	inf := float32(math.Inf(1))
	assert.True(t, analysis.ApproxEqual(inf, inf))
	assert.True(t, analysis.ApproxEqual(-inf, -inf))
	assert.False(t, analysis.ApproxEqual(inf, -inf))
	assert.False(t, analysis.ApproxEqual(inf, math.MaxFloat32))
}

func TestNumericEqual(t *testing.T) {
	a := &analysis.NumericResult{Name: "x", DType: types.KindFloat, Min: 1, Max: 2, Mean: 1.5, Std: 0.5}
	b := &analysis.NumericResult{Name: "x", DType: types.KindFloat, Min: 1, Max: 2, Mean: 1.505, Std: 0.495}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := *b
	c.Max = 2.001
	assert.False(t, a.Equal(&c))

	assert.False(t, a.Equal(&analysis.BooleanResult{Name: "x"}))
}

func TestReportOrderAndReplace(t *testing.T) {
	report := analysis.NewReport(
		&analysis.BooleanResult{Name: "b"},
		&analysis.BooleanResult{Name: "a"},
	)
	report.Put(&analysis.BooleanResult{Name: "b", TrueCount: 9})

	assert.Equal(t, []string{"b", "a"}, report.Names())
	assert.Equal(t, 2, report.Len())

	res, ok := report.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 9, res.(*analysis.BooleanResult).TrueCount)

	results := report.Results()
	assert.Equal(t, "b", results[0].ColumnName())
	assert.Equal(t, "a", results[1].ColumnName())
}

func TestReportEqual(t *testing.T) {
	a := analysis.NewReport(&analysis.BooleanResult{Name: "a", TrueCount: 1})
	b := analysis.NewReport(&analysis.BooleanResult{Name: "a", TrueCount: 1})
	c := analysis.NewReport(&analysis.BooleanResult{Name: "a", TrueCount: 2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
