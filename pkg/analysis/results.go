/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results.go
Description: Column statistics records. One result shape per dominant column type
(numeric, categorical, boolean), each with a text block used by reports and an
equality check that tolerates float rounding in the numeric moments.
*/

package analysis

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kleascm/statust/pkg/types"
)

// Tolerance is the largest mean/std difference still treated as equal
const Tolerance = 0.01

// ResultKind names the shape of a Result
type ResultKind string

const (
	KindNumeric     ResultKind = "numeric"
	KindCategorical ResultKind = "categorical"
	KindBoolean     ResultKind = "boolean"
)

// Result is the statistics record for one column
type Result interface {
	// ColumnName returns the column the result describes
	ColumnName() string
	// Kind returns the result shape
	Kind() ResultKind
	// Block renders the report block without the leading rule line
	Block() string
	// Equal compares two results, approximately for numeric moments
	Equal(other Result) bool
}

// ApproxEqual reports |a-b| < Tolerance. Identical values, infinities
// included, and two NaNs compare equal so that an all-null or overflowing
// column describes identically twice.
func ApproxEqual(a, b float32) bool {
	if a == b || (isNaN(a) && isNaN(b)) {
		return true
	}
	return math.Abs(float64(a)-float64(b)) < Tolerance
}

// NumericResult summarizes integer and float columns
type NumericResult struct {
	Name      string     `json:"name"`
	DType     types.Kind `json:"dtype"`
	NullCount int        `json:"null_count"`
	Min       float32    `json:"min"`
	Max       float32    `json:"max"`
	Mean      float32    `json:"mean"`
	Std       float32    `json:"std"`
}

func (r *NumericResult) ColumnName() string { return r.Name }
func (r *NumericResult) Kind() ResultKind   { return KindNumeric }

func (r *NumericResult) Block() string {
	return fmt.Sprintf("%s:\n\tNull Count: %d\n\tMin: %s\n\tMax: %s\n\tMean: %s\n\tStd: %s",
		r.Name, r.NullCount,
		types.FormatFloat(r.Min), types.FormatFloat(r.Max),
		types.FormatFloat(r.Mean), types.FormatFloat(r.Std))
}

func (r *NumericResult) Equal(other Result) bool {
	o, ok := other.(*NumericResult)
	if !ok {
		return false
	}
	return r.Name == o.Name &&
		r.DType == o.DType &&
		r.NullCount == o.NullCount &&
		r.Min == o.Min &&
		r.Max == o.Max &&
		ApproxEqual(r.Mean, o.Mean) &&
		ApproxEqual(r.Std, o.Std)
}

// CategoricalResult summarizes text columns
type CategoricalResult struct {
	Name          string     `json:"name"`
	DType         types.Kind `json:"dtype"`
	NullCount     int        `json:"null_count"`
	UniqueCount   int        `json:"unique_count"`
	UniqueValues  []string   `json:"unique_values"`
	MostFreqValue string     `json:"most_freq_value"`
	MostFreqCount int        `json:"most_freq_count"`
}

func (r *CategoricalResult) ColumnName() string { return r.Name }
func (r *CategoricalResult) Kind() ResultKind   { return KindCategorical }

func (r *CategoricalResult) Block() string {
	return fmt.Sprintf("%s:\n\tNull Count: %d\n\tUnique Count: %d\n\tUnique Values: [%s]\n\tMost Freq Value: %s\n\tMost Freq Count: %d",
		r.Name, r.NullCount, r.UniqueCount,
		strings.Join(r.UniqueValues, ", "),
		r.MostFreqValue, r.MostFreqCount)
}

func (r *CategoricalResult) Equal(other Result) bool {
	o, ok := other.(*CategoricalResult)
	if !ok {
		return false
	}
	return r.Name == o.Name &&
		r.DType == o.DType &&
		r.NullCount == o.NullCount &&
		r.UniqueCount == o.UniqueCount &&
		slices.Equal(r.UniqueValues, o.UniqueValues) &&
		r.MostFreqValue == o.MostFreqValue &&
		r.MostFreqCount == o.MostFreqCount
}

// BooleanResult summarizes boolean columns. NullCount stays zero; it is
// kept so every block has the same leading field.
type BooleanResult struct {
	Name       string     `json:"name"`
	DType      types.Kind `json:"dtype"`
	NullCount  int        `json:"null_count"`
	TrueCount  int        `json:"true_count"`
	FalseCount int        `json:"false_count"`
}

func (r *BooleanResult) ColumnName() string { return r.Name }
func (r *BooleanResult) Kind() ResultKind   { return KindBoolean }

func (r *BooleanResult) Block() string {
	return fmt.Sprintf("%s:\n\tNull Count: %d\n\tTrue Count: %d\n\tFalse Count: %d",
		r.Name, r.NullCount, r.TrueCount, r.FalseCount)
}

func (r *BooleanResult) Equal(other Result) bool {
	o, ok := other.(*BooleanResult)
	if !ok {
		return false
	}
	return *r == *o
}

func isNaN(f float32) bool { return math.IsNaN(float64(f)) }
