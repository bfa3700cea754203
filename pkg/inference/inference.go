/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Scalar type inference for delimited text cells. Classifies a single token
as boolean, integer, float or text using an ordered set of patterns, the first match wins.
*/

package inference

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/kleascm/statust/pkg/types"
)

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^[-+]?\d*\.\d+$`)
)

// Infer classifies a raw cell. The checks run in order: boolean, integer,
// float, text. Tokens are not trimmed, so " 5" is text.
func Infer(token string) types.Value {
	lower := strings.ToLower(token)
	if lower == "true" || lower == "false" {
		return types.Bool(lower == "true")
	}

	if intPattern.MatchString(token) {
		if i, err := strconv.ParseInt(token, 10, 32); err == nil {
			return types.Int(i)
		}
		// Outside the int32 domain: keep it numeric.
		f, _ := strconv.ParseFloat(token, 32)
		return types.Float(float32(f))
	}

	if floatPattern.MatchString(token) {
		f, err := strconv.ParseFloat(token, 32)
		if err == nil || isRangeErr(err) {
			return types.Float(float32(f))
		}
	}

	return types.Text(strings.ReplaceAll(token, `"`, ""))
}

// InferRow infers every field of a split line
func InferRow(fields []string) []types.Value {
	row := make([]types.Value, len(fields))
	for i, field := range fields {
		row[i] = Infer(field)
	}
	return row
}

// NormalizeHeader trims, lowercases and strips quotes from a header cell
func NormalizeHeader(field string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(field)), `"`, "")
}

// isRangeErr reports a float that overflowed to ±Inf, which we keep
func isRangeErr(err error) bool {
	return errors.Is(err, strconv.ErrRange)
}
