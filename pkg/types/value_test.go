/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: value_test.go
Description: Tests for scalar values: equality, display and numeric projection.
*/

package types_test

import (
	"math"
	"testing"

	"github.com/kleascm/statust/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var v types.Value
	assert.True(t, v.IsAbsent())
	assert.Equal(t, types.KindAbsent, v.Kind())
	assert.True(t, v.Equal(types.Absent()))
	assert.Equal(t, "None", v.String())
}

func TestValueEquality(t *testing.T) {
	assert.True(t, types.Int(3).Equal(types.Int(3)))
	assert.False(t, types.Int(3).Equal(types.Float(3)))
	assert.False(t, types.Text("a").Equal(types.Text("b")))
	assert.False(t, types.Bool(true).Equal(types.Bool(false)))
	assert.False(t, types.Absent().Equal(types.Text("")))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "true", types.Bool(true).String())
	assert.Equal(t, "-12", types.Int(-12).String())
	assert.Equal(t, "4.3", types.Float(4.3).String())
	assert.Equal(t, "5", types.Float(5).String())
	assert.Equal(t, "Setosa", types.Text("Setosa").String())
}

func TestNumericProjection(t *testing.T) {
	assert.Equal(t, float32(7), types.Int(7).Numeric())
	assert.Equal(t, float32(1.5), types.Float(1.5).Numeric())
	assert.True(t, math.IsNaN(float64(types.Text("x").Numeric())))
	assert.True(t, math.IsNaN(float64(types.Bool(true).Numeric())))
	assert.True(t, math.IsNaN(float64(types.Absent().Numeric())))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "float", types.KindFloat.String())
	assert.True(t, types.KindInt.IsNumeric())
	assert.False(t, types.KindText.IsNumeric())

	text, err := types.KindBool.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "bool", string(text))
}
