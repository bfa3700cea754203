/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run_record_test.go
Description: Tests for run record files.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/statust/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRunRecord(t *testing.T) {
	dir := t.TempDir()
	record := utils.NewRunRecord("describe", "0.1.0", "iris.csv")
	record.Rows = 150
	record.Columns = 5
	record.Described = []string{"sepal.length", "variety"}
	record.Duration = 2 * time.Millisecond

	path, err := utils.WriteRunRecord(dir, record)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "describe"), filepath.Dir(path))
	name := filepath.Base(path)
	assert.True(t, strings.HasSuffix(name, "_describe_v0.1.0_"+record.ID[:8]+".json"), name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded utils.RunRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record.ID, decoded.ID)
	assert.Equal(t, "iris.csv", decoded.Source)
	assert.Equal(t, 150, decoded.Rows)
	assert.Equal(t, []string{"sepal.length", "variety"}, decoded.Described)
	assert.Equal(t, 2*time.Millisecond, decoded.Duration)
}

func TestNewRunRecordIDs(t *testing.T) {
	a := utils.NewRunRecord("describe", "0.1.0", "")
	b := utils.NewRunRecord("describe", "0.1.0", "")
	assert.NotEqual(t, a.ID, b.ID)
}
