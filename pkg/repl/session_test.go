/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: session_test.go
Description: Tests for the interactive session command flow.
*/

package repl_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/frame"
	"github.com/kleascm/statust/pkg/repl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "height,label,flag\n1.5,a,true\n2.5,b,false\n2,a,true\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))
	return path
}

func TestCommandsRequireTable(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})

	for _, line := range []string{"print", "describe", "describe height", "write out.txt"} {
		err := s.Execute(line)
		assert.True(t, errors.Is(err, repl.ErrNoTable), line)
	}
	assert.Nil(t, s.Table())
}

func TestSetDataAndPrint(t *testing.T) {
	path := writeSample(t)
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})

	require.NoError(t, s.Execute("setdata "+path))
	assert.Contains(t, out.String(), "Table read from "+path+" (3 rows, 3 columns)")
	require.NotNil(t, s.Table())
	assert.Equal(t, path, s.Source())

	out.Reset()
	require.NoError(t, s.Execute("print 1"))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, frame.RuleLine, lines[0])
	assert.Equal(t, "height     | label      | flag      ", lines[1])
	assert.Equal(t, "1.5        | a          | true      ", lines[2])
}

func TestLoadAlias(t *testing.T) {
	path := writeSample(t)
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})

	require.NoError(t, s.Execute("load "+path))
	assert.Equal(t, 3, s.Table().NumRows())
}

func TestSetDataFailureKeepsTable(t *testing.T) {
	path := writeSample(t)
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("setdata "+path))

	err := s.Execute("setdata " + filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, frame.ErrSourceUnavailable))
	assert.Equal(t, path, s.Source())
	assert.Equal(t, 3, s.Table().NumRows())
}

func TestPrintInvalidRows(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("setdata "+writeSample(t)))

	assert.Error(t, s.Execute("print many"))
	assert.Error(t, s.Execute("print 1 2"))
}

func TestDescribe(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("setdata "+writeSample(t)))

	out.Reset()
	require.NoError(t, s.Execute("describe"))
	text := out.String()
	assert.Equal(t, 3, strings.Count(text, frame.RuleLine))
	assert.Contains(t, text, "height:\n\tNull Count: 0\n\tMin: 1.5\n\tMax: 2.5\n\tMean: 2\n")
	assert.Contains(t, text, "label:\n\tNull Count: 0\n\tUnique Count: 2\n\tUnique Values: [a, b]\n")
	assert.Contains(t, text, "flag:\n\tNull Count: 0\n\tTrue Count: 2\n\tFalse Count: 1\n")

	out.Reset()
	require.NoError(t, s.Execute("describe flag"))
	assert.Equal(t, frame.RuleLine+"\nflag:\n\tNull Count: 0\n\tTrue Count: 2\n\tFalse Count: 1\n", out.String())

	err := s.Execute("describe weight")
	assert.True(t, errors.Is(err, analysis.ErrUnknownColumn))
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("setdata "+writeSample(t)))

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, s.Execute("write "+path+" label"))
	assert.Contains(t, out.String(), "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label"`)
	assert.NotContains(t, string(data), `"height"`)
}

func TestInfer(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})

	require.NoError(t, s.Execute("infer true -1 1.0 hello"))
	assert.Equal(t, "true -> bool true\n-1 -> int -1\n1.0 -> float 1\nhello -> text hello\n", out.String())
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	assert.Error(t, s.Execute("frobnicate"))
	assert.NoError(t, s.Execute("   "))
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("help"))

	text := out.String()
	for _, name := range []string{"setdata", "load", "print", "describe", "write", "infer", "exit", "quit"} {
		assert.Contains(t, text, name)
	}
}

func TestRun(t *testing.T) {
	path := writeSample(t)
	input := strings.Join([]string{
		"describe",
		"setdata " + path,
		"describe height",
		"quit",
		"print",
	}, "\n")

	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Basic Statust REPL\n"))
	assert.Contains(t, text, repl.Prompt)
	assert.Contains(t, text, "Error: "+repl.ErrNoTable.Error())
	assert.Contains(t, text, "height:\n\tNull Count: 0")
	assert.True(t, s.Done())
	// print after quit never runs
	assert.NotContains(t, text, "height     | label")
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Run(context.Background(), strings.NewReader("infer 7\n")))
	assert.Contains(t, out.String(), "7 -> int 7")
	assert.False(t, s.Done())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	err := s.Run(ctx, strings.NewReader("infer 7\n"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunCancelledWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestQuotedArguments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my data")
	require.NoError(t, os.Mkdir(dir, 0755))
	path := filepath.Join(dir, "flowers.csv")
	require.NoError(t, os.WriteFile(path, []byte("\"sepal length\",label\n5.1,a\n4.9,b\n"), 0644))

	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute(`setdata "`+path+`"`))

	out.Reset()
	require.NoError(t, s.Execute(`describe "sepal length"`))
	assert.Contains(t, out.String(), "sepal length:\n\tNull Count: 0\n\tMin: 4.9\n\tMax: 5.1\n")

	out.Reset()
	require.NoError(t, s.Execute(`describe 'sepal length'`))
	assert.Contains(t, out.String(), "sepal length:")

	assert.Error(t, s.Execute(`describe "sepal length`))
}

func TestHelpFlagDoesNotCarryOver(t *testing.T) {
	var out bytes.Buffer
	s := repl.NewSession(&out, repl.Config{})
	require.NoError(t, s.Execute("setdata "+writeSample(t)))

	require.NoError(t, s.Execute("print -h"))
	assert.NotContains(t, out.String(), frame.RuleLine)

	out.Reset()
	require.NoError(t, s.Execute("print 0"))
	assert.Equal(t, frame.RuleLine+"\nheight     | label      | flag      \n", out.String())
}
