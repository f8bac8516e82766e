package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicolagi/fmtlint/internal/linediff"
	"github.com/nicolagi/fmtlint/internal/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	lines, err := parseLines("3,4,9-10")
	require.Nil(t, err)
	assert.Equal(t, []int{3, 4, 9, 10}, lines)
	for _, bad := range []string{"", "a", "0", "5-3", "3-", "1,,2"} {
		_, err := parseLines(bad)
		assert.NotNil(t, err, "%q", bad)
	}
}

func TestParseTarget(t *testing.T) {
	assert.Equal(t, lint.Target{Path: "a.cc", Changed: []int{3, 4, 5}}, parseTarget("a.cc:3-5"))
	assert.Equal(t, lint.Target{Path: "a.cc"}, parseTarget("a.cc"))
	assert.Equal(t, lint.Target{Path: "dir:x/a.cc"}, parseTarget("dir:x/a.cc"))
	assert.Equal(t, lint.Target{Path: "a.cc:"}, parseTarget("a.cc:"))
}

func TestPrintRanges(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, printRanges(&buf, "--lines", "colon", []string{"9", "3,4", "5", "10"}))
	assert.Equal(t, "--lines=3:5 --lines=9:10\n", buf.String())

	buf.Reset()
	require.Nil(t, printRanges(&buf, "--lines", "dash", []string{"3-5,9-10"}))
	assert.Equal(t, "--lines=3-5 --lines=9-10\n", buf.String())

	assert.NotNil(t, printRanges(&buf, "--lines", "slash", []string{"1"}))
	assert.NotNil(t, printRanges(&buf, "--lines", "dash", []string{"x"}))
}

func TestPrintOpcodes(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	require.Nil(t, ioutil.WriteFile(oldPath, []byte("a\nb\nc\n  d\n"), 0600))
	require.Nil(t, ioutil.WriteFile(newPath, []byte("a\nB\nc\nd\n"), 0600))
	var buf bytes.Buffer
	err := printOpcodes(context.Background(), &buf, linediff.Builtin{}, oldPath, newPath, false, true)
	require.Nil(t, err)
	assert.Equal(t, "replace(1,2,1,2) line 2\nreplace(3,4,3,4) line 4 whitespace\n", buf.String())

	buf.Reset()
	err = printOpcodes(context.Background(), &buf, linediff.Builtin{}, oldPath, newPath, true, false)
	require.Nil(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "replace(1,2,1,2) line 2\nreplace(3,4,3,4) line 4 whitespace\n"))

	err = printOpcodes(context.Background(), &buf, linediff.Builtin{}, oldPath, filepath.Join(dir, "missing"), false, false)
	assert.NotNil(t, err)
}

func TestLintFilesWithIdentityFormatter(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("no cat in PATH")
	}
	dir := t.TempDir()
	p := filepath.Join(dir, "a.py")
	require.Nil(t, ioutil.WriteFile(p, []byte("x = 1\n"), 0600))
	f := lint.YAPF()
	f.Binary, f.Style = "cat", ""
	var buf bytes.Buffer
	require.Nil(t, lintFiles(context.Background(), &buf, f, linediff.Builtin{}, 1, []string{p}))
	assert.Empty(t, buf.String())
}

func TestLintFilesWithEmptyingFormatter(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no true in PATH")
	}
	dir := t.TempDir()
	p := filepath.Join(dir, "a.py")
	require.Nil(t, ioutil.WriteFile(p, []byte("x = 1\ny = 2\n"), 0600))
	f := lint.YAPF()
	f.Binary, f.Style = "true", ""
	var buf bytes.Buffer
	require.Nil(t, lintFiles(context.Background(), &buf, f, linediff.Builtin{}, 1, []string{p + ":1"}))
	var m lint.Message
	require.Nil(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, 1, m.Line)
	assert.Equal(t, "x = 1\ny = 2\n", m.Original)
	assert.Equal(t, "", m.Replacement)
	assert.True(t, m.BypassChangedLineFiltering)
}
