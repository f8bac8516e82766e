package opcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHunk(t *testing.T) {
	for _, c := range []struct {
		line string
		want Hunk
	}{
		{"@@ -15,3 +17,5 @@\n", Hunk{15, 3, 17, 5}},
		{"@@ -2 +2 @@\n", Hunk{2, 1, 2, 1}},
		{"@@ -1,0 +2 @@\n", Hunk{1, 0, 2, 1}},
		{"@@ -2 +1,0 @@", Hunk{2, 1, 1, 0}},
		{"@@ -0,0 +1,2 @@\n", Hunk{0, 0, 1, 2}},
		{"@@ -10,2 +10,3 @@ func main() {\n", Hunk{10, 2, 10, 3}},
	} {
		got, ok, err := ParseHunk(c.line)
		require.Nil(t, err, "%q", c.line)
		assert.True(t, ok, "%q", c.line)
		assert.Equal(t, c.want, got, "%q", c.line)
	}
}

func TestParseHunkSkipsOtherLines(t *testing.T) {
	for _, line := range []string{
		"",
		"--- /tmp/fmtlint-old-123\t2020-01-01 00:00:00\n",
		"+++ /tmp/fmtlint-new-456\n",
		"-@@ -1 +1 @@\n",
		" context\n",
		"\\ No newline at end of file\n",
		"@@ -1 +1\n",
		"@@ -a +1 @@\n",
		"@@ -1, +1 @@\n",
		"@@ 1 +1 @@\n",
		"@@ -1 -1 @@\n",
		"@@@ -1,2 -1,2 +1,3 @@@\n",
	} {
		_, ok, err := ParseHunk(line)
		assert.Nil(t, err, "%q", line)
		assert.False(t, ok, "%q", line)
	}
}

func TestParseHunkBothCountsZero(t *testing.T) {
	_, ok, err := ParseHunk("@@ -3,0 +4,0 @@\n")
	assert.False(t, ok)
	var mhe *MalformedHunkError
	require.True(t, errors.As(err, &mhe))
	assert.Equal(t, "@@ -3,0 +4,0 @@", mhe.Line)
}

func TestParseHunkNumberOutOfRange(t *testing.T) {
	_, ok, err := ParseHunk("@@ -99999999999999999999999 +1 @@\n")
	assert.False(t, ok)
	var mhe *MalformedHunkError
	assert.True(t, errors.As(err, &mhe))
}
