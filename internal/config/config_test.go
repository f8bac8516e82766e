package config

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nicolagi/fmtlint/internal/linediff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir)
	require.Nil(t, err)
	assert.Equal(t, dir, c.Base())
	assert.Equal(t, "system", c.Differ)
	assert.Equal(t, "clang-format", c.ClangFormatBinary)
	assert.Equal(t, "pep8", c.YAPFStyle)
}

func TestLoad(t *testing.T) {
	c, err := load(strings.NewReader(`
# comment
differ builtin
diff-binary   /usr/local/bin/gdiff
clang-format-style {BasedOnStyle: Google, IndentWidth: 4}
yapf-binary	/opt/yapf
jobs 3
`))
	require.Nil(t, err)
	want := Default()
	want.Differ = "builtin"
	want.DiffBinary = "/usr/local/bin/gdiff"
	want.ClangFormatStyle = "{BasedOnStyle: Google, IndentWidth: 4}"
	want.YAPFBinary = "/opt/yapf"
	want.Jobs = 3
	if diff := cmp.Diff(want, c, cmp.AllowUnexported(C{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, input := range []string{
		"differ\n",
		"differ myers\n",
		"jobs many\n",
		"jobs -1\n",
		"color always\n",
	} {
		_, err := load(strings.NewReader(input))
		assert.NotNil(t, err, "%q", input)
	}
}

func TestFormatter(t *testing.T) {
	c := Default()
	c.YAPFBinary = "/opt/yapf"
	c.YAPFStyle = "google"
	f, err := c.Formatter("yapf")
	require.Nil(t, err)
	assert.Equal(t, "/opt/yapf", f.Binary)
	assert.Equal(t, "google", f.Style)
	assert.Equal(t, "YAPF", f.Code)
	_, err = c.Formatter("black")
	assert.NotNil(t, err)
}

func TestLineDiffer(t *testing.T) {
	c := Default()
	d, err := c.LineDiffer()
	require.Nil(t, err)
	assert.Equal(t, &linediff.System{Binary: "diff"}, d)
	c.Differ = "builtin"
	d, err = c.LineDiffer()
	require.Nil(t, err)
	assert.Equal(t, linediff.Builtin{}, d)
}

func TestInitialize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "base")
	require.Nil(t, Initialize(dir))
	b, err := ioutil.ReadFile(filepath.Join(dir, "config"))
	require.Nil(t, err)
	assert.Contains(t, string(b), "differ system\n")
	c, err := Load(dir)
	require.Nil(t, err)
	assert.Equal(t, Default().YAPFStyle, c.YAPFStyle)
	assert.NotNil(t, Initialize(dir))
}
