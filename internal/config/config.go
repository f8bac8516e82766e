package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nicolagi/fmtlint/internal/linediff"
	"github.com/nicolagi/fmtlint/internal/lint"
)

// DefaultBaseDirectoryPath is where fmtlint looks for its configuration.
// It defaults to $FMTLINT_BASE if it is set, otherwise it defaults to
// $HOME/lib/fmtlint. The command overrides this via the -base flag.
var DefaultBaseDirectoryPath string

func init() {
	if base := os.Getenv("FMTLINT_BASE"); base != "" {
		DefaultBaseDirectoryPath = base
	} else {
		DefaultBaseDirectoryPath = os.ExpandEnv("$HOME/lib/fmtlint")
	}
}

type C struct {
	// Differ is "system" to run DiffBinary, or "builtin" to diff in
	// process.
	Differ     string
	DiffBinary string

	ClangFormatBinary string
	// Either "file" (to use a .clang-format file in a parent directory
	// of the file being checked), a predefined style, or a JSON
	// dictionary of style options.
	ClangFormatStyle string

	YAPFBinary string
	// A style name, e.g., "pep8" or "google", or a file with style
	// settings.
	YAPFStyle string

	// Files linted concurrently; 0 means one per CPU.
	Jobs int

	// Directory holding the config file.
	base string
}

// Default returns the configuration used for keys missing from the file.
func Default() *C {
	clang, yapf := lint.ClangFormat(), lint.YAPF()
	return &C{
		Differ:            "system",
		DiffBinary:        linediff.DefaultBinary,
		ClangFormatBinary: clang.Binary,
		ClangFormatStyle:  clang.Style,
		YAPFBinary:        yapf.Binary,
		YAPFStyle:         yapf.Style,
	}
}

// Load loads the configuration from the file called "config" in the provided
// base directory.
func Load(base string) (*C, error) {
	filename := filepath.Join(base, "config")
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		c := Default()
		c.base = base
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	defer func() {
		// Ignore error closing file opened only for reading.
		_ = f.Close()
	}()
	c, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("config.Load %q: %w", filename, err)
	}
	c.base = base
	return c, nil
}

func load(f io.Reader) (*C, error) {
	c := Default()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		i := strings.IndexAny(line, " 	")
		if i == -1 {
			return nil, fmt.Errorf("load: no separator in %q", line)
		}
		switch key, val := line[:i], strings.TrimSpace(line[i:]); key {
		case "clang-format-binary":
			c.ClangFormatBinary = val
		case "clang-format-style":
			c.ClangFormatStyle = val
		case "diff-binary":
			c.DiffBinary = val
		case "differ":
			if val != "system" && val != "builtin" {
				return nil, fmt.Errorf("load: differ must be system or builtin, got %q", val)
			}
			c.Differ = val
		case "jobs":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("load: jobs must be a non-negative integer, got %q", val)
			}
			c.Jobs = n
		case "yapf-binary":
			c.YAPFBinary = val
		case "yapf-style":
			c.YAPFStyle = val
		default:
			return nil, fmt.Errorf("load: unknown key %q", key)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// Base returns the directory the configuration was loaded from.
func (c *C) Base() string {
	return c.base
}

// Formatter returns the named formatter with the configured binary and
// style.
func (c *C) Formatter(name string) (lint.Formatter, error) {
	f, err := lint.FormatterByName(name)
	if err != nil {
		return lint.Formatter{}, errorf("C.Formatter", "%v", err)
	}
	switch name {
	case "clang-format":
		f.Binary, f.Style = c.ClangFormatBinary, c.ClangFormatStyle
	case "yapf":
		f.Binary, f.Style = c.YAPFBinary, c.YAPFStyle
	}
	return f, nil
}

// LineDiffer returns the configured differ.
func (c *C) LineDiffer() (linediff.LineDiffer, error) {
	d, err := linediff.New(c.Differ, c.DiffBinary)
	if err != nil {
		return nil, errorf("C.LineDiffer", "%v", err)
	}
	return d, nil
}

// Initialize generates an initial configuration at the given directory.
func Initialize(baseDir string) error {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return fmt.Errorf("%q: could not mkdir: %w", baseDir, err)
	}
	path := filepath.Join(baseDir, "config")
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%q: already exists", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("%q: could not determine if it exists: %w", path, err)
	}

	c := Default()
	var buf bytes.Buffer
	buf.WriteString("# Use \"builtin\" where no diff program is installed.\n")
	fmt.Fprintf(&buf, "differ %s\n", c.Differ)
	fmt.Fprintf(&buf, "diff-binary %s\n", c.DiffBinary)
	fmt.Fprintf(&buf, "clang-format-binary %s\n", c.ClangFormatBinary)
	fmt.Fprintf(&buf, "clang-format-style %s\n", c.ClangFormatStyle)
	fmt.Fprintf(&buf, "yapf-binary %s\n", c.YAPFBinary)
	fmt.Fprintf(&buf, "yapf-style %s\n", c.YAPFStyle)
	fmt.Fprintf(&buf, "jobs %d\n", c.Jobs)
	err = ioutil.WriteFile(path, buf.Bytes(), 0600)
	if err != nil {
		return fmt.Errorf("config.Initialize %q: %w", path, err)
	}
	return nil
}
