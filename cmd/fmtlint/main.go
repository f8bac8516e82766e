package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nicolagi/fmtlint/internal/config"
	log "github.com/sirupsen/logrus"
)

var (
	// To set this at build time, use go build -ldflags '-X main.version=something'.
	version = "unknown"

	// Flag sets are associated with the fields of a corresponding context struct. The global context is for flags
	// that are part of all flag sets, that is, all sub-commands.
	globalContext struct {
		base     string
		logLevel string
	}

	lintContext struct {
		formatter string
		jobs      int
	}

	rangesContext struct {
		syntax string
		flag   string
	}

	opcodesContext struct {
		verbose bool
		check   bool
	}
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&globalContext.base, "base", config.DefaultBaseDirectoryPath, "`directory` holding the configuration")
	var levels []string
	for _, l := range log.AllLevels {
		levels = append(levels, l.String())
	}
	fs.StringVar(&globalContext.logLevel, "verbosity", "warning", "sets the log `level`, among "+strings.Join(levels, ", "))
	return fs
}

func exitUsage(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	_, _ = fmt.Fprintf(os.Stderr, `Usage: %s COMMAND [ARGS]

Commands:

	init: initializes configuration given the base directory
	lint: prints formatting suggestions for files, one JSON object per line

		Each argument is a path, optionally followed by a colon and the lines
		that changed, e.g., main.cc:3,4,9-10. Only the changed lines are
		formatted. Without lines, the whole file is formatted.

	opcodes: prints the edit operations turning the first file into the second
	ranges: prints the formatter flags restricting formatting to the given lines
	version: show version information
`, os.Args[0])
	os.Exit(2)
}

func main() {
	lintFlags := newFlagSet("lint")
	lintFlags.StringVar(&lintContext.formatter, "formatter", "clang-format", "`name` of the formatter, clang-format or yapf")
	lintFlags.IntVar(&lintContext.jobs, "j", -1, "lint up to `count` files concurrently (default from config)")

	rangesFlags := newFlagSet("ranges")
	rangesFlags.StringVar(&rangesContext.syntax, "syntax", "colon", "range `syntax`, colon (3:5) or dash (3-5)")
	rangesFlags.StringVar(&rangesContext.flag, "flag", "--lines", "`flag` to repeat for each range")

	opcodesFlags := newFlagSet("opcodes")
	opcodesFlags.BoolVar(&opcodesContext.verbose, "v", false, "also print a line diff")
	opcodesFlags.BoolVar(&opcodesContext.check, "check", false, "verify the opcodes turn the first file into the second")

	// For all commands that don't take flags.
	emptyFlags := newFlagSet("empty")

	if len(os.Args) < 2 {
		exitUsage("Command name required")
	}

	switch cmd := os.Args[1]; cmd {
	case "init", "version":
		// Ignoring error - here and in all other cases below - because we configure flag sets to exit on error.
		_ = emptyFlags.Parse(os.Args[2:])
		if narg := emptyFlags.NArg(); narg != 0 {
			exitUsage(fmt.Sprintf("%s: no args expected, got %d", cmd, narg))
		}
	case "lint":
		_ = lintFlags.Parse(os.Args[2:])
		if lintFlags.NArg() == 0 {
			exitUsage("lint: at least one path expected")
		}
	case "opcodes":
		_ = opcodesFlags.Parse(os.Args[2:])
		if narg := opcodesFlags.NArg(); narg != 2 {
			exitUsage(fmt.Sprintf("opcodes: 2 args expected, got %d", narg))
		}
	case "ranges":
		_ = rangesFlags.Parse(os.Args[2:])
		if rangesFlags.NArg() == 0 {
			exitUsage("ranges: at least one line number expected")
		}
	default:
		exitUsage(fmt.Sprintf("%q: command not recognized", cmd))
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.JSONFormatter{})
	ll, err := log.ParseLevel(globalContext.logLevel)
	if err != nil {
		log.Fatalf("Could not parse log level %q: %v", globalContext.logLevel, err)
	}
	log.SetLevel(ll)

	// These sub-commands don't need the configuration.
	switch os.Args[1] {
	case "init":
		if err := config.Initialize(globalContext.base); err != nil {
			log.Fatalf("Could not initialize config in %q: %v", globalContext.base, err)
		}
		return
	case "version":
		fmt.Printf("fmtlint version %s\n", version)
		return
	case "ranges":
		if err := printRanges(os.Stdout, rangesContext.flag, rangesContext.syntax, rangesFlags.Args()); err != nil {
			log.Fatalf("Could not compute ranges: %v", err)
		}
		return
	}

	cfg, err := config.Load(globalContext.base)
	if err != nil {
		log.Fatalf("Could not load config from %q: %v", globalContext.base, err)
	}
	differ, err := cfg.LineDiffer()
	if err != nil {
		log.Fatalf("Could not set up differ: %v", err)
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "lint":
		f, err := cfg.Formatter(lintContext.formatter)
		if err != nil {
			log.Fatalf("Could not set up formatter: %v", err)
		}
		jobs := cfg.Jobs
		if lintContext.jobs >= 0 {
			jobs = lintContext.jobs
		}
		if err := lintFiles(ctx, os.Stdout, f, differ, jobs, lintFlags.Args()); err != nil {
			log.Fatalf("%v", err)
		}
	case "opcodes":
		args := opcodesFlags.Args()
		if err := printOpcodes(ctx, os.Stdout, differ, args[0], args[1], opcodesContext.verbose, opcodesContext.check); err != nil {
			log.Fatalf("Could not compute opcodes: %v", err)
		}
	}
}
