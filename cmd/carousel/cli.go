package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

const usageLine = "usage: carousel [flags] <input.html> [output.pdf | more.html ...]"

// Sentinel errors for CLI operations.
var (
	ErrInvalidExtension = errors.New("input must have an .html or .htm extension")
	ErrOutputConflict   = errors.New("--out must name a directory when converting multiple inputs")
	ErrBatchEmpty       = errors.New("batch directory contains no .html files")
)

// outputSuffix is appended to the input stem to derive the default output
// file name: cards.html becomes cards_carousel.pdf.
const outputSuffix = "_carousel.pdf"

// cliFlags holds all command line flags.
type cliFlags struct {
	batch   string   // directory whose *.html files are all converted
	out     string   // output file (single input) or directory
	config  string   // settings file path
	workers int      // parallel workers, 0 = auto
	title   string   // document title override
	style   string   // syntax highlighting style
	fonts   []string // candidate font files
	quiet   bool
	verbose bool
}

// parseFlags parses command line flags and returns the positional inputs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("carousel", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.batch, "batch", "b", "", "convert every .html file in a directory")
	fs.StringVarP(&f.out, "out", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "settings file path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from <h1>)")
	fs.StringVar(&f.style, "style", "", "syntax highlighting style name")
	fs.StringSliceVar(&f.fonts, "font", nil, "candidate TrueType font file (repeatable)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// job pairs one input document with its output path.
type job struct {
	input  string
	output string
}

// expandBatch lists the .html files of a batch directory in name order.
func expandBatch(dir string) ([]string, error) {
	var inputs []string
	for _, pattern := range []string{"*.html", "*.htm"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning batch directory: %w", err)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBatchEmpty, dir)
	}
	sort.Strings(inputs)
	return inputs, nil
}

// buildJobs validates inputs and derives output paths. A single input may
// target an exact .pdf path, either as the second positional argument or
// via --out; otherwise --out (or the settings output directory) is treated
// as a directory receiving derived names.
func buildJobs(inputs []string, flags *cliFlags, settings *Settings) ([]job, error) {
	// "carousel in.html out.pdf" positional form.
	explicitOut := flags.out
	if len(inputs) == 2 && strings.HasSuffix(inputs[1], ".pdf") {
		explicitOut = inputs[1]
		inputs = inputs[:1]
	}

	for _, in := range inputs {
		if err := validateHTMLExtension(in); err != nil {
			return nil, err
		}
	}

	// Exact output file: only meaningful for a single input.
	if explicitOut != "" && strings.HasSuffix(explicitOut, ".pdf") {
		if len(inputs) > 1 {
			return nil, ErrOutputConflict
		}
		return []job{{input: inputs[0], output: explicitOut}}, nil
	}

	outDir := flags.out
	if outDir == "" {
		outDir = settings.Output.Dir
	}

	jobs := make([]job, 0, len(inputs))
	for _, in := range inputs {
		dir := outDir
		if dir == "" {
			dir = filepath.Dir(in)
		}
		jobs = append(jobs, job{
			input:  in,
			output: filepath.Join(dir, OutputName(in)),
		})
	}
	return jobs, nil
}

// OutputName derives the output file name from an input path:
// "deck/cards.html" yields "cards_carousel.pdf".
func OutputName(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + outputSuffix
}

func validateHTMLExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, path)
}
