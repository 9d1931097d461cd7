// Command carousel converts HTML card documents into paginated PDFs with a
// linked table of contents and per-page navigation.
//
// Usage:
//
//	carousel [flags] <input.html> [output.pdf | more.html ...]
//
// With a single input the output defaults to <stem>_carousel.pdf next to
// the input. With multiple inputs, or a --batch directory, the files
// convert in parallel into the output directory.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	logger := newLogger(flags.verbose, flags.quiet)
	defer logger.Sync()

	if flags.batch != "" {
		batchInputs, err := expandBatch(flags.batch)
		if err != nil {
			logger.Error(err.Error())
			return exitError
		}
		inputs = append(inputs, batchInputs...)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, usageLine)
		return exitUsage
	}

	settings := DefaultSettings()
	if flags.config != "" {
		settings, err = LoadSettings(flags.config)
		if err != nil {
			logger.Error(err.Error())
			return exitError
		}
	}

	jobs, err := buildJobs(inputs, flags, settings)
	if err != nil {
		logger.Error(err.Error())
		return exitUsage
	}

	workers := resolveWorkers(flags.workers, settings.Workers)
	if err := runBatch(logger, jobs, flags, settings, workers); err != nil {
		logger.Error(err.Error())
		return exitError
	}
	return exitSuccess
}
