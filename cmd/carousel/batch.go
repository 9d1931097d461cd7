package main

import (
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tsawler/carousel"
)

// Worker pool sizing.
const (
	minWorkers = 1
	maxWorkers = 8
)

// resolveWorkers determines the worker count. Priority: the --workers flag,
// then the settings file, then a GOMAXPROCS-based default.
func resolveWorkers(flagValue, settingsValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if settingsValue > 0 {
		return settingsValue
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// runBatch converts every job, at most workers at a time. Each document
// converts in isolation: one failure is reported and does not stop the
// rest. The returned error aggregates all per-file failures.
func runBatch(logger *zap.Logger, jobs []job, flags *cliFlags, settings *Settings, workers int) error {
	logger.Debug("starting batch",
		zap.Int("documents", len(jobs)),
		zap.Int("workers", workers))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs error

	for _, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(j job) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := convertOne(logger, j, flags, settings); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
		}(j)
	}
	wg.Wait()

	return errs
}

// convertOne runs the conversion pipeline for a single document.
func convertOne(logger *zap.Logger, j job, flags *cliFlags, settings *Settings) error {
	conv := carousel.FromFile(j.input).Geometry(settings.Geometry())
	if flags.title != "" {
		conv = conv.Title(flags.title)
	}
	if style := firstNonEmpty(flags.style, settings.Highlight.Style); style != "" {
		conv = conv.HighlightStyle(style)
	}
	if fonts := mergePaths(flags.fonts, settings.Fonts); len(fonts) > 0 {
		conv = conv.FontPaths(fonts...)
	}

	result, warnings, err := conv.Convert(j.output)
	if err != nil {
		logger.Error("conversion failed",
			zap.String("input", j.input),
			zap.Error(err))
		return err
	}

	for _, w := range warnings {
		logger.Warn(w.Message,
			zap.String("input", j.input),
			zap.String("type", string(w.Type)),
			zap.Int("card", w.Card))
	}

	logger.Info("converted",
		zap.String("input", j.input),
		zap.String("output", result.OutputPath),
		zap.Int("pages", result.Pages),
		zap.Int64("bytes", result.OutputSize))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mergePaths combines flag fonts with settings fonts, flags first.
func mergePaths(flagPaths, settingsPaths []string) []string {
	out := make([]string, 0, len(flagPaths)+len(settingsPaths))
	out = append(out, flagPaths...)
	out = append(out, settingsPaths...)
	return out
}
