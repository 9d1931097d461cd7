package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.uber.org/zap"
)

const testMarkup = `<html><body>
<h1>Batch Test</h1>
<div class="card"><h2>One</h2><p>First.</p></div>
<div class="card"><h2>Two</h2><p>Second.</p></div>
</body></html>`

func writeInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(testMarkup), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveWorkers(t *testing.T) {
	if got := resolveWorkers(5, 2); got != 5 {
		t.Errorf("flag value ignored: %d", got)
	}
	if got := resolveWorkers(0, 2); got != 2 {
		t.Errorf("settings value ignored: %d", got)
	}

	auto := resolveWorkers(0, 0)
	if auto < minWorkers || auto > maxWorkers {
		t.Errorf("auto workers %d outside [%d, %d]", auto, minWorkers, maxWorkers)
	}
	if max := runtime.GOMAXPROCS(0); auto > max {
		t.Errorf("auto workers %d exceeds GOMAXPROCS %d", auto, max)
	}
}

func TestRunBatchConvertsAll(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.html")
	b := writeInput(t, dir, "b.html")

	jobs := []job{
		{input: a, output: filepath.Join(dir, "out", "a_carousel.pdf")},
		{input: b, output: filepath.Join(dir, "out", "b_carousel.pdf")},
	}

	err := runBatch(zap.NewNop(), jobs, &cliFlags{}, DefaultSettings(), 2)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	for _, j := range jobs {
		if _, err := os.Stat(j.output); err != nil {
			t.Errorf("missing output %s: %v", j.output, err)
		}
	}
}

// A document with no cards fails alone; every sibling still converts.
func TestRunBatchCardlessDocumentAmongGood(t *testing.T) {
	dir := t.TempDir()

	jobs := make([]job, 0, 6)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		in := writeInput(t, dir, name+".html")
		jobs = append(jobs, job{input: in, output: filepath.Join(dir, name+".pdf")})
	}
	empty := filepath.Join(dir, "empty.html")
	if err := os.WriteFile(empty, []byte("<html><body><p>no cards</p></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	jobs = append(jobs, job{input: empty, output: filepath.Join(dir, "empty.pdf")})

	err := runBatch(zap.NewNop(), jobs, &cliFlags{}, DefaultSettings(), 3)
	if err == nil {
		t.Fatal("expected an error for the cardless document")
	}

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if _, statErr := os.Stat(filepath.Join(dir, name+".pdf")); statErr != nil {
			t.Errorf("%s.pdf missing: %v", name, statErr)
		}
	}
	if _, statErr := os.Stat(filepath.Join(dir, "empty.pdf")); statErr == nil {
		t.Error("cardless document must not produce output")
	}
}

// A failing document must not prevent the others from converting.
func TestRunBatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.html")

	jobs := []job{
		{input: filepath.Join(dir, "missing.html"), output: filepath.Join(dir, "missing.pdf")},
		{input: good, output: filepath.Join(dir, "good.pdf")},
	}

	err := runBatch(zap.NewNop(), jobs, &cliFlags{}, DefaultSettings(), 1)
	if err == nil {
		t.Fatal("expected aggregated error for the missing input")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "good.pdf")); statErr != nil {
		t.Error("good document should still have converted")
	}
}
