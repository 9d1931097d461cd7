package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cards.html", "cards_carousel.pdf"},
		{"deck/study_guide.html", "study_guide_carousel.pdf"},
		{"/abs/path/notes.htm", "notes_carousel.pdf"},
		{"dotted.name.html", "dotted.name_carousel.pdf"},
	}
	for _, tc := range tests {
		if got := OutputName(tc.input); got != tc.want {
			t.Errorf("OutputName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	flags, inputs, err := parseFlags([]string{
		"-o", "out", "--workers", "3", "--style", "monokai",
		"--font", "/a.ttf", "--font", "/b.ttf",
		"a.html", "b.html",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if flags.out != "out" || flags.workers != 3 || flags.style != "monokai" {
		t.Errorf("flags = %+v", flags)
	}
	if len(flags.fonts) != 2 {
		t.Errorf("fonts = %v", flags.fonts)
	}
	if len(inputs) != 2 || inputs[0] != "a.html" {
		t.Errorf("inputs = %v", inputs)
	}
}

func TestBuildJobsSingleExplicitOutput(t *testing.T) {
	jobs, err := buildJobs([]string{"cards.html"}, &cliFlags{out: "final.pdf"}, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].output != "final.pdf" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestBuildJobsExplicitOutputConflicts(t *testing.T) {
	_, err := buildJobs([]string{"a.html", "b.html"}, &cliFlags{out: "final.pdf"}, DefaultSettings())
	if !errors.Is(err, ErrOutputConflict) {
		t.Fatalf("err = %v, want ErrOutputConflict", err)
	}
}

func TestBuildJobsDerivedNames(t *testing.T) {
	jobs, err := buildJobs(
		[]string{filepath.Join("deck", "a.html"), "b.html"},
		&cliFlags{out: "dist"},
		DefaultSettings(),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join("dist", "a_carousel.pdf"),
		filepath.Join("dist", "b_carousel.pdf"),
	}
	for i, j := range jobs {
		if j.output != want[i] {
			t.Errorf("job %d output = %q, want %q", i, j.output, want[i])
		}
	}
}

func TestBuildJobsDefaultsNextToInput(t *testing.T) {
	jobs, err := buildJobs([]string{filepath.Join("deck", "a.html")}, &cliFlags{}, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("deck", "a_carousel.pdf"); jobs[0].output != want {
		t.Errorf("output = %q, want %q", jobs[0].output, want)
	}
}

func TestBuildJobsRejectsBadExtension(t *testing.T) {
	_, err := buildJobs([]string{"cards.txt"}, &cliFlags{}, DefaultSettings())
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("err = %v, want ErrInvalidExtension", err)
	}
}

func TestBuildJobsPositionalOutput(t *testing.T) {
	jobs, err := buildJobs([]string{"cards.html", "final.pdf"}, &cliFlags{}, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 || jobs[0].input != "cards.html" || jobs[0].output != "final.pdf" {
		t.Errorf("jobs = %+v", jobs)
	}
}

func TestExpandBatch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.html", "a.html", "c.htm", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	inputs, err := expandBatch(dir)
	if err != nil {
		t.Fatalf("expandBatch: %v", err)
	}
	if len(inputs) != 3 {
		t.Fatalf("inputs = %v", inputs)
	}
	// Deterministic name order so batch runs are reproducible.
	for i := 1; i < len(inputs); i++ {
		if inputs[i-1] > inputs[i] {
			t.Errorf("inputs not sorted: %v", inputs)
		}
	}
}

func TestExpandBatchEmptyDir(t *testing.T) {
	if _, err := expandBatch(t.TempDir()); !errors.Is(err, ErrBatchEmpty) {
		t.Fatalf("err = %v, want ErrBatchEmpty", err)
	}
}
