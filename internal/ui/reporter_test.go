package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStageReporter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	theme := testTheme()
	r := NewStageReporter(NewProgress(theme, headless(true), &buf), theme, &buf)

	r.StageStarted("init", 0, 3)
	r.StageFinished("init", nil)
	r.StageStarted("scaffold-frontends", 1, 3)
	r.Warn("no generator for angular, skipped")
	r.StageFinished("scaffold-frontends", nil)
	r.StageStarted("scaffold-database", 2, 3)
	r.StageFinished("scaffold-database", errors.New("preflight"))
	r.Close()

	out := buf.String()
	for _, want := range []string{
		"[1/3] init\n",
		"[2/3] scaffold-frontends\n",
		"warning: no generator for angular, skipped\n",
		"error: scaffold-database failed after",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[3/3]") {
		t.Errorf("failed stage counted as done:\n%s", out)
	}
	if diff := cmp.Diff([]string{"no generator for angular, skipped"}, r.Warnings()); diff != "" {
		t.Errorf("Warnings mismatch:\n%s", diff)
	}
}

func TestStageReporterCloseWithoutStages(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	r := NewStageReporter(NewProgress(testTheme(), headless(true), &buf), testTheme(), &buf)
	r.StageFinished("init", nil)
	r.Close()
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
