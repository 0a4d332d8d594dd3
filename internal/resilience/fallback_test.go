package resilience

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestTryStrategies(t *testing.T) {
	t.Parallel()

	fail := func(context.Context) error { return errors.New("failed") }
	ok := func(context.Context) error { return nil }

	tests := []struct {
		name          string
		strategies    []Strategy
		wantSucceeded string
		wantAttempts  int
	}{
		{
			name:          "primary succeeds",
			strategies:    []Strategy{{"primary", ok}, {"fallback", ok}},
			wantSucceeded: "primary",
			wantAttempts:  1,
		},
		{
			name:          "fallback succeeds",
			strategies:    []Strategy{{"primary", fail}, {"fallback", ok}},
			wantSucceeded: "fallback",
			wantAttempts:  2,
		},
		{
			name:         "all fail",
			strategies:   []Strategy{{"primary", fail}, {"fallback", fail}},
			wantAttempts: 2,
		},
		{
			name: "empty chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := TryStrategies(context.Background(), nil, tt.strategies...)
			if report.Succeeded != tt.wantSucceeded {
				t.Errorf("Succeeded = %q, want %q", report.Succeeded, tt.wantSucceeded)
			}
			if len(report.Attempts) != tt.wantAttempts {
				t.Errorf("len(Attempts) = %d, want %d", len(report.Attempts), tt.wantAttempts)
			}
			if report.OK() != (tt.wantSucceeded != "") {
				t.Errorf("OK() = %v", report.OK())
			}
		})
	}
}

func TestTryStrategies_WarnsOnTotalFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	report := TryStrategies(context.Background(), logger,
		Strategy{Name: "compose-down", Run: func(context.Context) error { return errors.New("daemon down") }},
	)

	if report.OK() {
		t.Fatal("report.OK() = true, want false")
	}
	if report.Attempts[0].Err == nil {
		t.Error("attempt error not recorded")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected a warning in log output, got %q", buf.String())
	}
}

func TestTryStrategies_StopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	report := TryStrategies(ctx, nil, Strategy{Name: "never", Run: func(context.Context) error {
		ran = true
		return nil
	}})

	if ran {
		t.Error("strategy ran on a canceled context")
	}
	if report.OK() || !errors.Is(report.Attempts[0].Err, context.Canceled) {
		t.Errorf("report = %+v, want a canceled attempt", report)
	}
}
