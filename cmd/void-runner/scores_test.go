package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/void-runner/internal/storage"
)

func TestParseScoreLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"easy", false},
		{"normal", false},
		{"hard", false},
		{"custom", false},
		{"nightmare", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseScoreLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseScoreLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.in {
				t.Errorf("parseScoreLevel(%q) = %q", tc.in, got)
			}
		})
	}
}

func TestPrintLevelStatsFromStore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{Difficulty: "hard", Score: 300, Distance: 120, Duration: 10},
		{Difficulty: "easy", Score: 100, Distance: 40, Duration: 5},
		{Difficulty: "easy", Score: 500, Distance: 200, Duration: 20},
		{Difficulty: "custom", Score: 200, Distance: 90, Duration: 8},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	byLevel, err := store.StatsByDifficulty()
	if err != nil {
		t.Fatalf("StatsByDifficulty() failed: %v", err)
	}

	var out bytes.Buffer
	printLevelStats(&out, byLevel)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Header, rule, then easy, hard, custom; normal has no runs
	if len(lines) != 5 {
		t.Fatalf("got %d lines, expected 5:\n%s", len(lines), out.String())
	}
	wantPrefixes := []string{"easy", "hard", "custom"}
	for i, want := range wantPrefixes {
		fields := strings.Fields(lines[2+i])
		if fields[0] != want {
			t.Errorf("line %d level = %q, expected %q", i, fields[0], want)
		}
	}
	if fields := strings.Fields(lines[2]); fields[1] != "2" || fields[2] != "500" {
		t.Errorf("easy line = %q, expected 2 runs with best 500", lines[2])
	}
}

func TestPrintRuns(t *testing.T) {
	var out bytes.Buffer
	printRuns(&out, []storage.Run{
		{Difficulty: "normal", Score: 700, Distance: 321.4, Duration: 12.34},
	})

	if !strings.Contains(out.String(), "700") || !strings.Contains(out.String(), "12.3s") {
		t.Errorf("printRuns output missing run values:\n%s", out.String())
	}
}
