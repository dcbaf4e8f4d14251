package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func replayJSON(t *testing.T, opts *replayOptions) replayResult {
	t.Helper()
	opts.jsonOutput = true
	var out, errOut bytes.Buffer
	if err := runReplay(&out, &errOut, opts); err != nil {
		t.Fatalf("runReplay: %v (stderr: %s)", err, errOut.String())
	}
	var res replayResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	return res
}

func TestReplayIncrement(t *testing.T) {
	script := writeScript(t, `
steps:
  - action: click
    x: 100
    y: 65
`)
	res := replayJSON(t, &replayOptions{script: script})
	if res.Count != 1 {
		t.Errorf("count = %d, want 1", res.Count)
	}
	var types []string
	for _, e := range res.Events {
		if e.Key != "inc" {
			t.Errorf("event on %q, want inc", e.Key)
		}
		types = append(types, e.Type)
	}
	want := []string{"focus", "press-down", "press-up", "click"}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("event types mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayLockDisablesButtons(t *testing.T) {
	script := writeScript(t, `{"steps": [
  {"action": "click", "x": 50, "y": 100},
  {"action": "click", "x": 100, "y": 65}
]}`)
	res := replayJSON(t, &replayOptions{script: script})
	if res.Count != 0 {
		t.Errorf("count = %d, want 0 while locked", res.Count)
	}
	if !res.Locked {
		t.Error("counter should be locked")
	}
	for _, e := range res.Events {
		if e.Key == "inc" {
			t.Errorf("disabled button received %s", e.Type)
		}
	}
}

func TestReplayMetrics(t *testing.T) {
	script := writeScript(t, "steps:\n  - action: wait\n    frames: 3\n")
	res := replayJSON(t, &replayOptions{script: script, metrics: true})
	if got := res.Metrics["thicket_passes_total"]; got != float64(res.Passes) {
		t.Errorf("passes_total = %v, want %d", got, res.Passes)
	}
}

func TestReplayTextOutput(t *testing.T) {
	script := writeScript(t, "steps:\n  - action: click\n    x: 100\n    y: 65\n")
	var out, errOut bytes.Buffer
	if err := runReplay(&out, &errOut, &replayOptions{script: script}); err != nil {
		t.Fatalf("runReplay: %v", err)
	}
	if !strings.Contains(out.String(), "count: 1") {
		t.Errorf("output missing count:\n%s", out.String())
	}
}

func TestReplayUnknownTheme(t *testing.T) {
	script := writeScript(t, "steps:\n  - action: repaint\n")
	var out, errOut bytes.Buffer
	err := runReplay(&out, &errOut, &replayOptions{script: script, theme: "neon"})
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestRootCmdRequiresScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected missing --script error")
	}
}
