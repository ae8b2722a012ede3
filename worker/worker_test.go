package worker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type upperTranslator struct{}

func (upperTranslator) TranslateLine(line string) string {
	return strings.ToUpper(line)
}

func (upperTranslator) TranslateFootnote(footnote string) string {
	return footnote
}

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	// The content mixes a plain ASCII cell with a Chinese one: only the
	// Chinese term should survive into the cross-file term set.
	content := "{\\rtf1{\\fonttbl{\\f1\\froman\\fcharset0 SimSun;}}\\widowctrl" +
		"\\f1{hello\\cell}" +
		"\\f1{你好\\cell}}"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}
	return path
}

func TestWorkerExtractTranslateAndStuff(t *testing.T) {
	root := t.TempDir()
	workspace := filepath.Join(root, "workspace")
	destination := filepath.Join(root, "result")
	input := writeSample(t, root, "sample.rtf")

	w, err := New(Config{
		Workspace:      workspace,
		DestinationDir: destination,
		Outputs:        []string{input},
	}, upperTranslator{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.ExtractTranslate()
	waitFor(t, func() bool { return w.Progress() == 1.0 })

	terms := w.TermSet()
	if len(terms) != 1 {
		t.Fatalf("term set = %v, want exactly one (Chinese) term", terms)
	}
	if got, want := terms["你好"], strings.ToUpper("你好"); got != want {
		t.Errorf("term set[你好] = %q, want %q", got, want)
	}
	if _, ok := terms["hello"]; ok {
		t.Errorf("term set = %v, ASCII-only term should be filtered out", terms)
	}

	w.ClearProgress()
	w.Stuff(nil)
	waitFor(t, func() bool {
		_, active, err := w.ReadLog()
		return err == nil && !active && w.Progress() == 1.0
	})

	out, err := os.ReadFile(filepath.Join(destination, "sample.rtf"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(out), "HELLO") {
		t.Errorf("output missing translated text: %q", out)
	}
}

func TestWorkerNewRequiresDirs(t *testing.T) {
	if _, err := New(Config{}, upperTranslator{}); err == nil {
		t.Error("expected an error for an empty Config")
	}
}

// TestWorkerExtractTranslateReachesCompletionOnFailure guards against a
// per-file failure stalling Progress short of 1.0, which would hang a
// caller polling for the extract phase to finish.
func TestWorkerExtractTranslateReachesCompletionOnFailure(t *testing.T) {
	root := t.TempDir()
	workspace := filepath.Join(root, "workspace")
	destination := filepath.Join(root, "result")

	good := writeSample(t, root, "sample.rtf")
	missing := filepath.Join(root, "does-not-exist.rtf")

	w, err := New(Config{
		Workspace:      workspace,
		DestinationDir: destination,
		Outputs:        []string{good, missing},
	}, upperTranslator{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.ExtractTranslate()
	waitFor(t, func() bool { return w.Progress() == 1.0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
