package env

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Write("first line"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, active, err := logger.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !active {
		t.Error("expected logger to report active before StopLogging")
	}
	if !strings.Contains(content, "first line") {
		t.Errorf("content = %q, missing written line", content)
	}

	// A second Read with nothing new written returns no additional content.
	more, _, err := logger.Read()
	if err != nil {
		t.Fatalf("second Read failed: %v", err)
	}
	if more != "" {
		t.Errorf("expected no new content, got %q", more)
	}

	logger.Write("second line")
	logger.StopLogging()

	final, active, err := logger.Read()
	if err != nil {
		t.Fatalf("final Read failed: %v", err)
	}
	if active {
		t.Error("expected logger to report inactive after StopLogging")
	}
	if !strings.Contains(final, "second line") {
		t.Errorf("final content = %q, missing second line", final)
	}
}
