package env

import (
	"io"
	"os"
	"sync"

	"github.com/cdvelop/tinystring"
	tinytime "github.com/tinywasm/time"
)

// Logger is an append-only, timestamped log file with an independent read
// cursor, adapted from this pipeline's original worker logger: a writer
// appends lines while a reader polls from wherever it last left off,
// without the two needing to coordinate beyond the shared file.
type Logger struct {
	path string

	mu      sync.Mutex
	cursor  int64
	stopped bool
}

// NewLogger creates the log file at path if it does not exist yet; an
// existing file is kept as it is and appended to.
func NewLogger(path string) (*Logger, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return nil, err
		}
		f.Close()
	}
	return &Logger{path: path}, nil
}

// Write appends a single timestamped, leveled line to the log file.
func (l *Logger) Write(message string) error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := tinystring.Fmt("[%s][INFO] %s\n", tinytime.Now().Format("2006-01-02 15:04:05.000"), message)
	_, err = f.WriteString(line)
	return err
}

// Read returns everything written since the last Read call, along with
// whether the logger is still active (false once StopLogging has been called
// and all pending content has been drained).
func (l *Logger) Read() (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	if _, err := f.Seek(l.cursor, io.SeekStart); err != nil {
		return "", false, err
	}
	data, err := ReadAll(f)
	if err != nil {
		return "", false, err
	}
	l.cursor += int64(len(data))

	return string(data), !l.stopped, nil
}

// StopLogging marks the logger inactive; readers see it reflected on their
// next Read once the remaining content has drained.
func (l *Logger) StopLogging() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
}
