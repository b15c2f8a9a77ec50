package reader

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/siherrmann/wordarray/core/validation"
	"github.com/siherrmann/wordarray/helper"
)

// ErrFileRead is wrapped by every error caused by opening or scanning a file
var ErrFileRead = errors.New("file not found or cannot be read")

// maxLineSize bounds a single scanned line
const maxLineSize = 1024 * 1024

// Reader reads the lines of a file that contain at least one valid word.
// The first successful read is cached for the lifetime of the reader.
type Reader struct {
	path   string
	log    *slog.Logger
	mu     sync.Mutex
	cached []string
}

// NewReader creates a reader for path. Logger may be nil.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{
		path: path,
		log:  helper.LoggerOrDiscard(logger).With(slog.String("component", "reader"), slog.String("path", path)),
	}
}

// Path returns the file path of the reader
func (r *Reader) Path() string {
	return r.path
}

// ReadValidLines returns the trimmed non-blank lines containing at least
// one valid word, in file order. Subsequent calls return a copy of the
// cached result without touching the file.
func (r *Reader) ReadValidLines() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		r.log.Debug("Returning cached lines")
		return append([]string{}, r.cached...), nil
	}

	r.log.Info("Reading and validating lines from file")
	file, err := os.Open(r.path)
	if err != nil {
		r.log.Error("Error opening file", slog.Any("error", err))
		return nil, helper.NewError("read valid lines", fmt.Errorf("%w: %s: %w", ErrFileRead, r.path, err))
	}
	defer file.Close()

	lines := []string{}
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			r.log.Debug("Empty line skipped", slog.Int("line", lineNumber))
			continue
		}
		if !validation.ValidateLine(line) {
			r.log.Debug("Line without valid words skipped", slog.Int("line", lineNumber), slog.String("content", line))
			continue
		}

		lines = append(lines, strings.TrimSpace(line))
		r.log.Debug("Line accepted", slog.Int("line", lineNumber))
	}
	if err := scanner.Err(); err != nil {
		r.log.Error("Error reading file", slog.Any("error", err))
		return nil, helper.NewError("read valid lines", fmt.Errorf("%w: %s: %w", ErrFileRead, r.path, err))
	}

	r.cached = lines
	r.log.Info("Processed file", slog.Int("valid_lines", len(lines)), slog.Int("total_lines", lineNumber))

	return append([]string{}, lines...), nil
}

// LogFileStatistics logs the number of valid lines and each valid line at
// Info level. Read errors are logged, not returned.
func (r *Reader) LogFileStatistics() {
	lines, err := r.ReadValidLines()
	if err != nil {
		r.log.Error("Error generating file statistics", slog.Any("error", err))
		return
	}

	r.log.Info("File statistics", slog.Int("valid_lines", len(lines)))
	if len(lines) == 0 {
		r.log.Info("No valid lines found in file")
		return
	}
	for i, line := range lines {
		r.log.Info("Valid line", slog.Int("index", i+1), slog.String("content", line))
	}
}
