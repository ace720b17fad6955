package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes formatted summaries to files.
type Writer struct {
	formatter Formatter
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter) *Writer {
	return &Writer{
		formatter: formatter,
	}
}

// Write formats the summary and writes it to path, creating parent
// directories as needed. An existing file is replaced.
func (w *Writer) Write(path string, summary *Summary) error {
	content := w.formatter.Format(summary)

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create summary directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
