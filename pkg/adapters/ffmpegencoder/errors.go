package ffmpegencoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
var ErrFFmpegNotFound = errors.New("ffmpegencoder: ffmpeg not found")

// ExitError reports an ffmpeg run that finished with a non-zero status.
type ExitError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg exited with status %d", e.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Tail returns at most n trailing non-empty lines of the captured stderr.
// Carriage-return progress updates are split into separate lines.
func (e *ExitError) Tail(n int) []string {
	normalized := strings.ReplaceAll(e.Stderr, "\r", "\n")
	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
