// Package ffmpegencoder encodes PNG sequences into clips by running ffmpeg.
package ffmpegencoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/user/prepareclips/pkg/ports"
)

// waitDelay bounds how long Wait blocks on ffmpeg's output pipes after the
// process is killed on cancellation.
const waitDelay = 2 * time.Second

// Options configures an Encoder.
type Options struct {
	// FFmpegPath is the executable to run. Resolved with FindFFmpeg when empty.
	FFmpegPath string

	Settings Settings

	// Stream receives ffmpeg's output live in addition to the capture buffer.
	// Nil keeps ffmpeg silent.
	Stream io.Writer

	// DryRun logs the command line instead of running it.
	DryRun bool
}

// Encoder implements ports.ClipEncoder with an external ffmpeg process.
type Encoder struct {
	ffmpegPath string
	settings   Settings
	stream     io.Writer
	dryRun     bool
	logger     ports.Logger
}

// New creates an Encoder. It fails with ErrFFmpegNotFound when ffmpeg cannot
// be located, unless opts.DryRun is set.
func New(opts Options, logger ports.Logger) (*Encoder, error) {
	path, err := FindFFmpeg(opts.FFmpegPath)
	if err != nil {
		if !opts.DryRun {
			return nil, err
		}
		path = opts.FFmpegPath
		if path == "" {
			path = "ffmpeg"
		}
	}

	return &Encoder{
		ffmpegPath: path,
		settings:   opts.Settings,
		stream:     opts.Stream,
		dryRun:     opts.DryRun,
		logger:     logger.WithComponent("encoder"),
	}, nil
}

// Path returns the resolved ffmpeg executable.
func (e *Encoder) Path() string {
	return e.ffmpegPath
}

// EncodeClip runs ffmpeg for one clip and waits for it to exit.
func (e *Encoder) EncodeClip(ctx context.Context, req ports.ClipRequest) (ports.EncodeResult, error) {
	args := BuildArgs(e.settings, req)
	result := ports.EncodeResult{
		Args: append([]string{e.ffmpegPath}, args...),
	}

	commandLine := strings.Join(result.Args, " ")
	if e.dryRun {
		e.logger.Info("Would run: %s", commandLine)
		result.DryRun = true
		return result, nil
	}
	e.logger.Debug("Running: %s", commandLine)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)
	cmd.WaitDelay = waitDelay
	if e.stream != nil {
		cmd.Stdout = e.stream
		cmd.Stderr = io.MultiWriter(&stderr, e.stream)
	} else {
		cmd.Stderr = &stderr
	}

	start := time.Now()
	err := cmd.Run()
	result.ElapsedMs = time.Since(start).Milliseconds()

	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, &ExitError{
			ExitCode: result.ExitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return result, fmt.Errorf("start ffmpeg: %w", err)
}

var _ ports.ClipEncoder = (*Encoder)(nil)
