package ports

import "context"

// ClipEncoder abstracts the external video encoder.
type ClipEncoder interface {
	// EncodeClip encodes the frames matched by req.InputPattern into req.OutputPath.
	// It blocks until the encoder exits. A non-zero exit status is returned
	// as an error carrying the exit code.
	EncodeClip(ctx context.Context, req ClipRequest) (EncodeResult, error)
}

// ClipRequest describes one encoder invocation.
type ClipRequest struct {
	InputPattern string // Glob of input frames, e.g. "seq/*.png"
	OutputPath   string
	FrameRate    int
}

// EncodeResult is what the encoder reports after a run.
type EncodeResult struct {
	Args      []string // Full command line, executable first
	ExitCode  int
	DryRun    bool // True if the command was only logged
	ElapsedMs int64
}
