// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"os"
	"sync"

	"github.com/user/prepareclips/pkg/ports"
)

// ClipEncoder is a mock implementation of ports.ClipEncoder.
// By default it writes a placeholder file to the output path.
type ClipEncoder struct {
	mu sync.Mutex

	EncodeClipFunc func(ctx context.Context, req ports.ClipRequest) (ports.EncodeResult, error)

	// Recorded calls for verification
	Calls []ports.ClipRequest
}

func (m *ClipEncoder) EncodeClip(ctx context.Context, req ports.ClipRequest) (ports.EncodeResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.EncodeClipFunc != nil {
		return m.EncodeClipFunc(ctx, req)
	}
	if err := os.WriteFile(req.OutputPath, []byte("mp4"), 0644); err != nil {
		return ports.EncodeResult{}, err
	}
	return ports.EncodeResult{Args: []string{"ffmpeg", "-i", req.InputPattern, req.OutputPath}}, nil
}

// Outputs returns the output paths of all recorded calls in order.
func (m *ClipEncoder) Outputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	outputs := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		outputs[i] = c.OutputPath
	}
	return outputs
}

// ExitError mimics an encoder error that carries captured stderr.
type ExitError struct {
	Code  int
	Lines []string
}

func (e *ExitError) Error() string { return "mock encoder failed" }

func (e *ExitError) Tail(n int) []string {
	if len(e.Lines) > n {
		return e.Lines[len(e.Lines)-n:]
	}
	return e.Lines
}

var _ ports.ClipEncoder = (*ClipEncoder)(nil)
