package orchestrator

import "github.com/user/prepareclips/pkg/ports"

// ClipStatus is the outcome of one clip.
type ClipStatus int

const (
	StatusPending ClipStatus = iota
	StatusOK
	StatusFailed
	StatusSkipped
	StatusDryRun
)

func (s ClipStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusDryRun:
		return "dry-run"
	default:
		return "pending"
	}
}

// ClipRecord describes what happened to one sequence directory or padding clip.
type ClipRecord struct {
	Name        string
	SequenceDir string
	OutputPath  string
	FrameCount  int // Input frames handed to the encoder
	Padding     bool

	Status      ClipStatus
	ExitCode    int
	Err         error
	Diagnostics []string // Tail of encoder stderr on failure
	Info        *ports.ClipInfo
	ElapsedMs   int64
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	Source      string
	Destination string
	Clips       []ClipRecord
	Padding     *ClipRecord
	ElapsedMs   int64
}

// Count returns how many records, padding included, have status s.
func (r RunResult) Count(s ClipStatus) int {
	n := 0
	for _, c := range r.Records() {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Records returns the clip records followed by the padding record, if any.
func (r RunResult) Records() []ClipRecord {
	records := make([]ClipRecord, 0, len(r.Clips)+1)
	records = append(records, r.Clips...)
	if r.Padding != nil {
		records = append(records, *r.Padding)
	}
	return records
}
