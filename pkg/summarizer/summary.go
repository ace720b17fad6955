// Package summarizer provides summary generation for clip preparation runs.
package summarizer

import "time"

// Clip statuses as they appear in a summary.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
	StatusDryRun  = "dry-run"
)

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Directories and timing
	Run RunInfo

	// Encoder settings
	Settings Settings

	// One entry per clip, padding clip last
	Clips []ClipInfo
}

// RunInfo describes the directories of a run.
type RunInfo struct {
	Source      string
	Destination string
	ElapsedMs   int64
	DryRun      bool
}

// Settings contains the encoding configuration.
type Settings struct {
	FrameRate    int
	Codec        string
	CRF          int // Negative when unset
	SkipPadClip  bool
	PadFrames    int
	PadFrameRate int
}

// ClipInfo contains information about one output clip.
type ClipInfo struct {
	Name       string
	OutputPath string
	Status     string
	Padding    bool

	Frames     int // Input frames
	DurationMs int // From the written file, 0 if unknown
	Width      int
	Height     int
	FileSize   int64
	ExitCode   int
}

// Count returns the number of clips with the given status.
func (s *Summary) Count(status string) int {
	n := 0
	for _, c := range s.Clips {
		if c.Status == status {
			n++
		}
	}
	return n
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRun sets the directories and elapsed time.
func (b *Builder) WithRun(source, destination string, elapsedMs int64) *Builder {
	b.summary.Run.Source = source
	b.summary.Run.Destination = destination
	b.summary.Run.ElapsedMs = elapsedMs
	return b
}

// WithDryRun marks the run as a dry run.
func (b *Builder) WithDryRun(dryRun bool) *Builder {
	b.summary.Run.DryRun = dryRun
	return b
}

// WithSettings sets encoding settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// AddClip appends a clip.
func (b *Builder) AddClip(clip ClipInfo) *Builder {
	b.summary.Clips = append(b.summary.Clips, clip)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
