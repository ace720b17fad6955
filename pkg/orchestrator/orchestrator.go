// Package orchestrator turns directories of PNG frames into clips.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/prepareclips/pkg/ports"
)

const (
	// DefaultPadFrames is the number of copies of the last frame in a padding clip.
	DefaultPadFrames = 60
	// MaxPadFrames keeps padding frame names at two digits.
	MaxPadFrames = 100

	// diagnosticLines is how much encoder stderr is reported on failure.
	diagnosticLines = 20
)

// Config contains all configuration for the orchestrator.
type Config struct {
	Source      string
	Destination string // Relative to Source unless absolute
	FrameRate   int
	Pattern     string // Frame glob inside each sequence directory

	SkipPadClip  bool
	PadFrames    int
	PadFrameRate int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Destination:  "clips",
		FrameRate:    20,
		Pattern:      "*.png",
		PadFrames:    DefaultPadFrames,
		PadFrameRate: 1,
	}
}

// Orchestrator validates directories and drives the encoder over every
// sequence directory of a source.
type Orchestrator struct {
	encoder ports.ClipEncoder
	prober  ports.ClipProber
	fs      ports.FileSystem
	logger  ports.Logger
}

// New creates a new Orchestrator. prober may be nil.
func New(encoder ports.ClipEncoder, prober ports.ClipProber, fs ports.FileSystem, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		encoder: encoder,
		prober:  prober,
		fs:      fs,
		logger:  logger,
	}
}

// Validate checks the source and creates the destination if needed.
// It returns the resolved destination path.
func Validate(fs ports.FileSystem, config Config) (string, error) {
	if err := VerifySource(fs, config.Source); err != nil {
		return "", err
	}
	dest := ResolveDestination(config.Source, config.Destination)
	if err := VerifyDestination(fs, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Run validates the directories and prepares all clips.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	dest, err := Validate(o.fs, config)
	if err != nil {
		return RunResult{Source: config.Source}, err
	}
	return o.PrepareClips(ctx, config, dest)
}

// PrepareClips encodes one clip per immediate subdirectory of config.Source,
// in name order, then the padding clip for the last one. Encoder failures are
// recorded and do not stop the batch; filesystem failures and cancellation do.
func (o *Orchestrator) PrepareClips(ctx context.Context, config Config, dest string) (result RunResult, err error) {
	start := time.Now()
	result = RunResult{
		Source:      config.Source,
		Destination: dest,
	}
	defer func() {
		result.ElapsedMs = time.Since(start).Milliseconds()
	}()

	entries, err := o.fs.ReadDir(config.Source)
	if err != nil {
		return result, clipError("read "+config.Source, err)
	}

	var last string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		child := filepath.Join(config.Source, entry.Name())
		info, err := o.fs.Stat(child)
		if err != nil {
			o.logger.Debug("Skipping %s: %s", child, err)
			continue
		}
		if !info.IsDir() {
			continue
		}

		same, err := o.fs.SameFile(child, dest)
		if err != nil {
			return result, clipError("stat "+child, err)
		}
		if same {
			o.logger.Debug("Skipping destination directory %s", child)
			continue
		}

		last = child
		record, err := o.PrepareClip(ctx, config, child, dest)
		result.Clips = append(result.Clips, record)
		if err != nil {
			return result, err
		}
	}

	if last == "" {
		o.logger.Warn("No sequence directories found in %s", config.Source)
		return result, nil
	}

	if !config.SkipPadClip {
		record, err := o.PreparePaddingClip(ctx, config, last, dest)
		result.Padding = &record
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// PrepareClip encodes the frames of seqDir into <dest>/<name>.mp4,
// replacing any earlier clip of that name.
func (o *Orchestrator) PrepareClip(ctx context.Context, config Config, seqDir, dest string) (ClipRecord, error) {
	name := filepath.Base(seqDir)
	record := ClipRecord{
		Name:        name,
		SequenceDir: seqDir,
		OutputPath:  filepath.Join(dest, name+".mp4"),
	}

	frames, err := o.fs.Glob(filepath.Join(seqDir, config.Pattern))
	if err != nil {
		return record, fmt.Errorf("glob %s: %w", config.Pattern, err)
	}
	record.FrameCount = len(frames)
	if len(frames) == 0 {
		o.logger.Warn("No frames matching %s in %s, skipping", config.Pattern, seqDir)
		record.Status = StatusSkipped
		return record, nil
	}

	if err := o.removeExisting(record.OutputPath); err != nil {
		return record, err
	}

	o.logger.Info("Preparing clip for %s - destination %s", seqDir, record.OutputPath)
	err = o.encode(ctx, &record, ports.ClipRequest{
		InputPattern: filepath.Join(seqDir, config.Pattern),
		OutputPath:   record.OutputPath,
		FrameRate:    config.FrameRate,
	})
	return record, err
}

// PreparePaddingClip builds <dest>/<name>_pad.mp4 from copies of the last
// frame of seqDir. The copies live in a temporary directory that is always
// removed before returning.
func (o *Orchestrator) PreparePaddingClip(ctx context.Context, config Config, seqDir, dest string) (ClipRecord, error) {
	name := filepath.Base(seqDir)
	record := ClipRecord{
		Name:        name + "_pad",
		SequenceDir: seqDir,
		OutputPath:  filepath.Join(dest, name+"_pad.mp4"),
		Padding:     true,
	}

	frames, err := o.fs.Glob(filepath.Join(seqDir, config.Pattern))
	if err != nil {
		return record, fmt.Errorf("glob %s: %w", config.Pattern, err)
	}
	if len(frames) == 0 {
		o.logger.Warn("No frames for a pad clip in %s, skipping", seqDir)
		record.Status = StatusSkipped
		return record, nil
	}
	lastFrame := frames[len(frames)-1]

	if err := o.removeExisting(record.OutputPath); err != nil {
		return record, err
	}

	tempDir, err := o.fs.MkdirTemp("prepareclips-pad-*")
	if err != nil {
		return record, clipError("create temporary directory", err)
	}
	defer func() {
		if err := o.fs.RemoveAll(tempDir); err != nil {
			o.logger.Warn("Could not remove temporary directory %s: %s", tempDir, err)
		}
	}()

	count := config.PadFrames
	if count <= 0 {
		count = DefaultPadFrames
	}
	ext := filepath.Ext(lastFrame)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return record, err
		}
		frame := filepath.Join(tempDir, fmt.Sprintf("%02d%s", i, ext))
		if err := o.fs.CopyFile(lastFrame, frame); err != nil {
			return record, clipError("copy "+lastFrame, err)
		}
	}
	record.FrameCount = count

	rate := config.PadFrameRate
	if rate <= 0 {
		rate = 1
	}

	o.logger.Info("Preparing pad clip from %s - destination %s", seqDir, record.OutputPath)
	err = o.encode(ctx, &record, ports.ClipRequest{
		InputPattern: filepath.Join(tempDir, "*"+ext),
		OutputPath:   record.OutputPath,
		FrameRate:    rate,
	})
	return record, err
}

// encode runs the encoder and fills record. Only cancellation is returned as
// an error; encoder failures are logged and recorded.
func (o *Orchestrator) encode(ctx context.Context, record *ClipRecord, req ports.ClipRequest) error {
	res, err := o.encoder.EncodeClip(ctx, req)
	record.ElapsedMs = res.ElapsedMs
	record.ExitCode = res.ExitCode

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		record.Status = StatusFailed
		record.Err = err
		if res.ExitCode != 0 {
			o.logger.Warn("Encoder failed for %s with exit status %d", record.SequenceDir, res.ExitCode)
		} else {
			o.logger.Warn("Encoder failed for %s: %s", record.SequenceDir, err)
		}
		var d diagnostics
		if errors.As(err, &d) {
			record.Diagnostics = d.Tail(diagnosticLines)
			for _, line := range record.Diagnostics {
				o.logger.Warn("  %s", line)
			}
		}
		return nil
	}

	if res.DryRun {
		record.Status = StatusDryRun
		return nil
	}
	record.Status = StatusOK
	o.inspect(record)
	return nil
}

func (o *Orchestrator) inspect(record *ClipRecord) {
	if o.prober == nil {
		return
	}
	log := o.logger.WithComponent("probe")
	info, err := o.prober.Probe(record.OutputPath)
	if err != nil {
		log.Debug("Could not inspect %s: %s", record.OutputPath, err)
		return
	}
	record.Info = &info
	log.Debug("Clip %s: %d frames, %d ms, %s %dx%d", record.OutputPath, info.Frames, info.DurationMs, info.Codec, info.Width, info.Height)
}

func (o *Orchestrator) removeExisting(path string) error {
	exists, err := o.fs.Exists(path)
	if err != nil {
		return clipError("stat "+path, err)
	}
	if !exists {
		return nil
	}
	if err := o.fs.Remove(path); err != nil {
		return clipError("remove "+path, err)
	}
	return nil
}

// diagnostics is implemented by encoder errors that captured output.
type diagnostics interface {
	Tail(n int) []string
}
