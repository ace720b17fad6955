package main

import (
	"github.com/ideamans/go-l10n"

	"github.com/user/prepareclips/pkg/adapters/ffmpegencoder"
	"github.com/user/prepareclips/pkg/orchestrator"
	"github.com/user/prepareclips/pkg/ports"
	"github.com/user/prepareclips/pkg/summarizer"
)

// buildSummary converts an orchestrator result into a summarizer.Summary.
func buildSummary(result orchestrator.RunResult, cfg orchestrator.Config, settings ffmpegencoder.Settings, dryRun bool, fs ports.FileSystem) *summarizer.Summary {
	builder := summarizer.NewBuilder().
		WithRun(result.Source, result.Destination, result.ElapsedMs).
		WithDryRun(dryRun).
		WithSettings(summarizer.Settings{
			FrameRate:    cfg.FrameRate,
			Codec:        settings.Codec,
			CRF:          settings.CRF,
			SkipPadClip:  cfg.SkipPadClip,
			PadFrames:    cfg.PadFrames,
			PadFrameRate: cfg.PadFrameRate,
		})

	for _, record := range result.Records() {
		clip := summarizer.ClipInfo{
			Name:       record.Name,
			OutputPath: record.OutputPath,
			Status:     record.Status.String(),
			Padding:    record.Padding,
			Frames:     record.FrameCount,
			ExitCode:   record.ExitCode,
		}
		if record.Info != nil {
			clip.DurationMs = record.Info.DurationMs
			clip.Width = record.Info.Width
			clip.Height = record.Info.Height
		}
		if record.Status == orchestrator.StatusOK {
			if info, err := fs.Stat(record.OutputPath); err == nil {
				clip.FileSize = info.Size()
			}
		}
		builder.AddClip(clip)
	}

	return builder.Build()
}

// writeSummary writes summary as Markdown to path.
func writeSummary(path string, summary *summarizer.Summary) error {
	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter).Write(path, summary)
}
