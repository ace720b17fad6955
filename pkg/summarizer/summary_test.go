package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithRun(t *testing.T) {
	summary := NewBuilder().
		WithRun("/data/timelapse", "/data/timelapse/clips", 1500).
		WithDryRun(true).
		Build()

	if summary.Run.Source != "/data/timelapse" {
		t.Errorf("expected source '/data/timelapse', got '%s'", summary.Run.Source)
	}
	if summary.Run.Destination != "/data/timelapse/clips" {
		t.Errorf("expected destination '/data/timelapse/clips', got '%s'", summary.Run.Destination)
	}
	if summary.Run.ElapsedMs != 1500 {
		t.Errorf("expected ElapsedMs 1500, got %d", summary.Run.ElapsedMs)
	}
	if !summary.Run.DryRun {
		t.Error("expected DryRun to be true")
	}
}

func TestBuilder_WithSettings(t *testing.T) {
	summary := NewBuilder().
		WithSettings(Settings{
			FrameRate:    20,
			Codec:        "libx264",
			CRF:          20,
			PadFrames:    60,
			PadFrameRate: 1,
		}).
		Build()

	if summary.Settings.FrameRate != 20 {
		t.Errorf("expected FrameRate 20, got %d", summary.Settings.FrameRate)
	}
	if summary.Settings.Codec != "libx264" {
		t.Errorf("expected Codec 'libx264', got '%s'", summary.Settings.Codec)
	}
	if summary.Settings.PadFrames != 60 {
		t.Errorf("expected PadFrames 60, got %d", summary.Settings.PadFrames)
	}
}

func TestBuilder_AddClip(t *testing.T) {
	summary := NewBuilder().
		AddClip(ClipInfo{Name: "a", Status: StatusOK}).
		AddClip(ClipInfo{Name: "b", Status: StatusFailed, ExitCode: 1}).
		AddClip(ClipInfo{Name: "c", Status: StatusSkipped}).
		AddClip(ClipInfo{Name: "c_pad", Status: StatusOK, Padding: true}).
		Build()

	if len(summary.Clips) != 4 {
		t.Fatalf("expected 4 clips, got %d", len(summary.Clips))
	}
	if summary.Clips[3].Name != "c_pad" || !summary.Clips[3].Padding {
		t.Error("expected padding clip last")
	}

	counts := map[string]int{
		StatusOK:      2,
		StatusFailed:  1,
		StatusSkipped: 1,
		StatusDryRun:  0,
	}
	for status, want := range counts {
		if got := summary.Count(status); got != want {
			t.Errorf("Count(%s) = %d, want %d", status, got, want)
		}
	}
}
