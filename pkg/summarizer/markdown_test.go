package summarizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Run: RunInfo{
			Source:      "/data/timelapse",
			Destination: "/data/timelapse/clips",
			ElapsedMs:   4200,
		},
		Settings: Settings{
			FrameRate:    20,
			Codec:        "libx264",
			CRF:          20,
			PadFrames:    60,
			PadFrameRate: 1,
		},
		Clips: []ClipInfo{
			{Name: "a", OutputPath: "/data/timelapse/clips/a.mp4", Status: StatusOK, Frames: 40, DurationMs: 2000, Width: 640, Height: 480, FileSize: 1536},
			{Name: "b", OutputPath: "/data/timelapse/clips/b.mp4", Status: StatusFailed, Frames: 12, ExitCode: 1},
			{Name: "b_pad", OutputPath: "/data/timelapse/clips/b_pad.mp4", Status: StatusOK, Frames: 60, DurationMs: 60000, Padding: true},
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	checks := []string{
		"# Clip Preparation Summary",
		"/data/timelapse/clips",
		"20 fps",
		"libx264 (CRF 20)",
		"60 frames at 1 fps",
		"4200 ms",
		"| a.mp4 | ok | 40 | 2000 ms | 640x480 | 1.50 KB |",
		"| b.mp4 | failed (1) | 12 | - | - | - |",
		"b_pad.mp4",
		"Written: 2, Failed: 1, Skipped: 0",
		"2024-01-15T10:30:00Z",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
}

func TestMarkdownFormatter_Format_SkipPadClip(t *testing.T) {
	summary := testSummary()
	summary.Settings.SkipPadClip = true
	summary.Settings.CRF = -1

	result := NewMarkdownFormatter().Format(summary)

	if !strings.Contains(result, "| Padding | Skipped |") {
		t.Error("expected padding to be reported as skipped")
	}
	if strings.Contains(result, "CRF") {
		t.Error("CRF must not be shown when unset")
	}
}

func TestMarkdownFormatter_Format_NoClips(t *testing.T) {
	summary := testSummary()
	summary.Clips = nil
	summary.Run.DryRun = true

	result := NewMarkdownFormatter().Format(summary)

	if !strings.Contains(result, "No clips were prepared.") {
		t.Error("expected empty clip notice")
	}
	if strings.Contains(result, "| Clip |") {
		t.Error("clip table must be omitted when empty")
	}
	if !strings.Contains(result, "| Dry Run | Yes |") {
		t.Error("expected dry run row")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Clip Preparation Summary": "クリップ作成サマリー",
			"Source":                   "ソース",
			"failed":                   "失敗",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	for _, want := range []string{"クリップ作成サマリー", "ソース", "失敗 (1)"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(testSummary())

	if !strings.Contains(result, "prepareclips v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.md")

	w := NewWriter(FormatFunc(func(s *Summary) string {
		return "source=" + s.Run.Source
	}))
	if err := w.Write(path, testSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if string(data) != "source=/data/timelapse" {
		t.Errorf("unexpected content %q", data)
	}
}
