package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion sets the version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Clip Preparation Summary"))

	fmt.Fprintf(&sb, "| %s | %s |\n", t("Item"), t("Value"))
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Source"), summary.Run.Source)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Destination"), summary.Run.Destination)
	fmt.Fprintf(&sb, "| %s | %d fps |\n", t("Frame Rate"), summary.Settings.FrameRate)
	if summary.Settings.Codec != "" {
		codec := summary.Settings.Codec
		if summary.Settings.CRF >= 0 {
			codec = fmt.Sprintf("%s (CRF %d)", codec, summary.Settings.CRF)
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Codec"), codec)
	}
	if summary.Settings.SkipPadClip {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Padding"), t("Skipped"))
	} else {
		fmt.Fprintf(&sb, "| %s | %d frames at %d fps |\n", t("Padding"), summary.Settings.PadFrames, summary.Settings.PadFrameRate)
	}
	fmt.Fprintf(&sb, "| %s | %d ms |\n", t("Elapsed"), summary.Run.ElapsedMs)
	if summary.Run.DryRun {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Dry Run"), t("Yes"))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Clips"))
	if len(summary.Clips) == 0 {
		fmt.Fprintf(&sb, "%s\n\n", t("No clips were prepared."))
	} else {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
			t("Clip"), t("Status"), t("Frames"), t("Duration"), t("Resolution"), t("File Size"))
		sb.WriteString("|---|---|---:|---:|---|---:|\n")
		for _, c := range summary.Clips {
			fmt.Fprintf(&sb, "| %s | %s | %d | %s | %s | %s |\n",
				clipName(c), f.status(c), c.Frames, durationCell(c.DurationMs), resolutionCell(c.Width, c.Height), sizeCell(c.FileSize))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%s: %d, %s: %d, %s: %d\n\n",
		t("Written"), summary.Count(StatusOK),
		t("Failed"), summary.Count(StatusFailed),
		t("Skipped"), summary.Count(StatusSkipped))

	sb.WriteString("---\n\n")
	generated := summary.GeneratedAt.Format(time.RFC3339)
	if f.version != "" {
		fmt.Fprintf(&sb, "%s prepareclips %s, %s\n", t("Generated by"), f.version, generated)
	} else {
		fmt.Fprintf(&sb, "%s prepareclips, %s\n", t("Generated by"), generated)
	}

	return sb.String()
}

func (f *MarkdownFormatter) status(c ClipInfo) string {
	if c.Status == StatusFailed && c.ExitCode != 0 {
		return fmt.Sprintf("%s (%d)", f.translate(c.Status), c.ExitCode)
	}
	return f.translate(c.Status)
}

func clipName(c ClipInfo) string {
	if c.OutputPath == "" {
		return c.Name
	}
	name := c.OutputPath
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func durationCell(ms int) string {
	if ms <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d ms", ms)
}

func resolutionCell(w, h int) string {
	if w <= 0 || h <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dx%d", w, h)
}

func sizeCell(bytes int64) string {
	if bytes <= 0 {
		return "-"
	}
	return formatBytes(bytes)
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
