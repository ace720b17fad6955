package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/prepareclips/pkg/adapters/ffmpegencoder"
	"github.com/user/prepareclips/pkg/adapters/ggframes"
	"github.com/user/prepareclips/pkg/adapters/logger"
	"github.com/user/prepareclips/pkg/orchestrator"
	"github.com/user/prepareclips/pkg/ports"
)

func newTestCommand() (*command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &command{
		stdout: &stdout,
		stderr: &stderr,
		newConsole: func(level ports.LogLevel) ports.Logger {
			return logger.NewConsoleWithWriters(level, &stdout, &stderr, false)
		},
	}
	return cmd, &stdout, &stderr
}

// makeSource creates SOURCE with one directory of frames per name.
func makeSource(t *testing.T, names ...string) string {
	t.Helper()
	src := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(src, name)
		os.Mkdir(dir, 0755)
		for i := 0; i < 3; i++ {
			os.WriteFile(filepath.Join(dir, fmt.Sprintf("%04d.png", i)), []byte("png"), 0644)
		}
	}
	return src
}

func TestRun_UsageErrors(t *testing.T) {
	src := makeSource(t, "a")

	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"prepareclips"}},
		{"two sources", []string{"prepareclips", src, src}},
		{"non-integer framerate", []string{"prepareclips", "-f", "2.5", src}},
		{"zero framerate", []string{"prepareclips", "--framerate", "0", src}},
		{"unknown flag", []string{"prepareclips", "--speed", "2", src}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, stderr := newTestCommand()
			if code := cmd.run(context.Background(), tt.args); code != exitUsage {
				t.Errorf("expected exit %d, got %d", exitUsage, code)
			}
			if stderr.Len() == 0 {
				t.Error("expected a usage message on stderr")
			}
		})
	}

	if _, err := os.Stat(filepath.Join(src, "clips")); !os.IsNotExist(err) {
		t.Error("usage errors must not create the destination")
	}
}

func TestRun_ValidationFailures(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "frame.png")
	os.WriteFile(file, []byte("png"), 0644)

	destIsFile := makeSource(t, "a")
	os.WriteFile(filepath.Join(destIsFile, "clips"), []byte("x"), 0644)

	tests := []struct {
		name   string
		source string
	}{
		{"missing source", filepath.Join(root, "missing")},
		{"source is a file", file},
		{"destination is a file", destIsFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, stdout, stderr := newTestCommand()
			// No ffmpeg is needed to reject bad directories.
			code := cmd.run(context.Background(), []string{"prepareclips", "-d", "--ffmpeg", filepath.Join(root, "no-ffmpeg"), tt.source})
			if code != exitFatal {
				t.Errorf("expected exit %d, got %d", exitFatal, code)
			}
			if stderr.Len() == 0 {
				t.Error("expected an error message on stderr")
			}
			if !strings.Contains(stdout.String(), tt.source) {
				t.Errorf("expected debug detail to name %s, got %q", tt.source, stdout.String())
			}
		})
	}

	if _, err := os.Stat(filepath.Join(root, "missing")); !os.IsNotExist(err) {
		t.Error("nothing may be created for a missing source")
	}
}

func TestRun_FFmpegNotFound(t *testing.T) {
	src := makeSource(t, "a")

	cmd, _, stderr := newTestCommand()
	code := cmd.run(context.Background(), []string{"prepareclips", "--ffmpeg", filepath.Join(t.TempDir(), "ffmpeg"), src})
	if code != exitFatal {
		t.Errorf("expected exit %d, got %d", exitFatal, code)
	}
	if !strings.Contains(stderr.String(), "--ffmpeg") {
		t.Errorf("expected hint about --ffmpeg, got %q", stderr.String())
	}
}

func TestRun_DryRun(t *testing.T) {
	src := makeSource(t, "a", "b")
	summary := filepath.Join(t.TempDir(), "report", "summary.md")

	cmd, stdout, _ := newTestCommand()
	code := cmd.run(context.Background(), []string{
		"prepareclips", "-n", "--ffmpeg", filepath.Join(t.TempDir(), "ffmpeg"),
		"-f", "12", "--summary", summary, src,
	})
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}

	out := stdout.String()
	for _, want := range []string{
		filepath.Join(src, "clips", "a.mp4"),
		filepath.Join(src, "clips", "b.mp4"),
		filepath.Join(src, "clips", "b_pad.mp4"),
		"-framerate 12",
		"-framerate 1 ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if _, err := os.Stat(filepath.Join(src, "clips", "a.mp4")); !os.IsNotExist(err) {
		t.Error("dry run must not write clips")
	}

	data, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
	if !strings.Contains(string(data), "b_pad.mp4") {
		t.Errorf("expected summary to list b_pad.mp4:\n%s", data)
	}
}

func TestRun_SkipPadClip(t *testing.T) {
	src := makeSource(t, "a")

	cmd, stdout, _ := newTestCommand()
	code := cmd.run(context.Background(), []string{"prepareclips", "-n", "-s", "--ffmpeg", "ffmpeg", src})
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if strings.Contains(stdout.String(), "a_pad.mp4") {
		t.Error("padding clip must be skipped")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	src := makeSource(t, "a")
	cfgPath := filepath.Join(t.TempDir(), "prepareclips.yaml")
	os.WriteFile(cfgPath, []byte("destination: out\nframerate: 7\npadding:\n  enabled: false\n"), 0644)

	t.Run("file values", func(t *testing.T) {
		cmd, stdout, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-n", "-c", cfgPath, "--ffmpeg", "ffmpeg", src})
		if code != exitOK {
			t.Fatalf("expected exit %d, got %d", exitOK, code)
		}
		out := stdout.String()
		if !strings.Contains(out, filepath.Join(src, "out", "a.mp4")) {
			t.Errorf("expected destination from config file:\n%s", out)
		}
		if !strings.Contains(out, "-framerate 7") {
			t.Errorf("expected framerate from config file:\n%s", out)
		}
		if strings.Contains(out, "a_pad.mp4") {
			t.Error("padding disabled in config file")
		}
	})

	t.Run("flags override file", func(t *testing.T) {
		cmd, stdout, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-n", "-c", cfgPath, "-f", "30", "--ffmpeg", "ffmpeg", src})
		if code != exitOK {
			t.Fatalf("expected exit %d, got %d", exitOK, code)
		}
		if !strings.Contains(stdout.String(), "-framerate 30") {
			t.Errorf("expected framerate flag to win:\n%s", stdout.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-c", filepath.Join(t.TempDir(), "none.yaml"), src})
		if code != exitFatal {
			t.Errorf("expected exit %d, got %d", exitFatal, code)
		}
	})
}

func TestRun_Quiet(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()
	code := cmd.run(context.Background(), []string{"prepareclips", "-q", filepath.Join(t.TempDir(), "missing")})
	if code != exitFatal {
		t.Errorf("expected exit %d, got %d", exitFatal, code)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("expected no output, got %q / %q", stdout.String(), stderr.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"interrupted", fmt.Errorf("encode: %w", context.Canceled), exitOK},
		{"usage", &usageError{err: fmt.Errorf("bad flag")}, exitUsage},
		{"source", fmt.Errorf("%w: /data", orchestrator.ErrSourceNotFound), exitFatal},
		{"clip", orchestrator.ErrClipPermission, exitFatal},
		{"ffmpeg", ffmpegencoder.ErrFFmpegNotFound, exitFatal},
		{"other", fmt.Errorf("unexpected"), exitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand()
			if got := cmd.exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCode_InterruptPrintsNewline(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()
	cmd.exitCode(context.Canceled)

	if stdout.String() != "\n" {
		t.Errorf("expected a single newline, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no error output, got %q", stderr.String())
	}
}

func TestRun_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !ffmpegencoder.IsFFmpegAvailable() {
		t.Skip("ffmpeg not available")
	}

	src := t.TempDir()
	for _, name := range []string{"a", "b"} {
		if _, err := ggframes.WriteSequence(filepath.Join(src, name), ggframes.Spec{Width: 33, Height: 25, Count: 4}); err != nil {
			t.Fatalf("write frames: %v", err)
		}
	}

	for run := 0; run < 2; run++ {
		cmd, _, stderr := newTestCommand()
		if code := cmd.run(context.Background(), []string{"prepareclips", "-q", src}); code != exitOK {
			t.Fatalf("run %d: expected exit %d, got %d: %s", run, exitOK, code, stderr.String())
		}
	}

	for _, name := range []string{"a.mp4", "b.mp4", "b_pad.mp4"} {
		info, err := os.Stat(filepath.Join(src, "clips", name))
		if err != nil {
			t.Errorf("expected %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if _, err := os.Stat(filepath.Join(src, "clips", "a_pad.mp4")); !os.IsNotExist(err) {
		t.Error("only the last sequence gets a padding clip")
	}
}

func TestRun_FlagsAfterSource(t *testing.T) {
	src := makeSource(t, "a", "b")

	t.Run("options follow source", func(t *testing.T) {
		cmd, stdout, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{
			"prepareclips", src, "-n", "-s", "--ffmpeg", "ffmpeg", "--destination", "out", "-f", "9",
		})
		if code != exitOK {
			t.Fatalf("expected exit %d, got %d", exitOK, code)
		}
		out := stdout.String()
		if !strings.Contains(out, filepath.Join(src, "out", "b.mp4")) {
			t.Errorf("expected destination option after SOURCE to apply:\n%s", out)
		}
		if !strings.Contains(out, "-framerate 9") {
			t.Errorf("expected framerate option after SOURCE to apply:\n%s", out)
		}
		if strings.Contains(out, "b_pad.mp4") {
			t.Error("expected -s after SOURCE to skip the padding clip")
		}
	})

	t.Run("options on both sides", func(t *testing.T) {
		cmd, stdout, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-n", src, "--ffmpeg=ffmpeg", "--skippadclip"})
		if code != exitOK {
			t.Fatalf("expected exit %d, got %d", exitOK, code)
		}
		if strings.Contains(stdout.String(), "b_pad.mp4") {
			t.Error("expected --skippadclip after SOURCE to skip the padding clip")
		}
	})

	t.Run("double dash ends options", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-n", "--ffmpeg", "ffmpeg", src, "--", "-s"})
		if code != exitUsage {
			t.Errorf("expected -s after -- to count as a second SOURCE, got exit %d", code)
		}
	})
}

func TestInterspersedArgs(t *testing.T) {
	flags := newApp(&command{}).Flags

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"source only", []string{"p", "src"}, []string{"p", "--", "src"}},
		{"options first", []string{"p", "-s", "src"}, []string{"p", "-s", "--", "src"}},
		{"bool after source", []string{"p", "src", "-s"}, []string{"p", "-s", "--", "src"}},
		{"value after source", []string{"p", "src", "--destination", "out"}, []string{"p", "--destination", "out", "--", "src"}},
		{"short value", []string{"p", "src", "-f", "5"}, []string{"p", "-f", "5", "--", "src"}},
		{"inline value", []string{"p", "src", "--summary=run.md"}, []string{"p", "--summary=run.md", "--", "src"}},
		{"value that looks like a flag", []string{"p", "src", "--destination", "-out"}, []string{"p", "--destination", "-out", "--", "src"}},
		{"double dash", []string{"p", "-n", "--", "-src"}, []string{"p", "-n", "--", "-src"}},
		{"no source", []string{"p", "-h"}, []string{"p", "-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interspersedArgs(flags, tt.args)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("interspersedArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_LogLevel(t *testing.T) {
	src := makeSource(t, "a")

	t.Run("warn hides progress", func(t *testing.T) {
		cmd, stdout, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "-n", "-l", "warn", "--ffmpeg", "ffmpeg", src})
		if code != exitOK {
			t.Fatalf("expected exit %d, got %d", exitOK, code)
		}
		if stdout.Len() != 0 {
			t.Errorf("expected no info output, got %q", stdout.String())
		}
	})

	t.Run("config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "prepareclips.yaml")
		os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0644)

		cmd, stdout, _ := newTestCommand()
		missing := filepath.Join(t.TempDir(), "missing")
		code := cmd.run(context.Background(), []string{"prepareclips", "-c", cfgPath, missing})
		if code != exitFatal {
			t.Fatalf("expected exit %d, got %d", exitFatal, code)
		}
		if !strings.Contains(stdout.String(), missing) {
			t.Errorf("expected debug detail from config log level, got %q", stdout.String())
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		code := cmd.run(context.Background(), []string{"prepareclips", "--log-level", "verbose", src})
		if code != exitUsage {
			t.Errorf("expected exit %d, got %d", exitUsage, code)
		}
	})
}
