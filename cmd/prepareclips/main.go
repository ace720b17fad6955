// Package main provides the CLI entry point for prepareclips.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/prepareclips/pkg/adapters/ffmpegencoder"
	"github.com/user/prepareclips/pkg/adapters/logger"
	"github.com/user/prepareclips/pkg/adapters/mp4probe"
	"github.com/user/prepareclips/pkg/adapters/osfilesystem"
	"github.com/user/prepareclips/pkg/config"
	"github.com/user/prepareclips/pkg/orchestrator"
	"github.com/user/prepareclips/pkg/ports"
)

var version = "dev"

// Exit statuses.
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// command holds the process-level dependencies of one invocation.
type command struct {
	stdout io.Writer
	stderr io.Writer

	// newConsole builds the logger for a level when --quiet is not set.
	newConsole func(level ports.LogLevel) ports.Logger

	log ports.Logger
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cmd := &command{
		stdout: os.Stdout,
		stderr: os.Stderr,
		newConsole: func(level ports.LogLevel) ports.Logger {
			return logger.NewConsole(level)
		},
	}
	code := cmd.run(ctx, os.Args)
	cancel()
	os.Exit(code)
}

// run executes the application and returns the process exit status.
func (cmd *command) run(ctx context.Context, args []string) int {
	app := newApp(cmd)
	return cmd.exitCode(app.RunContext(ctx, interspersedArgs(app.Flags, args)))
}

func newApp(cmd *command) *cli.App {
	return &cli.App{
		Name:            "prepareclips",
		Usage:           l10n.T("Turn directories of PNG frames into mp4 clips"),
		UsageText:       "prepareclips [options] SOURCE [options]",
		Description:     l10n.T("Each subdirectory of SOURCE becomes SOURCE/clips/<name>.mp4. A padding clip holding the last frame of the last subdirectory is added unless --skippadclip is given."),
		Version:         version,
		Writer:          cmd.stdout,
		ErrWriter:       cmd.stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "destination",
				Value:    "clips",
				Usage:    l10n.T("Destination directory, relative to SOURCE unless absolute"),
				Category: l10n.T("Output"),
			},
			&cli.IntFlag{
				Name:     "framerate",
				Aliases:  []string{"f"},
				Value:    20,
				Usage:    l10n.T("Clip frame rate"),
				Category: l10n.T("Output"),
			},
			&cli.BoolFlag{
				Name:     "skippadclip",
				Aliases:  []string{"s"},
				Usage:    l10n.T("Do not create a padding clip"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:      "summary",
				Usage:     l10n.T("Output run summary to file (Markdown format)"),
				TakesFile: true,
				Category:  l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     l10n.T("YAML configuration file"),
				TakesFile: true,
				Category:  l10n.T("Encoder"),
			},
			&cli.StringFlag{
				Name:      "ffmpeg",
				Usage:     l10n.T("Path to the ffmpeg executable"),
				EnvVars:   []string{"FFMPEG_PATH"},
				TakesFile: true,
				Category:  l10n.T("Encoder"),
			},
			&cli.BoolFlag{
				Name:     "dry-run",
				Aliases:  []string{"n"},
				Usage:    l10n.T("Log the encoder command lines without running them"),
				Category: l10n.T("Encoder"),
			},
			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    l10n.T("Enable debug output"),
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Action: cmd.action,
		OnUsageError: func(cCtx *cli.Context, err error, isSubcommand bool) error {
			_ = cli.ShowAppHelp(cCtx)
			return &usageError{err: err}
		},
		// Exit statuses are decided by exitCode, never inside the cli package.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (cmd *command) action(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		_ = cli.ShowAppHelp(cCtx)
		return &usageError{err: errors.New(l10n.T("exactly one SOURCE directory is required"))}
	}
	source := cCtx.Args().First()

	// Configuration errors are reported at the default level.
	cmd.log = cmd.newLogger(cCtx, ports.LevelInfo)

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err: err}
	}
	cmd.log = cmd.newLogger(cCtx, ports.ParseLogLevel(cfg.LogLevel))

	fs := osfilesystem.New()
	orchConfig := cfg.ToOrchestratorConfig(source)

	// Directories are checked before ffmpeg is looked up so a bad SOURCE is
	// reported as such on machines without ffmpeg.
	dest, err := orchestrator.Validate(fs, orchConfig)
	if err != nil {
		return err
	}

	// ffmpeg output is streamed only when debug messages are shown.
	var stream io.Writer
	if l, ok := cmd.log.(leveled); ok && l.Level() == ports.LevelDebug {
		stream = cmd.stderr
	}
	encoder, err := ffmpegencoder.New(ffmpegencoder.Options{
		FFmpegPath: cfg.FFmpegPath,
		Settings:   cfg.EncoderSettings(),
		Stream:     stream,
		DryRun:     cCtx.Bool("dry-run"),
	}, cmd.log)
	if err != nil {
		return err
	}
	cmd.log.Debug("Using ffmpeg at %s", encoder.Path())

	orch := orchestrator.New(encoder, mp4probe.New(), fs, cmd.log)
	result, err := orch.PrepareClips(cCtx.Context, orchConfig, dest)
	if err != nil {
		return err
	}

	cmd.log.Info("Prepared %d clips, %d failed, %d skipped",
		result.Count(orchestrator.StatusOK)+result.Count(orchestrator.StatusDryRun),
		result.Count(orchestrator.StatusFailed),
		result.Count(orchestrator.StatusSkipped))

	if path := cCtx.String("summary"); path != "" {
		summary := buildSummary(result, orchConfig, cfg.EncoderSettings(), cCtx.Bool("dry-run"), fs)
		if err := writeSummary(path, summary); err != nil {
			return fmt.Errorf("%w %s: %w", errSummary, path, err)
		}
		cmd.log.Info("Summary saved to %s", path)
	}

	return nil
}

// leveled is implemented by loggers that report their minimum level.
type leveled interface {
	Level() ports.LogLevel
}

// newLogger picks the logger: --quiet, then --debug, then level.
func (cmd *command) newLogger(cCtx *cli.Context, level ports.LogLevel) ports.Logger {
	switch {
	case cCtx.Bool("quiet"):
		return logger.NewNoop()
	case cCtx.Bool("debug"):
		return cmd.newConsole(ports.LevelDebug)
	default:
		return cmd.newConsole(level)
	}
}

var (
	errConfig  = errors.New("cannot read configuration file")
	errSummary = errors.New("cannot write summary")
)

// loadConfig layers the config file and explicitly set flags over the
// defaults.
func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := cCtx.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w %s: %w", errConfig, path, err)
		}
		cfg = loaded
	}

	if cCtx.IsSet("destination") {
		cfg.Destination = cCtx.String("destination")
	}
	if cCtx.IsSet("framerate") {
		cfg.FrameRate = cCtx.Int("framerate")
	}
	if cCtx.IsSet("log-level") {
		cfg.LogLevel = cCtx.String("log-level")
	}
	if cCtx.IsSet("ffmpeg") {
		cfg.FFmpegPath = cCtx.String("ffmpeg")
	}
	if cCtx.Bool("skippadclip") {
		cfg.Padding.Enabled = false
	}
	return cfg, nil
}

// exitCode reports err and maps it to an exit status.
func (cmd *command) exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(cmd.stderr, l10n.F("Incorrect usage: %s", uerr.err))
		return exitUsage
	}

	log := cmd.log
	if log == nil {
		log = cmd.newConsole(ports.LevelInfo)
	}

	switch {
	case errors.Is(err, context.Canceled):
		// Interrupts end the run quietly on a fresh line.
		fmt.Fprintln(cmd.stdout)
		return exitOK
	case errors.Is(err, ffmpegencoder.ErrFFmpegNotFound):
		log.Error("ffmpeg was not found. Install it or pass --ffmpeg.")
	default:
		if msg, ok := orchestrator.UserMessage(err); ok {
			log.Error(msg)
			log.Debug("%s", err)
		} else {
			log.Error("%s", err)
		}
	}
	return exitFatal
}
