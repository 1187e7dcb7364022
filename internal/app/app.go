package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/phuslu/log"

	"lazytail/internal/config"
	"lazytail/internal/core"
	"lazytail/internal/decoder"
	"lazytail/internal/pipeline"
	"lazytail/internal/source"
	"lazytail/internal/ui"
)

// Options configure the application.
type Options struct {
	ConfigPath string
	FilePath   string        // tail this file
	Command    string        // or stream this command's stdout
	Format     string        // plain, json or structured
	FromStart  bool          // include the file's existing backlog
	PollEvery  time.Duration // zero uses the configured interval
}

// Run boots the viewer until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.DebugLogPath)

	dec, err := buildDecoder(opts.Format)
	if err != nil {
		return err
	}
	src, title, err := buildSource(opts)
	if err != nil {
		return err
	}

	interval := cfg.PollInterval()
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	queue := pipeline.NewQueue(cfg.QueueCapacity)
	p := pipeline.Start(pipeline.Options{
		Source:       src,
		Decoder:      dec,
		Queue:        queue,
		PollInterval: interval,
		Logger:       logger,
	})
	defer p.Stop()

	return ui.Run(ctx, ui.Options{
		Queue:   queue,
		Decoder: dec,
		Logger:  logger,
		Title:   title,
		Theme:   cfg.Theme,
		Follow:  cfg.Follow,
	})
}

// newLogger writes diagnostics to a file; the terminal belongs to the TUI.
func newLogger(path string) *log.Logger {
	return &log.Logger{
		Level:      log.DebugLevel,
		TimeFormat: "15:04:05.000",
		Writer: &log.FileWriter{
			Filename:     path,
			MaxSize:      10 << 20,
			MaxBackups:   2,
			EnsureFolder: true,
			LocalTime:    true,
		},
	}
}

func buildDecoder(format string) (core.Decoder, error) {
	switch format {
	case "", "plain":
		return decoder.Plain{}, nil
	case "json":
		return decoder.JSON{}, nil
	case "structured":
		return decoder.Structured{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want plain, json or structured)", format)
	}
}

func buildSource(opts Options) (core.Source, string, error) {
	switch {
	case opts.FilePath != "" && opts.Command != "":
		return nil, "", fmt.Errorf("-file and -cmd are mutually exclusive")
	case opts.FilePath != "":
		fileOpts := source.FileOptions{
			FromStart: opts.FromStart,
			// structured deltas must reach the decoder unsplit
			Chunked: opts.Format == "structured",
		}
		return source.NewFile(opts.FilePath, fileOpts), filepath.Base(opts.FilePath), nil
	case opts.Command != "":
		fields := strings.Fields(opts.Command)
		if len(fields) == 0 {
			return nil, "", fmt.Errorf("-cmd is empty")
		}
		return source.NewCommand(fields[0], fields[1:]...), fields[0], nil
	default:
		return nil, "", fmt.Errorf("either -file or -cmd is required")
	}
}
