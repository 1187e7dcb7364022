package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phuslu/log"

	"lazytail/internal/core"
	"lazytail/internal/pipeline"
)

// Options configure the UI runtime.
type Options struct {
	// Queue is the hand-off queue the ingestion pipeline fills.
	Queue *pipeline.Queue

	// Decoder renders and searches entries. It must be the same decoder the
	// pipeline parses with, or previews and filters drift apart.
	Decoder core.Decoder

	Logger *log.Logger

	// Title names the log source in the header.
	Title string

	// Theme selects the color palette, "dark" or "light".
	Theme string

	// Follow scrolls to the newest entry as entries arrive.
	Follow bool

	// RefreshEvery is the queue-drain cadence. Zero uses 100ms.
	RefreshEvery time.Duration
}

const defaultRefresh = 100 * time.Millisecond

// Run drives the viewer until ctx is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Queue == nil {
		return fmt.Errorf("ui requires a hand-off queue")
	}
	if opts.Decoder == nil {
		return fmt.Errorf("ui requires a decoder")
	}
	if opts.Logger == nil {
		opts.Logger = &log.DefaultLogger
	}
	if opts.RefreshEvery <= 0 {
		opts.RefreshEvery = defaultRefresh
	}

	program := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil // cancelled from outside, not a failure
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
