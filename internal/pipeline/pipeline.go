package pipeline

import (
	"time"

	"github.com/phuslu/log"

	"lazytail/internal/core"
)

// DefaultPollInterval is how often the loop asks the source for new data
// when no interval is configured.
const DefaultPollInterval = 100 * time.Millisecond

// Options configure one ingestion pipeline.
type Options struct {
	Source       core.Source
	Decoder      core.Decoder
	Queue        *Queue
	PollInterval time.Duration
	Logger       *log.Logger
}

// Pipeline runs a Source/Decoder pair on a dedicated goroutine, pushing
// decoded entries into the hand-off queue until stopped.
type Pipeline struct {
	stop chan struct{}
	done chan struct{}
}

// Start launches the ingestion goroutine and returns immediately. When the
// source fails to start, the failure is logged and the goroutine exits
// without ever polling.
func Start(opts Options) *Pipeline {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Logger == nil {
		opts.Logger = &log.DefaultLogger
	}

	p := &Pipeline{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go p.run(opts)
	return p
}

// Stop signals the loop and waits for it to exit. Shutdown latency is bounded
// by one poll interval plus whatever the current poll/parse call takes.
func (p *Pipeline) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	<-p.done
}

func (p *Pipeline) run(opts Options) {
	defer close(p.done)

	if err := opts.Source.Start(); err != nil {
		opts.Logger.Error().Err(err).Msg("log source failed to start")
		return
	}
	opts.Logger.Debug().Msg("ingestion loop started")

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		raws, err := opts.Source.Poll()
		if err != nil {
			// transient: keep polling
			opts.Logger.Debug().Err(err).Msg("source poll error")
		}
		for _, raw := range raws {
			for _, entry := range decode(opts.Decoder, raw) {
				if !opts.Queue.TryPush(entry) {
					opts.Logger.Debug().Msg("hand-off queue full, dropping entry")
				}
			}
		}

		select {
		case <-p.stop:
			if err := opts.Source.Stop(); err != nil {
				opts.Logger.Error().Err(err).Msg("log source failed to stop")
			}
			opts.Logger.Debug().Msg("ingestion loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// decode runs raw through the decoder, preferring batch decoding when the
// decoder supports it. A nil result from Parse means the decoder filtered the
// raw string out on purpose.
func decode(dec core.Decoder, raw string) []core.LogEntry {
	if batch, ok := dec.(core.BatchDecoder); ok {
		return batch.ParseAll(raw)
	}
	if e := dec.Parse(raw); e != nil {
		return []core.LogEntry{*e}
	}
	return nil
}
