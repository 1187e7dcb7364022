package decoder

import (
	"strings"

	"lazytail/internal/core"
)

// Plain passes raw lines through untouched, skipping blank ones.
type Plain struct{}

func (Plain) Parse(raw string) *core.LogEntry {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	e := core.NewLogEntry(raw, raw)
	return &e
}

func (Plain) FormatPreview(e core.LogEntry, level core.DetailLevel) string {
	if level <= 0 {
		return e.Content
	}
	return "[" + e.Time + "] " + e.Content
}

func (d Plain) SearchableText(e core.LogEntry, level core.DetailLevel) string {
	return d.FormatPreview(e, level)
}

func (Plain) YankText(e core.LogEntry) string {
	return core.DefaultYank(e)
}

func (Plain) MaxDetailLevel() core.DetailLevel {
	return 1
}
