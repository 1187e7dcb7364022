package decoder

import (
	"strings"

	"lazytail/internal/core"
	"lazytail/internal/structured"
)

// Structured reassembles the embedded "## <timestamp>" block format. One raw
// chunk can carry any number of items, so this decoder implements
// core.BatchDecoder and the pipeline feeds it whole deltas.
type Structured struct{}

// ParseAll turns one delta into ordered entries, lifecycle events included.
func (Structured) ParseAll(raw string) []core.LogEntry {
	return structured.ProcessDelta(raw)
}

// Parse satisfies core.Decoder for callers that hand over line-shaped input.
// It keeps only the first entry of the delta; batch-aware callers should use
// ParseAll.
func (d Structured) Parse(raw string) *core.LogEntry {
	entries := d.ParseAll(raw)
	if len(entries) == 0 {
		return nil
	}
	return &entries[0]
}

// FormatPreview renders "[time] [tag] [origin] [level] content", revealing
// one more field per detail level and skipping fields the entry lacks.
func (Structured) FormatPreview(e core.LogEntry, level core.DetailLevel) string {
	fields := []string{e.Time, e.Meta("tag"), e.Meta("origin"), e.Meta("level")}
	if int(level) < len(fields) {
		fields = fields[:level]
	}

	parts := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		if f != "" {
			parts = append(parts, "["+f+"]")
		}
	}
	parts = append(parts, shortenContent(e.Content))
	return strings.Join(parts, " ")
}

func (d Structured) SearchableText(e core.LogEntry, level core.DetailLevel) string {
	return d.FormatPreview(e, level)
}

func (Structured) YankText(e core.LogEntry) string {
	return core.DefaultYank(e)
}

func (Structured) MaxDetailLevel() core.DetailLevel {
	return 4
}

// shortenContent reduces a multi-line message to its first non-blank line so
// one entry occupies one row in the list.
func shortenContent(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return content
}
