package decoder

import (
	"encoding/json"
	"strings"

	"lazytail/internal/core"
)

// JSON decodes one JSON object per line, extracting the conventional
// message/level/module/time fields. Lines that are not valid JSON fall back
// to raw passthrough rather than being dropped; a tailing tool should show
// malformed lines, not hide them.
type JSON struct{}

type jsonLine struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Module  string `json:"module"`
	Time    string `json:"time"`
}

func (JSON) Parse(raw string) *core.LogEntry {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var line jsonLine
	if err := json.Unmarshal([]byte(trimmed), &line); err != nil || line.Message == "" {
		e := core.NewLogEntry(raw, raw)
		return &e
	}

	e := core.NewLogEntry(line.Message, raw)
	if line.Time != "" {
		e = e.WithTime(line.Time)
	}
	if line.Level != "" {
		e = e.WithMetadata("level", line.Level)
	}
	if line.Module != "" {
		e = e.WithMetadata("module", line.Module)
	}
	return &e
}

func (JSON) FormatPreview(e core.LogEntry, level core.DetailLevel) string {
	parts := make([]string, 0, 4)
	if level >= 1 {
		parts = append(parts, "["+e.Time+"]")
	}
	if level >= 2 && e.HasMeta("level") {
		parts = append(parts, "["+e.Meta("level")+"]")
	}
	if level >= 3 && e.HasMeta("module") {
		parts = append(parts, "["+e.Meta("module")+"]")
	}
	parts = append(parts, e.Content)
	return strings.Join(parts, " ")
}

func (d JSON) SearchableText(e core.LogEntry, level core.DetailLevel) string {
	return d.FormatPreview(e, level)
}

func (JSON) YankText(e core.LogEntry) string {
	return core.DefaultYank(e)
}

func (JSON) MaxDetailLevel() core.DetailLevel {
	return 3
}
