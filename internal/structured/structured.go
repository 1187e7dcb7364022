package structured

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"lazytail/internal/core"
)

var (
	// acquisition-layer wrapper: [2025-01-15 10:30:00.123] [word]
	leadingWrapperRE = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[\w+\]\s*\n?`)
	inlineWrapperRE  = regexp.MustCompile(`\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[\w+\]\s*`)

	itemSepRE = regexp.MustCompile(`## \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
	itemRE    = regexp.MustCompile(`(?s)^## (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s*(.*)`)

	// item header: [origin] LEVEL ## [tag] message
	headerRE = regexp.MustCompile(`(?s)^\[([^\]]+)\]\s*([A-Z]+)\s*##\s*\[([^\]]+)\]\s*(.*)`)
)

// positioned pairs an entry with its byte offset in the cleaned body so
// structured items and special events can be merged back into source order.
type positioned struct {
	offset int
	entry  core.LogEntry
}

// ProcessDelta turns one chunk of newly appended bytes into ordered entries.
// It strips the acquisition wrapper, carves the body into "## <timestamp>"
// items, extracts the per-item header fields into metadata, and interleaves
// synthetic lifecycle entries at the offsets where their markers occurred.
func ProcessDelta(delta string) []core.LogEntry {
	body := strings.TrimSpace(inlineWrapperRE.ReplaceAllString(stripLeadingWrapper(delta), ""))
	if body == "" {
		return nil
	}

	var found []positioned
	for _, m := range eventMatchers {
		for _, ev := range m.capture(body) {
			found = append(found, positioned{offset: ev.start, entry: ev.entry})
		}
	}

	var starts []int
	for _, loc := range itemSepRE.FindAllStringIndex(body, -1) {
		starts = append(starts, loc[0])
	}
	if len(starts) > 0 {
		starts = append(starts, len(body)) // sentinel for the last item
		for i := 0; i+1 < len(starts); i++ {
			if e, ok := parseItem(body[starts[i]:starts[i+1]]); ok {
				found = append(found, positioned{offset: starts[i], entry: e})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	entries := make([]core.LogEntry, len(found))
	for i, p := range found {
		entries[i] = p.entry
	}
	return entries
}

func stripLeadingWrapper(s string) string {
	if m := leadingWrapperRE.FindStringIndex(s); m != nil {
		return s[m[1]:]
	}
	return s
}

// parseItem extracts one "## <timestamp> <body>" item. The delimiter
// timestamp becomes the entry time; header fields land in metadata only when
// they actually matched, so "key present" means "field meaningful".
func parseItem(block string) (core.LogEntry, bool) {
	m := itemRE.FindStringSubmatch(block)
	if m == nil {
		return core.LogEntry{}, false
	}
	raw := strings.TrimSpace(m[2])
	origin, level, tag, msg := splitHeader(raw)

	e := core.NewLogEntry(msg, raw).WithTime(m[1])
	if level != "" {
		e = e.WithMetadata("level", level)
	}
	if origin != "" {
		e = e.WithMetadata("origin", origin)
	}
	if tag != "" {
		e = e.WithMetadata("tag", tag)
	}
	return e, true
}

// splitHeader matches "[origin] LEVEL ## [tag] message". A non-match leaves
// the fields empty and uses the whole trimmed line as the message.
func splitHeader(line string) (origin, level, tag, msg string) {
	// tolerate a BOM or stray control characters before the first bracket
	line = strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff' || unicode.IsControl(r)
	})

	if m := headerRE.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]),
			strings.TrimSpace(m[3]), strings.TrimSpace(m[4])
	}
	return "", "", "", strings.TrimSpace(line)
}
