package structured

import (
	"regexp"
	"strings"

	"lazytail/internal/core"
)

// matchedEvent is one synthetic lifecycle entry anchored at the byte range of
// the source lines that triggered it.
type matchedEvent struct {
	start int
	end   int
	entry core.LogEntry
}

// eventMatcher recognizes one lifecycle marker anywhere in a delta body. Each
// match is expanded to its full source line; adjacent or overlapping lines
// collapse into a single synthetic entry.
type eventMatcher struct {
	re      *regexp.Regexp
	content string
}

// The canonical matcher set. Compiled once at init, read-only afterwards.
var eventMatchers = []eventMatcher{
	{re: regexp.MustCompile(`(?i)bef_effect_onpause_imp\s*\(|onpause`), content: "PAUSED"},
	{re: regexp.MustCompile(`(?i)bef_effect_onresume_imp\s*\(`), content: "RESUMED"},
}

func (m eventMatcher) capture(body string) []matchedEvent {
	var ranges [][2]int
	for _, loc := range m.re.FindAllStringIndex(body, -1) {
		s, e := loc[0], loc[1]
		// expand to the enclosing line
		if i := strings.LastIndexByte(body[:s], '\n'); i >= 0 {
			s = i + 1
		} else {
			s = 0
		}
		if i := strings.IndexByte(body[e:], '\n'); i >= 0 {
			e += i + 1
		} else {
			e = len(body)
		}
		ranges = append(ranges, [2]int{s, e})
	}

	// merge ranges that overlap or sit at most one byte apart
	var merged [][2]int
	for _, r := range ranges {
		if n := len(merged); n > 0 && r[0] <= merged[n-1][1]+1 {
			if r[1] > merged[n-1][1] {
				merged[n-1][1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}

	events := make([]matchedEvent, 0, len(merged))
	for _, r := range merged {
		events = append(events, matchedEvent{
			start: r[0],
			end:   r[1],
			entry: core.NewLogEntry(m.content, ""),
		})
	}
	return events
}
