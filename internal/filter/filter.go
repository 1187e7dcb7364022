package filter

import (
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"lazytail/internal/core"
)

// search spaces at least this large are fanned out across workers
const parallelThreshold = 1000

// Engine performs incremental substring filtering over the accumulated log
// sequence. It caches the last query and its result indices; when the next
// query merely extends the previous one, only the cached results are
// re-searched. All methods must be called from a single goroutine.
type Engine struct {
	prevQuery   string
	prevResults []int
	dec         core.Decoder
}

// New returns an engine that matches against dec's searchable text.
func New(dec core.Decoder) *Engine {
	return &Engine{dec: dec}
}

// Reset drops the cached query and results. Callers must also reset whenever
// the detail level changes, since searchable text depends on it.
func (e *Engine) Reset() {
	e.prevQuery = ""
	e.prevResults = nil
}

// Filter returns the indices of entries whose searchable text contains query,
// case-insensitively, in ascending order. An empty query resets the cache and
// returns every index.
func (e *Engine) Filter(entries []core.LogEntry, query string, level core.DetailLevel) []int {
	if query == "" {
		e.Reset()
		return allIndices(len(entries))
	}
	if e.dec == nil {
		return allIndices(len(entries))
	}

	// any text containing query also contains every prefix of query, so when
	// the new query extends the old one the previous results bound the search
	var space []int
	if e.prevQuery != "" && strings.HasPrefix(query, e.prevQuery) && len(e.prevResults) > 0 {
		space = e.prevResults
	} else {
		space = allIndices(len(entries))
	}

	matched := e.match(entries, space, strings.ToLower(query), level)

	e.prevQuery = query
	e.prevResults = matched
	return matched
}

// FilterNew extends the cached result set with matches from entries appended
// since oldCount, avoiding a rescan of already-filtered history. A changed
// query falls back to a full Filter.
func (e *Engine) FilterNew(entries []core.LogEntry, oldCount int, query string, level core.DetailLevel) []int {
	if query != e.prevQuery {
		return e.Filter(entries, query, level)
	}
	if oldCount >= len(entries) {
		return e.prevResults
	}
	if query == "" {
		return allIndices(len(entries))
	}
	if e.dec == nil {
		return allIndices(len(entries))
	}

	fresh := make([]int, 0, len(entries)-oldCount)
	for i := oldCount; i < len(entries); i++ {
		fresh = append(fresh, i)
	}
	matched := e.match(entries, fresh, strings.ToLower(query), level)

	all := make([]int, 0, len(e.prevResults)+len(matched))
	all = append(all, e.prevResults...)
	all = append(all, matched...)
	e.prevResults = all
	return all
}

func (e *Engine) match(entries []core.LogEntry, space []int, pattern string, level core.DetailLevel) []int {
	if len(space) >= parallelThreshold {
		return e.matchParallel(entries, space, pattern, level)
	}
	return e.matchSequential(entries, space, pattern, level)
}

func (e *Engine) matchSequential(entries []core.LogEntry, space []int, pattern string, level core.DetailLevel) []int {
	var out []int
	for _, idx := range space {
		if e.matches(entries[idx], pattern, level) {
			out = append(out, idx)
		}
	}
	return out
}

// matchParallel splits the search space into contiguous chunks, one per
// worker, and rejoins the per-chunk matches in chunk order. Chunks are
// contiguous slices of an ascending space, so the result stays ascending.
func (e *Engine) matchParallel(entries []core.LogEntry, space []int, pattern string, level core.DetailLevel) []int {
	workers := runtime.NumCPU()
	if workers < 2 {
		return e.matchSequential(entries, space, pattern, level)
	}
	chunk := (len(space) + workers - 1) / workers
	results := make([][]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(space) {
			break
		}
		hi := lo + chunk
		if hi > len(space) {
			hi = len(space)
		}
		g.Go(func() error {
			var m []int
			for _, idx := range space[lo:hi] {
				if e.matches(entries[idx], pattern, level) {
					m = append(m, idx)
				}
			}
			results[w] = m
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var out []int
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func (e *Engine) matches(entry core.LogEntry, pattern string, level core.DetailLevel) bool {
	return strings.Contains(strings.ToLower(e.dec.SearchableText(entry, level)), pattern)
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
