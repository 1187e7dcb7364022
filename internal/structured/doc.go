// Package structured reassembles the embedded block format some monitored
// processes write into their log files.
//
// A delta (one chunk of newly appended bytes) carries three layers:
//
//  1. An acquisition-layer wrapper "[YYYY-MM-DD HH:MM:SS.mmm] [word]" that is
//     stripped once from the very start and removed wherever it recurs inline.
//  2. Item delimiters "## YYYY-MM-DD HH:MM:SS" that carve the body into
//     consecutive [start, nextStart) windows, each yielding one entry. Inside
//     a window the remainder is matched against "[origin] LEVEL ## [tag]
//     message"; matched pieces become metadata, a non-match keeps the whole
//     trimmed remainder as the message.
//  3. Lifecycle markers (pause/resume calls) scanned over the whole body
//     independently of the delimiters. Matches expand to their source lines,
//     adjacent lines merge, and each merged range becomes one synthetic
//     PAUSED/RESUMED entry.
//
// Structured items and synthetic events are sorted together by their byte
// offset in the body, so a lifecycle entry interleaves exactly where it
// occurred in the source stream. That offset merge is the package's central
// invariant; appending the synthetic entries at the end would misplace them.
//
// A body with no delimiter yields no structured items. There is no raw
// fallback entry for such deltas.
package structured
