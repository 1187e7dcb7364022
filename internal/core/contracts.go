package core

// Source acquires raw log text from some origin (a file, a subprocess, a
// device relay). The ingestion pipeline holds only this interface, never a
// concrete adapter type.
type Source interface {
	// Start acquires resources. A failure here is fatal: the pipeline never
	// begins polling.
	Start() error

	// Stop releases resources. Errors are logged but do not prevent shutdown.
	Stop() error

	// Poll returns whatever raw strings are ready right now. It must never
	// block; when no data is available it returns an empty slice immediately.
	// Errors are treated as transient and polling continues.
	Poll() ([]string, error)
}

// Decoder turns raw text into entries and renders them at a given detail
// level. SearchableText must stay consistent with FormatPreview, since the
// filter engine matches against it rather than against Content directly.
type Decoder interface {
	// Parse converts one raw string into an entry. Returning nil filters the
	// raw string out intentionally; it is not an error.
	Parse(raw string) *LogEntry

	// FormatPreview renders the entry for the log list.
	FormatPreview(e LogEntry, level DetailLevel) string

	// SearchableText returns the text the filter engine matches against.
	SearchableText(e LogEntry, level DetailLevel) string

	// YankText returns what a yank/copy of the entry produces.
	YankText(e LogEntry) string

	// MaxDetailLevel reports the highest detail level this decoder renders.
	MaxDetailLevel() DetailLevel
}

// BatchDecoder is an optional upgrade for decoders whose input chunks carry
// any number of entries, such as the structured block format. The pipeline
// detects it with a type assertion and prefers it over Parse.
type BatchDecoder interface {
	Decoder
	ParseAll(raw string) []LogEntry
}

// DefaultYank is the yank text decoders use unless they have a better format.
func DefaultYank(e LogEntry) string {
	return e.Time + " " + e.Raw
}
