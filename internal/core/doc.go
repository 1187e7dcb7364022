// Package core defines the data model and the contracts the rest of the
// program plugs into.
//
// LogEntry is the atomic unit: every raw string a Source produces either
// becomes one (or, for structured deltas, several) LogEntry values or is
// intentionally dropped by a Decoder. Entries are created exclusively by
// decoders and the structured reassembler, accumulated by the UI-owned store,
// and never mutated after construction.
//
// Source and Decoder are the two adapter interfaces. The ingestion pipeline
// depends only on their shape, which keeps acquisition (where bytes come
// from) and interpretation (what the bytes mean) independently swappable and
// independently testable.
package core
