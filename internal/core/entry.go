package core

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is the structured unit flowing from decoders to the display list.
// Entries are immutable once a decoder hands them off; metadata is populated
// builder-style at construction time and never mutated afterwards.
type LogEntry struct {
	// ID identifies the entry across re-filtered views. It is never used for
	// ordering or content equality.
	ID uuid.UUID

	// Time is a human-readable timestamp, either extracted by the decoder or
	// stamped at creation.
	Time string

	// Content is the decoder-extracted message body.
	Content string

	// Raw is the original undecoded text this entry was derived from.
	Raw string

	// Metadata holds optional decoder-defined fields such as "level", "tag"
	// and "origin". A missing key means "not applicable".
	Metadata map[string]string
}

// NewLogEntry builds an entry with a fresh ID and a wall-clock timestamp.
func NewLogEntry(content, raw string) LogEntry {
	return LogEntry{
		ID:      uuid.New(),
		Time:    time.Now().Format("15:04:05.000"),
		Content: content,
		Raw:     raw,
	}
}

// WithTime replaces the auto-generated timestamp (builder pattern).
func (e LogEntry) WithTime(t string) LogEntry {
	e.Time = t
	return e
}

// WithMetadata records a metadata field (builder pattern).
func (e LogEntry) WithMetadata(key, value string) LogEntry {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

// Meta returns the metadata value for key, or "" when the field is absent.
func (e LogEntry) Meta(key string) string {
	return e.Metadata[key]
}

// HasMeta reports whether the decoder recorded the given metadata field.
func (e LogEntry) HasMeta(key string) bool {
	_, ok := e.Metadata[key]
	return ok
}
