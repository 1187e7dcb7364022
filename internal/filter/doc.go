// Package filter narrows the log list by a live text query, re-searching
// only what a keystroke or an arrival batch could have changed.
package filter
