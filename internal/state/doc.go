// Package state keeps the UI-side log sequence and the ID-based lookups
// selection tracking relies on.
package state
