// Package source provides the built-in core.Source adapters: tailing a file
// by length delta and streaming a subprocess's stdout. Both honor the
// non-blocking Poll contract; any buffering needed to keep Poll immediate
// happens inside the adapter.
package source
