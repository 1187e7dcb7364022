// Package decoder ships the built-in core.Decoder implementations: plain
// passthrough, JSON lines, and the structured block format.
package decoder
