// Package app wires the configuration, source, decoder, ingestion pipeline
// and UI together.
package app
