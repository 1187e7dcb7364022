// Package pipeline decouples a blocking-or-slow log source from the
// rendering loop.
//
// A Pipeline owns one goroutine that polls a core.Source at a fixed cadence,
// feeds each raw string through a core.Decoder, and hands the resulting
// entries to the UI through a bounded Queue. The queue's TryPush never
// blocks: under sustained overload the newest entries are dropped and the
// drops logged, which keeps the producer live at the cost of completeness.
// That losing trade is deliberate; a tailing tool must keep running through
// exactly the conditions that would be fatal elsewhere.
//
// Failure semantics: only Source.Start failure is fatal (the loop never
// runs). Poll errors are transient and retried on the next tick. Stop errors
// are logged and ignored.
package pipeline
