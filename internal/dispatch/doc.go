// Package dispatch implements the payload dispatcher: a holder that owns an
// immutable byte payload and an ordered list of attached hooks. A single
// Dispatch call fires every attached hook exactly once, in attachment order,
// each with a fresh read-only view of the payload.
//
// The dispatcher is deliberately synchronous and single-threaded: hooks run
// one after another on the calling goroutine, there are no suspension points,
// and dispatch never mutates the attachment list. Firing it again replays
// every hook against the same payload.
package dispatch
