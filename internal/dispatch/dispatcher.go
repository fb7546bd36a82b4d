package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/bytehook/internal/ctxlog"
	"github.com/vk/bytehook/internal/payload"
)

// HookFunc is a single attached callback. It receives a read-only view of the
// dispatcher's payload and must not retain it beyond the call.
type HookFunc func(ctx context.Context, v payload.View) error

// entry is one attachment: a hook function plus the identity it was attached
// under, used for logging and error attribution.
type entry struct {
	id   uuid.UUID
	kind string
	fn   HookFunc
}

// Stats is a snapshot of dispatcher counters.
type Stats struct {
	// Dispatches is the number of completed Dispatch calls.
	Dispatches uint64
	// Invocations is the total number of hook invocations across all dispatches.
	Invocations uint64
	// HookErrors is the number of invocations that returned an error.
	HookErrors uint64
}

// Dispatcher owns a fixed payload and an ordered list of attached hooks.
// It is not safe for concurrent use; the execution model is strictly
// single-threaded and synchronous.
type Dispatcher struct {
	payload payload.Payload
	entries []entry
	stats   Stats
}

// New creates a Dispatcher owning a copy of the provided bytes.
func New(data []byte) *Dispatcher {
	return &Dispatcher{
		payload: payload.New(data),
	}
}

// Attach appends a hook to the attachment list and returns its attachment id.
// Attachments are never removed or deduplicated; the list only grows. The
// kind is a human-readable label carried into logs and error messages.
func (d *Dispatcher) Attach(kind string, fn HookFunc) uuid.UUID {
	if fn == nil {
		panic("dispatch: Attach called with nil hook")
	}
	id := uuid.New()
	d.entries = append(d.entries, entry{id: id, kind: kind, fn: fn})
	return id
}

// Len returns the number of attached hooks.
func (d *Dispatcher) Len() int {
	return len(d.entries)
}

// PayloadLen returns the length of the owned payload in bytes.
func (d *Dispatcher) PayloadLen() int {
	return d.payload.Len()
}

// Dispatch invokes every attached hook exactly once, in attachment order,
// each with a fresh view over the owned payload. A failing hook never stops
// the loop: its error is logged, counted, and joined into the returned error
// after all hooks have run. Dispatcher state is unchanged by a dispatch, so
// calling it again re-fires the same hooks.
func (d *Dispatcher) Dispatch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Dispatch started.", "hooks", len(d.entries), "payload_bytes", d.payload.Len())

	var errs []error
	for i := range d.entries {
		e := &d.entries[i]
		logger.Debug("Invoking hook.", "kind", e.kind, "attachment_id", e.id, "position", i)

		d.stats.Invocations++
		if err := e.fn(ctx, d.payload.View()); err != nil {
			d.stats.HookErrors++
			logger.Error("Hook returned an error.", "kind", e.kind, "attachment_id", e.id, "error", err)
			errs = append(errs, fmt.Errorf("hook %s (%s): %w", e.kind, e.id, err))
		}
	}

	d.stats.Dispatches++
	logger.Debug("Dispatch finished.", "hooks", len(d.entries), "errors", len(errs))
	return errors.Join(errs...)
}

// Stats returns a snapshot of the dispatcher's counters.
func (d *Dispatcher) Stats() Stats {
	return d.stats
}
