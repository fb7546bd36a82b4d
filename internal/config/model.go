package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a run: the payload
// to own and the taps to attach, in attachment order.
type Model struct {
	// Payload is the byte sequence the dispatcher will own.
	Payload []byte
	// Taps are the configured hook attachments. Order is significant: hooks
	// fire in exactly this order on every dispatch.
	Taps []*Tap
}

// Tap is the format-agnostic representation of a `hook` block: one configured
// attachment of a registered hook kind.
type Tap struct {
	// HookType names the registered hook kind, e.g. "print".
	HookType string
	// Name is the user-chosen label for this attachment.
	Name string
	// Arguments holds the raw, unevaluated argument expressions. Evaluation
	// is deferred to the Converter so that decode errors can name the tap.
	Arguments map[string]hcl.Expression
	// SourceFile records where the block was declared, for error messages.
	SourceFile string
}
