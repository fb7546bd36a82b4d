package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads grid configuration from the given paths (files or
	// directories), translates it into the format-agnostic model, and
	// returns a matching Converter for decoding tap arguments.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for format-specific data binding. It bridges a
// tap's raw argument expressions and the Go input struct of its hook kind.
type Converter interface {
	// DecodeBody evaluates the argument expressions and populates the
	// provided input struct, matching arguments to struct fields by their
	// `bhgo` tag. An argument with no matching field is an error.
	DecodeBody(
		ctx context.Context,
		inputStruct any,
		args map[string]hcl.Expression,
		evalCtx *hcl.EvalContext,
	) error
}
