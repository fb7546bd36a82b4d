package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/bytehook/internal/ctxlog"
)

// Validate performs a strict integrity check over every registered handler:
// the handler function must be present, and NewInput must produce a pointer
// to the declared InputType. A failure here is a mismatch between a module's
// Register call and its own types, so all problems are reported at once.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, kind := range r.Kinds() {
		h := r.hooks[kind]

		if h.Fn == nil {
			errs = append(errs, fmt.Sprintf("hook '%s': no handler function registered", kind))
		}
		if h.NewInput == nil {
			errs = append(errs, fmt.Sprintf("hook '%s': no input constructor registered", kind))
			continue
		}

		input := h.NewInput()
		inputVal := reflect.ValueOf(input)
		if inputVal.Kind() != reflect.Ptr || inputVal.IsNil() {
			errs = append(errs, fmt.Sprintf("hook '%s': NewInput must return a non-nil pointer, got %T", kind, input))
			continue
		}
		if h.InputType == nil {
			errs = append(errs, fmt.Sprintf("hook '%s': InputType is not set", kind))
			continue
		}
		if got := inputVal.Elem().Type(); got != h.InputType {
			errs = append(errs, fmt.Sprintf("hook '%s': NewInput returns *%s but InputType declares %s", kind, got, h.InputType))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n - %s", strings.Join(errs, "\n - "))
	}

	logger.Debug("Registry validation passed.", "hook_kinds", r.Len())
	return nil
}
