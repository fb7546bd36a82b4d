package app

import (
	"context"
	"fmt"

	"github.com/vk/bytehook/internal/ctxlog"
)

// Run executes the dispatch: every attached hook fires once, in attachment
// order, against the loaded payload.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Dispatching payload.", "hooks", a.dispatcher.Len(), "payload_bytes", a.dispatcher.PayloadLen())
	if a.dispatcher.Len() == 0 {
		a.logger.Warn("No hooks attached, dispatch will produce no output.")
	}

	err := a.dispatcher.Dispatch(ctx)

	stats := a.dispatcher.Stats()
	a.logger.Info("Dispatch finished.", "invocations", stats.Invocations, "hook_errors", stats.HookErrors)
	a.logger.Debug("App.Run method finished.")

	if err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}
	return nil
}
