package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/bytehook/internal/config"
	"github.com/vk/bytehook/internal/ctxlog"
	"github.com/vk/bytehook/internal/dispatch"
	"github.com/vk/bytehook/internal/payload"
	"github.com/vk/bytehook/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, the
// grid loaded, and every configured hook attached to the dispatcher. Hook
// output goes to outW; logs go to errW so that hook output stays clean.
// Startup misconfiguration panics; entrypoints recover and report it.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All hook modules registered.", "count", len(modules), "kinds", reg.Kinds())

	// A broken module registration is a programmer error, so we panic.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	var (
		model     *config.Model
		converter config.Converter
	)
	if appConfig.GridPath == "" {
		model = demoModel()
		logger.Debug("No grid path configured, using the built-in demo grid.")
	} else {
		var err error
		model, converter, err = loader.Load(ctx, appConfig.GridPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		logger.Debug("Grid configuration loaded and translated into unified model.")
	}

	dispatcher, err := buildDispatcher(ctx, model, reg, converter)
	if err != nil {
		panic(fmt.Errorf("failed to build dispatcher: %w", err))
	}
	logger.Debug("Dispatcher built.", "hooks_attached", dispatcher.Len())

	return &App{
		outW:       outW,
		logger:     logger,
		registry:   reg,
		dispatcher: dispatcher,
	}
}

// demoModel is the grid used when no path is given: the payload [1 2 3] with
// a single print hook attached.
func demoModel() *config.Model {
	return &config.Model{
		Payload: []byte{1, 2, 3},
		Taps: []*config.Tap{
			{HookType: "print", Name: "debug"},
		},
	}
}

// buildDispatcher resolves every tap against the registry, decodes its
// arguments, and attaches it in model order.
func buildDispatcher(ctx context.Context, model *config.Model, reg *registry.Registry, converter config.Converter) (*dispatch.Dispatcher, error) {
	logger := ctxlog.FromContext(ctx)
	dispatcher := dispatch.New(model.Payload)

	for _, tap := range model.Taps {
		handler, err := reg.Resolve(tap.HookType)
		if err != nil {
			return nil, fmt.Errorf("hook %q %q: %w", tap.HookType, tap.Name, err)
		}

		input := handler.NewInput()
		if len(tap.Arguments) > 0 {
			if converter == nil {
				return nil, fmt.Errorf("hook %q %q: arguments given but no converter available", tap.HookType, tap.Name)
			}
			if err := converter.DecodeBody(ctx, input, tap.Arguments, nil); err != nil {
				return nil, fmt.Errorf("hook %q %q (%s): %w", tap.HookType, tap.Name, tap.SourceFile, err)
			}
		}

		fn := handler.Fn
		hookInput := input
		id := dispatcher.Attach(tap.HookType+"."+tap.Name, func(ctx context.Context, v payload.View) error {
			return fn(ctx, hookInput, v)
		})
		logger.Debug("Hook attached.", "kind", tap.HookType, "name", tap.Name, "attachment_id", id)
	}

	return dispatcher, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Dispatcher returns the application's dispatcher. This is primarily for testing.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}
