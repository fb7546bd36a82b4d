package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/bytehook/internal/config"
	"github.com/vk/bytehook/internal/ctxlog"
	"github.com/vk/bytehook/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema is the top-level shape of a grid file.
type fileSchema struct {
	// Payload stays a raw expression so range errors can point at the file
	// that declared it.
	Payload hcl.Expression `hcl:"payload,optional"`
	Hooks   []*hookSchema  `hcl:"hook,block"`
}

// hookSchema represents a single 'hook' block for initial decoding from HCL.
type hookSchema struct {
	Type      string      `hcl:"type,label"`
	Name      string      `hcl:"name,label"`
	Arguments *argsSchema `hcl:"arguments,block"`
}

// argsSchema captures the raw body of an 'arguments' block.
type argsSchema struct {
	Body hcl.Body `hcl:",remain"`
}

// Load parses every .hcl file reachable from the given paths and merges them
// into a single model. Exactly one file must declare the payload. Hook blocks
// become taps in source order within a file; across files, sorted path order,
// so attachment order is deterministic for a given file set.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to discover grid files under %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}
	if len(filePaths) == 0 {
		return nil, nil, fmt.Errorf("no .hcl grid files found in %v", paths)
	}
	logger.Debug("Found HCL grid files to load.", "files", filePaths)

	parser := hclparse.NewParser()
	model := &config.Model{}
	payloadFile := ""

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var file fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode grid file %s: %w", filePath, diags)
		}

		if file.Payload != nil {
			if payloadFile != "" {
				return nil, nil, fmt.Errorf("payload declared in both %s and %s; it must be declared exactly once", payloadFile, filePath)
			}
			data, err := decodePayload(file.Payload)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid payload in %s: %w", filePath, err)
			}
			model.Payload = data
			payloadFile = filePath
		}

		for _, h := range file.Hooks {
			model.Taps = append(model.Taps, &config.Tap{
				HookType:   h.Type,
				Name:       h.Name,
				Arguments:  extractBodyAttributes(h.Arguments),
				SourceFile: filePath,
			})
		}
		logger.Debug("Loaded grid file.", "file", filePath, "hooks", len(file.Hooks))
	}

	if payloadFile == "" {
		return nil, nil, fmt.Errorf("no payload declared in %v", filePaths)
	}

	logger.Info("Grid configuration loaded.", "payload_bytes", len(model.Payload), "taps", len(model.Taps))
	return model, NewConverter(), nil
}

// decodePayload evaluates a payload expression into bytes. The grid syntax is
// a list of numbers, each of which must be a whole number in [0, 255].
func decodePayload(expr hcl.Expression) ([]byte, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, fmt.Errorf("payload must not be null")
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("payload must be a list of numbers, got %s", ty.FriendlyName())
	}

	data := make([]byte, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		idx, elem := it.Element()
		var n int
		if err := gocty.FromCtyValue(elem, &n); err != nil {
			return nil, fmt.Errorf("payload element %s: %w", formatIndex(idx), err)
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("payload element %s out of byte range: %d", formatIndex(idx), n)
		}
		data = append(data, byte(n))
	}
	return data, nil
}

func formatIndex(idx cty.Value) string {
	var i int
	if err := gocty.FromCtyValue(idx, &i); err != nil {
		return "?"
	}
	return fmt.Sprintf("%d", i)
}

// extractBodyAttributes flattens an arguments block into raw expressions.
func extractBodyAttributes(block *argsSchema) map[string]hcl.Expression {
	if block == nil || block.Body == nil {
		return nil
	}
	attrs, _ := block.Body.JustAttributes()
	if len(attrs) == 0 {
		return nil
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap
}
