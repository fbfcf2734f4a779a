// Package bindgen generates typed Go call bindings from runtime
// metadata. For every pallet that declares calls it produces one
// package holding a payload struct per call and a TransactionAPI whose
// accessors verify, before dispatch, that the fingerprint they were
// generated against still matches what the live runtime reports.
package bindgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chainbind/chainbind/bindgen/golang"
	"github.com/chainbind/chainbind/bindgen/sink"
	"github.com/chainbind/chainbind/metadata"
)

// Config holds the configuration for a generation run.
type Config struct {
	// OutDir is the directory generated packages are written to.
	// Required unless Sink is set.
	OutDir string

	// Unchecked generates accessors without the pre-dispatch
	// fingerprint comparison. One switch for the whole run.
	Unchecked bool

	// RuntimeImport overrides the import path of the runtime support
	// package referenced by generated code.
	RuntimeImport string

	// Imports lists extra import paths for field type expressions.
	Imports []string

	// TypeMappings rewrites metadata type references to target type
	// expressions.
	TypeMappings map[string]string

	// Sink overrides the output destination. Defaults to a filesystem
	// sink rooted at OutDir.
	Sink sink.OutputSink

	// Logger receives per-pallet progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes what a generation run produced.
type Result struct {
	// Files lists the relative paths written, in pallet order.
	Files []string

	// Skipped lists pallets that declare no calls.
	Skipped []string
}

// Generate produces call bindings for every pallet in the metadata.
// Pallets without calls are skipped. Any schema defect (a positional
// call field, a call without a fingerprint) aborts the run with a
// *SchemaError.
func Generate(ctx context.Context, meta *metadata.Metadata, cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if cfg.Sink == nil {
		if cfg.OutDir == "" {
			return nil, fmt.Errorf("OutDir is required")
		}
		cfg.Sink = sink.NewFilesystemSink(cfg.OutDir)
	}

	emitter := golang.NewEmitter(golang.Config{
		Unchecked:     cfg.Unchecked,
		RuntimeImport: cfg.RuntimeImport,
		Imports:       cfg.Imports,
		TypeMappings:  cfg.TypeMappings,
	})

	result := &Result{}
	for i := range meta.Pallets {
		pallet := &meta.Pallets[i]

		mod, err := BuildCallModule(meta, pallet)
		if err != nil {
			return nil, err
		}
		if mod == nil {
			cfg.Logger.Debug("pallet declares no calls, skipping",
				slog.String("pallet", pallet.Name))
			result.Skipped = append(result.Skipped, pallet.Name)
			continue
		}

		src, err := emitter.EmitModule(mod)
		if err != nil {
			return nil, err
		}

		path := emitter.FileName(mod)
		if err := cfg.Sink.WriteFile(ctx, path, src); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		cfg.Logger.Info("generated call bindings",
			slog.String("pallet", pallet.Name),
			slog.String("file", path),
			slog.Int("calls", len(mod.Bindings)))
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// applyConfigDefaults applies default values to Config without
// mutating the input.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.Logger == nil {
		result.Logger = slog.Default()
	}
	if result.RuntimeImport == "" {
		result.RuntimeImport = golang.DefaultRuntimeImport
	}
	return &result
}
