package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmmoran/overloadgen/internal/emit"
	"github.com/cmmoran/overloadgen/pkg/generator"
	"github.com/cmmoran/overloadgen/pkg/manifest"
	"github.com/cmmoran/overloadgen/pkg/translate"
)

// Generate reads the manifest, runs every component signature through the
// parse/translate pipeline, and writes one generated binding file. It returns
// the path of the written file.
func Generate(opts *generator.Options, manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	applyManifest(opts, m)
	opts.Normalize()

	bundle := opts.Bundle()
	comps := make([]emit.Component, 0, len(m.Components))
	for _, e := range m.Components {
		t, err := generator.Parse(e.Signature)
		if err != nil {
			return "", fmt.Errorf("component %q: %w", e.Name, err)
		}
		ovs, err := translate.TopLevel(bundle, t)
		if err != nil {
			return "", fmt.Errorf("component %q: %w", e.Name, err)
		}
		comps = append(comps, emit.Component{Name: e.Name, Overloads: ovs})
	}

	supportImport := ""
	if filepath.Clean(opts.SupportDir) != filepath.Clean(opts.OutDir) {
		supportImport, err = emit.SupportImportPath(opts.SupportDir)
		if err != nil {
			return "", err
		}
	}

	src, err := emit.File(opts.Package, opts.Receiver, supportImport, comps)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	outFile := filepath.Clean(filepath.Join(opts.OutDir, opts.OutFile))
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return "", fmt.Errorf("write generated file: %w", err)
	}

	return outFile, nil
}

// applyManifest overlays manifest output settings onto the options; flags
// only act as defaults for what the manifest leaves unset.
func applyManifest(opts *generator.Options, m *manifest.Manifest) {
	if m.Package != "" {
		opts.Package = m.Package
	}
	if m.OutDir != "" {
		opts.OutDir = m.OutDir
	}
	if m.OutFile != "" {
		opts.OutFile = m.OutFile
	}
	if m.Receiver != "" {
		opts.Receiver = m.Receiver
	}
	if m.SupportDir != "" {
		opts.SupportDir = m.SupportDir
	}
	if m.UnionArity > 0 {
		opts.UnionArity = m.UnionArity
	}
}
