package support

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmmoran/overloadgen/internal/emit"
	"github.com/cmmoran/overloadgen/pkg/generator"
)

// Generate writes the runtime support package (Element, Callback,
// ElementCtor and the UnionN family) and returns the path of the written
// file.
func Generate(opts *generator.Options) (string, error) {
	opts.Normalize()

	pkgName := opts.Package
	if filepath.Clean(opts.SupportDir) != filepath.Clean(opts.OutDir) {
		pkgName = filepath.Base(opts.SupportDir)
	}

	f := emit.SupportFile(pkgName, opts.UnionArity)

	if err := os.MkdirAll(opts.SupportDir, 0o755); err != nil {
		return "", fmt.Errorf("create support directory: %w", err)
	}
	outFile := filepath.Clean(filepath.Join(opts.SupportDir, "support_gen.go"))

	ff, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open support file: %w", err)
	}
	defer func() { _ = ff.Close() }()

	if err := f.Render(ff); err != nil {
		return "", fmt.Errorf("render support file: %w", err)
	}
	return outFile, nil
}
