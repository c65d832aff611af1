package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/overloadgen/pkg/generator"
	"github.com/cmmoran/overloadgen/pkg/manifest"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "signatures.yml")

	m := &manifest.Manifest{
		Package: "bindings",
		OutDir:  filepath.Join(root, "bindings"),
		Components: []manifest.Entry{
			{Name: "color", Signature: `"auto"|number`},
			{Name: "margin", Signature: "{top: number, left?: number}"},
		},
	}
	require.NoError(t, m.Save(manifestPath))

	outFile, err := Generate(generator.NewOptions(), manifestPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "package bindings")
	require.Contains(t, out, "func (e *Element) ColorAuto() *Element {")
	require.Contains(t, out, "func (e *Element) Color(value float64) *Element {")
	require.Contains(t, out, "func (e *Element) Margin(top float64, left *float64) *Element {")
}

func TestGenerateRejectsBadSignature(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "signatures.yml")

	m := &manifest.Manifest{
		OutDir: filepath.Join(root, "bindings"),
		Components: []manifest.Entry{
			{Name: "color", Signature: "{a: string} trailing"},
		},
	}
	require.NoError(t, m.Save(manifestPath))

	_, err := Generate(generator.NewOptions(), manifestPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), `component "color"`)
}

func TestGenerateMissingManifest(t *testing.T) {
	_, err := Generate(generator.NewOptions(), filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
