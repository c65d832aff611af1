package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "signatures.yml")

	want := &Manifest{
		Package:    "bindings",
		OutDir:     "bindings",
		OutFile:    "bindings_gen.go",
		Receiver:   "Element",
		UnionArity: 9,
		Components: []Entry{
			{Name: "color", Signature: `"auto"|number`},
			{Name: "items", Signature: "Array<string>"},
		},
	}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, got))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signatures.yml")
	require.NoError(t, os.WriteFile(path, []byte("components: {not: [a, list"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr bool
	}{
		{
			"valid",
			Manifest{Components: []Entry{{Name: "color", Signature: "string"}}},
			false,
		},
		{"no components", Manifest{}, true},
		{
			"missing name",
			Manifest{Components: []Entry{{Signature: "string"}}},
			true,
		},
		{
			"missing signature",
			Manifest{Components: []Entry{{Name: "color"}}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
