package emit

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// SupportImportPath computes the import path of the support package rooted
// at dir by locating and parsing the enclosing go.mod.
func SupportImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	modDir, err := findGoModDir(abs)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return "", fmt.Errorf("parse go.mod: %w", err)
	}

	rel, err := filepath.Rel(modDir, abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return mf.Module.Mod.Path, nil
	}
	return path.Join(mf.Module.Mod.Path, filepath.ToSlash(rel)), nil
}

// findGoModDir walks up from dir until it finds go.mod.
func findGoModDir(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}
