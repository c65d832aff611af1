// Package manifest defines the handoff format between the external
// documentation scraper and the generator: a YAML list of named signature
// entries plus output settings.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Entry is one scraped component: a property name and its signature text.
type Entry struct {
	Name      string `yaml:"name" json:"name"`
	Signature string `yaml:"signature" json:"signature"`
}

// Manifest lists the components to generate bindings for.
type Manifest struct {
	Package    string  `yaml:"package" json:"package"`
	OutDir     string  `yaml:"out_dir" json:"out_dir"`
	OutFile    string  `yaml:"out_file" json:"out_file"`
	Receiver   string  `yaml:"receiver" json:"receiver"`
	SupportDir string  `yaml:"support_dir" json:"support_dir"`
	UnionArity int     `yaml:"union_arity" json:"union_arity"`
	Components []Entry `yaml:"components" json:"components"`
}

// Load reads a manifest from the provided path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories
// as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Validate rejects manifests with unusable component entries.
func (m *Manifest) Validate() error {
	if len(m.Components) == 0 {
		return errors.New("manifest lists no components")
	}
	for i, e := range m.Components {
		if e.Name == "" {
			return fmt.Errorf("component %d has no name", i)
		}
		if e.Signature == "" {
			return fmt.Errorf("component %q has no signature", e.Name)
		}
	}
	return nil
}
