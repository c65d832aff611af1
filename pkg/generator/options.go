package generator

import (
	"path/filepath"

	"github.com/cmmoran/overloadgen/pkg/translate"
)

// Options control the emit path around the core pipeline. SupportDir is the
// directory of the generated support package; empty means it shares OutDir.
// UnionArity caps the generated UnionN family.
type Options struct {
	OutDir     string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile    string `json:"out_file,omitempty" yaml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Package    string `json:"package,omitempty" yaml:"package,omitempty" mapstructure:"package,omitempty"`
	Receiver   string `json:"receiver,omitempty" yaml:"receiver,omitempty" mapstructure:"receiver,omitempty"`
	SupportDir string `json:"support_dir,omitempty" yaml:"support_dir,omitempty" mapstructure:"support_dir,omitempty"`
	UnionArity int    `json:"union_arity,omitempty" yaml:"union_arity,omitempty" mapstructure:"union_arity,omitempty"`

	Customize Customizer `json:"-" yaml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:     "bindings",
		OutFile:    "bindings_gen.go",
		Package:    "bindings",
		Receiver:   "Element",
		UnionArity: translate.DefaultMaxUnionArity,
	}
}

func (o *Options) Normalize() {
	if o.OutDir == "" {
		o.OutDir = "bindings"
	}
	if o.OutFile == "" {
		o.OutFile = "bindings_gen.go"
	}
	if o.Package == "" {
		o.Package = filepath.Base(o.OutDir)
	}
	if o.Receiver == "" {
		o.Receiver = "Element"
	}
	if o.SupportDir == "" {
		o.SupportDir = o.OutDir
	}
	if o.UnionArity <= 0 {
		o.UnionArity = translate.DefaultMaxUnionArity
	}
}

// Bundle returns the translation bundle implied by the options.
func (o *Options) Bundle() *translate.Bundle {
	b := translate.Customize(o.Customize)
	if o.UnionArity > 0 {
		b.MaxUnionArity = o.UnionArity
	}
	return b
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithOutDir(d string) Option     { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option    { return func(o *Options) { o.OutFile = f } }
func WithPackage(p string) Option    { return func(o *Options) { o.Package = p } }
func WithReceiver(r string) Option   { return func(o *Options) { o.Receiver = r } }
func WithSupportDir(d string) Option { return func(o *Options) { o.SupportDir = d } }
func WithUnionArity(n int) Option    { return func(o *Options) { o.UnionArity = n } }
func WithCustomize(c Customizer) Option {
	return func(o *Options) { o.Customize = c }
}
