package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cmmoran/overloadgen/pkg/action/generate"
	"github.com/cmmoran/overloadgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	var (
		options      = generator.NewOptions()
		manifestPath string
	)

	var genCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate binding overloads",
		Long:  "Generate typed binding overloads from the signatures listed in a manifest",
		RunE: func(c *cobra.Command, args []string) error {
			out, err := generate.Generate(options, manifestPath)
			if err != nil {
				return err
			}
			slog.With("file", out).Info("generated bindings")
			return nil
		},
	}
	genCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "signatures.yml", "manifest of scraped component signatures")
	genCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", options.OutDir, "directory to write generated bindings")
	genCmd.PersistentFlags().StringVarP(&options.OutFile, "output-file", "f", options.OutFile, "output file where bindings will be written")
	genCmd.PersistentFlags().StringVarP(&options.Package, "package", "p", options.Package, "package name of generated files")
	genCmd.PersistentFlags().StringVarP(&options.Receiver, "receiver", "r", options.Receiver, "receiver type of generated methods")
	genCmd.PersistentFlags().StringVar(&options.SupportDir, "support-directory", "", "directory of the support package (defaults to the output directory)")
	genCmd.PersistentFlags().IntVar(&options.UnionArity, "union-arity", options.UnionArity, "largest generated UnionN type")

	return genCmd
}
