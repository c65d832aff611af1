package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cmmoran/overloadgen/pkg/action/support"
	"github.com/cmmoran/overloadgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewSupportCommand())
}

func NewSupportCommand() *cobra.Command {
	options := generator.NewOptions()

	var supportCmd = &cobra.Command{
		Use:   "support",
		Short: "generate the runtime support package",
		Long:  "Generate the runtime support package the bindings depend on (Element, Callback, ElementCtor, UnionN)",
		RunE: func(c *cobra.Command, args []string) error {
			out, err := support.Generate(options)
			if err != nil {
				return err
			}
			slog.With("file", out).Info("generated support package")
			return nil
		},
	}
	supportCmd.PersistentFlags().StringVarP(&options.SupportDir, "support-directory", "o", "", "directory to write the support package")
	supportCmd.PersistentFlags().StringVarP(&options.Package, "package", "p", options.Package, "package name of the support package")
	supportCmd.PersistentFlags().IntVar(&options.UnionArity, "union-arity", options.UnionArity, "largest generated UnionN type")

	return supportCmd
}
