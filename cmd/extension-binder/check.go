package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"extension-binder/internal/analyze"
	"extension-binder/internal/diagnostic"
	"extension-binder/internal/mapping"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var packages []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an extension file",
		Long: `Validate the extension file.

Checks:
  - YAML syntax and known keys
  - duplicate types and fields
  - element names are valid and unique per type
  - configured types and fields exist (with --package)

Examples:
  extension-binder check -c ext.yaml
  extension-binder check -c ext.yaml -p ./store`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := loadConfig(root)
			if err != nil {
				return err
			}

			var diags *diagnostic.Diagnostics
			if len(packages) > 0 {
				graph, err := analyze.NewAnalyzer().LoadPackages(packages...)
				if err != nil {
					return err
				}

				diags = mapping.ValidateAgainst(f, graph)
			} else {
				diags = mapping.Validate(f)
			}

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if err := diags.Error(); err != nil {
				return fmt.Errorf("%s is invalid", root.configPath)
			}

			fmt.Fprintf(out, "%s is valid (%d types)\n", root.configPath, len(f.Types))

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&packages, "package", "p", nil, "Go packages to check types against")

	return cmd
}
