package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"extension-binder/internal/xsd"
)

func newXSDCmd(root *rootOptions) *cobra.Command {
	var (
		types     typeOptions
		output    string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "xsd",
		Short: "Print the XML Schema of configured types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(root, &types)
			if err != nil {
				return err
			}

			mappings, err := p.resolve(root)
			if err != nil {
				return err
			}

			opts := xsd.DefaultOptions()
			opts.TargetNamespace = namespace

			var buf bytes.Buffer
			if err := xsd.Write(&buf, opts, mappings...); err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			root.log.Info().Str("path", output).Int("types", len(mappings)).Msg("writing schema")

			return os.WriteFile(output, buf.Bytes(), 0o644)
		},
	}

	addTypeFlags(cmd, &types)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&namespace, "namespace", "", "target namespace of the schema; instance root elements must then be qualified")

	return cmd
}

func addTypeFlags(cmd *cobra.Command, opts *typeOptions) {
	cmd.Flags().StringSliceVarP(&opts.packages, "package", "p", []string{"."}, "Go packages to load")
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "types to process (name, pkg.Name or import/path.Name)")
}
