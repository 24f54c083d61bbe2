package main

import (
	"github.com/spf13/cobra"

	"extension-binder/internal/gen"
)

func newGenCmd(root *rootOptions) *cobra.Command {
	var (
		types    typeOptions
		output   string
		pkgName  string
		comments bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate explicit bindings for configured types",
		Long: `Generate explicit bindings for configured types.

The generated file declares a <Type>Class function per struct type. Register
its result with a registry to marshal without reflection. Struct types of the
same package that are reachable through fields are generated too.

Example:
  //go:generate go run extension-binder/cmd/extension-binder gen -c ext.yaml -p . -t Item -o item_binding.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(root, &types)
			if err != nil {
				return err
			}

			// fail on mapping errors before writing anything
			if _, err := p.resolve(root); err != nil {
				return err
			}

			g := gen.NewGenerator(gen.Config{
				PkgPath:  p.classes[0].ID.PkgPath,
				PkgName:  pkgName,
				Comments: comments,
			})

			src, err := g.Generate(p.classes...)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}

			root.log.Info().Str("path", output).Int("types", len(p.classes)).Msg("writing bindings")

			return gen.WriteFile(output, src)
		},
	}

	addTypeFlags(cmd, &types)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&pkgName, "package-name", "", "name of the generated package (default: last element of the import path)")
	cmd.Flags().BoolVar(&comments, "comments", true, "emit doc comments")

	return cmd
}
