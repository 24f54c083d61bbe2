package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "extension-binder",
		Short: "Map Go structs onto XML Schema complex types",
		Long: `extension-binder maps configured struct fields onto the local elements of an
XML Schema complex type.

Examples:
  extension-binder check -c ext.yaml
  extension-binder xsd -c ext.yaml -p ./store -t PurchaseOrder
  extension-binder gen -c ext.yaml -p ./store -t Item -o item_binding.go`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}

			opts.log = zerolog.New(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: time.TimeOnly,
			}).Level(level).With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "ext.yaml", "extension file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCheckCmd(opts),
		newXSDCmd(opts),
		newGenCmd(opts),
		newVersionCmd(),
	)

	return cmd
}
