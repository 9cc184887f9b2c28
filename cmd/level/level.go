package level

import (
	"github.com/spf13/cobra"

	"github.com/ydb-platform/verbosity/internal/cli"
	"github.com/ydb-platform/verbosity/pkg/cmdutil"
)

func New(f cmdutil.Factory) *cobra.Command {
	opts := &Options{}

	cmd := cli.SetDefaultsOn(&cobra.Command{
		Use:   "level",
		Short: "Print the resolved log level",
		Long: `verbosity level:
  Print the level resolved from the baseline and the -v/-q flags.`,
		Args:    cli.NoArgs,
		PreRunE: cli.ValidateOptions(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Run(f, cmd.OutOrStdout())
		},
	})

	opts.DefineFlags(cmd.Flags())

	return cmd
}
