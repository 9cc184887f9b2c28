package emit

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ydb-platform/verbosity/internal/cli"
	"github.com/ydb-platform/verbosity/pkg/cmdutil"
)

var errRepeat = errors.New("--repeat must be at least 1")

func New(f cmdutil.Factory) *cobra.Command {
	opts := &Options{}

	cmd := cli.SetDefaultsOn(&cobra.Command{
		Use:   "emit",
		Short: "Log a message at every level",
		Long: `verbosity emit:
  Log one message per level through the backend selected with --sink.
  Only the messages allowed by -v/-q reach the output.`,
		Args:    cli.NoArgs,
		PreRunE: cli.ValidateOptions(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Run(f)
		},
	})

	opts.DefineFlags(cmd.Flags())

	return cmd
}
