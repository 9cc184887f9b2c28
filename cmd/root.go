package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ydb-platform/verbosity/cmd/emit"
	"github.com/ydb-platform/verbosity/cmd/level"
	"github.com/ydb-platform/verbosity/cmd/version"
	"github.com/ydb-platform/verbosity/internal/cli"
	"github.com/ydb-platform/verbosity/pkg/cmdutil"
	"github.com/ydb-platform/verbosity/pkg/command"
)

var RootCommandDescription = command.NewDescription(
	"verbosity",
	"verbosity: control log levels with repeated -v and -q flags",
	`verbosity: control log levels with repeated -v and -q flags.
  Every -v shows one more level of detail, every -q one less:
  -q silences output, -v shows warnings, -vv info, -vvv debug, -vvvv trace.`,
)

func NewRootCommand(f cmdutil.Factory) *cobra.Command {
	boptions := f.GetBaseOptions()

	cmd := &cobra.Command{
		Use:   RootCommandDescription.GetUse(),
		Short: RootCommandDescription.GetShortDescription(),
		Long:  fmt.Sprintf("%s (%s)", RootCommandDescription.GetLongDescription(), version.BuildVersion),
		// hide --completion for more compact --help
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := boptions.ApplyProfile(cmd.Flags()); err != nil {
				return err
			}

			if err := boptions.Validate(); err != nil {
				return fmt.Errorf("%w\nTry '--help' option for more info", err)
			}

			f.ConfigureLogging()

			f.GetLogger().Debugf("Current logging level enabled: %s (verbosity %s)",
				f.GetState(), boptions.Verbosity)
			return nil
		},
		RunE: cli.RequireSubcommand,
	}
	boptions.DefineFlags(cmd.PersistentFlags())

	cmd.SetHelpCommand(&cobra.Command{
		Hidden: true,
	})
	cmd.SetOut(color.Output)

	return cli.SetDefaultsOn(cmd)
}

func InitRootCommandTree(root *cobra.Command, f cmdutil.Factory) {
	root.AddCommand(
		emit.New(f),
		level.New(f),
		version.New(),
	)
}
