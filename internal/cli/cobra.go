package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ydb-platform/verbosity/pkg/options"
)

func init() {
	cobra.AddTemplateFunc("generateUsage", generateUsage)
	cobra.AddTemplateFunc("drawNiceTree", drawTree)
	cobra.AddTemplateFunc("listFlags", listFlags)
}

// ValidateOptions is meant for PreRunE of leaf commands.
func ValidateOptions(optsArgs ...options.Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := options.Validate(optsArgs...); err != nil {
			return fmt.Errorf("%w\nTry '--help' option for more info", err)
		}
		return nil
	}
}

func RequireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("you have not selected a subcommand\nTry '--help' option for more info")
	}
	return fmt.Errorf("unknown subcommand %q\nTry '--help' option for more info", args[0])
}

func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("free args not expected: %v", args)
	}
	return nil
}

func SetDefaultsOn(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SortFlags = false
	cmd.PersistentFlags().SortFlags = false
	cmd.SetUsageTemplate(UsageTemplate)

	return cmd
}
