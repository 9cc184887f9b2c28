package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ydb-platform/verbosity/internal/cli"
	"github.com/ydb-platform/verbosity/pkg/command"
)

var ( // These variables are populated during build time using ldflags
	BuildTimestamp string
	BuildVersion   string
	BuildCommit    string
)

var VersionCommandDescription = command.NewDescription(
	"version",
	"Print verbosity version",
	"Print verbosity version and other build info: git commit and date",
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   VersionCommandDescription.GetUse(),
		Short: VersionCommandDescription.GetShortDescription(),
		Long:  VersionCommandDescription.GetLongDescription(),
		Args:  cli.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"Git commit: %s\nTag: %s\nBuild date: %s\n",
				BuildCommit,
				BuildVersion,
				BuildTimestamp,
			)
			return nil
		},
	}

	return cmd
}
