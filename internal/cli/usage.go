package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const UsageTemplate = `{{ generateUsage . }}{{if .HasExample}}

Examples:
  {{.Example}}{{end}}

{{ drawNiceTree . }}
{{ listFlags . }}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

func generateUsage(cmd *cobra.Command) string {
	boldUsage := color.New(color.Bold).Sprint("Usage:")
	root := cmd.Root().Name()
	if cmd == cmd.Root() {
		return fmt.Sprintf("%s %s [global options...] <subcommand>", boldUsage, root)
	}

	subcommand := ""
	if cmd.HasAvailableSubCommands() {
		subcommand = " <subcommand>"
	}

	chain := strings.TrimPrefix(cmd.CommandPath(), root+" ")
	return fmt.Sprintf("%s %s [global options...] %s [options]%s", boldUsage, root, chain, subcommand)
}

func drawTree(cmd *cobra.Command) string {
	if !cmd.HasAvailableSubCommands() {
		return ""
	}

	bold := color.New(color.Bold)
	visible := slices.DeleteFunc(slices.Clone(cmd.Commands()), func(c *cobra.Command) bool {
		return !c.IsAvailableCommand()
	})

	var builder strings.Builder
	builder.WriteString("Subcommands:")
	for i, sub := range visible {
		branch := "├─ "
		if i == len(visible)-1 {
			branch = "└─ "
		}
		builder.WriteString("\n")
		builder.WriteString(branch)
		builder.WriteString(bold.Sprint(sub.Name()))
		builder.WriteString(strings.Repeat(" ", max(1, 20-len(sub.Name()))))
		builder.WriteString(sub.Short)
	}
	builder.WriteString("\n")
	return builder.String()
}

// colorizeUsages paints flag names green in the usage of cmd's own flags.
func colorizeUsages(fs *pflag.FlagSet) string {
	names := []string{}
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, "--"+f.Name)
		if len(f.Shorthand) > 0 {
			names = append(names, "-"+f.Shorthand)
		}
	})

	// Longest first, otherwise --profile would be recolored inside --profile-name.
	slices.SortFunc(names, func(a string, b string) int {
		return len(b) - len(a)
	})

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, name, color.GreenString(name))
	}

	return strings.NewReplacer(pairs...).Replace(fs.FlagUsages())
}

func listFlags(cmd *cobra.Command) string {
	if cmd == cmd.Root() {
		return "Global options:\n" + colorizeUsages(cmd.LocalFlags())
	}

	sections := []string{}
	if local := cmd.LocalFlags(); local.HasAvailableFlags() {
		sections = append(sections, "Options:\n"+colorizeUsages(local))
	}
	if inherited := cmd.InheritedFlags(); inherited.HasAvailableFlags() {
		sections = append(sections, "Global options:\n"+colorizeUsages(inherited))
	}
	return strings.Join(sections, "\n")
}
