package level

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/ydb-platform/verbosity/pkg/cmdutil"
	"github.com/ydb-platform/verbosity/pkg/sink"
	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

const (
	OutputText = "text"
	OutputYaml = "yaml"
)

var levelColors = map[verbosity.Level]*color.Color{
	verbosity.Error: color.New(color.FgRed, color.Bold),
	verbosity.Warn:  color.New(color.FgYellow),
	verbosity.Info:  color.New(color.FgGreen),
	verbosity.Debug: color.New(color.FgCyan),
	verbosity.Trace: color.New(color.FgMagenta),
}

var offColor = color.New(color.Faint)

type Options struct {
	Output   string
	AllSinks bool
}

type report struct {
	Level     string            `yaml:"level"`
	Verbosity int               `yaml:"verbosity"`
	Silent    bool              `yaml:"silent"`
	Baseline  string            `yaml:"baseline"`
	Sinks     map[string]string `yaml:"sinks,omitempty"`
}

func (o *Options) DefineFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", OutputText,
		fmt.Sprintf("Output format: [%s %s]", OutputText, OutputYaml))

	fs.BoolVar(&o.AllSinks, "all-sinks", false,
		"Also print the filter every logging backend would be configured with")
}

func (o *Options) Validate() error {
	switch o.Output {
	case OutputText, OutputYaml:
		return nil
	}
	return fmt.Errorf("invalid --output %q, expected one of [%s %s]", o.Output, OutputText, OutputYaml)
}

func (o *Options) Run(f cmdutil.Factory, out io.Writer) error {
	state := f.GetState()
	vopts := f.GetBaseOptions().Verbosity

	r := report{
		Level:     state.String(),
		Verbosity: state.Rank(),
		Silent:    verbosity.IsSilent(state),
		Baseline:  vopts.Config.String(),
	}

	if o.AllSinks {
		r.Sinks = make(map[string]string)
		for _, name := range sink.Names() {
			filter, err := sink.FilterName(name, state)
			if err != nil {
				return err
			}
			r.Sinks[name] = filter
		}
	}

	if o.Output == OutputYaml {
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	return writeText(out, state, r)
}

func colorize(state verbosity.State) string {
	l, ok := verbosity.Severity(state)
	if !ok {
		return offColor.Sprint(state.String())
	}
	return levelColors[l].Sprint(state.String())
}

func writeText(out io.Writer, state verbosity.State, r report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Level:\t%s\n", colorize(state))
	fmt.Fprintf(w, "Verbosity:\t%d\n", r.Verbosity)
	fmt.Fprintf(w, "Silent:\t%t\n", r.Silent)
	fmt.Fprintf(w, "Baseline:\t%s\n", r.Baseline)

	if len(r.Sinks) > 0 {
		fmt.Fprintf(w, "Sinks:\n")
		for _, name := range sink.Names() {
			fmt.Fprintf(w, "  %s\t%s\n", name, strings.ToLower(r.Sinks[name]))
		}
	}
	return w.Flush()
}
