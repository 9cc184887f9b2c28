package command

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ydb-platform/verbosity/pkg/options"
	"github.com/ydb-platform/verbosity/pkg/profile"
	"github.com/ydb-platform/verbosity/pkg/sink"
	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

type Description struct {
	use              string
	shortDescription string
	longDescription  string
}

type BaseOptions struct {
	Verbosity     *options.VerbosityOptions
	Sink          string
	ProfileFile   string
	ActiveProfile string
}

func NewBaseOptions(cfg verbosity.Config) *BaseOptions {
	return &BaseOptions{
		Verbosity: options.NewVerbosityOptions(cfg),
		Sink:      sink.ZapName,
	}
}

func (o *BaseOptions) Validate() error {
	return options.Validate(o.Verbosity, sinkOption(o.Sink))
}

func (o *BaseOptions) DefineFlags(fs *pflag.FlagSet) {
	o.Verbosity.DefineFlags(fs)

	fs.StringVar(
		&o.Sink, "sink",
		o.Sink,
		fmt.Sprintf("Logging backend used by commands that emit messages: %v", sink.Names()))

	fs.StringVar(
		&o.ProfileFile, "config-file",
		"",
		"Path to config file with profile data in yaml format")

	fs.StringVar(
		&o.ActiveProfile, "profile",
		"",
		"Override currently set profile name from --config-file")
}

// ApplyProfile fills the baseline and the sink from the active profile.
// Values given on the command line win over the profile.
func (o *BaseOptions) ApplyProfile(fs *pflag.FlagSet) error {
	p, err := profile.Load(o.ProfileFile, o.ActiveProfile)
	if err != nil {
		return err
	}

	cfg, err := p.Config(o.Verbosity.Config)
	if err != nil {
		return err
	}
	o.Verbosity.Config = cfg

	if f := fs.Lookup("sink"); f == nil || !f.Changed {
		o.Sink = p.SinkOr(o.Sink)
	}
	return nil
}

type sinkOption string

func (s sinkOption) DefineFlags(*pflag.FlagSet) {}

func (s sinkOption) Validate() error {
	return sink.Validate(string(s))
}

func NewDescription(use, shortDescription, longDescription string) *Description {
	return &Description{
		use:              use,
		shortDescription: shortDescription,
		longDescription:  longDescription,
	}
}

func (b *Description) GetUse() string {
	return b.use
}

func (b *Description) GetShortDescription() string {
	return b.shortDescription
}

func (b *Description) GetLongDescription() string {
	return b.longDescription
}
