package emit

import (
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/ydb-platform/verbosity/pkg/cmdutil"
	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

var engineMessages = map[verbosity.Level]string{
	verbosity.Error: "Engines exploded",
	verbosity.Warn:  "Engines smoking",
	verbosity.Info:  "Engines exist",
	verbosity.Debug: "Engine temperature is 200 degrees",
	verbosity.Trace: "Engine subsection is 300 degrees",
}

type Options struct {
	Levels []string
	Repeat int

	levels []verbosity.Level
}

func (o *Options) DefineFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.Levels, "levels",
		[]string{"error", "warn", "info", "debug", "trace"},
		"Emit one message for each of these levels")

	fs.IntVar(&o.Repeat, "repeat", 1,
		"Emit the whole set of messages this many times")
}

func (o *Options) Validate() error {
	var err error
	o.levels = o.levels[:0]
	for _, name := range o.Levels {
		l, parseErr := verbosity.ParseLevel(name)
		if parseErr != nil {
			err = multierr.Append(err, parseErr)
			continue
		}
		o.levels = append(o.levels, l)
	}

	if o.Repeat < 1 {
		err = multierr.Append(err, errRepeat)
	}
	return err
}

func (o *Options) Run(f cmdutil.Factory) error {
	s, err := f.GetSink()
	if err != nil {
		return err
	}

	f.GetLogger().Debugf("Emitting %d messages through %s", o.Repeat*len(o.levels), s.Name())

	for i := 0; i < o.Repeat; i++ {
		for _, l := range o.levels {
			s.Emit(l, engineMessages[l])
		}
	}
	return nil
}
