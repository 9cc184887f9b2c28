package options

import (
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

// Options is an interface to define options flags and validation logic
type Options interface {
	DefineFlags(fs *pflag.FlagSet)
	Validate() error
}

// Validate runs every Validate and reports all failures at once.
func Validate(options ...Options) error {
	var err error
	for _, o := range options {
		err = multierr.Append(err, o.Validate())
	}
	return err
}
