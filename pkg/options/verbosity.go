package options

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

const (
	VerboseFlag = "verbose"
	QuietFlag   = "quiet"
)

var (
	ErrConflictingFlags = errors.New("--verbose and --quiet cannot be used together")
	ErrNegativeCount    = errors.New("flag count must not be negative")
)

// VerbosityOptions collects repeated -v and -q flags. Config is the baseline
// and has to be set before DefineFlags so the help text names it.
type VerbosityOptions struct {
	Config  verbosity.Config
	Verbose int
	Quiet   int
}

func NewVerbosityOptions(cfg verbosity.Config) *VerbosityOptions {
	return &VerbosityOptions{Config: cfg}
}

func (o *VerbosityOptions) DefineFlags(fs *pflag.FlagSet) {
	fs.CountVarP(&o.Verbose, VerboseFlag, "v",
		fmt.Sprintf("More output per occurrence (default level: %s)", o.Config))

	fs.CountVarP(&o.Quiet, QuietFlag, "q",
		"Less output per occurrence")
}

func (o *VerbosityOptions) Validate() error {
	var err error
	if o.Verbose < 0 {
		err = multierr.Append(err, fmt.Errorf("--%s: %w", VerboseFlag, ErrNegativeCount))
	}
	if o.Quiet < 0 {
		err = multierr.Append(err, fmt.Errorf("--%s: %w", QuietFlag, ErrNegativeCount))
	}
	if o.Verbose > 0 && o.Quiet > 0 {
		err = multierr.Append(err, ErrConflictingFlags)
	}
	return err
}

// State resolves the collected counts. Negative counts are treated as zero.
func (o *VerbosityOptions) State() verbosity.State {
	return verbosity.Resolve(o.Config, count(o.Verbose), count(o.Quiet))
}

// String prints the resolved rank, -1 meaning silent.
func (o *VerbosityOptions) String() string {
	return strconv.Itoa(verbosity.Rank(o.Config, count(o.Verbose), count(o.Quiet)))
}

func count(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}
