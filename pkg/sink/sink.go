// Package sink configures logging backends from a resolved verbosity.
//
// Each backend exposes a verbosity.Scale that maps the five levels onto its own
// level type, and a Sink whose Apply sets the backend filter exactly once.
package sink

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

const (
	ZapName     = "zap"
	SlogName    = "slog"
	ZerologName = "zerolog"
	LogrusName  = "logrus"
	HclogName   = "hclog"
)

var ErrUnknownSink = errors.New("unknown sink")

type Sink interface {
	Name() string
	// Apply sets the backend filter. Calls after the first one are ignored.
	Apply(state verbosity.State)
	Emit(level verbosity.Level, msg string)
}

// Params carries what the backends need to be built. Zap reuses the
// application logger, every other backend writes to Out.
type Params struct {
	Out       io.Writer
	ZapLevel  zap.AtomicLevel
	ZapLogger *zap.Logger
}

var constructors = map[string]func(Params) Sink{
	ZapName: func(p Params) Sink {
		return NewZap(p.ZapLevel, p.ZapLogger)
	},
	SlogName: func(p Params) Sink {
		return NewSlog(p.Out)
	},
	ZerologName: func(p Params) Sink {
		return NewZerolog(p.Out)
	},
	LogrusName: func(p Params) Sink {
		return NewLogrus(p.Out)
	},
	HclogName: func(p Params) Sink {
		return NewHclog(p.Out)
	},
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Validate(name string) error {
	if _, ok := constructors[name]; !ok {
		return fmt.Errorf("%w %q, expected one of %v", ErrUnknownSink, name, Names())
	}
	return nil
}

func New(name string, p Params) (Sink, error) {
	if err := Validate(name); err != nil {
		return nil, err
	}
	if p.Out == nil {
		p.Out = os.Stderr
	}
	if p.ZapLogger == nil {
		p.ZapLogger = zap.L()
	}
	if p.ZapLevel == (zap.AtomicLevel{}) {
		p.ZapLevel = zap.NewAtomicLevel()
	}
	return constructors[name](p), nil
}

// FilterName renders the filter the named backend is configured with for state.
func FilterName(name string, state verbosity.State) (string, error) {
	if err := Validate(name); err != nil {
		return "", err
	}
	if verbosity.IsSilent(state) {
		return "off", nil
	}

	switch name {
	case ZapName:
		return verbosity.Filter[zapcore.Level](state, ZapScale{}).String(), nil
	case SlogName:
		return verbosity.Filter[slog.Level](state, SlogScale{}).String(), nil
	case ZerologName:
		return verbosity.Filter[zerolog.Level](state, ZerologScale{}).String(), nil
	case LogrusName:
		return verbosity.Filter[logrus.Level](state, LogrusScale{}).String(), nil
	default:
		return verbosity.Filter[hclog.Level](state, HclogScale{}).String(), nil
	}
}
