package sink

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

const (
	// LevelTrace follows the slog convention of four steps per level.
	LevelTrace = slog.LevelDebug - 4
	// LevelOff is above any level a record can carry.
	LevelOff = slog.Level(math.MaxInt)
)

type SlogScale struct{}

func (SlogScale) Level(l verbosity.Level) slog.Level {
	switch l {
	case verbosity.Error:
		return slog.LevelError
	case verbosity.Warn:
		return slog.LevelWarn
	case verbosity.Info:
		return slog.LevelInfo
	case verbosity.Debug:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

func (SlogScale) Off() slog.Level {
	return LevelOff
}

type Slog struct {
	level  *slog.LevelVar
	logger *slog.Logger
	once   sync.Once
}

func NewSlog(w io.Writer) *Slog {
	level := new(slog.LevelVar)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	return &Slog{
		level:  level,
		logger: slog.New(slog.NewTextHandler(w, opts)),
	}
}

func (s *Slog) Name() string {
	return SlogName
}

func (s *Slog) Apply(state verbosity.State) {
	s.once.Do(func() {
		s.level.Set(verbosity.Filter[slog.Level](state, SlogScale{}))
	})
}

func (s *Slog) Emit(level verbosity.Level, msg string) {
	s.logger.Log(context.Background(), SlogScale{}.Level(level), msg)
}
