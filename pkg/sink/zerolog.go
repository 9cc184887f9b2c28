package sink

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

type ZerologScale struct{}

func (ZerologScale) Level(l verbosity.Level) zerolog.Level {
	switch l {
	case verbosity.Error:
		return zerolog.ErrorLevel
	case verbosity.Warn:
		return zerolog.WarnLevel
	case verbosity.Info:
		return zerolog.InfoLevel
	case verbosity.Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func (ZerologScale) Off() zerolog.Level {
	return zerolog.Disabled
}

// Zerolog filters on its own logger instead of zerolog.SetGlobalLevel so that
// several sinks can live in one process.
type Zerolog struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	once   sync.Once
}

func NewZerolog(w io.Writer) *Zerolog {
	return &Zerolog{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

func (z *Zerolog) Name() string {
	return ZerologName
}

func (z *Zerolog) Apply(state verbosity.State) {
	z.once.Do(func() {
		lvl := verbosity.Filter[zerolog.Level](state, ZerologScale{})
		// the global level defaults to debug and would hide trace events
		if lvl < zerolog.GlobalLevel() {
			zerolog.SetGlobalLevel(lvl)
		}

		z.mu.Lock()
		defer z.mu.Unlock()
		z.logger = z.logger.Level(lvl)
	})
}

func (z *Zerolog) Emit(level verbosity.Level, msg string) {
	z.mu.RLock()
	logger := z.logger
	z.mu.RUnlock()

	logger.WithLevel(ZerologScale{}.Level(level)).Msg(msg)
}
