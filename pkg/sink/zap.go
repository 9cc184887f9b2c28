package sink

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

// ZapScale maps Trace onto DebugLevel since zap has nothing finer.
type ZapScale struct{}

func (ZapScale) Level(l verbosity.Level) zapcore.Level {
	switch l {
	case verbosity.Error:
		return zapcore.ErrorLevel
	case verbosity.Warn:
		return zapcore.WarnLevel
	case verbosity.Info:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Off is above FatalLevel, so an AtomicLevel set to it enables nothing.
func (ZapScale) Off() zapcore.Level {
	return zapcore.InvalidLevel
}

type Zap struct {
	level  zap.AtomicLevel
	logger *zap.Logger
	once   sync.Once
}

func NewZap(level zap.AtomicLevel, logger *zap.Logger) *Zap {
	return &Zap{
		level:  level,
		logger: logger,
	}
}

func (z *Zap) Name() string {
	return ZapName
}

func (z *Zap) Apply(state verbosity.State) {
	z.once.Do(func() {
		z.level.SetLevel(verbosity.Filter[zapcore.Level](state, ZapScale{}))
	})
}

func (z *Zap) Emit(level verbosity.Level, msg string) {
	z.logger.Log(ZapScale{}.Level(level), msg)
}
