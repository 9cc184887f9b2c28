package sink

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

// LogrusScale uses PanicLevel as Off because logrus cannot disable itself by
// level alone. Logrus.Apply also discards output in that case.
type LogrusScale struct{}

func (LogrusScale) Level(l verbosity.Level) logrus.Level {
	switch l {
	case verbosity.Error:
		return logrus.ErrorLevel
	case verbosity.Warn:
		return logrus.WarnLevel
	case verbosity.Info:
		return logrus.InfoLevel
	case verbosity.Debug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (LogrusScale) Off() logrus.Level {
	return logrus.PanicLevel
}

type Logrus struct {
	logger *logrus.Logger
	once   sync.Once
}

func NewLogrus(w io.Writer) *Logrus {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	return &Logrus{logger: logger}
}

func (l *Logrus) Name() string {
	return LogrusName
}

func (l *Logrus) Apply(state verbosity.State) {
	l.once.Do(func() {
		if verbosity.IsSilent(state) {
			l.logger.SetOutput(io.Discard)
		}
		l.logger.SetLevel(verbosity.Filter[logrus.Level](state, LogrusScale{}))
	})
}

func (l *Logrus) Emit(level verbosity.Level, msg string) {
	l.logger.Log(LogrusScale{}.Level(level), msg)
}
