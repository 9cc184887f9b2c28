package sink

import (
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

type HclogScale struct{}

func (HclogScale) Level(l verbosity.Level) hclog.Level {
	switch l {
	case verbosity.Error:
		return hclog.Error
	case verbosity.Warn:
		return hclog.Warn
	case verbosity.Info:
		return hclog.Info
	case verbosity.Debug:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}

func (HclogScale) Off() hclog.Level {
	return hclog.Off
}

type Hclog struct {
	logger hclog.Logger
	once   sync.Once
}

func NewHclog(w io.Writer) *Hclog {
	return &Hclog{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:       "verbosity",
			Output:     w,
			Level:      hclog.Info,
			Color:      hclog.ColorOff,
			TimeFormat: "2006-01-02T15:04:05.000Z0700",
		}),
	}
}

func (h *Hclog) Name() string {
	return HclogName
}

func (h *Hclog) Apply(state verbosity.State) {
	h.once.Do(func() {
		h.logger.SetLevel(verbosity.Filter[hclog.Level](state, HclogScale{}))
	})
}

func (h *Hclog) Emit(level verbosity.Level, msg string) {
	h.logger.Log(HclogScale{}.Level(level), msg)
}
