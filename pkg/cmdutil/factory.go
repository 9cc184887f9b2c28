package cmdutil

import (
	"io"

	"go.uber.org/zap"

	"github.com/ydb-platform/verbosity/pkg/command"
	"github.com/ydb-platform/verbosity/pkg/sink"
	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

type Factory interface {
	GetBaseOptions() *command.BaseOptions
	GetLogger() *zap.SugaredLogger
	// GetState is only meaningful after the root PersistentPreRunE has run.
	GetState() verbosity.State
	// GetSink returns the backend selected by --sink with the state already applied.
	GetSink() (sink.Sink, error)
	// ConfigureLogging sets the application logger level from the resolved
	// state. Only the first call has an effect.
	ConfigureLogging()
}

type factory struct {
	opts      *command.BaseOptions
	logger    *zap.Logger
	appLogger *sink.Zap
	params    sink.Params
}

func New(
	opts *command.BaseOptions,
	logLevelSetter zap.AtomicLevel,
	logger *zap.Logger,
	out io.Writer,
) Factory {
	return &factory{
		opts:      opts,
		logger:    logger,
		appLogger: sink.NewZap(logLevelSetter, logger),
		params: sink.Params{
			Out:       out,
			ZapLevel:  logLevelSetter,
			ZapLogger: logger,
		},
	}
}

func (f *factory) GetBaseOptions() *command.BaseOptions {
	return f.opts
}

func (f *factory) GetLogger() *zap.SugaredLogger {
	return f.logger.Sugar()
}

func (f *factory) GetState() verbosity.State {
	return f.opts.Verbosity.State()
}

func (f *factory) ConfigureLogging() {
	f.appLogger.Apply(f.GetState())
}

func (f *factory) GetSink() (sink.Sink, error) {
	if f.opts.Sink == sink.ZapName {
		f.ConfigureLogging()
		return f.appLogger, nil
	}

	s, err := sink.New(f.opts.Sink, f.params)
	if err != nil {
		return nil, err
	}
	s.Apply(f.GetState())
	return s, nil
}
