package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/verbosity/cmd"
	"github.com/ydb-platform/verbosity/pkg/cmdutil"
	"github.com/ydb-platform/verbosity/pkg/command"
	"github.com/ydb-platform/verbosity/pkg/verbosity"
)

func createLogger(level zapcore.Level) (zap.AtomicLevel, *zap.Logger) {
	atom := zap.NewAtomicLevelAt(level)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	logger := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			atom,
		),
	)

	_ = zap.ReplaceGlobals(logger)
	return atom, logger
}

func main() {
	logLevelSetter, logger := createLogger(zapcore.ErrorLevel)
	defer func() {
		_ = logger.Sync()
	}()

	f := cmdutil.New(
		command.NewBaseOptions(verbosity.ErrorDefault()),
		logLevelSetter,
		logger,
		os.Stderr,
	)

	root := cmd.NewRootCommand(f)
	cmd.InitRootCommandTree(root, f)

	if err := root.Execute(); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
}
