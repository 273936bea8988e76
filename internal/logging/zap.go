package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Verbose bool
	JSON    bool
	// Quiet drops everything below warnings. Verbose wins if both are set.
	Quiet bool
	// Output receives log lines; stderr when nil so stdout stays a clean report.
	Output io.Writer
}

func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	switch {
	case opts.Verbose:
		level = zapcore.DebugLevel
	case opts.Quiet:
		level = zapcore.WarnLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	logOpts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(out))}
	if opts.Verbose {
		logOpts = append(logOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(core, logOpts...)
}
