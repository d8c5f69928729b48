package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/notifyhub/regionhealth/internal/config"
)

// Options controls where and how the service logs.
type Options struct {
	Level       string
	Development bool

	// File, when set, receives a copy of every line and is rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Console defaults to os.Stdout.
	Console io.Writer
}

func FromConfig(cfg *config.Config) Options {
	return Options{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
		File:        cfg.LogFile,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	}
}

// New builds a zap logger writing JSON (or console lines in development
// mode) to the console and, optionally, to a rotated file. The returned
// cleanup flushes buffered entries and closes the file; call it once on exit.
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var enc zapcore.Encoder
	if opts.Development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	sinks := []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(console))}

	var file *lumberjack.Logger
	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		sinks = append(sinks, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(enc, zapcore.NewMultiWriteSyncer(sinks...), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel))

	cleanup := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup, nil
}
