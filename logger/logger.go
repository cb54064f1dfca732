package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.SugaredLogger

func init() {
	// Safe default so packages can log before Init runs (tests, tools)
	log = zap.NewNop().Sugar()
}

// Init configures the global logger. When filename is empty, logs go to
// stdout in console encoding; otherwise JSON with lumberjack rotation.
func Init(level, filename string) *zap.SugaredLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var core zapcore.Core
	if filename != "" {
		writer := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), parseLevel(level))
	} else {
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), parseLevel(level))
	}

	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	zap.ReplaceGlobals(base)
	log = base.Sugar()
	return log
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debugf(template string, args ...interface{}) { log.Debugf(template, args...) }

func Infof(template string, args ...interface{}) { log.Infof(template, args...) }

func Warnf(template string, args ...interface{}) { log.Warnf(template, args...) }

func Errorf(template string, args ...interface{}) { log.Errorf(template, args...) }

func Fatalf(template string, args ...interface{}) { log.Fatalf(template, args...) }

// Sync flushes buffered log entries
func Sync() error { return log.Sync() }
