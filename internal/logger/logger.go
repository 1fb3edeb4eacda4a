package logger

import (
	"fmt"
	"strings"

	"github.com/haloiq/tax-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "tax-api"

// Log is the global logger instance. Use L() to read it.
var Log *zap.Logger

// Options selects the encoder and level of the global logger
type Options struct {
	Stage string
	Level string
	JSON  bool
}

// OptionsForStage returns JSON output in prod and colored console output elsewhere
func OptionsForStage(stage, level string) Options {
	return Options{
		Stage: stage,
		Level: level,
		JSON:  stage == constants.StageProd,
	}
}

// New builds a logger tagged with the service name and stage
func New(opts Options) (*zap.Logger, error) {
	level := parseLevel(opts.Level)

	var zapConfig zap.Config
	if opts.JSON {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.DisableStacktrace = opts.JSON && level > zapcore.DebugLevel
	zapConfig.InitialFields = map[string]interface{}{
		"service": serviceName,
		"stage":   opts.Stage,
	}

	built, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return built, nil
}

// InitLogger installs the global logger for stage at level
func InitLogger(stage, level string) {
	built, err := New(OptionsForStage(stage, level))
	if err != nil {
		panic(err.Error())
	}
	Log = built
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case constants.LogLevelDebug:
		return zapcore.DebugLevel
	case constants.LogLevelWarn, constants.LogLevelWarning:
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case constants.LogLevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the global logger, or a no-op logger before InitLogger runs
func L() *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	L().Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

// Fatal logs at FatalLevel and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) {
	L().Fatal(msg, fields...)
}

// With returns a child of the global logger carrying fields
func With(fields ...zapcore.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return L().Sync()
}
