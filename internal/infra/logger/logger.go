// Package logger — обёртка над zap для всего процесса.
// Уровень хранится в zap.AtomicLevel и меняется без пересоздания ядра; потоки вывода
// можно переназначить через SetWriters (используется в тестах).
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.Mutex
	log      *zap.Logger
	logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	out      = zapcore.Lock(zapcore.AddSync(os.Stdout))
	errOut   = zapcore.Lock(zapcore.AddSync(os.Stderr))
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// rebuildLocked пересоздаёт логгер; вызывающий держит mu.
func rebuildLocked() {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), out, logLevel)
	if log != nil {
		_ = log.Sync()
	}
	log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.ErrorOutput(errOut))
}

// ParseLevel переводит строку уровня в zapcore.Level; неизвестные значения дают info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Init задаёт уровень и пересобирает глобальный логгер.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()

	logLevel.SetLevel(ParseLevel(level))
	rebuildLocked()
}

// SetWriters переназначает потоки вывода. Nil означает Stdout/Stderr.
func SetWriters(stdout, stderr io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	out = zapcore.Lock(zapcore.AddSync(stdout))
	errOut = zapcore.Lock(zapcore.AddSync(stderr))
	rebuildLocked()
}

// Logger возвращает текущий zap.Logger, создавая его при первом обращении.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if log == nil {
		rebuildLocked()
	}
	return log
}

// Sync сбрасывает буферы. Ошибку sync для терминалов игнорировать безопасно.
func Sync() error { return Logger().Sync() }

// Debug, Info, Warn и Error пишут структурированные сообщения соответствующего уровня.
func Debug(msg string, fields ...zap.Field) { Logger().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Logger().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Logger().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Logger().Error(msg, fields...) }

// Fatal пишет сообщение, сбрасывает буферы и завершает процесс с кодом 1.
func Fatal(msg string, fields ...zap.Field) {
	l := Logger()
	l.Error(msg, fields...)
	_ = l.Sync()
	os.Exit(1)
}
