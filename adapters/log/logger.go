package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/abhissng/sqlhelper/utils/helpers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log struct holds the zap Logger instance.
type Log struct {
	*zap.Logger
	mu       sync.Mutex   // Mutex for thread-safe logging
	closeLog func() error // Function to gracefully shut down the logger
}

// NewBasicLogger creates a basic logger for utility functions with the default configuration.
func NewBasicLogger(isProd bool) *Log {
	basicLogger, err := NewLogger(NewLoggerConfig(isProd))
	if err != nil {
		return NewNopLogger()
	}
	return basicLogger
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Log {
	return &Log{Logger: zap.NewNop()}
}

// NewLogger creates a new Log instance with the specified log level and options.
func NewLogger(cfg *LoggerConfig) (*Log, error) {
	if cfg == nil {
		return nil, fmt.Errorf("logger config cannot be nil")
	}

	// ✅ 1. Set the log level
	atomicLevel := zap.NewAtomicLevel()
	if cfg.IsProd {
		atomicLevel.SetLevel(zapcore.InfoLevel)
	} else {
		atomicLevel.SetLevel(zapcore.DebugLevel)
	}
	if cfg.Level != "" {
		atomicLevel.SetLevel(getZapLevel(cfg.Level))
	}

	// ✅ 2. Configure encoder settings
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "log",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		EncodeLevel: func() zapcore.LevelEncoder {
			if cfg.IsProd || cfg.Output != nil {
				return zapcore.CapitalLevelEncoder
			}
			return zapcore.CapitalColorLevelEncoder
		}(),
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   helpers.TailCallerEncoder(cfg.EncoderTailLength),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	defaultOptions := []zap.Option{
		zap.Fields(
			zap.String("environment", cfg.Environment),
			zap.String("service", cfg.ServiceName),
		),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	options := append(defaultOptions, cfg.ZapOptions...)

	// ✅ 3. Select the encoder based on mode
	var encoder zapcore.Encoder
	if cfg.IsProd {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// ✅ 4. Setup log output (stdout by default, or a caller supplied writer)
	var logOutput zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if cfg.Output != nil {
		logOutput = zapcore.AddSync(cfg.Output)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, logOutput, atomicLevel)}

	// ✅ 5. Add a rotating file core when a file path is configured
	var closeFunc func() error
	if fileSink := getLumberjackLogger(cfg); fileSink != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(fileSink), atomicLevel))
		closeFunc = fileSink.Close
	}

	l := zap.New(zapcore.NewTee(cores...), options...)

	return &Log{Logger: l, closeLog: closeFunc}, nil
}

// SafeLog ensures thread-safe logging.
func (l *Log) SafeLog(level zapcore.Level, msg string, fields ...zap.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case zap.DebugLevel:
		l.Logger.Debug(msg, fields...)
	case zap.InfoLevel:
		l.Logger.Info(msg, fields...)
	case zap.WarnLevel:
		l.Logger.Warn(msg, fields...)
	case zap.ErrorLevel:
		l.Logger.Error(msg, fields...)
	case zap.FatalLevel:
		l.Logger.Fatal(msg, fields...)
	}
}

// Debug logs a message at the DebugLevel.
func (l *Log) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

// Info logs a message at the InfoLevel.
func (l *Log) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

// Warn logs a message at the WarnLevel.
func (l *Log) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

// Error logs a message at the ErrorLevel.
func (l *Log) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

// With creates a child Log with the specified fields.
func (l *Log) With(fields ...zap.Field) *Log {
	return &Log{Logger: l.Logger.With(fields...)}
}

// Sync flushes any buffered log entries. Applications should take care to call
// Sync before exiting.
func (l *Log) Sync() error {
	err := l.Logger.Sync()

	if l.closeLog != nil {
		if closeErr := l.closeLog(); closeErr != nil {
			if err != nil {
				return fmt.Errorf("zap sync error: %w; close error: %v", err, closeErr)
			}
			return closeErr
		}
	}
	return err
}

// getLumberjackLogger returns a rotating file writer when file output is configured.
func getLumberjackLogger(cfg *LoggerConfig) *lumberjack.Logger {
	if cfg.FilePath == "" && !helpers.GetIsLogRotationEnabled() {
		return nil
	}
	path := cfg.FilePath
	if path == "" {
		path = "/var/log/" + cfg.ServiceName + ".log"
	}

	return &lumberjack.Logger{
		Filename:   helpers.CreateLogDirectory(path),
		MaxSize:    50, // Max size in MB before rotating
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}
