package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/abhissng/sqlhelper/utils/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity level of a log message.
type LogLevel string

const (
	// DebugLevel is the lowest severity level, used for detailed debugging information.
	DebugLevel LogLevel = "debug"
	// InfoLevel is used for general informational messages.
	InfoLevel LogLevel = "info"
	// WarnLevel is used for warnings and potential problems.
	WarnLevel LogLevel = "warn"
	// ErrorLevel is used for errors that have occurred.
	ErrorLevel LogLevel = "error"
	// FatalLevel is the highest severity level, used for critical errors that result in program termination.
	FatalLevel LogLevel = "fatal"
)

// Helper functions to create fields without directly using zap

// String creates a single types.Field (string) for a given key-value pair.
func String(key string, value string) types.Field {
	return zap.String(key, value)
}

// Int creates a single types.Field (int) for a given key-value pair.
func Int(key string, value int) types.Field {
	return zap.Int(key, value)
}

// Bool creates a single types.Field (bool) for a given key-value pair.
func Bool(key string, value bool) types.Field {
	return zap.Bool(key, value)
}

// Any creates a single types.Field (any) for a given key-value pair.
func Any(key string, value any) types.Field {
	return zap.Any(key, value)
}

// Err creates a single types.Field (error) for a given error.
func Err(err error) types.Field {
	return zap.Error(err)
}

// Stringer creates a single types.Field (fmt.Stringer) for a given key-value pair.
func Stringer(key string, value fmt.Stringer) types.Field {
	return zap.Stringer(key, value)
}

type errorArray []error

func (a errorArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		if e == nil {
			enc.AppendString("<nil>")
		} else {
			enc.AppendString(e.Error())
		}
	}
	return nil
}

// Blame creates a field carrying the error code and causes of a Blame.
func Blame(b blame.Blame) zap.Field {
	cs := b.FetchCauses()
	switch len(cs) {
	case 0:
		return zap.String("error_code", b.FetchErrCode().String())
	case 1:
		return zap.Error(cs[0])
	default:
		return zap.Array("causes", errorArray(cs))
	}
}

// getZapLevel converts our LogLevel to zap.Level
func getZapLevel(level LogLevel) zapcore.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

type LoggerConfig struct {
	// IsProd enables production mode (JSON output, Info level)
	IsProd bool

	// Level overrides the level picked from IsProd
	Level LogLevel

	// ZapOptions are the standard zap logger options
	ZapOptions []zap.Option

	// Output replaces stdout, mostly for tests and the CLI
	Output io.Writer

	// FilePath enables a rotating JSON file sink
	FilePath string

	// ServiceName overrides the default service name
	ServiceName string

	// Environment overrides the default environment
	Environment string

	// EncoderTailLength overrides the default encoder tail length
	EncoderTailLength int
}

// LoggerOption defines a function that modifies LoggerConfig
type LoggerOption func(*LoggerConfig)

// NewLoggerConfig creates a new LoggerConfig with default values
func NewLoggerConfig(isProd bool, opts ...LoggerOption) *LoggerConfig {
	cfg := &LoggerConfig{
		ServiceName: helpers.GetServiceName(),
		Environment: helpers.GetEnvironment(),
		FilePath:    helpers.GetLogFilePath(),
		IsProd:      isProd,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLevel sets the minimum level
func WithLevel(level LogLevel) LoggerOption {
	return func(c *LoggerConfig) {
		c.Level = level
	}
}

// WithOutput sends console output to w instead of stdout
func WithOutput(w io.Writer) LoggerOption {
	return func(c *LoggerConfig) {
		c.Output = w
	}
}

// WithFilePath enables rotating file output
func WithFilePath(path string) LoggerOption {
	return func(c *LoggerConfig) {
		c.FilePath = path
	}
}

// WithServiceName sets the service name
func WithServiceName(name string) LoggerOption {
	return func(c *LoggerConfig) {
		if name != "" {
			c.ServiceName = name
		}
	}
}

// WithEnvironment sets the environment
func WithEnvironment(env string) LoggerOption {
	return func(c *LoggerConfig) {
		if env != "" {
			c.Environment = env
		}
	}
}

// WithEncoderTailLength sets the encoder tail length
func WithEncoderTailLength(length int) LoggerOption {
	return func(c *LoggerConfig) {
		if length > 0 {
			// Values <= 2 don't provide meaningful context beyond short encoder
			if length <= 2 {
				length = 0
			}
			if length > 7 {
				length = 7
			}
			c.EncoderTailLength = length
		}
	}
}
