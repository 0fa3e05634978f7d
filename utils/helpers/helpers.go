package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/types"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// isEmptyPrimitive handles primitive type checks
func isEmptyPrimitive(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0, true
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0, true
	case reflect.Bool:
		return !v.Bool(), true
	}
	return false, false
}

// isEmptyCollection handles collection type checks
func isEmptyCollection(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil() || v.Len() == 0, true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !IsEmpty(v.Index(i).Interface()) {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

// isEmptyStruct handles struct type checks
func isEmptyStruct(v reflect.Value) (bool, bool) {
	if v.Kind() != reflect.Struct {
		return false, false
	}

	// Handle time.Time separately
	if v.Type() == reflect.TypeOf(time.Time{}) {
		return v.Interface().(time.Time).IsZero(), true
	}

	// Check all struct fields recursively
	for i := 0; i < v.NumField(); i++ {
		if !IsEmpty(v.Field(i).Interface()) {
			return false, true
		}
	}
	return true, true
}

// IsEmpty checks if the given interface value represents an empty or zero value.
func IsEmpty[T any](value T) bool {
	// Check if value implements EmptyCheck interface
	if v, ok := any(value).(types.EmptyCheck); ok {
		return v.IsEmpty()
	}

	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}

	// Handle pointer and interface types first
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	}

	// Check primitive types
	if isEmpty, ok := isEmptyPrimitive(v); ok {
		return isEmpty
	}

	// Check collection types
	if isEmpty, ok := isEmptyCollection(v); ok {
		return isEmpty
	}

	// Check struct types
	if isEmpty, ok := isEmptyStruct(v); ok {
		return isEmpty
	}

	// Default: Compare with zero value
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}

// FetchErrorStrings returns a slice of strings containing the error messages
func FetchErrorStrings(errs []error) []string {
	errStrings := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			errStrings = append(errStrings, err.Error())
		}
	}
	return errStrings
}

// IsNil reports whether value is nil, including typed nil pointers held in an interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// IsProdEnvironment returns true if Environment is set to "prod" or "production"
func IsProdEnvironment() bool {
	switch GetEnvironment() {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// GetMaxConns returns the default value for MaxConns for postgres or sql.
func GetMaxConns(maxConn int) int {
	numCPU := runtime.NumCPU()
	if maxConn < 4 && numCPU < 4 {
		return 4
	}
	if maxConn < numCPU {
		return numCPU
	}
	return maxConn
}

// GetServiceName returns the service name from the environment, falling back to the library name.
func GetServiceName() string {
	if name := os.Getenv(constant.Service); name != "" {
		return name
	}
	return constant.DefaultServiceName
}

// GetDefaultLanguageTag returns the default language tag
func GetDefaultLanguageTag() types.LanguageTag {
	return types.LanguageTag(language.English)
}

// ParseLanguageTag parses a string into a language.Tag and returns a LanguageTag
func ParseLanguageTag(tagString string) types.LanguageTag {
	if tagString == "" {
		return GetDefaultLanguageTag()
	}
	parsedTag, err := language.Parse(tagString)
	if err != nil {
		return GetDefaultLanguageTag()
	}
	return types.LanguageTag(parsedTag)
}

// NewBundle creates a new i18n.Bundle
func NewBundle(language types.LanguageTag) *i18n.Bundle {
	if IsEmpty(language) {
		language = GetDefaultLanguageTag()
	}
	return i18n.NewBundle(types.ToLanguageTag(language))
}

// GetGoROOT returns the GOROOT used to trim error sources.
func GetGoROOT() string {
	return runtime.GOROOT()
}

// GenerateReasonCode builds a namespaced reason code such as SQLH-100001.
func GenerateReasonCode(namespace string, code int) string {
	return fmt.Sprintf("%s-%d", namespace, code)
}

// GetEnvironment returns the run environment from ENVIRONMENT or RUN_MODE.
func GetEnvironment() string {
	if env := os.Getenv(constant.Environment); env != "" {
		return env
	}
	return os.Getenv(constant.RunMode)
}

// GetEnvironmentSlug normalises an environment name to the folder name used for configuration.
func GetEnvironmentSlug(environment string) string {
	switch strings.ToLower(environment) {
	case "dev", "development":
		return "dev"
	case "test", "testing":
		return "test"
	case "staging":
		return "staging"
	case "prod", "production":
		return "prod"
	case "uat":
		return "uat"
	default:
		return constant.DefaultEnvironment
	}
}

// CreateLogDirectory makes sure the parent directory of logFilePath exists and returns the cleaned path.
func CreateLogDirectory(logFilePath string) string {
	logFilePath = filepath.Clean(logFilePath)
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		Println(constant.ERROR, "failed to create log directory: ", err)
	}
	return logFilePath
}

// GetLogFilePath returns the log file configured through LOG_FILE_PATH, "" when unset.
func GetLogFilePath() string {
	return os.Getenv(constant.LogFilePath)
}

// GetIsLogRotationEnabled returns true if log rotation is enabled
func GetIsLogRotationEnabled() bool {
	enableRotation, _ := strconv.ParseBool(os.Getenv(constant.LogRotationEnabled))
	return enableRotation
}

// Println prints a message with the specified log mode and color
func Println(mode types.LogMode, args ...any) {
	var color string
	switch mode {
	case constant.INFO:
		color = constant.GreenColor
	case constant.WARN:
		color = constant.YellowColor
	case constant.ERROR, constant.FATAL:
		color = constant.RedColor
	case constant.DEBUG:
		color = constant.BlueColor
	default:
		color = constant.ResetColor
	}

	// Get current time and format it (e.g., "2025-03-04 15:30:45")
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	fmt.Fprintln(os.Stderr, color+"["+timestamp+"] ["+mode.String()+"] "+fmt.Sprint(args...)+constant.ResetColor)
	if mode == constant.FATAL {
		os.Exit(1)
	}
}

func TailCallerEncoder(n int) zapcore.CallerEncoder {
	if n <= 0 {
		return zapcore.ShortCallerEncoder
	}
	return func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		path := caller.File

		// Scan from the end; stop after hitting 4 separators (/ or \)
		sep := 0
		i := len(path) - 1
		for ; i >= 0; i-- {
			c := path[i]
			if c == '/' || c == '\\' {
				sep++
				if sep == n {
					break
				}
			}
		}
		start := i + 1
		if start < 0 || start > len(path) {
			start = 0
		}
		tail := path[start:]

		// Normalize only if needed (Windows paths)
		if strings.IndexByte(tail, '\\') >= 0 {
			tail = strings.ReplaceAll(tail, "\\", "/")
		}

		// Build "tail:line" with minimal overhead
		var sb strings.Builder
		sb.Grow(len(tail) + 12)
		sb.WriteString(tail)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(caller.Line))

		enc.AppendString(sb.String())
	}
}
