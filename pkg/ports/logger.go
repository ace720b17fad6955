package ports

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LevelDebug covers encoder command lines, probe results and skipped entries.
	LevelDebug LogLevel = iota
	// LevelInfo covers per-clip progress.
	LevelInfo
	// LevelWarn covers encoder failures and skipped sequences; the run continues.
	LevelWarn
	// LevelError covers failures that end the run.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel parses a level name. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelInfo
}

// Logger abstracts logging. The msg parameter is a lexicon key that is
// translated before the arguments are applied.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
