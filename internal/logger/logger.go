// Package logger provides centralized logging for the assistant bot.
// Diagnostics always go to stderr or a log file, never to the command output channel.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout the bot.
var Logger *log.Logger

// output is where Logger and all component loggers write.
var output io.Writer = os.Stderr

// logFileHandle is the open --log-file, if any. Configure and Close own it.
var logFileHandle *os.File

func init() {
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger based on CLI flags and environment variables.
// CLI flags take precedence over BOT_LOG_LEVEL.
func Configure(logLevel string, logFile string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("BOT_LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}

	var file *os.File
	if logFile != "" {
		var err error
		file, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
	}

	if err := Close(); err != nil {
		if file != nil {
			_ = file.Close()
		}
		return err
	}

	output = os.Stderr
	if file != nil {
		logFileHandle = file
		output = file
	}

	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))

	if testMode {
		// Keep test runs quiet
		Logger.SetLevel(log.WarnLevel)
	}

	return nil
}

// Close closes the log file opened by Configure, if any. Logging falls back
// to stderr until the next Configure.
func Close() error {
	if logFileHandle == nil {
		return nil
	}
	file := logFileHandle
	logFileHandle = nil
	output = os.Stderr
	Logger.SetOutput(output)
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close log file %s: %w", file.Name(), err)
	}
	return nil
}

// parseLogLevel converts string to log level
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs command dispatch details for debugging.
func CommandExecution(keyword string, args []string) {
	Debug("Executing command", "command", keyword, "args", args)
}

// DirectoryOperation logs a contact directory mutation or query for debugging.
func DirectoryOperation(operation string, name string) {
	Debug("Directory operation", "operation", operation, "name", name)
}

// levelBadges maps each level to its badge background color.
var levelBadges = map[log.Level]struct {
	label string
	color string
}{
	log.DebugLevel: {"DEBUG", "240"},
	log.InfoLevel:  {"INFO", "33"},
	log.WarnLevel:  {"WARN", "214"},
	log.ErrorLevel: {"ERROR", "196"},
	log.FatalLevel: {"FATAL", "88"},
}

// keyColors colors the keys the dispatcher logs most often.
var keyColors = map[string]string{
	"state":   "99",
	"input":   "39",
	"kind":    "214",
	"error":   "196",
	"command": "46",
	"session": "51",
}

// NewStyledLogger creates a component logger with badge-style levels and a
// prefix naming the component, e.g. "Dispatcher". It shares the global
// logger's destination and level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	for level, badge := range levelBadges {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(badge.label).
			Padding(0, 1, 0, 1).
			Background(lipgloss.Color(badge.color)).
			Foreground(lipgloss.Color("15"))
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	styles.Values["state"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
