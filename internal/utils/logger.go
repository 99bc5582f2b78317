// Package utils provides utility functions and types shared by the tool
//
//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

// Logger defines the interface for logging operations
type Logger interface {
	LogInfo(message string, meta map[string]string)
	LogWarn(message string, meta map[string]string)
	LogError(message string, meta map[string]string)
	LogDebug(message string, meta map[string]string)
}

// RFC5424Logger implements Logger with RFC 5424 compliant syslog format
// using crewjam/rfc5424. Diagnostics go to a separate writer (stderr in the
// program) so the report on stdout stays clean.
type RFC5424Logger struct {
	appName   string
	hostname  string
	processID string
	facility  rfc5424.Priority // Using the library's priority type for facility
	threshold rfc5424.Priority // Most verbose severity that is still emitted
	out       io.Writer
	mu        sync.Mutex // Protect concurrent writes
}

// NewRFC5424Logger creates a new RFC 5424 compliant logger writing to out.
// With verbose set, info and debug messages are emitted as well; otherwise
// only warnings and errors are.
func NewRFC5424Logger(appName string, out io.Writer, verbose bool) (*RFC5424Logger, error) {
	threshold := rfc5424.Warning
	if verbose {
		threshold = rfc5424.Debug
	}

	return &RFC5424Logger{
		appName:   appName,
		hostname:  getHostname(),
		processID: strconv.Itoa(os.Getpid()),
		facility:  rfc5424.User, // User-level facility
		threshold: threshold,
		out:       out,
	}, nil
}

// getHostname retrieves the system hostname dynamically.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "localhost" // Fallback
	}
	return hostname
}

// createMessage creates an RFC 5424 message using the library
func (l *RFC5424Logger) createMessage(severity rfc5424.Priority, message string, meta map[string]string) *rfc5424.Message {
	msg := &rfc5424.Message{
		Priority:  l.facility | severity, // Combine facility and severity
		Timestamp: time.Now().UTC(),
		Hostname:  l.hostname,
		AppName:   l.appName,
		ProcessID: l.processID,
		MessageID: fmt.Sprintf("ID%d", time.Now().UnixNano()%100000),
		Message:   []byte(message),
	}

	// Add structured data if metadata is provided
	if len(meta) > 0 {
		for key, value := range meta {
			msg.AddDatum("meta@1", key, value)
		}
	}

	return msg
}

// writeLog writes the formatted RFC 5424 log entry when the severity clears
// the configured threshold
func (l *RFC5424Logger) writeLog(severity rfc5424.Priority, message string, meta map[string]string) {
	if severity > l.threshold {
		return
	}

	msg := l.createMessage(severity, message, meta)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := msg.WriteTo(l.out); err != nil {
		// Fallback to simple format if writing fails
		fmt.Fprintf(l.out, "<%d>1 %s %s %s %s - - %s",
			int(l.facility|severity),
			msg.Timestamp.Format(time.RFC3339),
			l.hostname, l.appName, l.processID, message)
	}
	fmt.Fprintln(l.out)
}

// LogInfo logs an informational message (severity Info)
func (l *RFC5424Logger) LogInfo(message string, meta map[string]string) {
	l.writeLog(rfc5424.Info, message, meta)
}

// LogWarn logs a warning message (severity Warning)
func (l *RFC5424Logger) LogWarn(message string, meta map[string]string) {
	l.writeLog(rfc5424.Warning, message, meta)
}

// LogError logs an error message (severity Error)
func (l *RFC5424Logger) LogError(message string, meta map[string]string) {
	l.writeLog(rfc5424.Error, message, meta)
}

// LogDebug logs a debug message (severity Debug)
func (l *RFC5424Logger) LogDebug(message string, meta map[string]string) {
	l.writeLog(rfc5424.Debug, message, meta)
}

// DefaultLogger is the global logger instance
var DefaultLogger *RFC5424Logger

// InitDefaultLogger initializes the global logger instance on stderr
func InitDefaultLogger(verbose bool) error {
	logger, err := NewRFC5424Logger("diskusage", os.Stderr, verbose)
	if err != nil {
		return err
	}
	DefaultLogger = logger
	return nil
}

// Convenience functions using the global logger

// LogInfo logs an informational message using the default logger
func LogInfo(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogInfo(message, meta)
	}
}

// LogWarn logs a warning message using the default logger
func LogWarn(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogWarn(message, meta)
	}
}

// LogError logs an error message using the default logger
func LogError(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogError(message, meta)
	}
}

// LogDebug logs a debug message using the default logger
func LogDebug(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogDebug(message, meta)
	}
}
