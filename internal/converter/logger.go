// =============================================================================
// Excel Shipment Converter - Diagnostics Logger
// =============================================================================
//
// Human-readable progress and warning messages on the standard output
// stream. This is deliberately not a structured logging contract — the tool
// is an interactive batch CLI and its diagnostics are for the operator.
//
// =============================================================================

package converter

import "fmt"

// Logger is the diagnostics surface used by the converter.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// consoleLogger prints diagnostics to stdout.
// Debug messages are suppressed unless verbose is enabled.
type consoleLogger struct {
	verbose bool
}

// NewConsoleLogger creates a stdout logger.
func NewConsoleLogger(verbose bool) Logger {
	return &consoleLogger{verbose: verbose}
}

func (l *consoleLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *consoleLogger) Info(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

func (l *consoleLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("Warning: "+msg+"\n", args...)
}

func (l *consoleLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
