// Package logger provides the logging facilities of the service. A single
// Logger instance is initialized from configuration and shared through a
// singleton factory.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
