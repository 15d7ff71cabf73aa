package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	InfoWith(msg string, args ...any)
	Warn(msg string)
	Debug(msg string)
	Error(err error)
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}
