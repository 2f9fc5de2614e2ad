package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process-wide structured logger. Development mode
// (human-readable output) is enabled with APP_ENV=development.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
