package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. Release mode gets JSON output at info level,
// anything else gets the human-readable development encoder.
func New(ginMode string) (*zap.Logger, error) {
	if strings.EqualFold(ginMode, "release") {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
