// Copyright (c) 2025 Mygres
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// New returns the server logger. The level is taken from the LOG_LEVEL
// environment variable (trace, debug, info, warn, error) and defaults to info.
func New() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

func levelFromEnv(raw string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
