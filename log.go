package imbridge

import (
	"log/slog"
	"os"
)

// bridgeLogLevel controls the log level for the default bridge logger.
// Default is LevelInfo, which suppresses Debug messages.
var bridgeLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging on the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		bridgeLogLevel.Set(slog.LevelDebug)
	} else {
		bridgeLogLevel.Set(slog.LevelInfo)
	}
}

// bridgeLogger is used by bridges created without WithLogger.
var bridgeLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: bridgeLogLevel})).
	With("component", "imbridge")
