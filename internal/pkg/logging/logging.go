package logging

import (
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

const envProduction = "production"

// SetupLogger installs the default slog logger: JSON in production, colored tint output otherwise.
// The standard library logger is redirected to the same handler.
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	level := stringToLogLevel(logLevel)

	var handler slog.Handler
	if appEnv == envProduction {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: "15:04:05.000",
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
