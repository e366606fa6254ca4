package lifecycle

import (
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logMu     sync.Mutex
	logOutput *lumberjack.Logger
)

// InitLogging routes the default slog logger to a rotated file under the
// app data dir and returns it so the UI framework can share the sink. The
// shell usually runs without a console, so file logging is the only record
// of what happened.
func InitLogging(level slog.Level) *slog.Logger {
	logMu.Lock()
	defer logMu.Unlock()

	if logOutput == nil {
		logOutput = &lumberjack.Logger{
			Filename:   AppLogFile,
			MaxSize:    10, //MBs
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   false,
		}
	}

	handler := slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// CloseLogging flushes the log file. Safe to call when InitLogging never
// ran.
func CloseLogging() error {
	logMu.Lock()
	defer logMu.Unlock()

	if logOutput == nil {
		return nil
	}
	return logOutput.Close()
}
