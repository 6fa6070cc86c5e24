package levelog

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var diagnostics atomic.Pointer[slog.Logger]

func init() {
	diagnostics.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

// SetDiagnostics replaces the logger used for the package's own warnings,
// such as a blank temporary level name or an appender that failed to write.
// A nil logger restores the default stderr handler.
func SetDiagnostics(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	diagnostics.Store(l)
}

func diag() *slog.Logger {
	return diagnostics.Load()
}
