package lifecycle

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"
)

// fatal reports an unrecoverable startup failure and exits. There is no
// console to print to once the shell is installed, so the failure is also
// surfaced as a native error dialog before the process dies.
func fatal(what string, err error) {
	msg := fmt.Sprintf("%s: %v", what, err)
	slog.Error("FATAL: " + msg)
	showErrorMessage(DisplayName+" failed to start", msg)
	os.Exit(1)
}

// showErrorMessage displays an error dialog. Best effort: a headless
// session simply drops it.
func showErrorMessage(title, message string) {
	if err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon); err != nil {
		slog.Warn("failed to show error dialog", "error", err)
	}
}
