package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/aretw0/oncoscreen/internal/logging"
	"golang.org/x/term"
)

// NewLogger builds the host logger from the configured level and format.
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithFormat(w, cfg.LogFormat, level)
}

type fdHolder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fdHolder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of v, or 0 when unknown.
func terminalWidth(v any) int {
	f, ok := v.(fdHolder)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
