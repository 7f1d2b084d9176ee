package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the OncoScreen banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Soft teal-to-blue gradient
	lines := []struct{ text, color string }{
		{`   ___                  ___                          `, "#5eead4"},
		{`  / _ \ _ __   ___ ___ / __| __ _ _ ___ ___ _ _      `, "#2dd4bf"},
		{` | (_) | '  \ / _/ _ \\__ \/ _| '_/ -_) -_) ' \     `, "#22d3ee"},
		{`  \___/|_||_|\__\___/|___/\__|_| \___\___|_||_|    `, "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  screening questionnaire "+version).Faint())
	fmt.Fprintln(w)
}
