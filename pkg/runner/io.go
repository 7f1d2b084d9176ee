package runner

import (
	"fmt"
	"io"
)

// Mode selects an IOHandler implementation.
type Mode string

const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// NewHandler builds the handler for the mode. The renderer only applies to text mode.
func NewHandler(mode Mode, r io.Reader, w io.Writer, renderer ContentRenderer, inputLimit int) (IOHandler, error) {
	switch mode {
	case ModeText, "":
		return NewTextHandler(r, w,
			WithTextHandlerRenderer(renderer),
			WithTextHandlerInputLimit(inputLimit),
		), nil
	case ModeJSON:
		return NewJSONHandler(r, w, WithJSONHandlerInputLimit(inputLimit)), nil
	default:
		return nil, fmt.Errorf("unknown runner mode %q", mode)
	}
}
