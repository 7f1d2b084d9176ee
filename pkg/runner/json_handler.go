package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Frame types written by the JSONHandler.
const (
	FrameView  = "view"
	FrameError = "error"
)

// Frame is one NDJSON line written by the JSONHandler.
type Frame struct {
	Type    string       `json:"type"`
	View    *domain.View `json:"view,omitempty"`
	Message string       `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader     *bufio.Reader
	Writer     io.Writer
	Encoder    *json.Encoder
	InputLimit int
}

// JSONHandlerOption defines configuration for JSONHandler.
type JSONHandlerOption func(*JSONHandler)

// WithJSONHandlerInputLimit caps the size of one input line.
func WithJSONHandlerInputLimit(limit int) JSONHandlerOption {
	return func(h *JSONHandler) {
		h.InputLimit = limit
	}
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer, opts ...JSONHandlerOption) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Output emits the view as a single JSON line.
func (h *JSONHandler) Output(ctx context.Context, view *domain.View) error {
	return h.Encoder.Encode(Frame{Type: FrameView, View: view})
}

// Input reads the next non-blank line: either a JSON Action or a plain
// command. A JSON string such as "1" is unquoted first.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		text = strings.TrimSpace(text)
		if text == "" {
			if err != nil {
				return "", err
			}
			continue
		}

		var val string
		if json.Unmarshal([]byte(text), &val) == nil {
			text = val
		}

		clean, sErr := SanitizeInputLimit(text, h.InputLimit)
		if sErr != nil {
			if oErr := h.SystemOutput(ctx, sErr.Error()); oErr != nil {
				return "", oErr
			}
			if err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

// SystemOutput emits an error frame.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Frame{Type: FrameError, Message: msg})
}
