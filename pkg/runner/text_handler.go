package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader     *bufio.Reader
	Writer     io.Writer
	Renderer   ContentRenderer
	InputLimit int

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the Markdown renderer used for recommendations.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerInputLimit caps the size of one input line.
func WithTextHandlerInputLimit(limit int) TextHandlerOption {
	return func(h *TextHandler) {
		h.InputLimit = limit
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour context cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

// Output prints the view: the selection menu, or the answered path followed
// by the pending question or the recommendation.
func (h *TextHandler) Output(ctx context.Context, view *domain.View) error {
	var sb strings.Builder

	if view.Screen.IsSelection() {
		sb.WriteString("\nChoose a screening test:\n")
		for i, c := range view.Catalogs {
			fmt.Fprintf(&sb, "  %d) %s\n", i+1, c.Title)
			if c.Description != "" {
				fmt.Fprintf(&sb, "     %s\n", c.Description)
			}
		}
		fmt.Fprintf(&sb, "[%s] quit\n", CommandQuit)
		_, err := io.WriteString(h.Writer, sb.String())
		return err
	}

	fmt.Fprintf(&sb, "\n== %s ==\n", view.Title)
	for _, q := range view.Questions {
		fmt.Fprintf(&sb, "%s\n", q.Text)
		if q.Locked() {
			if opt, ok := q.Option(q.SelectedOptionID); ok {
				fmt.Fprintf(&sb, "  ✔ %s\n", opt.Label)
			}
			continue
		}
		for i, opt := range q.Options {
			fmt.Fprintf(&sb, "  %d) %s\n", i+1, opt.Label)
		}
	}

	if view.Terminal() {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(h.render("### Recommendation\n\n" + view.Recommendation)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	var hints []string
	if view.CanGoBack {
		hints = append(hints, fmt.Sprintf("[%s] back", CommandBack))
	}
	if view.CanReset {
		hints = append(hints, fmt.Sprintf("[%s] restart", CommandReset))
	}
	hints = append(hints, fmt.Sprintf("[%s] menu", CommandMenu), fmt.Sprintf("[%s] quit", CommandQuit))
	sb.WriteString(strings.Join(hints, "  "))
	sb.WriteString("\n")

	_, err := io.WriteString(h.Writer, sb.String())
	return err
}

func (h *TextHandler) render(markdown string) string {
	if h.Renderer == nil {
		return markdown
	}
	rendered, err := h.Renderer(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

// Input prompts and returns the next sanitized line. Rejected lines are
// reported and the prompt is shown again.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInputLimit(strings.TrimSpace(res.text), h.InputLimit)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput prints a prefixed meta-message.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}
