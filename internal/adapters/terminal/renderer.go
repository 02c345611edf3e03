package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"binclock/internal/domain"
	"binclock/internal/ports/output"
)

// ANSI control sequences for the live repaint.
const (
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiClearScreen = "\x1b[2J"
	ansiCursorHome  = "\x1b[H"
)

// Ensure Renderer implements the output.Renderer port.
var _ output.Renderer = (*Renderer)(nil)

// Renderer draws faces to a terminal. In live mode every Render repaints
// the screen in place; otherwise frames are appended.
type Renderer struct {
	w          io.Writer
	translator output.Translator
	locale     string
	ascii      bool
	color      bool
	seconds    bool
	live       bool
}

// Options configures a terminal renderer. Color is "auto", "always" or
// "never"; auto enables color only when the writer is a TTY.
type Options struct {
	Writer      io.Writer
	Translator  output.Translator
	Locale      string
	Color       string
	ASCII       bool
	ShowSeconds bool
	Live        bool
}

func NewRenderer(opts Options) *Renderer {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	color := colorEnabled(opts.Color, w)
	if color {
		// go-pretty suppresses ANSI codes off-TTY unless told otherwise.
		text.EnableColors()
	}
	return &Renderer{
		w:          w,
		translator: opts.Translator,
		locale:     opts.Locale,
		ascii:      opts.ASCII,
		color:      color,
		seconds:    opts.ShowSeconds,
		live:       opts.Live,
	}
}

// Render draws one face. Identical faces produce identical output.
func (r *Renderer) Render(face domain.Face) error {
	frame := Frame(face, FrameOptions{
		Title:       r.translator.T(r.locale, "app.title", nil),
		ASCII:       r.ascii,
		Color:       r.color,
		ShowSeconds: r.seconds,
	})
	if r.live {
		frame = ansiCursorHome + ansiClearScreen + frame
	}
	if _, err := fmt.Fprint(r.w, frame); err != nil {
		return fmt.Errorf("terminal: render: %w", err)
	}
	return nil
}

// Start hides the cursor before the first live frame.
func (r *Renderer) Start() {
	if r.live {
		fmt.Fprint(r.w, ansiHideCursor)
	}
}

// Stop restores the cursor and prints the localized goodbye.
func (r *Renderer) Stop() {
	if r.live {
		fmt.Fprint(r.w, ansiShowCursor)
		fmt.Fprintln(r.w, r.translator.T(r.locale, "run.stopped", nil))
	}
}

func colorEnabled(policy string, w io.Writer) bool {
	switch policy {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}
