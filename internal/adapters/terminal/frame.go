package terminal

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"binclock/internal/domain"
)

// Indicator glyphs. ASCII fallbacks cover terminals without the geometric
// shapes block.
const (
	glyphLit        = "●"
	glyphUnlit      = "○"
	glyphLitASCII   = "*"
	glyphUnlitASCII = "."
)

// FrameOptions controls how a face is formatted. The formatter itself is
// pure: same face + same options = same string.
type FrameOptions struct {
	Title       string
	ASCII       bool
	Color       bool
	ShowSeconds bool
}

// Frame renders a face as lines of text: a title row with the digital
// readout, a column-label row, then one row per bit with its weight in the
// right margin.
func Frame(face domain.Face, opts FrameOptions) string {
	columns := face.Columns
	readout := face.Sample.String()
	if !opts.ShowSeconds {
		columns = withoutSeconds(face)
		readout = readout[:len("HH:MM")]
	}

	lit, unlit := glyphLit, glyphUnlit
	if opts.ASCII {
		lit, unlit = glyphLitASCII, glyphUnlitASCII
	}

	var b strings.Builder
	b.WriteString(opts.Title)
	b.WriteString("  ")
	if opts.Color {
		b.WriteString(text.Bold.Sprint(readout))
	} else {
		b.WriteString(readout)
	}
	b.WriteByte('\n')

	for _, col := range columns {
		b.WriteString(col.Label)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	rows := 0
	for _, c := range columns {
		if len(c.Bits) > rows {
			rows = len(c.Bits)
		}
	}
	trimmed := domain.Face{Mode: face.Mode, Sample: face.Sample, Columns: columns}
	for row := 0; row < rows; row++ {
		for col := range columns {
			if trimmed.Cell(row, col).Lit {
				if opts.Color {
					b.WriteString(text.FgHiGreen.Sprint(lit))
				} else {
					b.WriteString(lit)
				}
			} else {
				if opts.Color {
					b.WriteString(text.Faint.Sprint(unlit))
				} else {
					b.WriteString(unlit)
				}
			}
			b.WriteByte(' ')
		}
		b.WriteString(weightLabel(rows, row))
		b.WriteByte('\n')
	}
	return b.String()
}

// withoutSeconds drops the seconds columns (the trailing third of the grid
// in both modes).
func withoutSeconds(face domain.Face) []domain.Column {
	n := len(face.Columns)
	keep := n - n/3
	return face.Columns[:keep]
}

// weightLabel annotates each row with its bit weight (1 at the bottom).
func weightLabel(rows, row int) string {
	return fmt.Sprintf("%2d", 1<<(rows-1-row))
}
