package terminal

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"binclock/internal/domain"
)

// Summary renders a one-shot face as a table plus a legend: one row per
// time field with its decimal value and bit pattern. Used by --once so the
// output reads well in pipes and shell captures.
func (r *Renderer) Summary(face domain.Face) string {
	lit, unlit := glyphLit, glyphUnlit
	if r.ascii {
		lit, unlit = glyphLitASCII, glyphUnlitASCII
	}

	fields := []struct {
		key   string
		value int
	}{
		{"clock.hours", face.Sample.Hour},
		{"clock.minutes", face.Sample.Minute},
		{"clock.seconds", face.Sample.Second},
	}
	perField := len(face.Columns) / len(fields)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{r.translator.T(r.locale, "app.title", nil), face.Sample.String(), face.Mode.String()})

	for i, f := range fields {
		if !r.seconds && f.key == "clock.seconds" {
			continue
		}
		patterns := make([]string, 0, perField)
		for _, col := range face.Columns[i*perField : (i+1)*perField] {
			var p strings.Builder
			for _, bit := range col.Bits {
				if bit {
					p.WriteString(lit)
				} else {
					p.WriteString(unlit)
				}
			}
			patterns = append(patterns, p.String())
		}
		tw.AppendRow(table.Row{
			r.translator.T(r.locale, f.key, nil),
			f.value,
			strings.Join(patterns, " "),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	legend := lit + " " + r.translator.T(r.locale, "legend.lit", nil) +
		"   " + unlit + " " + r.translator.T(r.locale, "legend.unlit", nil)

	return tw.Render() + "\n" + legend + "\n"
}
