package domain

// Cell is one indicator on the clock face. Lit state is derived entirely
// from the current Sample and carries no identity across ticks.
type Cell struct {
	Row    int
	Column int
	Lit    bool
}

// Column is a vertical strip of indicators for one digit (BCD mode) or one
// whole field (binary mode). Bits[0] is the top row, most significant bit
// first.
type Column struct {
	Label string
	Bits  []bool
}

// Face is the full indicator grid for one time sample.
type Face struct {
	Mode    Mode
	Sample  Sample
	Columns []Column
}

// Rows is the height of the tallest column.
func (f Face) Rows() int {
	rows := 0
	for _, c := range f.Columns {
		if len(c.Bits) > rows {
			rows = len(c.Bits)
		}
	}
	return rows
}

// Cell reports the indicator at (row, column). Rows above a short column
// are unlit.
func (f Face) Cell(row, col int) Cell {
	cell := Cell{Row: row, Column: col}
	if col < 0 || col >= len(f.Columns) {
		return cell
	}
	bits := f.Columns[col].Bits
	// Short columns are bottom-aligned against the tallest one.
	offset := f.Rows() - len(bits)
	if i := row - offset; i >= 0 && i < len(bits) {
		cell.Lit = bits[i]
	}
	return cell
}
