package utils

// Row is one padded sheet row. Cells are addressed positionally and the
// same index can carry different meanings for the flight and billing
// derivations.
type Row []string

// Cell returns the cell at index i, or "" when the row has no such cell.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// PadRow right-pads cells with empty strings up to width. Short rows are
// padded, never rejected.
func PadRow(cells []string, width int) Row {
	if len(cells) >= width {
		return Row(cells)
	}
	padded := make(Row, width)
	copy(padded, cells)
	return padded
}

// Constants
const (
	DueDateLayout = "2006-01-02"
)
