package models

import "strings"

// CommentMarker prefixes the first cell of rows excluded from output.
const CommentMarker = "//"

// Row is one data row of the table.
type Row struct {
	// Index is the 0-based row index in the sheet, kept for diagnostics.
	Index int
	// Cells holds the raw cell values, index-aligned to the schema columns.
	Cells []string
	// Styled maps column index to the per-character styled representation of
	// a rich text cell. Only string-typed cells ever have an entry.
	Styled map[int][]StyledChar
}

// IsContent reports whether the row participates in output: its first cell
// must not start with the comment marker, and at least one cell beyond the
// first column must hold data.
func (r Row) IsContent() bool {
	if len(r.Cells) == 0 {
		return false
	}
	if strings.HasPrefix(r.Cells[0], CommentMarker) {
		return false
	}
	for _, c := range r.Cells[1:] {
		if c != "" {
			return true
		}
	}
	return false
}
