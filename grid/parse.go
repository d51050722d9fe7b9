package grid

import "strings"

// Parse builds a Grid from maze text: rows of S/E/./# symbols separated by
// whitespace (spaces or newlines), the layout the maze files use.
// Leading and trailing whitespace is ignored.
// Returns the same errors as New.
func Parse(text string) (*Grid, error) {
	fields := strings.Fields(text)
	rows := make([][]Kind, 0, len(fields))
	for _, f := range fields {
		row := make([]Kind, len(f))
		for i := 0; i < len(f); i++ {
			row[i] = Kind(f[i])
		}
		rows = append(rows, row)
	}

	return New(rows)
}
