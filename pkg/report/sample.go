package report

// Column names of the sample table.
const (
	SampleColumn1 = "Columna1"
	SampleColumn2 = "Columna2"
)

// SampleTable returns the fixed 5x2 demonstration dataset:
// Columna1 holds 1..5 and Columna2 holds "A".."E", aligned by position.
//
// A new Frame is returned on each call; nothing is shared between renders.
func SampleTable() *Frame {
	return MustFrame(
		Column{Name: SampleColumn1, Values: []any{1, 2, 3, 4, 5}},
		Column{Name: SampleColumn2, Values: []any{"A", "B", "C", "D", "E"}},
	)
}
