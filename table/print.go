package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// EmptyNotice is printed in place of the grid when a Table has no Columns
const EmptyNotice = "table is empty"

// Print renders this Table to its configured output
func (t *Table[T]) Print() error {
	return t.Fprint(t.out)
}

// Fprint renders this Table as a fixed-width ASCII grid to w
func (t *Table[T]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String renders this Table as a fixed-width ASCII grid. The first cell of
// every row is reserved for row labels; a Column with fewer elements than a
// row leaves a blank cell.
func (t *Table[T]) String() string {
	var res strings.Builder
	if t.size == 0 {
		fmt.Fprintln(&res, EmptyNotice)
		return res.String()
	}

	width := t.cellWidth
	if width < 0 {
		width = 0
	}
	cells := t.size + 1
	totalWidth := cells*width + cells + 1
	border := "|" + strings.Repeat(strings.Repeat("-", width)+"|", cells) + "\n"

	// title
	res.WriteString(border)
	nameWidth := runewidth.StringWidth(t.name)
	left := clamp((totalWidth - nameWidth - 2) / 2)
	right := clamp(totalWidth - nameWidth - left - 2)
	fmt.Fprintf(&res, "|%s%s%s|\n", strings.Repeat(" ", left), t.name, strings.Repeat(" ", right))
	res.WriteString(border)

	// column numbers, then column names
	names := make([]string, 0, t.size)
	values := make([][]string, 0, t.size)
	for cur := t.head; cur != nil; cur = cur.next {
		names = append(names, cur.col.GetName())
		rendered := make([]string, 0, cur.col.GetSize())
		cur.col.ForEach(func(_ int, v *T) error {
			rendered = append(rendered, t.formatter.ToString(*v))
			return nil
		})
		values = append(values, rendered)
	}
	res.WriteString("|" + pad(" ", width) + "|")
	for i := range names {
		res.WriteString(pad(fmt.Sprintf("Col %d", i), width) + "|")
	}
	res.WriteString("\n")
	res.WriteString(border)
	res.WriteString("|" + pad(" ", width) + "|")
	for _, name := range names {
		res.WriteString(pad(name, width) + "|")
	}
	res.WriteString("\n")
	res.WriteString(border)

	// data
	numRows := t.MaxRows()
	for row := 0; row < numRows; row++ {
		res.WriteString("|" + pad(fmt.Sprintf("Row %d", row), width))
		for _, col := range values {
			value := " "
			if row < len(col) {
				value = col[row]
			}
			res.WriteString("|" + pad(value, width))
		}
		res.WriteString("|\n")
		res.WriteString(border)
	}
	return res.String()
}

// pad left-aligns s within width terminal columns. Longer strings are not truncated.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
