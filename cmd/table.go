package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column is one fixed-width table column. Right aligns numbers.
type column struct {
	title string
	width int
	right bool
}

// table writes fixed-width rows, truncating cells by display width.
type table struct {
	w    io.Writer
	cols []column
}

func newTable(w io.Writer, cols ...column) *table {
	return &table{w: w, cols: cols}
}

func (t *table) width() int {
	n := 0
	for _, c := range t.cols {
		n += c.width + 2
	}
	return n - 2
}

func (t *table) rule() {
	fmt.Fprintln(t.w, strings.Repeat("─", t.width()))
}

func (t *table) header() {
	cells := make([]string, len(t.cols))
	for i, c := range t.cols {
		cells[i] = c.title
	}
	t.row(cells...)
	t.rule()
}

func (t *table) row(cells ...string) {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		var s string
		if i < len(cells) {
			s = runewidth.Truncate(cells[i], c.width, "…")
		}
		if c.right {
			out[i] = runewidth.FillLeft(s, c.width)
		} else {
			out[i] = runewidth.FillRight(s, c.width)
		}
	}
	fmt.Fprintln(t.w, strings.TrimRight(strings.Join(out, "  "), " "))
}
