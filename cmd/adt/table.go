package main

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// table aligns columns by display width, so wide (CJK) names line up.
type table struct {
	header []string
	rows   [][]string
	color  bool
}

func newTable(color bool, header ...string) *table {
	return &table{header: header, color: color}
}

func (t *table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for i, h := range t.header {
		w[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.rows {
		for i, c := range r {
			if i < len(w) {
				if n := runewidth.StringWidth(c); n > w[i] {
					w[i] = n
				}
			}
		}
	}
	return w
}

func (t *table) Render(out io.Writer) {
	w := t.widths()
	line := func(cells []string, bold bool) {
		var b strings.Builder
		for i := range w {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(w)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, w[i]))
			b.WriteString("  ")
		}
		s := strings.TrimRight(b.String(), " ")
		if bold && t.color {
			s = ansiBold + s + ansiReset
		}
		io.WriteString(out, s+"\n")
	}
	line(t.header, true)
	for _, r := range t.rows {
		line(r, false)
	}
}
