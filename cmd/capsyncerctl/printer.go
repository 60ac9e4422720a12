package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/capsyncer/capsyncer/internal/capacity"
)

type printer struct {
	w io.Writer

	okColor   *color.Color
	highColor *color.Color
	overColor *color.Color
	boldColor *color.Color
}

func newPrinter(w io.Writer, useColor bool) *printer {
	p := &printer{
		w:         w,
		okColor:   color.New(color.FgGreen),
		highColor: color.New(color.FgYellow),
		overColor: color.New(color.FgRed, color.Bold),
		boldColor: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.okColor, p.highColor, p.overColor, p.boldColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) ok(s string) string {
	return p.okColor.Sprint(s)
}

func (p *printer) bold(s string) string {
	return p.boldColor.Sprint(s)
}

// level colours s by utilization level.
func (p *printer) level(level, s string) string {
	switch level {
	case capacity.LevelOver:
		return p.overColor.Sprint(s)
	case capacity.LevelHigh:
		return p.highColor.Sprint(s)
	default:
		return p.okColor.Sprint(s)
	}
}

type table struct {
	tw *tabwriter.Writer
}

func (p *printer) table(headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)}
	fmt.Fprintln(t.tw, strings.Join(headers, "\t"))
	return t
}

func (t *table) row(values ...any) {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.tw.Flush()
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

func percentage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
