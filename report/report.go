/*
Package report formats benchmark results.

Plain reproduces the classic per-module listing, Table aligns results in
columns (measuring module names by their display width, so that names in
any script line up on a fixed-width terminal), and HTML renders a table for
inclusion in web pages.
*/
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/treeharness/bench"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Plain writes one block per result:
//
//	Tree avl
//	  in-order: 0.123456789
//	  random: 0.234567891
func Plain(w io.Writer, results []bench.Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "Tree %s\n  in-order: %s\n  random: %s\n",
			r.Module, r.Times[bench.Ascending], r.Times[bench.Shuffled])
		if err != nil {
			return err
		}
	}
	return nil
}

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width cells s occupies.
func displayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func pad(s string, width int, context *uax11.Context) string {
	if n := width - displayWidth(s, context); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

var columns = [...]string{"module", bench.Ascending.String(), bench.Shuffled.String()}

// Table writes results as aligned columns. context determines the display
// width of ambiguous characters; if nil, uax11.LatinContext is used.
func Table(w io.Writer, results []bench.Result, context *uax11.Context) error {
	if context == nil {
		context = uax11.LatinContext
	}
	rows := make([][len(columns)]string, 0, len(results)+1)
	rows = append(rows, columns)
	for _, r := range results {
		rows = append(rows, [len(columns)]string{
			r.Module, r.Times[bench.Ascending].String(), r.Times[bench.Shuffled].String(),
		})
	}
	var widths [len(columns)]int
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell, context))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == len(row)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(pad(cell, widths[i], context))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
