package report

import (
	"io"

	"github.com/npillmayer/treeharness/bench"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func row(cell atom.Atom, values ...string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		tr.AppendChild(element(cell, text(v)))
	}
	return tr
}

// HTML writes results as an HTML table. Times are given in seconds.
func HTML(w io.Writer, results []bench.Result) error {
	body := element(atom.Tbody)
	for _, r := range results {
		body.AppendChild(row(atom.Td,
			r.Module, r.Times[bench.Ascending].String(), r.Times[bench.Shuffled].String()))
	}
	table := element(atom.Table,
		element(atom.Caption, text("Tree module timings [s]")),
		element(atom.Thead, row(atom.Th, columns[:]...)),
		body,
	)
	table.Attr = append(table.Attr, html.Attribute{Key: "class", Val: "treebench"})
	if err := html.Render(w, table); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
