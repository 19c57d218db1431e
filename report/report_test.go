package report

import (
	"strings"
	"testing"

	"github.com/npillmayer/treeharness/bench"
	"golang.org/x/net/html"
)

var results = []bench.Result{
	{Module: "avl", Times: [2]bench.Timespec{{Sec: 0, Nsec: 123456789}, {Sec: 1, Nsec: 5}}},
	{Module: "größe", Times: [2]bench.Timespec{{Sec: 2, Nsec: 0}, {Sec: 10, Nsec: 999999999}}},
}

func TestPlain(t *testing.T) {
	var b strings.Builder
	if err := Plain(&b, results[:1]); err != nil {
		t.Fatal(err)
	}
	expected := "Tree avl\n  in-order: 0.123456789\n  random: 1.000000005\n"
	if b.String() != expected {
		t.Errorf("expected %q, have %q", expected, b.String())
	}
}

func TestTableAlignsByDisplayWidth(t *testing.T) {
	var b strings.Builder
	if err := Table(&b, results, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, have %d lines", len(lines))
	}
	// "größe" has 5 cells but 7 bytes; the second column has to start at the
	// same cell in every row
	for _, l := range lines {
		t.Logf("%q", l)
	}
	col := strings.Index(lines[0], "in-order")
	if strings.Index(lines[1], "0.123456789") != col {
		t.Errorf("second column misaligned in row 1")
	}
	if got := len([]rune(lines[2][:strings.Index(lines[2], "2.000000000")])); got != col {
		t.Errorf("second column misaligned in row 2: cell %d, expected %d", got, col)
	}
}

func TestHTML(t *testing.T) {
	var b strings.Builder
	if err := HTML(&b, results); err != nil {
		t.Fatal(err)
	}
	doc, err := html.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	var cells []string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" && n.FirstChild != nil {
			cells = append(cells, n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)
	expected := []string{"avl", "0.123456789", "1.000000005", "größe", "2.000000000", "10.999999999"}
	if strings.Join(cells, "|") != strings.Join(expected, "|") {
		t.Errorf("expected cells %v, have %v", expected, cells)
	}
	if !strings.Contains(b.String(), `<table class="treebench">`) {
		t.Errorf("expected table with class attribute, have %s", b.String())
	}
}
