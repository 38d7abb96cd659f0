// Package bankhtml extracts transaction rows from the HTML table an
// e-banking portal renders for an account statement.
package bankhtml

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// minCells is the column count of a transaction row:
// date, type, details, amount, currency, balance.
const minCells = 6

// Row is one raw statement line. Values are trimmed but not normalized.
type Row struct {
	Date     string
	Type     string
	Details  string
	Amount   string
	Currency string
	Balance  string
}

// Parse walks every <tr> in r and returns the rows with at least six <td>
// cells. Header rows, which use <th>, and layout rows are skipped.
func Parse(r io.Reader) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse statement html: %w", err)
	}

	var rows []Row
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			if row, ok := parseRow(n); ok {
				rows = append(rows, row)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows, nil
}

// ParseString is a convenience wrapper for pasted markup.
func ParseString(s string) ([]Row, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return Parse(strings.NewReader(s))
}

func parseRow(tr *html.Node) (Row, bool) {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Td {
			cells = append(cells, c)
		}
	}
	if len(cells) < minCells {
		return Row{}, false
	}
	return Row{
		Date:     preferSpan(cells[0], "print"),
		Type:     text(cells[1]),
		Details:  preferSpan(cells[2], "text"),
		Amount:   text(cells[3]),
		Currency: text(cells[4]),
		Balance:  text(cells[5]),
	}, true
}

// preferSpan returns the text of the first <span class="..."> carrying class
// inside cell, falling back to the whole cell text. Portals render a screen
// and a print variant of the date; the print one is unambiguous.
func preferSpan(cell *html.Node, class string) string {
	if span := findSpan(cell, class); span != nil {
		return text(span)
	}
	return text(cell)
}

func findSpan(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Span && hasClass(c, class) {
			return c
		}
		if found := findSpan(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
