package ui

import (
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, raw string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func findAll(root *html.Node, match func(n *html.Node) bool) []*html.Node {
	found := make([]*html.Node, 0)

	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
	})

	return found
}

func walk(n *html.Node, fn func(n *html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		walk(c, fn)
	}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func hasClass(class string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		value, _ := attr(n, "class")
		return slices.Contains(strings.Fields(value), class)
	}
}

func hasAttr(name, value string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, name)
		return ok && v == value
	}
}

func text(n *html.Node) string {
	var sb strings.Builder

	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})

	return strings.TrimSpace(sb.String())
}
