// Package web holds the embedded page templates.
package web

import (
	"bytes"
	"embed"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"FlowerShop/dom"
)

//go:embed templates/*.html
var templates embed.FS

const contentID = "pageContent"

// Pages lists the names Document accepts.
var Pages = []string{"index", "catalog", "product"}

// Document parses the layout and places the named page body in it.
func Document(name string) (*html.Node, error) {
	layout, err := templates.ReadFile("templates/layout.html")
	if err != nil {
		return nil, err
	}
	body, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return nil, fmt.Errorf("unknown page %q: %w", name, err)
	}

	doc, err := html.Parse(bytes.NewReader(layout))
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	content := dom.ByID(doc, contentID)
	if content == nil {
		return nil, fmt.Errorf("layout has no #%s", contentID)
	}

	nodes, err := html.ParseFragment(bytes.NewReader(body), &html.Node{
		Type:     html.ElementNode,
		Data:     "main",
		DataAtom: atom.Main,
	})
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", name, err)
	}
	dom.Append(content, nodes...)
	return doc, nil
}
