// Package document is a small read-only handle over parsed HTML. Extraction
// code depends on it instead of a concrete parser.
package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"NewsScraper/internal/textutil"
)

// invisible elements never contribute to visible text.
const invisible = "script, style, noscript, template, iframe, svg"

// Attribute is a single name/value pair of an element.
type Attribute struct {
	Name  string
	Value string
}

// Document wraps a parsed page together with its source markup.
type Document struct {
	doc    *goquery.Document
	markup string
}

// Parse builds a Document from raw markup.
func Parse(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{doc: doc, markup: markup}, nil
}

// Markup returns the source the document was parsed from.
func (d *Document) Markup() string {
	return d.markup
}

// FindFirst returns the first element matching selector.
func (d *Document) FindFirst(selector string) (Element, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return Element{}, false
	}
	return Element{sel: sel}, true
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []Element {
	return wrap(d.doc.Find(selector))
}

// Text returns the visible text of the page, whitespace-normalised.
func (d *Document) Text() string {
	body := d.doc.Selection.Clone()
	body.Find(invisible).Remove()
	return textutil.Clean(body.Text())
}

// Meta looks up <meta> content by name or property, in that order.
func (d *Document) Meta(key string) string {
	for _, attr := range []string{"name", "property"} {
		sel := fmt.Sprintf("meta[%s=%q]", attr, key)
		if el, ok := d.FindFirst(sel); ok {
			if v, ok := el.Attr("content"); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// Element is one node of a Document.
type Element struct {
	sel *goquery.Selection
}

// Text returns the element's text, whitespace-normalised.
func (e Element) Text() string {
	if e.sel == nil {
		return ""
	}
	return textutil.Clean(e.sel.Text())
}

// RawText returns the element's text without normalisation.
func (e Element) RawText() string {
	if e.sel == nil {
		return ""
	}
	return e.sel.Text()
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	if e.sel == nil {
		return "", false
	}
	return e.sel.Attr(name)
}

// Attributes lists the element's attributes in source order.
func (e Element) Attributes() []Attribute {
	if e.sel == nil || len(e.sel.Nodes) == 0 {
		return nil
	}
	node := e.sel.Nodes[0]
	out := make([]Attribute, 0, len(node.Attr))
	for _, a := range node.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		out = append(out, Attribute{Name: name, Value: a.Val})
	}
	return out
}

// FindFirst searches below the element.
func (e Element) FindFirst(selector string) (Element, bool) {
	if e.sel == nil {
		return Element{}, false
	}
	sel := e.sel.Find(selector).First()
	if sel.Length() == 0 {
		return Element{}, false
	}
	return Element{sel: sel}, true
}

// FindAll searches below the element.
func (e Element) FindAll(selector string) []Element {
	if e.sel == nil {
		return nil
	}
	return wrap(e.sel.Find(selector))
}

func wrap(sel *goquery.Selection) []Element {
	out := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s})
	})
	return out
}
