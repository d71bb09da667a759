package extract

import (
	"encoding/json"
	"strings"

	"NewsScraper/internal/document"
)

// LinkedData returns every JSON-LD object embedded in the page. Top-level
// arrays and @graph containers are flattened; malformed blocks are skipped.
func LinkedData(doc *document.Document) []map[string]any {
	if doc == nil {
		return nil
	}
	var out []map[string]any
	for _, el := range doc.FindAll(`script[type="application/ld+json"]`) {
		raw := strings.TrimSpace(el.RawText())
		if raw == "" {
			continue
		}
		var block any
		if err := json.Unmarshal([]byte(raw), &block); err != nil {
			continue
		}
		out = appendObjects(out, block)
	}
	return out
}

func appendObjects(out []map[string]any, v any) []map[string]any {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			out = appendObjects(out, item)
		}
	case map[string]any:
		out = append(out, t)
		if graph, ok := t["@graph"]; ok {
			out = appendObjects(out, graph)
		}
	}
	return out
}

// personNames collects names from a string, an object with a name, or a list of either.
func personNames(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case map[string]any:
		if name, ok := t["name"].(string); ok && strings.TrimSpace(name) != "" {
			return []string{strings.TrimSpace(name)}
		}
	case []any:
		var names []string
		for _, item := range t {
			names = append(names, personNames(item)...)
		}
		return names
	}
	return nil
}
