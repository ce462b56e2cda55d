package articlemeta

import (
	"encoding/json"
	"strings"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/obslog"
)

// jsonldBlocks parses every <script type="application/ld+json"> block in
// doc, returning only the ones that parsed as a JSON object. §4.7 says "the
// first block that parses successfully is used" — callers range over the
// result in document order and stop at the first usable field.
func jsonldBlocks(doc *htmldom.Document, sink obslog.Sink) []map[string]any {
	scripts, err := doc.Select(`script[type="application/ld+json"]`)
	if err != nil || len(scripts) == 0 {
		return nil
	}

	var blocks []map[string]any
	for _, s := range scripts {
		var obj map[string]any
		if err := json.Unmarshal([]byte(s.InnerHTML()), &obj); err != nil {
			sink.RecordError(obslog.ErrorRecord{
				Component: "articlemeta",
				Action:    "parse_jsonld",
				Cause:     obslog.CauseMalformedHTML,
				Message:   err.Error(),
			})
			continue
		}
		blocks = append(blocks, obj)
	}
	return blocks
}

// jsonldString reads a string-valued key from the first block that has it.
func jsonldString(blocks []map[string]any, key string) string {
	for _, b := range blocks {
		if v, ok := b[key].(string); ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// jsonldAuthor resolves JSON-LD's author field, which may be a bare string,
// an object with a "name" key, or an array of either (first entry wins),
// per §4.7's "string, .name, or first entry of an array, recursively".
func jsonldAuthor(blocks []map[string]any) string {
	for _, b := range blocks {
		if name := authorFromValue(b["author"]); name != "" {
			return name
		}
	}
	return ""
}

func authorFromValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if name, ok := t["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	case []any:
		if len(t) > 0 {
			return authorFromValue(t[0])
		}
	}
	return ""
}

// jsonldPublisherName resolves JSON-LD's publisher.name, per §4.7's site
// name chain.
func jsonldPublisherName(blocks []map[string]any) string {
	for _, b := range blocks {
		pub, ok := b["publisher"].(map[string]any)
		if !ok {
			continue
		}
		if name, ok := pub["name"].(string); ok {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
