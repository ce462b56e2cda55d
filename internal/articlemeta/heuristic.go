package articlemeta

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tantowi/readable/internal/htmldom"
)

var authorTokenPattern = regexp.MustCompile(`(?i)author|byline|by-author|writer`)

// heuristicAuthor implements §4.7's last author chain step: the first
// element whose class or id contains an author-like token, with non-empty
// text under 100 characters.
func heuristicAuthor(doc *htmldom.Document) string {
	elems, err := doc.Select("*")
	if err != nil {
		return ""
	}
	for _, e := range elems {
		class, _ := e.Attr("class")
		id, _ := e.Attr("id")
		if !authorTokenPattern.MatchString(class) && !authorTokenPattern.MatchString(id) {
			continue
		}
		text := strings.TrimSpace(e.Text())
		if text != "" && len([]rune(text)) < 100 {
			return text
		}
	}
	return ""
}

// heuristicExcerpt implements §4.7's excerpt fallback: the first of the
// first five <p> elements with trimmed text over 50 characters, truncated
// to 300 characters with an ellipsis.
func heuristicExcerpt(doc *htmldom.Document) string {
	elems, err := doc.Select("p")
	if err != nil {
		return ""
	}
	limit := len(elems)
	if limit > 5 {
		limit = 5
	}
	for _, e := range elems[:limit] {
		text := strings.TrimSpace(e.Text())
		if len([]rune(text)) > 50 {
			return truncateWithEllipsis(text, 300)
		}
	}
	return ""
}

func truncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// heuristicSiteName falls back to the registered-looking host of base,
// stripping a leading "www." label, per §4.7's final site-name step.
func heuristicSiteName(base *url.URL) string {
	if base == nil {
		return ""
	}
	host := base.Hostname()
	return strings.TrimPrefix(host, "www.")
}
