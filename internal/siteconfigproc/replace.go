// Package siteconfigproc applies a resolved site-config bundle's
// directives (C10): literal find/replace on the raw HTML string, built-in
// and directive-driven strip rules over the parsed tree, and the XPath
// engine used for title/body/date/author extraction directives.
package siteconfigproc

import (
	"strings"

	"github.com/tantowi/readable/internal/siteconfig"
)

// ApplyFindReplace runs every (find, replace) pair with a non-empty find
// as a literal substring substitution over raw, in directive order,
// before the HTML is parsed (§4.10).
func ApplyFindReplace(raw string, pairs []siteconfig.FindReplace) string {
	for _, p := range pairs {
		if p.Find == "" {
			continue
		}
		raw = strings.ReplaceAll(raw, p.Find, p.Replace)
	}
	return raw
}
