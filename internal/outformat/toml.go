package outformat

import (
	"fmt"
	"strings"

	readable "github.com/tantowi/readable"
)

// RenderTOML renders article as a flat TOML document by hand: no TOML
// library appears anywhere in the retrieved reference set, so this is the
// one renderer built on the standard library alone.
func RenderTOML(article readable.Article) string {
	var b strings.Builder

	writeString := func(key, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s = %s\n", key, tomlQuote(value))
	}

	writeString("title", article.Title)
	writeString("author", article.Author)
	writeString("date", article.Date)
	writeString("excerpt", article.Excerpt)
	writeString("site_name", article.SiteName)
	writeString("language", article.Language)
	writeString("source_url", article.SourceURL)
	fmt.Fprintf(&b, "word_count = %d\n", article.WordCount)
	fmt.Fprintf(&b, "reading_time_minutes = %g\n", article.ReadingTimeMinutes)
	fmt.Fprintf(&b, "length_chars = %d\n", article.LengthChars)
	writeString("content", article.Content)
	writeString("text_content", article.TextContent)

	return b.String()
}

func tomlQuote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return `"` + value + `"`
}
