package readable

import (
	"github.com/tantowi/readable/internal/articlemeta"
	"github.com/tantowi/readable/pkg/hashutil"
)

// Article is the result of a successful Parse: the extracted content
// alongside every metadata field §4.7 knows how to recover.
type Article struct {
	Content            string
	TextContent        string
	Title              string
	Author             string
	Date               string
	Excerpt            string
	SiteName           string
	Language           string
	WordCount          int
	ReadingTimeMinutes float64
	LengthChars        int
	SourceURL          string
}

func newArticle(content, textContent, sourceURL string, meta articlemeta.Metadata) Article {
	return Article{
		Content:            content,
		TextContent:        textContent,
		Title:              meta.Title,
		Author:             meta.Author,
		Date:               meta.Date,
		Excerpt:            meta.Excerpt,
		SiteName:           meta.SiteName,
		Language:           meta.Language,
		WordCount:          meta.WordCount,
		ReadingTimeMinutes: meta.ReadingTimeMinutes,
		LengthChars:        len(textContent),
		SourceURL:          sourceURL,
	}
}

// ContentHash returns a BLAKE3 digest of Content, suitable for
// deduplicating articles extracted from the same page across runs.
func (a Article) ContentHash() string {
	digest, err := hashutil.HashBytes([]byte(a.Content), hashutil.HashAlgoBLAKE3)
	if err != nil {
		return ""
	}
	return digest
}
