package outformat

import (
	"encoding/json"

	readable "github.com/tantowi/readable"
)

// articleDTO is the wire shape for JSON output: snake_case field names
// matching the Article record shape callers outside this module expect,
// decoupled from the Go field names so the two can evolve independently.
type articleDTO struct {
	Content            string  `json:"content"`
	TextContent        string  `json:"text_content"`
	Title              string  `json:"title,omitempty"`
	Author             string  `json:"author,omitempty"`
	Date               string  `json:"date,omitempty"`
	Excerpt            string  `json:"excerpt,omitempty"`
	SiteName           string  `json:"site_name,omitempty"`
	Language           string  `json:"language,omitempty"`
	WordCount          int     `json:"word_count"`
	ReadingTimeMinutes float64 `json:"reading_time_minutes"`
	LengthChars        int     `json:"length_chars"`
	SourceURL          string  `json:"source_url,omitempty"`
}

// RenderJSON marshals article as indented JSON.
func RenderJSON(article readable.Article) (string, error) {
	dto := articleDTO{
		Content:            article.Content,
		TextContent:        article.TextContent,
		Title:              article.Title,
		Author:             article.Author,
		Date:               article.Date,
		Excerpt:            article.Excerpt,
		SiteName:           article.SiteName,
		Language:           article.Language,
		WordCount:          article.WordCount,
		ReadingTimeMinutes: article.ReadingTimeMinutes,
		LengthChars:        article.LengthChars,
		SourceURL:          article.SourceURL,
	}
	out, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
