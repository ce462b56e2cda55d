// Package articlemeta implements the metadata extractor (C7): title,
// author, date, excerpt, site name, language, word count and reading time,
// each under its own §4.7 priority chain (JSON-LD first, then OpenGraph/
// meta/Twitter-card tags, then a heuristic fallback).
package articlemeta

import (
	"regexp"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/obslog"
)

var wordPattern = regexp.MustCompile(`\b[\w'-]+\b`)

const wordsPerMinute = 200

// Extract runs every chain in §4.7 over doc, which must already have
// baseURL attached if site-name host fallback should work.
func Extract(doc *htmldom.Document, sink obslog.Sink) Metadata {
	if sink == nil {
		sink = obslog.NopSink{}
	}
	blocks := jsonldBlocks(doc, sink)

	m := Metadata{
		Title:    extractTitle(doc, blocks),
		Author:   extractAuthor(doc, blocks),
		Date:     extractDate(doc, blocks),
		Excerpt:  extractExcerpt(doc, blocks),
		SiteName: extractSiteName(doc, blocks),
		Language: htmlLang(doc),
	}

	text := doc.TextContent()
	words := wordPattern.FindAllString(text, -1)
	m.WordCount = len(words)
	m.ReadingTimeMinutes = float64(m.WordCount) / wordsPerMinute

	return m
}

func extractTitle(doc *htmldom.Document, blocks []map[string]any) string {
	if v := jsonldString(blocks, "headline"); v != "" {
		return v
	}
	if v := metaByProperty(doc, "og:title"); v != "" {
		return v
	}
	if v := metaByName(doc, "twitter:title"); v != "" {
		return v
	}
	if v := metaByName(doc, "title"); v != "" {
		return v
	}
	if v := metaByName(doc, "DC.title"); v != "" {
		return v
	}
	if v := doc.Title(); v != "" {
		return v
	}
	return firstText(doc, "h1")
}

func extractAuthor(doc *htmldom.Document, blocks []map[string]any) string {
	if v := jsonldAuthor(blocks); v != "" {
		return v
	}
	if v := metaByName(doc, "author"); v != "" {
		return v
	}
	if v := metaByName(doc, "DC.creator"); v != "" {
		return v
	}
	if v := firstText(doc, "[rel=author]"); v != "" {
		return v
	}
	if v := firstText(doc, "[itemprop=author]"); v != "" {
		return v
	}
	return heuristicAuthor(doc)
}

func extractDate(doc *htmldom.Document, blocks []map[string]any) string {
	if v := jsonldString(blocks, "datePublished"); v != "" {
		return v
	}
	if v := metaByProperty(doc, "article:published_time"); v != "" {
		return v
	}
	if v := firstTimeDatetime(doc); v != "" {
		return v
	}
	if v := metaByName(doc, "date"); v != "" {
		return v
	}
	return metaByName(doc, "DC.date")
}

func extractExcerpt(doc *htmldom.Document, blocks []map[string]any) string {
	if v := jsonldString(blocks, "description"); v != "" {
		return v
	}
	if v := metaByProperty(doc, "og:description"); v != "" {
		return v
	}
	if v := metaByName(doc, "description"); v != "" {
		return v
	}
	return heuristicExcerpt(doc)
}

func extractSiteName(doc *htmldom.Document, blocks []map[string]any) string {
	if v := jsonldPublisherName(blocks); v != "" {
		return v
	}
	if v := metaByProperty(doc, "og:site_name"); v != "" {
		return v
	}
	return heuristicSiteName(doc.BaseURL())
}
