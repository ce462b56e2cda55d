package articlemeta

import (
	"strings"

	"github.com/tantowi/readable/internal/htmldom"
)

// metaContent returns the trimmed content attribute of the first
// <meta property="prop"> or <meta name="name"> match, whichever the
// selector targets.
func metaContent(doc *htmldom.Document, selector string) string {
	elems, err := doc.Select(selector)
	if err != nil || len(elems) == 0 {
		return ""
	}
	content, _ := elems[0].Attr("content")
	return strings.TrimSpace(content)
}

func metaByProperty(doc *htmldom.Document, property string) string {
	return metaContent(doc, `meta[property="`+property+`"]`)
}

func metaByName(doc *htmldom.Document, name string) string {
	return metaContent(doc, `meta[name="`+name+`"]`)
}

// firstText returns the trimmed text of the first element matching
// selector, or "".
func firstText(doc *htmldom.Document, selector string) string {
	elems, err := doc.Select(selector)
	if err != nil || len(elems) == 0 {
		return ""
	}
	return strings.TrimSpace(elems[0].Text())
}

// firstTimeDatetime returns the datetime attribute of the first <time> that
// has one.
func firstTimeDatetime(doc *htmldom.Document) string {
	elems, err := doc.Select("time[datetime]")
	if err != nil || len(elems) == 0 {
		return ""
	}
	dt, _ := elems[0].Attr("datetime")
	return strings.TrimSpace(dt)
}

// htmlLang returns the lang attribute of the document's <html> element.
func htmlLang(doc *htmldom.Document) string {
	elems, err := doc.Select("html[lang]")
	if err != nil || len(elems) == 0 {
		return ""
	}
	lang, _ := elems[0].Attr("lang")
	return strings.TrimSpace(lang)
}
