// Package articlescore computes the per-element ScoreResult (C3): a base
// tag score, a class/id signal weight, a content-density bonus, a
// link-density penalty, and a code-block penalty, combined into a final
// score.
package articlescore

import (
	"strings"
	"unicode"

	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/preprocess"
	"github.com/tantowi/readable/internal/rconfig"
	"golang.org/x/net/html"
)

// ClassIDWeight applies the §4.3 class_id_weight rule: id is checked first,
// then each whitespace-separated class token, first match wins.
func ClassIDWeight(elem htmldom.Element, cfg rconfig.ScoreConfig) float64 {
	if id, ok := elem.Attr("id"); ok && id != "" {
		if w, matched := weightForToken(id, cfg); matched {
			return w
		}
	}
	if class, ok := elem.Attr("class"); ok {
		for _, token := range strings.Fields(class) {
			if w, matched := weightForToken(token, cfg); matched {
				return w
			}
		}
	}
	return 0
}

func weightForToken(token string, cfg rconfig.ScoreConfig) (float64, bool) {
	if preprocess.PositivePattern.MatchString(token) {
		return cfg.PositiveWeight, true
	}
	if preprocess.UnlikelyPattern.MatchString(token) {
		return cfg.NegativeWeight, true
	}
	return 0, false
}

// ContentDensityScore implements §4.3 content_density_score.
func ContentDensityScore(charCount, commaCount int, cfg rconfig.ScoreConfig) float64 {
	charScore := float64(charCount) / cfg.CharsPerPoint
	if charScore > cfg.MaxCharDensityScore {
		charScore = cfg.MaxCharDensityScore
	}
	if charScore < 0 {
		charScore = 0
	}
	charScore = float64(int(charScore)) // floor via truncation (non-negative)

	commaScore := float64(commaCount)
	if commaScore > cfg.MaxCommaDensityScore {
		commaScore = cfg.MaxCommaDensityScore
	}
	return charScore + commaScore
}

// LinkDensity is the ratio of text inside <a> descendants to all descendant
// text; 0 when the element has no text.
func LinkDensity(elem htmldom.Element) float64 {
	total := len([]rune(elem.Text()))
	if total == 0 {
		return 0
	}
	return float64(linkTextLength(elem.Node())) / float64(total)
}

func linkTextLength(n *html.Node) int {
	var total int
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.Data == "a" {
			total += len([]rune(htmldom.NodeText(cur)))
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return total
}

// isCodeBlock detects the §4.3 code-block heuristic: a <pre> whose text is
// long and whose character mix looks like source code rather than prose.
func isCodeBlock(elem htmldom.Element) bool {
	if elem.TagName() != "pre" {
		return false
	}
	text := elem.Text()
	runes := []rune(text)
	n := len(runes)
	if n <= 50 {
		return false
	}

	var special, commas, spaces int
	for _, r := range runes {
		switch {
		case r == ',':
			commas++
		case unicode.IsSpace(r):
			spaces++
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special++
		}
	}
	specialRatio := float64(special) / float64(n)
	commaRatio := float64(commas) / float64(n)
	spaceRatio := float64(spaces) / float64(n)

	return specialRatio > 0.15 && commaRatio < 0.01 && spaceRatio < 0.15
}

// Calculate runs the full §4.3 scoring formula over elem.
func Calculate(elem htmldom.Element, cfg rconfig.ScoreConfig) ScoreResult {
	class, _ := elem.Attr("class")
	id, _ := elem.Attr("id")

	text := elem.Text()
	charCount := len([]rune(text))
	commaCount := strings.Count(text, ",")

	base := BaseTagScore(elem.TagName())
	classWeight := ClassIDWeight(elem, cfg)
	density := ContentDensityScore(charCount, commaCount, cfg)
	linkDensity := LinkDensity(elem)

	raw := base + classWeight + density

	var codePenalty float64
	if isCodeBlock(elem) {
		codePenalty = -10
	}

	var linkPenalty float64
	if classWeight > 0 || charCount > 500 {
		linkPenalty = 1 - 0.5*linkDensity
	} else {
		linkPenalty = 1 - linkDensity
	}

	final := (raw + codePenalty) * linkPenalty

	return ScoreResult{
		TagName:        elem.TagName(),
		Class:          class,
		ID:             id,
		BaseScore:      base,
		ClassWeight:    classWeight,
		ContentDensity: density,
		LinkDensity:    linkDensity,
		FinalScore:     final,
	}
}
