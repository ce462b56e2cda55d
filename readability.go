package readable

import (
	"net/url"
	"strings"

	"github.com/tantowi/readable/internal/articlemeta"
	"github.com/tantowi/readable/internal/articlescore"
	"github.com/tantowi/readable/internal/extract"
	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/obslog"
	"github.com/tantowi/readable/internal/rconfig"
	"github.com/tantowi/readable/internal/siteconfig"
	"github.com/tantowi/readable/internal/siteconfigproc"
	"github.com/tantowi/readable/internal/siteconfigstore"
	"golang.org/x/net/html"
)

// Readability is the assembled engine: a tunable bundle, an observability
// sink, and an optional site-config loader for the per-host bypass path.
// It holds no per-call mutable state beyond the loader's own host cache,
// so a single instance is safe to reuse across documents.
type Readability struct {
	bundle     rconfig.Bundle
	sink       obslog.Sink
	siteConfig *siteconfigstore.Loader
}

// Parse extracts the main content and metadata from rawHTML with no known
// source URL: relative links are left unresolved and no site-config file
// can be resolved.
func (r *Readability) Parse(rawHTML string) (Article, error) {
	return r.parse(rawHTML, nil)
}

// ParseWithURL extracts the main content and metadata from rawHTML known
// to have been fetched from pageURL, enabling relative-link resolution
// and per-host site-config lookup.
func (r *Readability) ParseWithURL(rawHTML, pageURL string) (Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return Article{}, &Error{Kind: ErrInvalidURL, Message: "invalid source url: " + pageURL}
	}
	return r.parse(rawHTML, parsed)
}

func (r *Readability) parse(rawHTML string, pageURL *url.URL) (Article, error) {
	siteBundle, hasSiteConfig := r.resolveSiteConfig(pageURL)
	if hasSiteConfig {
		rawHTML = siteconfigproc.ApplyFindReplace(rawHTML, siteBundle.FindReplace)
	}

	preCfg := r.bundle.Preprocess
	preCfg.BaseURL = pageURL
	doc, err := htmldom.ParseWithPreprocessingConfig(rawHTML, preCfg)
	if err != nil {
		return Article{}, &Error{Kind: ErrHTMLParse, Message: err.Error(), cause: err}
	}

	content, topScore, elementCount, usedSiteConfig, err := r.extractBody(rawHTML, pageURL, siteBundle, hasSiteConfig, doc)
	if err != nil {
		return Article{}, err
	}
	_ = topScore
	_ = elementCount

	meta := articlemeta.Extract(doc, r.sink)
	if usedSiteConfig {
		r.overrideFromSiteConfig(&meta, doc.Root(), siteBundle)
	}

	sourceURL := ""
	if pageURL != nil {
		sourceURL = pageURL.String()
	}
	return newArticle(content, doc.TextContent(), sourceURL, meta), nil
}

// extractBody tries the site-config body bypass first (when a bundle with
// a body directive resolved and matched), falling back to the heuristic
// extractor either when no site config applies or when the bundle's body
// directive failed to match and autodetect_on_failure allows a fallback.
func (r *Readability) extractBody(
	rawHTML string,
	pageURL *url.URL,
	siteBundle siteconfig.Bundle,
	hasSiteConfig bool,
	doc *htmldom.Document,
) (content string, topScore float64, elementCount int, usedSiteConfig bool, err error) {
	if hasSiteConfig && len(siteBundle.BodyXPath) > 0 {
		rawRoot, parseErr := html.Parse(strings.NewReader(rawHTML))
		if parseErr == nil {
			result, found, bodyErr := siteconfigproc.ExtractBody(rawRoot, siteBundle, pageURL)
			if bodyErr != nil {
				return "", 0, 0, false, &Error{Kind: ErrXPath, Message: bodyErr.Error(), cause: bodyErr}
			}
			if found {
				return result.Content, result.TopScore, result.ElementCount, true, nil
			}
		}
		if !siteBundle.AutodetectOnFailureOrDefault() {
			return "", 0, 0, false, &Error{Kind: ErrNoContent, Message: "site config body directive did not match and autodetect_on_failure is disabled"}
		}
	}

	extracted, cerr := extract.Extract(doc, r.bundle.Extract, r.bundle.Score, r.sink)
	if cerr != nil {
		return "", 0, 0, false, mapExtractError(cerr)
	}
	return extracted.Content, extracted.TopScore, extracted.ElementCount, false, nil
}

func (r *Readability) overrideFromSiteConfig(meta *articlemeta.Metadata, root *html.Node, b siteconfig.Bundle) {
	if title, err := siteconfigproc.FindFirstText(root, b.TitleXPath); err == nil && title != "" {
		meta.Title = title
	}
	if author, err := siteconfigproc.FindFirstText(root, b.AuthorXPath); err == nil && author != "" {
		meta.Author = author
	}
	if date, err := siteconfigproc.FindFirstText(root, b.DateXPath); err == nil && date != "" {
		meta.Date = date
	}
}

func (r *Readability) resolveSiteConfig(pageURL *url.URL) (siteconfig.Bundle, bool) {
	if r.siteConfig == nil || pageURL == nil || pageURL.Hostname() == "" {
		return siteconfig.Bundle{}, false
	}
	bundle, err := r.siteConfig.LoadForHost(pageURL.Hostname())
	if err != nil {
		return siteconfig.Bundle{}, false
	}
	return bundle, true
}

func mapExtractError(cerr error) *Error {
	if ee, ok := cerr.(*extract.ExtractError); ok {
		switch ee.Cause {
		case extract.ErrCauseNotReadable:
			return &Error{Kind: ErrNotReadable, Message: ee.Error(), Score: ee.Score, Threshold: ee.Threshold, cause: ee}
		case extract.ErrCauseNoContent:
			return &Error{Kind: ErrNoContent, Message: ee.Error(), cause: ee}
		}
	}
	return &Error{Kind: ErrNoContent, Message: cerr.Error(), cause: cerr}
}

// IsProbablyReadable is a cheap pre-check: it reports whether rawHTML is
// likely to contain an extractable article without running the full
// pipeline, per the rule that some p/div/article/section element must
// have at least 25 characters of descendant text and a final score of at
// least 20.
func IsProbablyReadable(rawHTML string) bool {
	doc, err := htmldom.Parse(rawHTML)
	if err != nil {
		return false
	}
	elems, err := doc.Select("p,div,article,section")
	if err != nil {
		return false
	}
	scoreCfg := rconfig.DefaultScoreConfig()
	for _, elem := range elems {
		if len(strings.TrimSpace(elem.Text())) < 25 {
			continue
		}
		if articlescore.Calculate(elem, scoreCfg).FinalScore >= 20 {
			return true
		}
	}
	return false
}
