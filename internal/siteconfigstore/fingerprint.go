package siteconfigstore

import (
	"path/filepath"
	"strings"

	"github.com/tantowi/readable/internal/siteconfig"
)

// MatchHTML searches every fingerprint collected from the root set for a
// substring match against the full HTML and returns the hostname of the
// first one found.
func (l *Loader) MatchHTML(html string) (string, bool) {
	return matchFragment(l.allFingerprints(), html)
}

// MatchHead behaves like MatchHTML but only searches within the first
// <head>...</head> span, for callers that have not parsed the full body.
func (l *Loader) MatchHead(html string) (string, bool) {
	return matchFragment(l.allFingerprints(), headSpan(html))
}

// MatchAndLoad resolves a fingerprint match to its bundle via the
// standard LoadForHost path, per §4.9 ("loaded via the standard path with
// HOSTNAME.txt").
func (l *Loader) MatchAndLoad(html string) (siteconfig.Bundle, string, bool, error) {
	host, ok := l.MatchHTML(html)
	if !ok {
		return siteconfig.Bundle{}, "", false, nil
	}
	bundle, err := l.LoadForHost(host)
	return bundle, host, true, err
}

func matchFragment(fingerprints []siteconfig.Fingerprint, haystack string) (string, bool) {
	for _, fp := range fingerprints {
		if fp.Fragment == "" {
			continue
		}
		if strings.Contains(haystack, fp.Fragment) {
			return fp.Hostname, true
		}
	}
	return "", false
}

func headSpan(html string) string {
	start := strings.Index(html, "<head")
	if start < 0 {
		return ""
	}
	end := strings.Index(html[start:], "</head>")
	if end < 0 {
		return html[start:]
	}
	return html[start : start+end+len("</head>")]
}

// allFingerprints collects every (fragment, hostname) pair from every
// config file discovered across the root set, parsed once and cached.
func (l *Loader) allFingerprints() []siteconfig.Fingerprint {
	l.fpOnce.Do(func() {
		for _, root := range l.roots {
			matches, err := filepath.Glob(filepath.Join(root, "*.txt"))
			if err != nil {
				continue
			}
			for _, path := range matches {
				bundle, err := siteconfig.ParseFile(path)
				if err != nil {
					continue
				}
				l.fingerprints = append(l.fingerprints, bundle.Fingerprints...)
			}
		}
	})
	return l.fingerprints
}
