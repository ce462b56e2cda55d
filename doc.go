// Package readable extracts the main readable content and metadata from
// an HTML document: a heuristic scorer identifies the article body when
// no site-specific override exists, and an FTR-style site-config bundle
// takes over when one does.
//
// Build an engine with NewBuilder, then call Parse or ParseWithURL:
//
//	r, err := readable.NewBuilder().WithMinScore(15).Build()
//	article, err := r.ParseWithURL(rawHTML, "https://example.com/post")
package readable
