// Package siteconfig represents and parses FTR-style directive bundles
// (C8): per-site overrides that can bypass or guide the heuristic
// extraction pipeline, plus fingerprint-based hostname discovery.
package siteconfig

// Fingerprint pairs an HTML substring with the hostname whose bundle
// should be loaded when that substring is found in a document.
type Fingerprint struct {
	Fragment string
	Hostname string
}

// FindReplace is one (find, replace) literal-substitution pair applied to
// the raw HTML string before parsing.
type FindReplace struct {
	Find    string
	Replace string
}

// Bundle is the directive set loaded from one or more FTR files for a
// single host. Every list field preserves file order; merging two bundles
// concatenates list fields and overwrites map entries, per §3.
type Bundle struct {
	TitleXPath  []string
	BodyXPath   []string
	DateXPath   []string
	AuthorXPath []string

	Strip            []string
	StripIDOrClass   []string
	StripImageSrc    []string
	StripAttr        []string

	Tidy                 *bool
	Prune                *bool
	AutodetectOnFailure  *bool

	SinglePageLinkXPath []string
	NextPageLinkXPath   []string

	FindReplace []FindReplace

	HTTPHeaders map[string]string

	TestURLs     []string
	Fingerprints []Fingerprint
}

// NewBundle returns a zero-value Bundle with its map initialized.
func NewBundle() Bundle {
	return Bundle{HTTPHeaders: map[string]string{}}
}

// AutodetectOnFailureOrDefault reports whether the heuristic pipeline
// should run when body-directive extraction fails; unset defaults to true
// per §4.10.
func (b Bundle) AutodetectOnFailureOrDefault() bool {
	if b.AutodetectOnFailure == nil {
		return true
	}
	return *b.AutodetectOnFailure
}

// Merge concatenates list fields from other onto b (in the order supplied
// to Merge), takes other's boolean values when set, and overwrites map
// entries — the merge semantics from §3, used by the loader to apply
// configs in reverse discovery order.
func (b Bundle) Merge(other Bundle) Bundle {
	out := b

	out.TitleXPath = append(append([]string{}, b.TitleXPath...), other.TitleXPath...)
	out.BodyXPath = append(append([]string{}, b.BodyXPath...), other.BodyXPath...)
	out.DateXPath = append(append([]string{}, b.DateXPath...), other.DateXPath...)
	out.AuthorXPath = append(append([]string{}, b.AuthorXPath...), other.AuthorXPath...)

	out.Strip = append(append([]string{}, b.Strip...), other.Strip...)
	out.StripIDOrClass = append(append([]string{}, b.StripIDOrClass...), other.StripIDOrClass...)
	out.StripImageSrc = append(append([]string{}, b.StripImageSrc...), other.StripImageSrc...)
	out.StripAttr = append(append([]string{}, b.StripAttr...), other.StripAttr...)

	out.SinglePageLinkXPath = append(append([]string{}, b.SinglePageLinkXPath...), other.SinglePageLinkXPath...)
	out.NextPageLinkXPath = append(append([]string{}, b.NextPageLinkXPath...), other.NextPageLinkXPath...)

	out.FindReplace = append(append([]FindReplace{}, b.FindReplace...), other.FindReplace...)
	out.TestURLs = append(append([]string{}, b.TestURLs...), other.TestURLs...)
	out.Fingerprints = append(append([]Fingerprint{}, b.Fingerprints...), other.Fingerprints...)

	if other.Tidy != nil {
		out.Tidy = other.Tidy
	}
	if other.Prune != nil {
		out.Prune = other.Prune
	}
	if other.AutodetectOnFailure != nil {
		out.AutodetectOnFailure = other.AutodetectOnFailure
	}

	headers := map[string]string{}
	for k, v := range b.HTTPHeaders {
		headers[k] = v
	}
	for k, v := range other.HTTPHeaders {
		headers[k] = v
	}
	out.HTTPHeaders = headers

	return out
}
