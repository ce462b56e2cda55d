package preprocess_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tantowi/readable/internal/htmldom"
	"github.com/tantowi/readable/internal/preprocess"
	"github.com/tantowi/readable/internal/rconfig"
	"golang.org/x/net/html"
)

func parse(t *testing.T, raw string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	return htmldom.WrapElement(n).OuterHTML()
}

func TestApply_RemovesScriptsAndStyles(t *testing.T) {
	doc := parse(t, `<html><body><script>evil()</script><style>.x{}</style><p>keep</p></body></html>`)
	cfg := rconfig.DefaultPreprocessConfig()

	preprocess.Apply(doc, cfg)

	out := render(t, doc)
	assert.NotContains(t, out, "evil()")
	assert.NotContains(t, out, ".x{}")
	assert.Contains(t, out, "keep")
}

func TestApply_RemovesComments(t *testing.T) {
	doc := parse(t, `<html><body><!-- noise --><p>keep</p></body></html>`)
	preprocess.Apply(doc, rconfig.DefaultPreprocessConfig())

	assert.NotContains(t, render(t, doc), "noise")
}

func TestApply_UnwrapsUnlikelyButKeepsPositiveRescue(t *testing.T) {
	doc := parse(t, `<html><body><div class="sidebar">noise</div><div class="sidebar article-body">kept</div></body></html>`)
	preprocess.Apply(doc, rconfig.DefaultPreprocessConfig())

	out := render(t, doc)
	assert.NotContains(t, out, `class="sidebar"`)
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, `class="sidebar article-body"`)
}

func TestApply_RemoveUnlikelyDisabled(t *testing.T) {
	doc := parse(t, `<html><body><div class="sidebar">noise</div></body></html>`)
	cfg := rconfig.DefaultPreprocessConfig()
	cfg.RemoveUnlikely = false

	preprocess.Apply(doc, cfg)

	assert.Contains(t, render(t, doc), `class="sidebar"`)
}

func TestApply_RemovesHiddenElements(t *testing.T) {
	doc := parse(t, `<html><body><div style="display:none">hidden</div><div style="visibility: hidden">hidden2</div><p>keep</p></body></html>`)
	preprocess.Apply(doc, rconfig.DefaultPreprocessConfig())

	out := render(t, doc)
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "hidden2")
	assert.Contains(t, out, "keep")
}

func TestApply_ConvertURLs(t *testing.T) {
	doc := parse(t, `<html><body><a href="/page">link</a><img src="pic.png"></body></html>`)
	cfg := rconfig.DefaultPreprocessConfig()
	base, err := url.Parse("https://example.com/docs/")
	require.NoError(t, err)
	cfg.BaseURL = base

	preprocess.Apply(doc, cfg)

	out := render(t, doc)
	assert.Contains(t, out, `href="https://example.com/page"`)
	assert.Contains(t, out, `src="https://example.com/docs/pic.png"`)
}

func TestApply_ConvertURLsLeavesUnresolvableRefUnchanged(t *testing.T) {
	doc := parse(t, `<html><body><a href="http://[::1">broken</a></body></html>`)
	cfg := rconfig.DefaultPreprocessConfig()
	base, _ := url.Parse("https://example.com/")
	cfg.BaseURL = base

	preprocess.Apply(doc, cfg)

	assert.Contains(t, render(t, doc), `href="http://[::1"`)
}

func TestApply_CollapsesWhitespace(t *testing.T) {
	doc := parse(t, "<html><body><p>a   b\n\tc</p></body></html>")
	preprocess.Apply(doc, rconfig.DefaultPreprocessConfig())

	assert.Contains(t, render(t, doc), "a b c")
}

func TestApply_NilRootIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		preprocess.Apply(nil, rconfig.DefaultPreprocessConfig())
	})
}

func TestApply_IdempotentWithOnlyWhitespaceCollapse(t *testing.T) {
	raw := "<html><body><div class=\"sidebar\">a   b</div></body></html>"
	doc1 := parse(t, raw)
	doc2 := parse(t, raw)

	cfg := rconfig.PreprocessConfig{} // every flag false
	preprocess.Apply(doc1, cfg)
	first := render(t, doc1)
	preprocess.Apply(doc1, cfg)
	second := render(t, doc1)

	assert.Equal(t, first, second)
	preprocess.Apply(doc2, cfg)
	assert.Equal(t, render(t, doc2), first)
}
