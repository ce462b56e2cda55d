package postprocess_test

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tantowi/readable/internal/postprocess"
	"github.com/tantowi/readable/internal/rconfig"
)

func TestApply_RemovesConditionalComments(t *testing.T) {
	frag := `<p>before</p><!--[if IE]><p>ie only</p><![endif]--><p>after</p>`
	out, err := postprocess.Apply(frag, rconfig.DefaultPostProcessConfig())
	require.NoError(t, err)
	assert.NotContains(t, out, "ie only")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

func TestApply_StripImages(t *testing.T) {
	cfg := rconfig.DefaultPostProcessConfig()
	cfg.StripImages = true
	out, err := postprocess.Apply(`<p>x</p><img src="a.png">`, cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "<img")
}

func TestApply_StripClassesUnlessKeep(t *testing.T) {
	out, err := postprocess.Apply(`<div class="foo">x</div>`, rconfig.DefaultPostProcessConfig())
	require.NoError(t, err)
	assert.NotContains(t, out, `class="foo"`)

	cfg := rconfig.DefaultPostProcessConfig()
	cfg.KeepClasses = true
	out2, err := postprocess.Apply(`<div class="foo">x</div>`, cfg)
	require.NoError(t, err)
	assert.Contains(t, out2, `class="foo"`)
}

func TestApply_DocSiteChromeByAttr(t *testing.T) {
	frag := `<nav class="sidebar">nope</nav><div id="toc">no</div><p>keep</p>`
	cfg := rconfig.DefaultPostProcessConfig()
	cfg.KeepClasses = true // class stripping (step 3) runs before chrome removal (step 4)
	out, err := postprocess.Apply(frag, cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "nope")
	assert.NotContains(t, out, `id="toc"`)
	assert.Contains(t, out, "keep")
}

func TestApply_DocSiteChromeByText(t *testing.T) {
	frag := `<div>Edit on GitHub</div><p>keep</p>`
	out, err := postprocess.Apply(frag, rconfig.DefaultPostProcessConfig())
	require.NoError(t, err)
	assert.NotContains(t, out, "Edit on GitHub")
	assert.Contains(t, out, "keep")
}

func TestApply_RemoveEmptyNodes(t *testing.T) {
	frag := `<p>   </p><p><br></p><p>keep</p>`
	out, err := postprocess.Apply(frag, rconfig.DefaultPostProcessConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(out, "<p>"))
	assert.Contains(t, out, "keep")
}

func TestApply_RemoveHighLinkDensity(t *testing.T) {
	cfg := rconfig.DefaultPostProcessConfig()
	linky := `<div><a href="#">` + repeat("x", 100) + `</a></div>`
	out, err := postprocess.Apply(linky+`<p>keep</p>`, cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, `href="#"`)
	assert.Contains(t, out, "keep")
}

func TestApply_StripPatterns(t *testing.T) {
	cfg := rconfig.DefaultPostProcessConfig()
	cfg.StripPatterns = regexp.MustCompile(`^ad-`)
	out, err := postprocess.Apply(`<div class="ad-banner"><p>kept text</p></div>`, cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, `class="ad-banner"`)
	assert.Contains(t, out, "kept text")
}

func TestApply_CollapseNestedDivs(t *testing.T) {
	out, err := postprocess.Apply(`<div><div>X</div></div>`, rconfig.DefaultPostProcessConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(out, "<div>"))
	assert.Contains(t, out, "X")
}

func TestApply_AbsolutizeURLs(t *testing.T) {
	cfg := rconfig.DefaultPostProcessConfig()
	base, err := url.Parse("https://example.com/docs/")
	require.NoError(t, err)
	cfg.BaseURL = base

	out, err := postprocess.Apply(`<a href="/x">link</a><img src="y.png">`, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.com/x"`)
	assert.Contains(t, out, `src="https://example.com/docs/y.png"`)
}

func TestApply_IdempotentOnSecondRun(t *testing.T) {
	cfg := rconfig.DefaultPostProcessConfig()
	once, err := postprocess.Apply(`<div><div class="sidebar">x</div><p>keep</p></div>`, cfg)
	require.NoError(t, err)
	twice, err := postprocess.Apply(once, cfg)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
