package fetchadapter

import (
	"context"
	"net/url"

	"github.com/tantowi/readable/internal/siteconfig"
	"github.com/tantowi/readable/pkg/retry"
)

// TestURLResult is the outcome of fetching one of a bundle's test_url
// entries: whether the fetch itself succeeded, independent of whether the
// resulting page extracts as readable (that judgment is the caller's,
// typically via Readability.Parse on Body).
type TestURLResult struct {
	URL     string
	Fetched bool
	Body    string
	Err     error
}

// TestSiteConfig fetches every test_url a bundle declares, in order, so a
// CLI command can report which ones a site config still works against.
func (c *Client) TestSiteConfig(ctx context.Context, b siteconfig.Bundle, userAgent string, retryParam retry.RetryParam) []TestURLResult {
	results := make([]TestURLResult, 0, len(b.TestURLs))
	for _, raw := range b.TestURLs {
		parsed, err := url.Parse(raw)
		if err != nil {
			results = append(results, TestURLResult{URL: raw, Fetched: false, Err: err})
			continue
		}

		result, cerr := c.FetchOnce(ctx, FetchParam{URL: *parsed, UserAgent: userAgent}, retryParam)
		if cerr != nil {
			results = append(results, TestURLResult{URL: raw, Fetched: false, Err: cerr})
			continue
		}
		results = append(results, TestURLResult{URL: raw, Fetched: true, Body: string(result.Body)})
	}
	return results
}
