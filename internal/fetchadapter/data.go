package fetchadapter

import (
	"net/url"
	"time"
)

// FetchParam describes a single page fetch: the URL to request and the
// user agent to present.
type FetchParam struct {
	URL       url.URL
	UserAgent string
}

// FetchResult is the raw bytes and metadata of a successful fetch. The
// adapter never parses the body; that is the caller's job.
type FetchResult struct {
	URL        url.URL
	Body       []byte
	StatusCode int
	Headers    map[string]string
	FetchedAt  time.Time
}
