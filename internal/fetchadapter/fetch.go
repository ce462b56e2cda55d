// Package fetchadapter performs the single-page HTTP fetch that sits in
// front of the extraction core: a GET with retry and per-host politeness
// delay, returning raw bytes for the caller to hand to Readability.Parse.
// The extraction core itself never fetches or retries.
package fetchadapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tantowi/readable/internal/obslog"
	"github.com/tantowi/readable/pkg/failure"
	"github.com/tantowi/readable/pkg/limiter"
	"github.com/tantowi/readable/pkg/retry"
)

// Client performs rate-limited, retried single-page fetches.
type Client struct {
	httpClient *http.Client
	limiter    *limiter.ConcurrentRateLimiter
	sink       obslog.Sink
}

// NewClient builds a Client. limiter may be nil to disable per-host
// politeness delay; sink may be nil to discard error records.
func NewClient(rateLimiter *limiter.ConcurrentRateLimiter, sink obslog.Sink) *Client {
	if sink == nil {
		sink = obslog.NopSink{}
	}
	return &Client{
		httpClient: &http.Client{},
		limiter:    rateLimiter,
		sink:       sink,
	}
}

// FetchOnce performs a single retried GET against param.URL.
func (c *Client) FetchOnce(ctx context.Context, param FetchParam, retryParam retry.RetryParam) (FetchResult, failure.ClassifiedError) {
	host := param.URL.Hostname()
	if c.limiter != nil && host != "" {
		delay := c.limiter.ResolveDelay(host)
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	fetchTask := func() (FetchResult, failure.ClassifiedError) {
		return c.performFetch(ctx, param)
	}
	result := retry.Retry(retryParam, fetchTask)

	if c.limiter != nil && host != "" {
		if result.IsSuccess() {
			c.limiter.ResetBackoff(host)
			c.limiter.MarkLastFetchAsNow(host)
		} else {
			c.limiter.Backoff(host)
		}
	}

	if result.IsFailure() {
		c.sink.RecordError(obslog.ErrorRecord{
			Time:      time.Now(),
			Component: "fetchadapter",
			Action:    "FetchOnce",
			Cause:     obslog.CauseNetworkFailure,
			Message:   result.Err().Error(),
			Attrs:     []obslog.Attribute{{Key: obslog.AttrURL, Value: param.URL.String()}},
		})
		return FetchResult{}, result.Err()
	}
	return result.Value(), nil
}

func (c *Client) performFetch(ctx context.Context, param FetchParam) (FetchResult, failure.ClassifiedError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, param.URL.String(), nil)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Retryable: false, Cause: ErrCauseNetworkFailure}
	}
	for key, value := range requestHeaders(param.UserAgent) {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Retryable: true, Cause: ErrCauseNetworkFailure}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return FetchResult{}, &FetchError{Message: fmt.Sprintf("server error: %d", resp.StatusCode), Retryable: true, Cause: ErrCauseRequest5xx}
	case resp.StatusCode == 429:
		return FetchResult{}, &FetchError{Message: "rate limited", Retryable: true, Cause: ErrCauseRequestTooMany}
	case resp.StatusCode == 403:
		return FetchResult{}, &FetchError{Message: "forbidden", Retryable: false, Cause: ErrCauseRequestForbidden}
	case resp.StatusCode >= 400:
		return FetchResult{}, &FetchError{Message: fmt.Sprintf("client error: %d", resp.StatusCode), Retryable: false, Cause: ErrCauseClientError}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContent(contentType) {
		return FetchResult{}, &FetchError{Message: "non-HTML content type: " + contentType, Retryable: false, Cause: ErrCauseContentTypeInvalid}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Retryable: true, Cause: ErrCauseReadBodyFailure}
	}

	headers := make(map[string]string)
	for key, values := range resp.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	return FetchResult{
		URL:        param.URL,
		Body:       body,
		StatusCode: resp.StatusCode,
		Headers:    headers,
		FetchedAt:  time.Now(),
	}, nil
}

func isHTMLContent(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "text/html") || strings.Contains(contentType, "application/xhtml")
}

func requestHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent":      userAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
	}
}
