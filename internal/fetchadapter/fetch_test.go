package fetchadapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tantowi/readable/internal/fetchadapter"
	"github.com/tantowi/readable/pkg/retry"
	"github.com/tantowi/readable/pkg/timeutil"
)

func testRetryParam() retry.RetryParam {
	return retry.NewRetryParam(0, 0, 1, 3, timeutil.NewBackoffParam(0, 1, 0))
}

func TestFetchOnce_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	client := fetchadapter.NewClient(nil, nil)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	result, cerr := client.FetchOnce(context.Background(), fetchadapter.FetchParam{URL: *u, UserAgent: "readable-test/1.0"}, testRetryParam())
	require.Nil(t, cerr)
	assert.Equal(t, 200, result.StatusCode)
	assert.Contains(t, string(result.Body), "ok")
}

func TestFetchOnce_NonHTMLRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := fetchadapter.NewClient(nil, nil)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	_, cerr := client.FetchOnce(context.Background(), fetchadapter.FetchParam{URL: *u, UserAgent: "readable-test/1.0"}, testRetryParam())
	require.NotNil(t, cerr)
	fe, ok := cerr.(*fetchadapter.FetchError)
	require.True(t, ok)
	assert.Equal(t, fetchadapter.ErrCauseContentTypeInvalid, fe.Cause)
}

func TestFetchOnce_ForbiddenIsNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := fetchadapter.NewClient(nil, nil)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	_, cerr := client.FetchOnce(context.Background(), fetchadapter.FetchParam{URL: *u, UserAgent: "readable-test/1.0"}, testRetryParam())
	require.NotNil(t, cerr)
	assert.Equal(t, 1, attempts)
}
