package opengrok

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

const userAgent = "og/1.0 (+https://github.com/insomniacslk/opengrok-cli)"

// Fetcher retrieves the raw results document for a request.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) ([]byte, error)
}

// HTTPFetcher implements Fetcher over HTTP.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

type FetcherOpt func(f *HTTPFetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) FetcherOpt {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithTimeout sets the overall timeout of each request. A client passed with
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) FetcherOpt {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

func NewHTTPFetcher(opts ...FetcherOpt) *HTTPFetcher {
	f := HTTPFetcher{
		client: cleanhttp.DefaultClient(),
	}
	for _, opt := range opts {
		opt(&f)
	}
	if f.timeout > 0 {
		client := *f.client
		client.Timeout = f.timeout
		f.client = &client
	}
	return &f
}

// Fetch issues a GET for req and returns the body decoded to UTF-8.
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) ([]byte, error) {
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	hreq.Header.Set("User-Agent", userAgent)
	if req.Authorization != "" {
		hreq.Header.Set("Authorization", req.Authorization)
	}
	resp, err := f.client.Do(hreq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	logrus.Debugf("Response: %s (Content-Type: %q)", resp.Status, resp.Header.Get("Content-Type"))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to set up charset decoding: %w", err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logrus.Debugf("Read %d bytes", len(data))
	return data, nil
}
