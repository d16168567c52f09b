package opengrok

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of one search run.
type Outcome struct {
	Summary
	URL       string
	Truncated bool
	Duration  time.Duration
}

// ExitStatus is 1 when no record was extracted, 0 otherwise. Truncation does
// not affect it.
func (o *Outcome) ExitStatus() int {
	if o.Records == 0 {
		return 1
	}
	return 0
}

// Searcher runs searches against an OpenGrok server.
type Searcher struct {
	fetcher Fetcher
}

func NewSearcher(f Fetcher) *Searcher {
	return &Searcher{fetcher: f}
}

// Search builds the request for cfg, fetches the results page and writes the
// formatted records to w. Transport errors are returned; a page that cannot
// be parsed yields no records.
func (s *Searcher) Search(ctx context.Context, cfg *SearchConfig, w io.Writer) (*Outcome, error) {
	start := time.Now()
	req := BuildRequest(cfg)
	if cfg.Verbose {
		logrus.Infof("API URL = %s", req.URL)
	} else {
		logrus.Debugf("API URL = %s", req.URL)
	}
	body, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results from %q: %w", cfg.Server, err)
	}
	doc, err := Parse(body, Lenient())
	if err != nil {
		return nil, err
	}
	f := NewFormatter(cfg.Render, cfg.MultiProject(), WithLinker(func(rec MatchRecord) string {
		return ResolveHref(cfg.Server, rec.Href)
	}))
	sum, err := f.Format(w, doc.Records())
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Summary:   sum,
		URL:       req.URL,
		Truncated: doc.Truncated(),
		Duration:  time.Since(start),
	}, nil
}

// ResolveHref resolves a link found in a results page against the server
// address. It returns an empty string if either cannot be parsed.
func ResolveHref(server, href string) string {
	base, err := url.Parse(server)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
