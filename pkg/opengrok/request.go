package opengrok

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// Request is an assembled search request.
type Request struct {
	URL           string
	Authorization string
}

// BuildRequest assembles the search URL and the Basic authorization header
// value for cfg. It performs no I/O.
func BuildRequest(cfg *SearchConfig) Request {
	var b strings.Builder
	b.WriteString(strings.TrimRight(cfg.Server, "/"))
	b.WriteString("/search?n=")
	b.WriteString(strconv.Itoa(cfg.MaxCount))
	b.WriteString("&q=")
	b.WriteString(escape(cfg.Query))
	for _, p := range cfg.Projects {
		b.WriteString("&project=")
		b.WriteString(escape(p))
	}
	b.WriteString("&path=")
	b.WriteString(escape(cfg.Path))
	b.WriteString("&type=")
	b.WriteString(escape(cfg.Type))
	b.WriteString("&sort=")
	b.WriteString(escape(cfg.Sort))
	return Request{
		URL:           b.String(),
		Authorization: BasicAuth(cfg.User, cfg.Password),
	}
}

// BasicAuth returns the value of a Basic Authorization header.
func BasicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

// escape percent-encodes s for a query component, encoding spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
