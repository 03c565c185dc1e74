package espn

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// credentials holds the ESPN session cookie pair. Private leagues need both;
// either one alone is treated as anonymous access.
type credentials struct {
	s2   string
	swid string
}

func (c credentials) valid() bool {
	return c.s2 != "" && c.swid != ""
}

func (c credentials) apply(req *http.Request) {
	if !c.valid() {
		return
	}
	req.AddCookie(&http.Cookie{Name: cookieS2, Value: c.s2})
	req.AddCookie(&http.Cookie{Name: cookieSWID, Value: c.swid})
}
