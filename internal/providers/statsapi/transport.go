package statsapi

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// requestHeaders are sent on every call: JSON negotiation plus cache busting.
var requestHeaders = map[string]string{
	"Accept":        "application/json",
	"Content-Type":  "application/json",
	"Cache-Control": "no-cache, no-store",
	"Pragma":        "no-cache",
}

// resolveHTTPClient prefers the caller's client; otherwise it builds one with
// the given timeout. A zero timeout never expires.
func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
