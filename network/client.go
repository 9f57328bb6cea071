// Package network holds the HTTP client used for release lookups.
package network

import (
	"net/http"
	"time"

	"github.com/hyfetch-cli/hyfetch/constant"
)

// UserAgent is sent with every request. api.github.com rejects requests without one.
var UserAgent = constant.Hyfetch + "/" + constant.Version

// Client is shared by every outgoing request.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: &userAgentTransport{base: newTransport()},
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	return t.base.RoundTrip(req)
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}
