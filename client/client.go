// SPDX-License-Identifier: LGPL-3.0-or-later

// Package client talks to a Meilisearch-compatible search-index service.
// It covers the settings endpoints of an index and the task endpoints
// needed to await asynchronous application of a settings change.
package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultTimeout = 60 * time.Second

// Option configures a `Client`
type Option func(c *Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMetrics instruments the HTTP transport with request counters and
// duration histograms registered on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = reg
	}
}

// Client issues requests against one service instance
type Client struct {
	host    string
	apiKey  string
	http    *http.Client
	timeout time.Duration
	metrics prometheus.Registerer
}

// New returns a client for the service at host. The API key may be empty
// for unprotected instances.
func New(host, apiKey string, opts ...Option) *Client {
	c := &Client{
		host:    strings.TrimSuffix(host, "/"),
		apiKey:  apiKey,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.http.Timeout == 0 {
		c.http.Timeout = c.timeout
	}
	if c.metrics != nil {
		// copy so a caller-supplied http.Client is left untouched
		h := *c.http
		h.Transport = instrumentTransport(c.metrics, c.http.Transport)
		c.http = &h
	}

	return c
}

// Host returns the configured service base URL
func (c *Client) Host() string {
	return c.host
}

// Index returns a handle on the index with the given uid. No request is
// made; the index may not exist yet.
func (c *Client) Index(uid string) *Index {
	return &Index{uid: uid, client: c}
}
