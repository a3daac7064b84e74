package controlplane

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultKVMProbeTimeout bounds the credentials-manager probe.
const DefaultKVMProbeTimeout = 5 * time.Second

// Client talks to a region's control plane. Certificate verification is
// disabled on every call.
type Client struct {
	httpClient      *http.Client
	kvmProbeTimeout time.Duration
}

type Option func(*Client)

// WithTimeout sets a timeout on every request. Zero leaves requests
// unbounded, which is the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithKVMProbeTimeout bounds the credentials-manager probe. Non-positive
// values keep DefaultKVMProbeTimeout.
func WithKVMProbeTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.kvmProbeTimeout = d
		}
	}
}

func NewClient(opts ...Option) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec

	c := &Client{
		httpClient:      &http.Client{Transport: transport},
		kvmProbeTimeout: DefaultKVMProbeTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func endpoint(regionURL, path string) string {
	return strings.TrimRight(regionURL, "/") + "/" + path
}

func (c *Client) get(ctx context.Context, url, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", token)
	return c.httpClient.Do(req)
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
