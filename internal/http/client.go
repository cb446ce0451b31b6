package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultUserAgent identifies coverfix to artwork providers.
const DefaultUserAgent = "coverfix/1.0"

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 30 * time.Second

// MaxBodySize caps how much of a response body is read into memory.
// Cover art larger than this is treated as a failed download.
const MaxBodySize = 16 << 20

// ErrBodyTooLarge is returned when a response exceeds MaxBodySize.
var ErrBodyTooLarge = errors.New("response body too large")

// Proxy modes accepted by ProxyConfig.Type.
const (
	ProxyNone   = "none"
	ProxySystem = "system"
	ProxyManual = "manual"
)

// ProxyConfig selects how outgoing requests reach the network.
type ProxyConfig struct {
	// Type is one of ProxyNone, ProxySystem or ProxyManual.
	// An empty Type behaves like ProxyNone.
	Type string

	// Address and Port are used when Type is ProxyManual.
	// Address may carry a scheme ("socks5://host"); "http://" is assumed otherwise.
	Address string
	Port    int
}

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Proxy     ProxyConfig
}

// Client wraps HTTP operations with provider-friendly configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Optional system or manual proxy
//   - Bounded response bodies
//
// Example usage:
//
//	client, err := NewClient(Options{Timeout: 10 * time.Second})
//
//	// Fetch JSON or image bytes
//	data, err := client.Get(ctx, "https://itunes.apple.com/search?term=...")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// Zero fields in opts fall back to DefaultTimeout and DefaultUserAgent.
// Returns an error when a manual proxy address cannot be parsed.
func NewClient(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	proxy, err := proxyFunc(opts.Proxy)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy

	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		userAgent: opts.UserAgent,
	}, nil
}

func proxyFunc(cfg ProxyConfig) (func(*http.Request) (*url.URL, error), error) {
	switch cfg.Type {
	case "", ProxyNone:
		return nil, nil
	case ProxySystem:
		return http.ProxyFromEnvironment, nil
	case ProxyManual:
		if cfg.Address == "" {
			return nil, errors.New("manual proxy requires an address")
		}
		raw := cfg.Address
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		if cfg.Port > 0 {
			u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(cfg.Port))
		}
		return http.ProxyURL(u), nil
	default:
		return nil, fmt.Errorf("unknown proxy type %q", cfg.Type)
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails or it exceeds MaxBodySize
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/image.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
