// Package http provides the HTTP client used to reach artwork providers.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - System or manual proxies
//   - Response size limits
//
// # Basic Usage
//
//	client, err := http.NewClient(http.Options{
//	    Timeout:   10 * time.Second,
//	    UserAgent: "coverfix/1.0",
//	    Proxy:     http.ProxyConfig{Type: http.ProxySystem},
//	})
//
//	body, err := client.Get(ctx, "https://itunes.apple.com/search?term=artist+title")
package http
