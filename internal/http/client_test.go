package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	client, err := NewClient(Options{UserAgent: "test-agent"})
	require.NoError(t, err)

	body, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, "test-agent", gotUA)
}

func TestClient_GetRejectsNonOK(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewClient(Options{})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestClient_GetHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewClient(Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Get(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProxyFunc(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProxyConfig
		want    string
		wantErr bool
	}{
		{name: "none", cfg: ProxyConfig{}, want: ""},
		{name: "manual with port", cfg: ProxyConfig{Type: ProxyManual, Address: "proxy.local", Port: 8080}, want: "http://proxy.local:8080"},
		{name: "manual with scheme", cfg: ProxyConfig{Type: ProxyManual, Address: "socks5://proxy.local:1080"}, want: "socks5://proxy.local:1080"},
		{name: "manual without address", cfg: ProxyConfig{Type: ProxyManual}, wantErr: true},
		{name: "unknown", cfg: ProxyConfig{Type: "pac"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := proxyFunc(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, fn)
				return
			}
			req := httptest.NewRequest(nethttp.MethodGet, "https://itunes.apple.com/", nil)
			u, err := fn(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}
