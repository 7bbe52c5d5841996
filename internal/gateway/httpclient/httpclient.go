// Package httpclient builds the pooled HTTP client shared by the API gateways.
package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"clipstream/internal/config"

	"go.uber.org/zap"
)

// New creates an HTTP client with connection pooling tuned from configuration
func New(cfg config.HTTPClientConfig, logger *zap.Logger) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		DisableKeepAlives:     cfg.DisableKeepAlives,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout,
	}

	logger.Info("HTTP client created with connection pooling",
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Int("max_idle_conns_per_host", cfg.MaxIdleConnsPerHost),
		zap.Duration("idle_conn_timeout", cfg.IdleConnTimeout),
		zap.Duration("request_timeout", cfg.RequestTimeout))

	return client
}

// BearerTransport injects a bearer token into every outgoing request
type BearerTransport struct {
	Base  http.RoundTripper
	Token string
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.Token)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(req)
}
