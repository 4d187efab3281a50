// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3client provides an HTTP transport for the protocol layer and a
// pool that caches transports per endpoint. It implements the collaborator
// contract the decoder and cursor packages consume; signing and retry
// policy live with the caller, not here.
package s3client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/LeeDigitalWorks/s3wire/pkg/logger"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api"
	"github.com/LeeDigitalWorks/s3wire/pkg/s3api/s3decode"
)

// Config holds configuration for connecting to an S3-compatible endpoint.
type Config struct {
	// Endpoint is the base URL, e.g. "https://s3.us-east-1.example.com".
	Endpoint string
	Region   string

	// PathStyle puts the bucket in the URL path instead of the host.
	PathStyle bool

	// RoundTripper overrides the pool's shared transport when set. Signing
	// middleware hooks in here.
	RoundTripper http.RoundTripper
}

// Client issues wire requests against one endpoint. It implements
// s3api.Doer.
type Client struct {
	endpoint  *url.URL
	region    string
	pathStyle bool
	http      *http.Client
}

// NewClient builds a client for one endpoint using the given HTTP client.
func NewClient(cfg *Config, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", cfg.Endpoint, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: scheme must be http or https", cfg.Endpoint)
	}
	if cfg.RoundTripper != nil {
		wrapped := *httpClient
		wrapped.Transport = cfg.RoundTripper
		httpClient = &wrapped
	}
	return &Client{
		endpoint:  base,
		region:    cfg.Region,
		pathStyle: cfg.PathStyle,
		http:      httpClient,
	}, nil
}

// Do issues the wire request. Network failures come back as
// *s3api.TransportError; any HTTP response, error status included, is
// returned for the decoder to interpret.
func (c *Client) Do(ctx context.Context, req *s3api.Request) (*s3api.Response, error) {
	u := c.buildURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), req.Body)
	if err != nil {
		return nil, &s3api.TransportError{Op: req.Op, Err: err}
	}
	for name, values := range req.Header {
		httpReq.Header[name] = values
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &s3api.TransportError{Op: req.Op, Err: err}
	}

	logger.Ctx(ctx).Trace().
		Str("operation", req.Op.String()).
		Str("bucket", req.Bucket).
		Int("status", resp.StatusCode).
		Msg("wire call")

	return &s3api.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// buildURL places the bucket in the host or the path per the addressing
// style and escapes the key segment by segment so slashes survive.
func (c *Client) buildURL(req *s3api.Request) *url.URL {
	u := *c.endpoint
	var plain, escaped strings.Builder

	if req.Bucket != "" {
		if c.pathStyle {
			plain.WriteByte('/')
			plain.WriteString(req.Bucket)
			escaped.WriteByte('/')
			escaped.WriteString(req.Bucket)
		} else {
			u.Host = req.Bucket + "." + c.endpoint.Host
		}
	}
	if req.Key != "" {
		for _, seg := range strings.Split(req.Key, "/") {
			plain.WriteByte('/')
			plain.WriteString(seg)
			escaped.WriteByte('/')
			escaped.WriteString(url.PathEscape(seg))
		}
	}
	if plain.Len() == 0 {
		plain.WriteByte('/')
		escaped.WriteByte('/')
	}

	u.Path = strings.TrimSuffix(c.endpoint.Path, "/") + plain.String()
	u.RawPath = strings.TrimSuffix(c.endpoint.EscapedPath(), "/") + escaped.String()
	if req.Query != nil {
		u.RawQuery = req.Query.Encode()
	}
	return &u
}

// Execute runs one full call: build the typed request, issue it, decode the
// response. The concrete result type matches the request's operation.
func (c *Client) Execute(ctx context.Context, req s3api.Builder) (any, error) {
	wire, err := req.Build()
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(ctx, wire)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("operation", wire.Op.String()).Msg("failed to close response body")
		}
	}()
	return s3decode.DecodeResponse(wire.Op, resp)
}
