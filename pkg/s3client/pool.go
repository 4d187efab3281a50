// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3client

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/LeeDigitalWorks/s3wire/pkg/logger"
)

// Pool manages clients for different endpoints. Clients are cached by
// endpoint+region+style so connections are reused across calls.
type Pool struct {
	mu      sync.RWMutex
	clients map[string]*Client
	timeout time.Duration
	maxIdle int

	// Shared HTTP client for connection reuse
	httpClient *http.Client
}

// NewPool creates a new client pool with the given timeout and max idle connections.
func NewPool(timeout time.Duration, maxIdleConns int) *Pool {
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	if maxIdleConns == 0 {
		maxIdleConns = 100
	}

	return &Pool{
		clients: make(map[string]*Client),
		timeout: timeout,
		maxIdle: maxIdleConns,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConns / 10, // 10% per host
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// GetClient returns a client configured for the given config, creating and
// caching one on first use.
func (p *Pool) GetClient(cfg *Config) (*Client, error) {
	cacheKey := fmt.Sprintf("%s|%s|%t", cfg.Endpoint, cfg.Region, cfg.PathStyle)

	// Check cache first
	p.mu.RLock()
	client, exists := p.clients[cacheKey]
	p.mu.RUnlock()
	if exists {
		return client, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := p.clients[cacheKey]; exists {
		return client, nil
	}

	client, err := NewClient(cfg, p.httpClient)
	if err != nil {
		return nil, err
	}

	p.clients[cacheKey] = client

	logger.Debug().
		Str("endpoint", cfg.Endpoint).
		Str("region", cfg.Region).
		Bool("path_style", cfg.PathStyle).
		Msg("Created new S3 client")

	return client, nil
}

// Close closes the client pool and releases idle connections.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clients = make(map[string]*Client)
	p.httpClient.CloseIdleConnections()

	return nil
}
