// Copyright 2024 The sourcemaps-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sourcemaps

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/releasetools/sourcemaps-go/internal/logging"
)

// DefaultEndpoint is the Rollbar source map upload API.
const DefaultEndpoint = "https://api.rollbar.com/api/1/sourcemap"

// Client is the main entry point for the sourcemaps package.
// It uploads source maps of a build to Rollbar.
// Example usage:
//
//	client, err := sourcemaps.NewClient(sourcemaps.WithID("id"))
//	if err != nil {
//		// handle error
//	}
//
//	cfg := sourcemaps.NewDefaultUploadConfig()
//	cfg.Host = "https://example.com"
//	cfg.AccessToken = token
//	cfg.Version = "1a2b3c4"
//
//	handler, err := client.Upload(ctx, cfg, local.NewReader(), "dist/assets")
//	if err != nil {
//		// handle error
//	}
//
//	// wait for all uploads to finish, the first failure is returned
//	if err = handler.Wait(ctx); err != nil {
//		// handle error
//	}
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
	id         string
}

// ClientOpt is a functional option that allows configuring the [Client].
type ClientOpt func(*Client)

// WithID sets the ID for the [Client].
// This ID is used for logging purposes.
func WithID(id string) ClientOpt {
	return func(c *Client) {
		c.id = id
	}
}

// WithLogger sets the logger for the [Client].
func WithLogger(logger *slog.Logger) ClientOpt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets the HTTP client used for uploads.
func WithHTTPClient(httpClient *http.Client) ClientOpt {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithEndpoint overrides the Rollbar upload URL.
func WithEndpoint(endpoint string) ClientOpt {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// NewClient creates a new upload client.
//
// options:
//   - [WithID] to set an identifier for the client.
//   - [WithLogger] to set a logger that this client will log to.
//   - [WithHTTPClient] to set the HTTP client.
//   - [WithEndpoint] to upload to a proxy or a test server.
func NewClient(opts ...ClientOpt) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
		endpoint:   DefaultEndpoint,
		// #nosec G404
		id: strconv.Itoa(rand.Intn(1000)),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		return nil, errors.New("http client is nil")
	}

	if client.logger == nil {
		return nil, errors.New("logger is nil")
	}

	if err := validateEndpoint(client.endpoint); err != nil {
		return nil, err
	}

	client.logger = client.logger.WithGroup("sourcemaps")
	client.logger = logging.WithClient(client.logger, client.id)

	return client, nil
}

// Endpoint returns the upload URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}

	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: host is empty", endpoint)
	}

	return nil
}
