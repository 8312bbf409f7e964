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
	"time"
)

const (
	// DefaultAssetsURL is the public path prefix of built assets.
	DefaultAssetsURL = "assets"
	// DefaultTimeout is the default per-request timeout for a source map upload.
	DefaultTimeout = 2 * time.Minute
)

// ConfigUpload contains configuration for the upload operation.
type ConfigUpload struct {
	// Host is the public base URL the assets are served from, e.g. https://example.com.
	Host string
	// AccessToken is a Rollbar project access token with post_server_item scope.
	AccessToken string
	// Version is the release version source maps are uploaded for.
	// It must match the code_version reported by the client.
	Version string
	// AssetsURL is the path prefix of assets on Host.
	AssetsURL string
	// Parallel is the maximum number of concurrent uploads.
	// 0 uploads all pairs at once.
	Parallel int
	// Timeout is the per-request timeout. 0 means no timeout.
	Timeout time.Duration
}

// NewDefaultUploadConfig returns a new ConfigUpload with default values.
func NewDefaultUploadConfig() *ConfigUpload {
	return &ConfigUpload{
		AssetsURL: DefaultAssetsURL,
		Timeout:   DefaultTimeout,
	}
}

// Validate validates the ConfigUpload.
func (c *ConfigUpload) Validate() error {
	if c == nil {
		return errors.New("upload config is required")
	}

	if c.Host == "" {
		return errors.New("host is required")
	}

	if c.AccessToken == "" {
		return errors.New("access token is required")
	}

	if c.Version == "" {
		return errors.New("version is required")
	}

	if c.Parallel < 0 {
		return fmt.Errorf("parallel must be non-negative, got %d", c.Parallel)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s", c.Timeout)
	}

	return nil
}
