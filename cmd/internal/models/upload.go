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

package models

import "fmt"

const (
	DefaultAssetsDir = "dist/assets"
	DefaultAssetsURL = "assets"
	// DefaultTimeout is the per-request timeout in milliseconds.
	DefaultTimeout = 120000
)

// Upload contains the flags of the upload operation.
type Upload struct {
	// Rollbar access token.
	Token string
	// Public base URL of the application.
	Host string
	// Release version, derived from the git HEAD when empty.
	Version string
	// Assets directory, relative to ProjectRoot, or a bucket prefix for cloud storage.
	AssetsDir string
	// Public path of assets on Host.
	AssetsURL string
	// Recursive lists nested directories of AssetsDir too.
	Recursive bool
	// Project root, discovered by package.json when empty.
	ProjectRoot string
	// Maximum number of concurrent uploads, 0 means all at once.
	Parallel int
	// Per-request timeout in milliseconds, 0 disables it.
	Timeout int64
	// Rollbar source map API endpoint.
	Endpoint string
}

// Validate internal validation for struct params.
// Token and host are checked after environment fallbacks are applied.
func (u *Upload) Validate() error {
	if u.Token == "" {
		return fmt.Errorf("token is required, set --token or ROLLBAR_ACCESS_TOKEN")
	}

	if u.Host == "" {
		return fmt.Errorf("host is required, set --host or ROLLBAR_HOST")
	}

	if u.Parallel < 0 {
		return fmt.Errorf("parallel must be non-negative")
	}

	if u.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}
