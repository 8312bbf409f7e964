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

import (
	"fmt"
	"net/url"
)

// GcpStorage selects a Google Cloud Storage bucket as the assets source.
type GcpStorage struct {
	// Service account JSON key. Application default credentials are used when empty.
	KeyFile string
	// Bucket holding the built assets. The assets dir is a prefix inside it.
	BucketName string
	// Emulator or proxy URL. Requests to it are sent without credentials.
	Endpoint string
}

// IsSet reports whether any GCP parameter was provided.
func (g *GcpStorage) IsSet() bool {
	return g != nil && (g.BucketName != "" || g.KeyFile != "" || g.Endpoint != "")
}

// Validate internal validation for struct params.
func (g *GcpStorage) Validate() error {
	if g.BucketName == "" {
		return fmt.Errorf("bucket name is required")
	}

	if g.Endpoint != "" {
		if _, err := url.ParseRequestURI(g.Endpoint); err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", g.Endpoint, err)
		}
	}

	return nil
}
