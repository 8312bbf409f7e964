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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *ConfigUpload {
	cfg := NewDefaultUploadConfig()
	cfg.Host = "https://example.com"
	cfg.AccessToken = "token"
	cfg.Version = "abc1234"

	return cfg
}

func TestConfigUpload_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *ConfigUpload)
		wantErr string
	}{
		{"valid", func(*ConfigUpload) {}, ""},
		{"empty assets url", func(c *ConfigUpload) { c.AssetsURL = "" }, ""},
		{"no host", func(c *ConfigUpload) { c.Host = "" }, "host is required"},
		{"no token", func(c *ConfigUpload) { c.AccessToken = "" }, "access token is required"},
		{"no version", func(c *ConfigUpload) { c.Version = "" }, "version is required"},
		{"negative parallel", func(c *ConfigUpload) { c.Parallel = -1 }, "parallel must be non-negative"},
		{"negative timeout", func(c *ConfigUpload) { c.Timeout = -time.Second }, "timeout must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigUpload_ValidateNil(t *testing.T) {
	t.Parallel()

	var cfg *ConfigUpload
	require.ErrorContains(t, cfg.Validate(), "upload config is required")
}

func TestNewDefaultUploadConfig(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultUploadConfig()
	require.Equal(t, DefaultAssetsURL, cfg.AssetsURL)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Zero(t, cfg.Parallel)
}
