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

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd_Flags(t *testing.T) {
	t.Parallel()

	rootCmd := NewCmd(VersionDev, "abc")

	for _, name := range []string{
		"token", "host", "version", "assets-dir", "assets-url", "project-root",
		"parallel", "timeout", "rollbar-endpoint", "assets-recursive",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag %s must be registered", name)
	}

	for _, name := range []string{
		"help", "tool-version", "verbose", "log-level", "log-json", "config",
		"s3-bucket-name", "gcp-bucket-name", "azure-container-name",
		"read-retry-max-attempts", "read-retry-backoff", "read-retry-max-backoff", "read-retry-multiplier",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s must be registered", name)
	}

	assert.Equal(t, "v", rootCmd.Flags().Lookup("version").Shorthand)
	assert.Equal(t, "h", rootCmd.Flags().Lookup("host").Shorthand)
	assert.Equal(t, "V", rootCmd.PersistentFlags().Lookup("tool-version").Shorthand)
	assert.Equal(t, "Z", rootCmd.PersistentFlags().Lookup("help").Shorthand)
}

func TestNewCmd_PrintVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		appVersion string
		want       string
	}{
		{VersionDev, "version: dev (abc)\n"},
		{"1.2.0", "version: 1.2.0\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer

		rootCmd := NewCmd(tt.appVersion, "abc")
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"-V"})

		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, tt.want, out.String())
	}
}

func TestNewCmd_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	rootCmd := NewCmd(VersionDev, "abc")
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"-Z"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Upload Flags:")
	assert.Contains(t, out.String(), "--assets-dir")
	assert.Contains(t, out.String(), "--s3-bucket-name")
	assert.Contains(t, out.String(), "Read Retry Flags:")
}

func TestNewCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	rootCmd := NewCmd(VersionDev, "abc")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"extra"})

	require.Error(t, rootCmd.Execute())
}
